package service

import "github.com/guttosm/pizzeria-service/internal/domain/model"

// DefaultPizzeriaInfo is the restaurant data the service starts with.
func DefaultPizzeriaInfo() model.PizzeriaInfo {
	return model.PizzeriaInfo{
		Name:          "Borda de Fogo Pizzaria",
		Slogan:        "A Felicidade em Forma de Fatias",
		Address:       "Rua das Pizzas, 123 - Centro - Sua Cidade/SP",
		Phone:         "(11) 99999-9999",
		WhatsApp:      "5511999999999",
		Hours:         "Segunda a Domingo - 18h00 às 23h30",
		DeliveryFee:   5.00,
		DeliveryTime:  "30-45 minutos",
		DeliveryAreas: []string{"Centro", "Vila Nova", "Jardim das Flores"},
	}
}

func sized(key, name, group string, p, m, g float64, ingredients ...string) model.CatalogEntry {
	return model.CatalogEntry{
		Key:         key,
		Name:        name,
		Group:       group,
		Ingredients: ingredients,
		Prices:      model.SizePrices{model.SizeSmall: p, model.SizeMedium: m, model.SizeLarge: g},
		Available:   true,
	}
}

func pastry(key, name string, price float64, ingredients ...string) model.CatalogEntry {
	return model.CatalogEntry{Key: key, Name: name, Ingredients: ingredients, Price: price, Available: true}
}

func drink(key, name, volume, group string, price float64) model.CatalogEntry {
	return model.CatalogEntry{Key: key, Name: name, Volume: volume, Group: group, Price: price, Available: true}
}

// DefaultMenu returns the demo menu, keyed by category in display order.
func DefaultMenu() map[model.Category][]model.CatalogEntry {
	return map[model.Category][]model.CatalogEntry{
		model.CategoryTraditionalPizzas: {
			sized("margherita", "Margherita", "tradicional", 25, 35, 45, "molho de tomate", "queijo mussarela", "manjericão", "azeite"),
			sized("calabresa", "Calabresa", "tradicional", 28, 38, 48, "calabresa", "cebola", "azeitona", "queijo mussarela"),
			sized("portuguesa", "Portuguesa", "especial", 32, 42, 52, "presunto", "ovos", "cebola", "azeitona", "queijo mussarela"),
			sized("quatroQueijos", "Quatro Queijos", "especial", 35, 45, 55, "mussarela", "parmesão", "gorgonzola", "catupiry"),
			sized("frango", "Frango com Catupiry", "tradicional", 30, 40, 50, "frango desfiado", "catupiry", "milho", "azeitona"),
			sized("pepperoni", "Pepperoni", "especial", 33, 43, 53, "pepperoni", "queijo mussarela", "orégano"),
		},
		model.CategorySweetPizzas: {
			sized("chocolate", "Chocolate", "doce", 25, 35, 45, "chocolate ao leite", "leite condensado"),
			sized("brigadeiro", "Brigadeiro", "doce", 28, 38, 48, "brigadeiro", "granulado", "leite condensado"),
		},
		model.CategoryBakedPastries: {
			pastry("toscana", "Pastel de Toscana", 8.00, "calabresa", "queijo", "tomate"),
			pastry("frango", "Pastel de Frango com Mussarela", 8.50, "frango desfiado", "queijo mussarela"),
			pastry("cheddar", "Pastel de Cheddar", 7.50, "queijo cheddar"),
			pastry("frangoCheddar", "Pastel de Frango com Cheddar", 9.00, "frango desfiado", "queijo cheddar"),
			pastry("frangoCatupiry", "Pastel de Frango Catupiry", 9.50, "frango desfiado", "catupiry"),
			pastry("frangoAcebolado", "Pastel de Frango Acebolado", 8.50, "frango desfiado", "cebola refogada"),
			pastry("catupiry", "Pastel de Catupiry", 8.00, "catupiry"),
			pastry("calaCheddar", "Pastel de Cala Cheddar", 9.00, "calabresa", "queijo cheddar"),
			pastry("calabresaAcebolada", "Pastel de Calabresa Acebolada", 8.50, "calabresa", "cebola refogada"),
			pastry("calabresa", "Pastel de Calabresa", 8.00, "calabresa"),
			pastry("barbecue", "Pastel de Barbecue", 9.50, "carne", "molho barbecue"),
			pastry("quatroQueijos", "Pastel Quatro Queijos", 10.00, "mussarela", "parmesão", "gorgonzola", "catupiry"),
			pastry("baiana", "Pastel Baiana", 9.00, "calabresa", "ovo", "pimenta"),
			pastry("americano", "Pastel Americano", 9.50, "presunto", "queijo", "ovo"),
		},
		model.CategoryPremiumPastries: {
			pastry("carneSolCatupiry", "Carne de Sol com Catupiry", 12.00, "carne de sol", "catupiry"),
			pastry("carneSolCheddar", "Carne de Sol com Cheddar", 12.00, "carne de sol", "queijo cheddar"),
			pastry("cheesePremium", "Cheese Premium", 11.00, "queijos especiais", "herbs"),
			pastry("baconEspecial", "Bacon Especial", 11.50, "bacon", "queijo", "cebola caramelizada"),
			pastry("calaBacon", "Cala Bacon", 12.50, "calabresa", "bacon", "queijo"),
			pastry("camarao", "Camarão", 15.00, "camarão", "cream cheese", "herbs"),
			pastry("carneSolCreamCheese", "Carne de Sol com Cream Cheese", 13.00, "carne de sol", "cream cheese"),
			pastry("carneSol", "Carne de Sol", 11.00, "carne de sol", "queijo coalho"),
		},
		model.CategoryCalzones: {
			sized("margherita", "Calzone Margherita", "tradicional", 22, 32, 42, "molho de tomate", "queijo mussarela", "manjericão"),
			sized("calabresa", "Calzone Calabresa", "tradicional", 25, 35, 45, "calabresa", "cebola", "queijo mussarela"),
		},
		model.CategoryDrinks: {
			drink("cocaCola", "Coca-Cola", "350ml", "refrigerante", 5.00),
			drink("cocaCola1L", "Coca-Cola", "1L", "refrigerante", 8.00),
			drink("guarana", "Guaraná Antarctica", "350ml", "refrigerante", 5.00),
			drink("fanta", "Fanta Laranja", "350ml", "refrigerante", 5.00),
			drink("cajuina", "Cajuína", "300ml", "suco", 4.50),
			drink("agua", "Água Mineral", "500ml", "agua", 3.00),
		},
		model.CategoryCombos: {
			{
				Key:       "comboCasal",
				Name:      "Combo Casal",
				Items:     []string{"1 Calzone tamanho pequeno", "1 Caixa número 25", "1 Cajuína ou 1 Coca-Cola 1L Original"},
				Price:     45.00,
				Editable:  true,
				Available: true,
			},
		},
	}
}
