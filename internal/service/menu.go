package service

import (
	"fmt"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

// MenuSelection is a customer's pick from the menu browser.
type MenuSelection struct {
	Category model.Category  `json:"category" example:"bebidas"`
	Key      string          `json:"key" example:"cocaCola"`
	Size     model.PizzaSize `json:"size,omitempty" example:"M"`
	Quantity int             `json:"quantity,omitempty" example:"1"`
}

// LineFromMenu turns a menu selection into a cart line. Sized entries default
// to size M, quantity defaults to 1. Unavailable entries are rejected.
func LineFromMenu(catalog CatalogService, sel MenuSelection) (model.CartLine, error) {
	entry, err := catalog.Get(sel.Category, sel.Key)
	if err != nil {
		return model.CartLine{}, err
	}
	if !entry.Available {
		return model.CartLine{}, fmt.Errorf("%w: %s/%s", ErrItemUnavailable, sel.Category, sel.Key)
	}

	size := sel.Size
	if entry.Category.Sized() {
		if size == "" {
			size = model.SizeMedium
		}
		if !size.Valid() {
			return model.CartLine{}, fmt.Errorf("%w: %q", ErrInvalidSize, size)
		}
	} else {
		size = ""
	}

	price, ok := entry.PriceFor(size)
	if !ok {
		return model.CartLine{}, fmt.Errorf("%w: no price for %s/%s size %q", ErrInvalidItem, sel.Category, sel.Key, size)
	}

	quantity := sel.Quantity
	if quantity < 1 {
		quantity = 1
	}

	line := model.CartLine{
		Kind:      entry.Category.LineKind(),
		Category:  entry.Category,
		Key:       entry.Key,
		Name:      entry.Name,
		UnitPrice: price,
		Quantity:  quantity,
	}

	switch line.Kind {
	case model.LineKindPizza:
		info, _ := size.Info()
		line.Pizza = &model.PizzaDetails{
			Size:        size,
			Slices:      info.Slices,
			Division:    model.DivisionWhole,
			Flavor1:     entry.Key,
			Flavor1Name: entry.Name,
			Crust:       model.CrustTraditional,
		}
	case model.LineKindDrink:
		line.Drink = &model.DrinkDetails{Volume: entry.Volume}
	case model.LineKindCombo:
		line.Combo = &model.ComboDetails{Items: append([]string(nil), entry.Items...)}
	default:
		line.Pastry = &model.PastryDetails{Size: size, Ingredients: append([]string(nil), entry.Ingredients...)}
	}
	return line, nil
}
