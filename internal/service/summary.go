package service

import (
	"fmt"
	"strings"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

const (
	deliveryEstimate     = "35-45 minutos"
	tablePrepEstimate    = "15-20 minutos"
	defaultSummarySlogan = "A Felicidade em Forma de Fatias"
)

// EstimateFor returns the time estimate printed for an order type.
func EstimateFor(orderType model.OrderType) string {
	if orderType == model.OrderTypeDelivery {
		return deliveryEstimate
	}
	return tablePrepEstimate
}

// FormatOrderSummary renders the message handed to the messaging service.
// Section order: header, customer, address or table, items, totals, payment,
// notes, time estimate and footer.
func FormatOrderSummary(order model.Order, info model.PizzeriaInfo, siteDomain string) string {
	var b strings.Builder
	delivery := order.Type == model.OrderTypeDelivery
	c := order.Customer

	if delivery {
		b.WriteString("🏍️ *NOVO PEDIDO - ENTREGA*\n")
	} else {
		b.WriteString("🏪 *NOVO PEDIDO - MESA*\n")
	}
	fmt.Fprintf(&b, "🍕 %s\n", strings.ToUpper(info.Name))
	slogan := info.Slogan
	if slogan == "" {
		slogan = defaultSummarySlogan
	}
	fmt.Fprintf(&b, "\"%s\"\n\n", slogan)

	b.WriteString("👤 *DADOS DO CLIENTE:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", c.Name)
	fmt.Fprintf(&b, "Telefone: %s\n", c.Phone)
	if c.Email != "" {
		fmt.Fprintf(&b, "E-mail: %s\n", c.Email)
	}
	b.WriteString("\n")

	if delivery {
		b.WriteString("📍 *ENDEREÇO DE ENTREGA:*\n")
		fmt.Fprintf(&b, "%s, %s", c.Street, c.Number)
		if c.Complement != "" {
			fmt.Fprintf(&b, " - %s", c.Complement)
		}
		fmt.Fprintf(&b, "\nBairro: %s - %s\n", c.Neighborhood, c.City)
		fmt.Fprintf(&b, "CEP: %s\n", c.PostalCode)
		if c.Reference != "" {
			fmt.Fprintf(&b, "Ponto de Referência: %s\n", c.Reference)
		}
	} else {
		fmt.Fprintf(&b, "🍽️ *MESA NÚMERO: %s*\n", c.TableNumber)
	}
	b.WriteString("\n")

	b.WriteString("📝 *PEDIDO DETALHADO:*\n\n")
	for _, line := range order.Lines {
		writeSummaryLine(&b, line)
	}

	b.WriteString("💰 *RESUMO FINANCEIRO:*\n")
	fmt.Fprintf(&b, "Subtotal: R$ %.2f\n", order.Subtotal)
	if delivery {
		fmt.Fprintf(&b, "🚚 Taxa de Entrega: R$ %.2f\n", order.DeliveryFee)
	}
	fmt.Fprintf(&b, "*TOTAL GERAL: R$ %.2f*\n\n", order.Total)

	b.WriteString("💳 *FORMA DE PAGAMENTO:*\n")
	switch c.PaymentMethod {
	case model.PaymentPix:
		b.WriteString("📱 PIX")
	case model.PaymentCard:
		b.WriteString("💳 Cartão na entrega")
	default:
		b.WriteString("💵 Dinheiro")
		if c.ChangeFor != "" {
			fmt.Fprintf(&b, " - Troco para R$ %s", c.ChangeFor)
		}
	}
	b.WriteString("\n\n")

	if c.Notes != "" {
		b.WriteString("📝 *OBSERVAÇÕES:*\n")
		fmt.Fprintf(&b, "%s\n\n", c.Notes)
	}

	if delivery {
		fmt.Fprintf(&b, "⏰ *Tempo estimado: %s*\n\n", deliveryEstimate)
	} else {
		fmt.Fprintf(&b, "⏰ *Tempo de preparo: %s*\n\n", tablePrepEstimate)
	}

	b.WriteString("---\n")
	fmt.Fprintf(&b, "Pedido realizado pelo site: %s", siteDomain)

	return b.String()
}

func writeSummaryLine(b *strings.Builder, line model.CartLine) {
	switch {
	case line.Pizza != nil:
		p := line.Pizza
		fmt.Fprintf(b, "🍕 Pizza %s (%d fatias)\n", p.Size, p.Slices)
		if p.Division == model.DivisionHalf && p.Flavor2 != "" {
			b.WriteString("  └ Metade/Metade\n")
			fmt.Fprintf(b, "    ▫️ Metade 1: %s\n", flavorLabel(p.Flavor1Name, p.Flavor1))
			fmt.Fprintf(b, "    ▫️ Metade 2: %s\n", flavorLabel(p.Flavor2Name, p.Flavor2))
		} else {
			fmt.Fprintf(b, "  └ Sabor: %s\n", flavorLabel(p.Flavor1Name, p.Flavor1))
		}
		if p.Crust != "" && p.Crust != model.CrustTraditional {
			fmt.Fprintf(b, "  └ Massa: %s\n", p.Crust.Label())
		}
	case line.Drink != nil && line.Drink.Volume != "":
		fmt.Fprintf(b, "• %s %s\n", line.Name, line.Drink.Volume)
	case line.Pastry != nil && line.Pastry.Size != "":
		fmt.Fprintf(b, "• %s (%s)\n", line.Name, line.Pastry.Size)
	default:
		fmt.Fprintf(b, "• %s\n", line.Name)
	}

	fmt.Fprintf(b, "  💵 Valor: R$ %.2f\n", line.Subtotal())
	if line.Quantity > 1 {
		fmt.Fprintf(b, "  📦 Quantidade: %d\n", line.Quantity)
	}
	b.WriteString("\n")
}

func flavorLabel(name, key string) string {
	if name != "" {
		return name
	}
	return key
}
