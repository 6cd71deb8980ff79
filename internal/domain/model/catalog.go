// Package model defines the core domain entities for the pizzeria service.
package model

import (
	"errors"
	"strings"
)

// Category identifies one of the fixed menu sections.
type Category string

const (
	CategoryTraditionalPizzas Category = "pizzas_tradicionais"
	CategorySweetPizzas       Category = "pizzas_doces"
	CategoryBakedPastries     Category = "pasteis_assados"
	CategoryPremiumPastries   Category = "pasteis_premium"
	CategoryCalzones          Category = "calzones"
	CategoryDrinks            Category = "bebidas"
	CategoryCombos            Category = "combos"
)

// Categories lists every menu section in display order.
var Categories = []Category{
	CategoryTraditionalPizzas,
	CategorySweetPizzas,
	CategoryBakedPastries,
	CategoryPremiumPastries,
	CategoryCalzones,
	CategoryDrinks,
	CategoryCombos,
}

// ParseCategory returns the category matching s.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Sized reports whether entries of the category are priced per pizza size.
func (c Category) Sized() bool {
	switch c {
	case CategoryTraditionalPizzas, CategorySweetPizzas, CategoryCalzones:
		return true
	}
	return false
}

// LineKind returns the cart line variant produced by entries of the category.
func (c Category) LineKind() LineKind {
	switch c {
	case CategoryTraditionalPizzas, CategorySweetPizzas:
		return LineKindPizza
	case CategoryDrinks:
		return LineKindDrink
	case CategoryCombos:
		return LineKindCombo
	default:
		return LineKindPastry
	}
}

// Label is the human readable section title.
func (c Category) Label() string {
	switch c {
	case CategoryTraditionalPizzas:
		return "Pizzas Tradicionais"
	case CategorySweetPizzas:
		return "Pizzas Doces"
	case CategoryBakedPastries:
		return "Pastéis Assados"
	case CategoryPremiumPastries:
		return "Pastéis Premium"
	case CategoryCalzones:
		return "Calzones"
	case CategoryDrinks:
		return "Bebidas"
	case CategoryCombos:
		return "Combos"
	}
	return string(c)
}

// SizePrices maps a pizza size to its price.
type SizePrices map[PizzaSize]float64

// CatalogEntry is a single menu item.
//
// @Description Menu item. Sized categories use prices, the others use price.
type CatalogEntry struct {
	Key         string     `json:"key" example:"margherita"`
	Name        string     `json:"name" example:"Margherita"`
	Category    Category   `json:"category" example:"pizzas_tradicionais"`
	Group       string     `json:"group,omitempty" example:"tradicional"`
	Ingredients []string   `json:"ingredients,omitempty"`
	Price       float64    `json:"price,omitempty" example:"7.5"`
	Prices      SizePrices `json:"prices,omitempty"`
	Volume      string     `json:"volume,omitempty" example:"350ml"`
	Items       []string   `json:"items,omitempty"`
	Editable    bool       `json:"editable,omitempty"`
	Available   bool       `json:"available" example:"true"`
}

var (
	errEntryKey   = errors.New("entry key is required")
	errEntryName  = errors.New("entry name is required")
	errEntryPrice = errors.New("entry price must be positive")
	errSizePrices = errors.New("sized entries need a positive price for every size")
)

// Validate checks that the entry is well formed for its category.
func (e CatalogEntry) Validate() error {
	if strings.TrimSpace(e.Key) == "" {
		return errEntryKey
	}
	if strings.TrimSpace(e.Name) == "" {
		return errEntryName
	}
	if e.Category.Sized() {
		for _, size := range PizzaSizes {
			if e.Prices[size] <= 0 {
				return errSizePrices
			}
		}
		return nil
	}
	if e.Price <= 0 {
		return errEntryPrice
	}
	return nil
}

// PriceFor returns the unit price of the entry for the given size. Unsized
// entries ignore size.
func (e CatalogEntry) PriceFor(size PizzaSize) (float64, bool) {
	if !e.Category.Sized() {
		return e.Price, e.Price > 0
	}
	p, ok := e.Prices[size]
	return p, ok && p > 0
}

// Clone returns a deep copy so callers cannot mutate catalog state.
func (e CatalogEntry) Clone() CatalogEntry {
	out := e
	if e.Ingredients != nil {
		out.Ingredients = append([]string(nil), e.Ingredients...)
	}
	if e.Items != nil {
		out.Items = append([]string(nil), e.Items...)
	}
	if e.Prices != nil {
		out.Prices = make(SizePrices, len(e.Prices))
		for k, v := range e.Prices {
			out.Prices[k] = v
		}
	}
	return out
}

// CatalogEntryPatch carries a partial update. Nil fields are left unchanged.
type CatalogEntryPatch struct {
	Name        *string    `json:"name,omitempty"`
	Group       *string    `json:"group,omitempty"`
	Ingredients []string   `json:"ingredients,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Prices      SizePrices `json:"prices,omitempty"`
	Volume      *string    `json:"volume,omitempty"`
	Items       []string   `json:"items,omitempty"`
	Available   *bool      `json:"available,omitempty"`
}

// Apply merges the patch into e and returns the result.
func (p CatalogEntryPatch) Apply(e CatalogEntry) CatalogEntry {
	out := e.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Group != nil {
		out.Group = *p.Group
	}
	if p.Ingredients != nil {
		out.Ingredients = append([]string(nil), p.Ingredients...)
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	for size, price := range p.Prices {
		if out.Prices == nil {
			out.Prices = make(SizePrices, len(p.Prices))
		}
		out.Prices[size] = price
	}
	if p.Volume != nil {
		out.Volume = *p.Volume
	}
	if p.Items != nil {
		out.Items = append([]string(nil), p.Items...)
	}
	if p.Available != nil {
		out.Available = *p.Available
	}
	return out
}

// PizzeriaInfo is the restaurant contact and delivery data.
type PizzeriaInfo struct {
	Name          string   `json:"name" example:"Borda de Fogo Pizzaria"`
	Slogan        string   `json:"slogan" example:"A Felicidade em Forma de Fatias"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone" example:"(11) 99999-9999"`
	WhatsApp      string   `json:"whatsapp" example:"5511999999999"`
	Hours         string   `json:"hours"`
	DeliveryFee   float64  `json:"delivery_fee" example:"5"`
	DeliveryTime  string   `json:"delivery_time" example:"30-45 minutos"`
	DeliveryAreas []string `json:"delivery_areas"`
}

// PizzeriaInfoPatch carries a partial update of PizzeriaInfo.
type PizzeriaInfoPatch struct {
	Name          *string  `json:"name,omitempty"`
	Slogan        *string  `json:"slogan,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	WhatsApp      *string  `json:"whatsapp,omitempty"`
	Hours         *string  `json:"hours,omitempty"`
	DeliveryFee   *float64 `json:"delivery_fee,omitempty"`
	DeliveryTime  *string  `json:"delivery_time,omitempty"`
	DeliveryAreas []string `json:"delivery_areas,omitempty"`
}

// Apply merges the patch into info and returns the result.
func (p PizzeriaInfoPatch) Apply(info PizzeriaInfo) PizzeriaInfo {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&info.Name, p.Name)
	set(&info.Slogan, p.Slogan)
	set(&info.Address, p.Address)
	set(&info.Phone, p.Phone)
	set(&info.WhatsApp, p.WhatsApp)
	set(&info.Hours, p.Hours)
	set(&info.DeliveryTime, p.DeliveryTime)
	if p.DeliveryFee != nil {
		info.DeliveryFee = *p.DeliveryFee
	}
	if p.DeliveryAreas != nil {
		info.DeliveryAreas = append([]string(nil), p.DeliveryAreas...)
	}
	return info
}
