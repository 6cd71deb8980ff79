package model

import (
	"errors"
	"fmt"
)

// LineKind discriminates the CartLine variants.
type LineKind string

const (
	LineKindPizza  LineKind = "pizza"
	LineKindPastry LineKind = "pastry"
	LineKindDrink  LineKind = "drink"
	LineKindCombo  LineKind = "combo"
)

// PizzaDetails holds the configuration of a pizza line.
type PizzaDetails struct {
	Size        PizzaSize `json:"size" example:"M"`
	Slices      int       `json:"slices" example:"8"`
	Division    Division  `json:"division" example:"inteira"`
	Flavor1     string    `json:"flavor1" example:"margherita"`
	Flavor1Name string    `json:"flavor1_name" example:"Margherita"`
	Flavor2     string    `json:"flavor2,omitempty"`
	Flavor2Name string    `json:"flavor2_name,omitempty"`
	Crust       Crust     `json:"crust" example:"tradicional"`
}

// PastryDetails holds pastry and calzone data. Size is set for calzones only.
type PastryDetails struct {
	Size        PizzaSize `json:"size,omitempty"`
	Ingredients []string  `json:"ingredients,omitempty"`
}

// DrinkDetails holds drink data.
type DrinkDetails struct {
	Volume string `json:"volume,omitempty" example:"350ml"`
}

// ComboDetails lists what a combo contains.
type ComboDetails struct {
	Items []string `json:"items,omitempty"`
}

// CartLine is one entry in the cart. Exactly one of the detail pointers is
// set and it matches Kind.
//
// @Description Cart line; exactly one of pizza, pastry, drink or combo is present
type CartLine struct {
	ID        string         `json:"id" example:"4b6f2c1e-0f0e-4d1a-9c3a-2f6d5c9e8a71"`
	Kind      LineKind       `json:"kind" example:"pizza"`
	Category  Category       `json:"category,omitempty" example:"pizzas_tradicionais"`
	Key       string         `json:"key,omitempty" example:"margherita"`
	Name      string         `json:"name" example:"Pizza Média"`
	UnitPrice float64        `json:"unit_price" example:"35"`
	Quantity  int            `json:"quantity" example:"1"`
	Pizza     *PizzaDetails  `json:"pizza,omitempty"`
	Pastry    *PastryDetails `json:"pastry,omitempty"`
	Drink     *DrinkDetails  `json:"drink,omitempty"`
	Combo     *ComboDetails  `json:"combo,omitempty"`
}

var (
	errLineName     = errors.New("line name is required")
	errLinePrice    = errors.New("line price must be positive")
	errLineQuantity = errors.New("line quantity must be at least 1")
)

// Validate checks the variant invariant and basic field constraints.
func (l CartLine) Validate() error {
	if l.Name == "" {
		return errLineName
	}
	if l.UnitPrice <= 0 {
		return errLinePrice
	}
	if l.Quantity < 1 {
		return errLineQuantity
	}

	set := 0
	for _, present := range []bool{l.Pizza != nil, l.Pastry != nil, l.Drink != nil, l.Combo != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("line %q must carry exactly one variant, got %d", l.Name, set)
	}

	var ok bool
	switch l.Kind {
	case LineKindPizza:
		ok = l.Pizza != nil
	case LineKindPastry:
		ok = l.Pastry != nil
	case LineKindDrink:
		ok = l.Drink != nil
	case LineKindCombo:
		ok = l.Combo != nil
	}
	if !ok {
		return fmt.Errorf("line %q has kind %q with a mismatched variant", l.Name, l.Kind)
	}
	return nil
}

// MergeKey identifies lines that are merged on add: name, size and flavors.
// The size of a drink line is its volume.
type MergeKey struct {
	Name    string
	Size    string
	Flavor1 string
	Flavor2 string
}

// MergeKey returns the identity used to merge equal lines.
func (l CartLine) MergeKey() MergeKey {
	k := MergeKey{Name: l.Name}
	switch {
	case l.Pizza != nil:
		k.Size = string(l.Pizza.Size)
		k.Flavor1 = l.Pizza.Flavor1
		k.Flavor2 = l.Pizza.Flavor2
	case l.Pastry != nil:
		k.Size = string(l.Pastry.Size)
	case l.Drink != nil:
		k.Size = l.Drink.Volume
	}
	return k
}

// Subtotal is unit price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Clone returns a deep copy of the line.
func (l CartLine) Clone() CartLine {
	out := l
	if l.Pizza != nil {
		p := *l.Pizza
		out.Pizza = &p
	}
	if l.Pastry != nil {
		p := *l.Pastry
		p.Ingredients = append([]string(nil), l.Pastry.Ingredients...)
		out.Pastry = &p
	}
	if l.Drink != nil {
		d := *l.Drink
		out.Drink = &d
	}
	if l.Combo != nil {
		c := *l.Combo
		c.Items = append([]string(nil), l.Combo.Items...)
		out.Combo = &c
	}
	return out
}
