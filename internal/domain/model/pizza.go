package model

// PizzaSize is one of the three pizza sizes.
type PizzaSize string

const (
	SizeSmall  PizzaSize = "P"
	SizeMedium PizzaSize = "M"
	SizeLarge  PizzaSize = "G"
)

// PizzaSizes lists the sizes from smallest to largest.
var PizzaSizes = []PizzaSize{SizeSmall, SizeMedium, SizeLarge}

// SizeInfo describes a pizza size as sold by the configurator.
type SizeInfo struct {
	Size   PizzaSize `json:"size" example:"M"`
	Name   string    `json:"name" example:"Média"`
	Slices int       `json:"slices" example:"8"`
	Price  float64   `json:"price" example:"35"`
}

var sizeTable = map[PizzaSize]SizeInfo{
	SizeSmall:  {Size: SizeSmall, Name: "Pequena", Slices: 6, Price: 25},
	SizeMedium: {Size: SizeMedium, Name: "Média", Slices: 8, Price: 35},
	SizeLarge:  {Size: SizeLarge, Name: "Grande", Slices: 10, Price: 45},
}

// Info returns the static size table entry.
func (s PizzaSize) Info() (SizeInfo, bool) {
	info, ok := sizeTable[s]
	return info, ok
}

// Valid reports whether s is a known size.
func (s PizzaSize) Valid() bool {
	_, ok := sizeTable[s]
	return ok
}

// SizeTable returns the size table in display order.
func SizeTable() []SizeInfo {
	out := make([]SizeInfo, 0, len(PizzaSizes))
	for _, s := range PizzaSizes {
		out = append(out, sizeTable[s])
	}
	return out
}

// Division tells whether a pizza has one flavor or two halves.
type Division string

const (
	DivisionWhole Division = "inteira"
	DivisionHalf  Division = "metade"
)

// Valid reports whether d is a known division.
func (d Division) Valid() bool {
	return d == DivisionWhole || d == DivisionHalf
}

// Crust is the pizza dough option. It does not change the price.
type Crust string

const (
	CrustTraditional Crust = "tradicional"
	CrustWholeWheat  Crust = "integral"
	CrustStuffed     Crust = "borda-recheada"
)

// Crusts lists the crust options in display order.
var Crusts = []Crust{CrustTraditional, CrustWholeWheat, CrustStuffed}

// Valid reports whether c is a known crust.
func (c Crust) Valid() bool {
	for _, known := range Crusts {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the display name of the crust.
func (c Crust) Label() string {
	switch c {
	case CrustTraditional:
		return "Tradicional"
	case CrustWholeWheat:
		return "Integral"
	case CrustStuffed:
		return "Borda Recheada"
	}
	return string(c)
}
