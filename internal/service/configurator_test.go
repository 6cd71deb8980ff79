//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

func TestPizzaConfigurator_Defaults(t *testing.T) {
	p := NewPizzaConfigurator(NewDefaultCatalogStore())

	assert.Equal(t, DefaultPizzaConfig(), p.State())

	quote := p.Quote()
	assert.Equal(t, 35.0, quote.UnitPrice)
	assert.Equal(t, 8, quote.Size.Slices)
	assert.Equal(t, 35.0, quote.Total)
}

func TestPizzaConfigurator_Quote(t *testing.T) {
	tests := []struct {
		name          string
		cfg           PizzaConfig
		expectedUnit  float64
		expectedTotal float64
	}{
		{"small", PizzaConfig{Size: model.SizeSmall}, 25, 25},
		{"large times two", PizzaConfig{Size: model.SizeLarge, Quantity: 2}, 45, 90},
		{"crust does not change price", PizzaConfig{Size: model.SizeMedium, Crust: model.CrustStuffed}, 35, 35},
		{"flavors do not change price", PizzaConfig{Division: model.DivisionHalf, Flavor1: "quatroQueijos", Flavor2: "pepperoni"}, 35, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPizzaConfigurator(NewDefaultCatalogStore())
			require.NoError(t, p.Apply(tt.cfg))

			quote := p.Quote()
			assert.Equal(t, tt.expectedUnit, quote.UnitPrice)
			assert.Equal(t, tt.expectedTotal, quote.Total)
		})
	}
}

func TestPizzaConfigurator_Selections(t *testing.T) {
	p := NewPizzaConfigurator(NewDefaultCatalogStore())

	assert.ErrorIs(t, p.SelectSize("XL"), ErrInvalidSize)
	assert.ErrorIs(t, p.SelectDivision("terço"), ErrInvalidOption)
	assert.ErrorIs(t, p.SelectCrust("pan"), ErrInvalidOption)
	assert.ErrorIs(t, p.SelectFlavor1("abacaxi"), ErrItemNotFound)
	assert.ErrorIs(t, p.SelectFlavor1("chocolate"), ErrItemNotFound, "sweet pizzas are not pizza flavors")

	require.NoError(t, p.SelectFlavor2("calabresa"))
	assert.Empty(t, p.State().Flavor2, "second flavor is ignored on whole pizzas")

	require.NoError(t, p.SelectDivision(model.DivisionHalf))
	require.NoError(t, p.SelectFlavor2("calabresa"))
	assert.Equal(t, "calabresa", p.State().Flavor2)

	require.NoError(t, p.SelectDivision(model.DivisionWhole))
	assert.Empty(t, p.State().Flavor2)

	p.SetQuantity(0)
	assert.Equal(t, 1, p.State().Quantity)
	p.SetQuantity(3)
	assert.Equal(t, 3, p.State().Quantity)
}

func TestPizzaConfigurator_UnavailableFlavor(t *testing.T) {
	catalog := NewDefaultCatalogStore()
	_, err := catalog.ToggleAvailability(model.CategoryTraditionalPizzas, "pepperoni")
	require.NoError(t, err)
	p := NewPizzaConfigurator(catalog)

	assert.ErrorIs(t, p.SelectFlavor1("pepperoni"), ErrItemUnavailable)

	for _, f := range p.Options().Flavors {
		assert.NotEqual(t, "pepperoni", f.Key)
	}
}

func TestPizzaConfigurator_Build(t *testing.T) {
	tests := []struct {
		name           string
		cfg            PizzaConfig
		expectedName   string
		expectedPrice  float64
		expectedSlices int
		expectedFlavor string
		expectedSecond string
	}{
		{
			name:           "default whole pizza",
			cfg:            PizzaConfig{},
			expectedName:   "Pizza Média",
			expectedPrice:  35,
			expectedSlices: 8,
			expectedFlavor: "Margherita",
		},
		{
			name:           "large half and half",
			cfg:            PizzaConfig{Size: model.SizeLarge, Division: model.DivisionHalf, Flavor1: "calabresa", Flavor2: "portuguesa", Quantity: 2},
			expectedName:   "Pizza Grande",
			expectedPrice:  45,
			expectedSlices: 10,
			expectedFlavor: "Calabresa",
			expectedSecond: "Portuguesa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPizzaConfigurator(NewDefaultCatalogStore())
			require.NoError(t, p.Apply(tt.cfg))

			line, err := p.Build()
			require.NoError(t, err)
			require.NoError(t, line.Validate())

			assert.Equal(t, model.LineKindPizza, line.Kind)
			assert.Equal(t, tt.expectedName, line.Name)
			assert.Equal(t, tt.expectedPrice, line.UnitPrice)
			assert.Equal(t, tt.expectedSlices, line.Pizza.Slices)
			assert.Equal(t, tt.expectedFlavor, line.Pizza.Flavor1Name)
			assert.Equal(t, tt.expectedSecond, line.Pizza.Flavor2Name)
			assert.Equal(t, DefaultPizzaConfig(), p.State(), "build resets the configurator")
		})
	}
}

func TestPizzaConfigurator_Build_HalfNeedsSecondFlavor(t *testing.T) {
	p := NewPizzaConfigurator(NewDefaultCatalogStore())
	require.NoError(t, p.SelectDivision(model.DivisionHalf))

	_, err := p.Build()

	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, model.DivisionHalf, p.State().Division, "failed build keeps the state")
}

func TestPizzaConfigurator_Options(t *testing.T) {
	opts := NewPizzaConfigurator(NewDefaultCatalogStore()).Options()

	assert.Len(t, opts.Sizes, 3)
	assert.Equal(t, model.Crusts, opts.Crusts)
	assert.Len(t, opts.Flavors, 6)
	assert.Equal(t, DefaultPizzaConfig(), opts.Defaults)
}
