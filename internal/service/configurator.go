package service

import (
	"fmt"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

// PizzaConfig is the configurator state.
type PizzaConfig struct {
	Size     model.PizzaSize `json:"size" example:"M"`
	Division model.Division  `json:"division" example:"inteira"`
	Flavor1  string          `json:"flavor1" example:"margherita"`
	Flavor2  string          `json:"flavor2,omitempty" example:"calabresa"`
	Crust    model.Crust     `json:"crust" example:"tradicional"`
	Quantity int             `json:"quantity" example:"1"`
}

// DefaultPizzaConfig is the state the configurator starts in and resets to.
func DefaultPizzaConfig() PizzaConfig {
	return PizzaConfig{
		Size:     model.SizeMedium,
		Division: model.DivisionWhole,
		Flavor1:  "margherita",
		Crust:    model.CrustTraditional,
		Quantity: 1,
	}
}

// PizzaQuote is the price of the current configuration.
type PizzaQuote struct {
	Size      model.SizeInfo `json:"size"`
	UnitPrice float64        `json:"unit_price" example:"35"`
	Quantity  int            `json:"quantity" example:"2"`
	Total     float64        `json:"total" example:"70"`
}

// PizzaConfigurator builds custom pizza lines. Flavors come from the
// traditional pizza section of the catalog; price depends on size only.
type PizzaConfigurator struct {
	catalog CatalogService
	state   PizzaConfig
}

// NewPizzaConfigurator creates a configurator in its default state.
func NewPizzaConfigurator(catalog CatalogService) *PizzaConfigurator {
	return &PizzaConfigurator{catalog: catalog, state: DefaultPizzaConfig()}
}

// State returns the current configuration.
func (p *PizzaConfigurator) State() PizzaConfig {
	return p.state
}

// SelectSize sets the pizza size.
func (p *PizzaConfigurator) SelectSize(size model.PizzaSize) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	p.state.Size = size
	return nil
}

// SelectDivision sets whole or half. Choosing whole clears the second flavor.
func (p *PizzaConfigurator) SelectDivision(division model.Division) error {
	if !division.Valid() {
		return fmt.Errorf("%w: division %q", ErrInvalidOption, division)
	}
	p.state.Division = division
	if division == model.DivisionWhole {
		p.state.Flavor2 = ""
	}
	return nil
}

// SelectFlavor1 sets the main flavor.
func (p *PizzaConfigurator) SelectFlavor1(key string) error {
	if _, err := p.flavor(key); err != nil {
		return err
	}
	p.state.Flavor1 = key
	return nil
}

// SelectFlavor2 sets the second half flavor. It is ignored for whole pizzas.
func (p *PizzaConfigurator) SelectFlavor2(key string) error {
	if p.state.Division != model.DivisionHalf {
		return nil
	}
	if _, err := p.flavor(key); err != nil {
		return err
	}
	p.state.Flavor2 = key
	return nil
}

// SelectCrust sets the crust option.
func (p *PizzaConfigurator) SelectCrust(crust model.Crust) error {
	if !crust.Valid() {
		return fmt.Errorf("%w: crust %q", ErrInvalidOption, crust)
	}
	p.state.Crust = crust
	return nil
}

// SetQuantity sets the quantity, never below one.
func (p *PizzaConfigurator) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	p.state.Quantity = quantity
}

// Apply runs the selections of cfg in order. Empty fields keep the current
// value.
func (p *PizzaConfigurator) Apply(cfg PizzaConfig) error {
	if cfg.Size != "" {
		if err := p.SelectSize(cfg.Size); err != nil {
			return err
		}
	}
	if cfg.Division != "" {
		if err := p.SelectDivision(cfg.Division); err != nil {
			return err
		}
	}
	if cfg.Flavor1 != "" {
		if err := p.SelectFlavor1(cfg.Flavor1); err != nil {
			return err
		}
	}
	if cfg.Flavor2 != "" {
		if err := p.SelectFlavor2(cfg.Flavor2); err != nil {
			return err
		}
	}
	if cfg.Crust != "" {
		if err := p.SelectCrust(cfg.Crust); err != nil {
			return err
		}
	}
	if cfg.Quantity != 0 {
		p.SetQuantity(cfg.Quantity)
	}
	return nil
}

// Quote prices the current configuration from the size table.
func (p *PizzaConfigurator) Quote() PizzaQuote {
	info, _ := p.state.Size.Info()
	return PizzaQuote{
		Size:      info,
		UnitPrice: info.Price,
		Quantity:  p.state.Quantity,
		Total:     info.Price * float64(p.state.Quantity),
	}
}

// Build returns the cart line for the current configuration and resets the
// configurator. A half pizza needs both flavors.
func (p *PizzaConfigurator) Build() (model.CartLine, error) {
	first, err := p.flavor(p.state.Flavor1)
	if err != nil {
		return model.CartLine{}, err
	}

	details := &model.PizzaDetails{
		Size:        p.state.Size,
		Division:    p.state.Division,
		Flavor1:     first.Key,
		Flavor1Name: first.Name,
		Crust:       p.state.Crust,
	}
	if p.state.Division == model.DivisionHalf {
		if p.state.Flavor2 == "" {
			return model.CartLine{}, fmt.Errorf("%w: half pizza needs a second flavor", ErrInvalidOption)
		}
		second, err := p.flavor(p.state.Flavor2)
		if err != nil {
			return model.CartLine{}, err
		}
		details.Flavor2 = second.Key
		details.Flavor2Name = second.Name
	}

	info, _ := p.state.Size.Info()
	details.Slices = info.Slices

	line := model.CartLine{
		Kind:      model.LineKindPizza,
		Category:  model.CategoryTraditionalPizzas,
		Name:      "Pizza " + info.Name,
		UnitPrice: info.Price,
		Quantity:  p.state.Quantity,
		Pizza:     details,
	}
	p.Reset()
	return line, nil
}

// Reset restores the default configuration.
func (p *PizzaConfigurator) Reset() {
	p.state = DefaultPizzaConfig()
}

func (p *PizzaConfigurator) flavor(key string) (model.CatalogEntry, error) {
	entry, err := p.catalog.Get(model.CategoryTraditionalPizzas, key)
	if err != nil {
		return model.CatalogEntry{}, fmt.Errorf("flavor %q: %w", key, err)
	}
	if !entry.Available {
		return model.CatalogEntry{}, fmt.Errorf("%w: flavor %q", ErrItemUnavailable, key)
	}
	return entry, nil
}

// ConfiguratorOptions lists what the configurator can offer right now.
type ConfiguratorOptions struct {
	Sizes     []model.SizeInfo     `json:"sizes"`
	Divisions []model.Division     `json:"divisions"`
	Crusts    []model.Crust        `json:"crusts"`
	Flavors   []model.CatalogEntry `json:"flavors"`
	Defaults  PizzaConfig          `json:"defaults"`
}

// Options returns sizes, crusts and available flavors.
func (p *PizzaConfigurator) Options() ConfiguratorOptions {
	entries, _ := p.catalog.List(model.CategoryTraditionalPizzas)
	flavors := make([]model.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Available {
			flavors = append(flavors, e)
		}
	}
	return ConfiguratorOptions{
		Sizes:     model.SizeTable(),
		Divisions: []model.Division{model.DivisionWhole, model.DivisionHalf},
		Crusts:    append([]model.Crust(nil), model.Crusts...),
		Flavors:   flavors,
		Defaults:  DefaultPizzaConfig(),
	}
}
