// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"time"

	"github.com/guttosm/pizzeria-service/internal/domain/model"
)

// AddMenuItemRequest adds a menu entry to the cart.
//
// Size applies to pizzas and calzones only and defaults to M.
//
// @Description Menu entry to add to the cart
// @Example {"category": "bebidas", "key": "cocaCola", "quantity": 2}
type AddMenuItemRequest struct {
	Category string `json:"category" binding:"required" example:"bebidas"`
	Key      string `json:"key" binding:"required" example:"cocaCola"`
	Size     string `json:"size,omitempty" binding:"omitempty,oneof=P M G" example:"M"`
	Quantity int    `json:"quantity,omitempty" binding:"omitempty,min=1" example:"1"`
} // @name AddMenuItemRequest

// PizzaRequest is a configurator selection. Empty fields keep the
// configurator defaults (M, inteira, margherita, tradicional, 1).
//
// @Description Custom pizza configuration
// @Example {"size": "G", "division": "metade", "flavor1": "margherita", "flavor2": "calabresa", "crust": "borda-recheada"}
type PizzaRequest struct {
	Size     string `json:"size,omitempty" example:"G"`
	Division string `json:"division,omitempty" example:"metade"`
	Flavor1  string `json:"flavor1,omitempty" example:"margherita"`
	Flavor2  string `json:"flavor2,omitempty" example:"calabresa"`
	Crust    string `json:"crust,omitempty" example:"tradicional"`
	Quantity int    `json:"quantity,omitempty" binding:"omitempty,min=1" example:"1"`
} // @name PizzaRequest

// UpdateQuantityRequest sets the quantity of a cart line. Zero or less
// removes the line.
//
// @Description New quantity of a cart line
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"2"`
} // @name UpdateQuantityRequest

// UpdateCheckoutRequest replaces the checkout form. OrderType switches
// between table and delivery when set.
//
// @Description Checkout form data
type UpdateCheckoutRequest struct {
	OrderType model.OrderType         `json:"order_type,omitempty" example:"entrega"`
	Customer  model.CustomerOrderData `json:"customer"`
} // @name UpdateCheckoutRequest

// ActivityQuery filters the admin activity feed. Zero values match everything.
//
// @Description Activity feed filters
type ActivityQuery struct {
	Action    string     `form:"action" example:"catalog_toggle"`
	Actor     string     `form:"actor" example:"admin"`
	SessionID string     `form:"session_id"`
	Level     string     `form:"level" binding:"omitempty,oneof=debug info warn error" example:"info"`
	Since     *time.Time `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit" binding:"omitempty,min=1" example:"50"`
	Skip      int        `form:"skip" binding:"omitempty,min=0" example:"0"`
} // @name ActivityQuery

// Options converts the query to log store filters.
func (q ActivityQuery) Options() model.LogQueryOptions {
	return model.LogQueryOptions{
		SessionID:  q.SessionID,
		Actor:      q.Actor,
		ActionType: q.Action,
		Level:      q.Level,
		StartTime:  q.Since,
		Limit:      q.Limit,
		Skip:       q.Skip,
	}
}
