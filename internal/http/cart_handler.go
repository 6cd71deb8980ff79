package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/service"
)

func cartResponse(s *service.Session) dto.CartResponse {
	return dto.CartResponse{
		SessionID: s.ID,
		Lines:     s.Cart.Lines(),
		ItemCount: s.Cart.ItemCount(),
		Total:     s.Cart.TotalPrice(),
	}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Session cart
// @Description  Returns the cart of the session named by X-Session-ID. A new session is created when the header is missing or unknown; its id is echoed in the X-Session-ID response header.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart [get]
func (h *Handler) GetCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(cartResponse(s))
}

// AddMenuItem handles POST /api/cart/items requests.
//
// @Summary      Add a menu item to the cart
// @Description  Adds a catalog entry to the session cart. Pizzas and calzones default to size M. Lines with the same name, size and flavors are merged.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Param        request body dto.AddMenuItemRequest true "Menu entry"
// @Success      201 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Unknown category or item"
// @Failure      409 {object} dto.ErrorResponse "Item unavailable"
// @Router       /api/cart/items [post]
func (h *Handler) AddMenuItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.AddMenuItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	category, ok := model.ParseCategory(req.Category)
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyUnknownCategory, nil)
		return
	}

	line, err := service.LineFromMenu(h.catalog, service.MenuSelection{
		Category: category,
		Key:      req.Key,
		Size:     model.PizzaSize(req.Size),
		Quantity: req.Quantity,
	})
	if err != nil {
		builder.DomainError(err)
		return
	}

	if _, err := s.Cart.Add(line); err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessCreated(cartResponse(s))
}

// AddPizza handles POST /api/cart/pizzas requests.
//
// @Summary      Add a custom pizza to the cart
// @Description  Builds a pizza from the configurator selection and adds it to the session cart. A half pizza needs two flavors.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Param        request body dto.PizzaRequest true "Pizza configuration"
// @Success      201 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid option"
// @Failure      404 {object} dto.ErrorResponse "Unknown flavor"
// @Failure      409 {object} dto.ErrorResponse "Flavor unavailable"
// @Router       /api/cart/pizzas [post]
func (h *Handler) AddPizza(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	configurator, ok := h.configure(c)
	if !ok {
		return
	}

	line, err := configurator.Build()
	if err != nil {
		builder.DomainError(err)
		return
	}

	if _, err := s.Cart.Add(line); err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessCreated(cartResponse(s))
}

// UpdateCartItem handles PATCH /api/cart/items/:id requests.
//
// @Summary      Change a cart line quantity
// @Description  Sets the quantity of a cart line. A quantity of zero or less removes the line.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Param        id path string true "Cart line id"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Line not found"
// @Router       /api/cart/items/{id} [patch]
func (h *Handler) UpdateCartItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.UpdateQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if !s.Cart.UpdateQuantity(c.Param("id"), *req.Quantity) {
		builder.Error(http.StatusNotFound, i18n.ErrKeyItemNotFound, nil)
		return
	}

	builder.SuccessOK(cartResponse(s))
}

// RemoveCartItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove a cart line
// @Description  Removes a line from the session cart. Removing an unknown line is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Param        id path string true "Cart line id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart/items/{id} [delete]
func (h *Handler) RemoveCartItem(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.Remove(c.Param("id"))
	NewResponseBuilder(c).SuccessOK(cartResponse(s))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Empty the cart
// @Tags         Cart
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	s.Cart.Clear()
	NewResponseBuilder(c).SuccessOK(cartResponse(s))
}
