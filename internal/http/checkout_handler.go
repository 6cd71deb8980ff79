package http

import (
	"encoding/base64"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
)

// trackerPath is where submitted orders can be followed.
const trackerPath = "/api/tracker/ws"

// checkoutSubmitPath runs without the request timeout: the submit delay
// cannot be interrupted once the order is handed to the dispatcher.
const checkoutSubmitPath = "/api/checkout/submit"

// GetCheckout handles GET /api/checkout requests.
//
// @Summary      Checkout state
// @Description  Returns the current step, order type and form data of the session checkout.
// @Tags         Checkout
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Success      200 {object} dto.SuccessResponse{data=service.CheckoutState}
// @Router       /api/checkout [get]
func (h *Handler) GetCheckout(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(s.Checkout.State())
}

// UpdateCheckout handles PUT /api/checkout requests.
//
// @Summary      Fill the checkout form
// @Description  Replaces the form data and optionally switches between table (mesa) and delivery (entrega). Switching to table service from the address step returns to the first step. Phone and postal code are reformatted.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Param        request body dto.UpdateCheckoutRequest true "Form data"
// @Success      200 {object} dto.SuccessResponse{data=service.CheckoutState}
// @Failure      400 {object} dto.ErrorResponse "Invalid order type"
// @Router       /api/checkout [put]
func (h *Handler) UpdateCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.UpdateCheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if req.OrderType != "" && req.OrderType != s.Checkout.State().OrderType {
		if _, err := s.Checkout.SetOrderType(req.OrderType); err != nil {
			builder.DomainError(err)
			return
		}
	}

	builder.SuccessOK(s.Checkout.Update(req.Customer))
}

// NextCheckoutStep handles POST /api/checkout/next requests.
//
// @Summary      Advance the checkout
// @Description  Validates the current step and moves forward. Table orders skip the address step. On the last step this is a no-op.
// @Tags         Checkout
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Success      200 {object} dto.SuccessResponse{data=service.CheckoutState}
// @Failure      422 {object} dto.ErrorResponse "Field errors in details"
// @Router       /api/checkout/next [post]
func (h *Handler) NextCheckoutStep(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	state, err := s.Checkout.Next()
	if err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessOK(state)
}

// PreviousCheckoutStep handles POST /api/checkout/back requests.
//
// @Summary      Go back one checkout step
// @Tags         Checkout
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Success      200 {object} dto.SuccessResponse{data=service.CheckoutState}
// @Router       /api/checkout/back [post]
func (h *Handler) PreviousCheckoutStep(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	NewResponseBuilder(c).SuccessOK(s.Checkout.Back())
}

// SubmitCheckout handles POST /api/checkout/submit requests.
//
// @Summary      Submit the order
// @Description  Re-validates the form, builds the order summary and the messaging deep link, then clears the cart and resets the form. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Produce      json
// @Param        X-Session-ID header string false "Customer session id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      201 {object} dto.SuccessResponse{data=dto.OrderSubmittedResponse}
// @Failure      409 {object} dto.ErrorResponse "Empty cart, not on the final step or already submitting"
// @Failure      422 {object} dto.ErrorResponse "Field errors in details"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/checkout/submit [post]
func (h *Handler) SubmitCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s, ok := h.session(c)
	if !ok {
		return
	}

	result, err := s.Checkout.Submit(c.Request.Context())
	if err != nil {
		auditError(c, model.ActionCheckoutSubmit, "Checkout submission rejected", err, nil)
		builder.DomainError(err)
		return
	}

	order := result.Order
	audit(c, model.ActionCheckoutSubmit, "Checkout submitted", map[string]interface{}{
		"order_id":   order.ID,
		"order_type": string(order.Type),
		"total":      order.Total,
		"lines":      len(order.Lines),
	})

	resp := dto.OrderSubmittedResponse{
		Message:    i18n.GetTranslator().Translate(i18n.SuccessKeyOrderSent, i18n.GetLocale(c)),
		Order:      order,
		Link:       order.Link,
		TrackerURL: trackerPath + "?order_id=" + url.QueryEscape(order.ID),
	}
	if len(result.QRCode) > 0 {
		resp.QRCode = base64.StdEncoding.EncodeToString(result.QRCode)
	}

	builder.SuccessCreated(resp)
}
