package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// configure binds a PizzaRequest and applies it to a fresh configurator.
// It writes the error response and returns false on failure.
func (h *Handler) configure(c *gin.Context) (*service.PizzaConfigurator, bool) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.PizzaRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}

	configurator := service.NewPizzaConfigurator(h.catalog)
	err = configurator.Apply(service.PizzaConfig{
		Size:     model.PizzaSize(req.Size),
		Division: model.Division(req.Division),
		Flavor1:  req.Flavor1,
		Flavor2:  req.Flavor2,
		Crust:    model.Crust(req.Crust),
		Quantity: req.Quantity,
	})
	if err != nil {
		builder.DomainError(err)
		return nil, false
	}

	return configurator, true
}

// GetConfiguratorOptions handles GET /api/configurator/options requests.
//
// @Summary      Configurator options
// @Description  Lists pizza sizes with price and slices, divisions, crusts, the currently available flavors and the default selection.
// @Tags         Configurator
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=service.ConfiguratorOptions}
// @Router       /api/configurator/options [get]
func (h *Handler) GetConfiguratorOptions(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(service.NewPizzaConfigurator(h.catalog).Options())
}

// QuotePizza handles POST /api/configurator/quote requests.
//
// @Summary      Price a pizza
// @Description  Validates a configurator selection and prices it. The price depends on size and quantity only.
// @Tags         Configurator
// @Accept       json
// @Produce      json
// @Param        request body dto.PizzaRequest true "Pizza configuration"
// @Success      200 {object} dto.SuccessResponse "Normalized configuration and its quote"
// @Failure      400 {object} dto.ErrorResponse "Invalid option"
// @Failure      404 {object} dto.ErrorResponse "Unknown flavor"
// @Failure      409 {object} dto.ErrorResponse "Flavor unavailable"
// @Router       /api/configurator/quote [post]
func (h *Handler) QuotePizza(c *gin.Context) {
	configurator, ok := h.configure(c)
	if !ok {
		return
	}

	NewResponseBuilder(c).SuccessOK(gin.H{
		"config": configurator.State(),
		"quote":  configurator.Quote(),
	})
}
