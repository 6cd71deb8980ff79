package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/i18n"
)

// GetInfo handles GET /api/info requests.
//
// @Summary      Pizzeria info
// @Description  Returns the restaurant name, contact data, opening hours and delivery settings.
// @Tags         Menu
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.PizzeriaInfo}
// @Router       /api/info [get]
func (h *Handler) GetInfo(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalog.Info())
}

// GetMenu handles GET /api/menu requests.
//
// @Summary      Full menu
// @Description  Returns every menu section in display order. Unavailable items are listed with available=false. The response carries a weak ETag derived from the catalog version; a matching If-None-Match returns 304.
// @Tags         Menu
// @Produce      json
// @Param        If-None-Match header string false "ETag of a previously fetched menu"
// @Success      200 {object} dto.SuccessResponse{data=[]service.CategoryMenu}
// @Success      304 "Menu unchanged"
// @Router       /api/menu [get]
func (h *Handler) GetMenu(c *gin.Context) {
	snap := h.menu()

	c.Header("ETag", snap.etag)
	c.Header("Cache-Control", "no-cache")
	if match := c.GetHeader("If-None-Match"); match != "" && match == snap.etag {
		c.Status(http.StatusNotModified)
		return
	}

	NewResponseBuilder(c).SuccessOK(snap.menu)
}

// GetMenuCategory handles GET /api/menu/:category requests.
//
// @Summary      Menu section
// @Description  Returns the entries of one menu category in display order.
// @Tags         Menu
// @Produce      json
// @Param        category path string true "Category" Enums(pizzas_tradicionais, pizzas_doces, pasteis_assados, pasteis_premium, calzones, bebidas, combos)
// @Success      200 {object} dto.SuccessResponse{data=[]model.CatalogEntry}
// @Failure      404 {object} dto.ErrorResponse "Unknown category"
// @Router       /api/menu/{category} [get]
func (h *Handler) GetMenuCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	category, ok := model.ParseCategory(c.Param("category"))
	if !ok {
		builder.Error(http.StatusNotFound, i18n.ErrKeyUnknownCategory, nil)
		return
	}

	entries, err := h.catalog.List(category)
	if err != nil {
		builder.DomainError(err)
		return
	}

	builder.SuccessOK(entries)
}
