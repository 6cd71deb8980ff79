package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ RouteGroup = (*Handler)(nil)
	_ RouteGroup = (*TrackerHandler)(nil)
	_ RouteGroup = (*AdminHandler)(nil)
)

// RegisterRoutes registers the customer routes: menu, cart, configurator and
// checkout. The group must carry the Session middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/info", h.GetInfo)
	rg.GET("/menu", h.GetMenu)
	rg.GET("/menu/:category", h.GetMenuCategory)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddMenuItem)
		cart.POST("/pizzas", h.AddPizza)
		cart.PATCH("/items/:id", h.UpdateCartItem)
		cart.DELETE("/items/:id", h.RemoveCartItem)
	}

	configurator := rg.Group("/configurator")
	{
		configurator.GET("/options", h.GetConfiguratorOptions)
		configurator.POST("/quote", h.QuotePizza)
	}

	checkout := rg.Group("/checkout")
	{
		checkout.GET("", h.GetCheckout)
		checkout.PUT("", h.UpdateCheckout)
		checkout.POST("/next", h.NextCheckoutStep)
		checkout.POST("/back", h.PreviousCheckoutStep)

		submit := []gin.HandlerFunc{}
		if cfg != nil && cfg.idempotency != nil {
			submit = append(submit, middleware.Idempotency(*cfg.idempotency))
		}
		submit = append(submit, h.SubmitCheckout)
		checkout.POST("/submit", submit...)
	}
}

// RegisterRoutes registers the delivery tracker routes.
func (h *TrackerHandler) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	tracker := rg.Group("/tracker")
	tracker.GET("/preview", h.Preview)
	tracker.GET("/ws", h.Stream)
}

// RegisterRoutes registers the admin panel routes. Login is public; the rest
// requires an admin bearer token.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	admin := rg.Group("/admin")
	if cfg != nil && cfg.limiter != nil {
		admin.POST("/login", cfg.limiter.RateLimit(), h.Login)
	} else {
		admin.POST("/login", h.Login)
	}

	protected := admin.Group("", middleware.AdminAuth(h.adminService))
	if cfg != nil && cfg.limiter != nil {
		protected.Use(cfg.limiter.SessionRateLimit())
	}
	{
		protected.GET("/dashboard", h.Dashboard)
		protected.GET("/activity", h.Activity)
		protected.GET("/info", h.GetInfo)
		protected.PATCH("/info", h.UpdateInfo)

		menu := protected.Group("/menu/:category")
		menu.GET("", h.ListCategory)
		menu.POST("", h.AddEntry)
		menu.PATCH("/:key", h.UpdateEntry)
		menu.DELETE("/:key", h.RemoveEntry)
		menu.POST("/:key/toggle", h.ToggleEntry)
	}
}
