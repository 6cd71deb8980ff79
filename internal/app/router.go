// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/http"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handlers http.Handlers
	Config   http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// dbComponents and brokerComponents may be nil.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	brokerComponents *BrokerComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	var handlerOpts []http.HandlerOption
	if cfg.Server.MenuCacheTTL > 0 {
		handlerOpts = append(handlerOpts, http.WithMenuCacheTTL(cfg.Server.MenuCacheTTL))
	}

	healthHandler := http.NewHealthHandler()

	// Register dependencies and circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}
	if brokerComponents != nil && brokerComponents.Publisher != nil {
		publisher := brokerComponents.Publisher
		healthHandler.RegisterChecker("broker", http.HealthCheckFunc(func(context.Context) error {
			return publisher.Ping()
		}))
		healthHandler.RegisterCircuitBreaker("broker", publisher.CircuitBreaker())
	}

	routerCfg := http.DefaultRouterConfig()
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimit = cfg.Server.RateLimit
	}
	if cfg.Server.RateWindow > 0 {
		routerCfg.RateWindow = cfg.Server.RateWindow
	}
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.LoggingService = loggingService
	routerCfg.Sessions = services.Sessions

	return &RouterComponents{
		Handlers: http.Handlers{
			Menu:    http.NewHandler(services.Catalog, handlerOpts...),
			Tracker: http.NewTrackerHandler(services.Tracker, cfg.Server.CORSOrigins),
			Admin:   http.NewAdminHandler(services.Admin, services.Catalog),
			Health:  healthHandler,
		},
		Config: routerCfg,
	}
}

// Close detaches the menu handler from the catalog.
func (r *RouterComponents) Close() {
	if r == nil || r.Handlers.Menu == nil {
		return
	}
	r.Handlers.Menu.Close()
}
