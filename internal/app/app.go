// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/http"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// App is the wired router plus the resources released on shutdown.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	broker   *BrokerComponents
	router   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Optional sinks: both return nil when disabled or unreachable
	dbComponents := InitializeDatabase(cfg.Database)
	brokerComponents := InitializeBroker(cfg.Broker, cfg.Database)

	var notifiers []service.OrderNotifier
	if dbComponents != nil {
		notifiers = append(notifiers, service.NewAuditNotifier(dbComponents.LoggingService))
	}
	if brokerComponents != nil {
		notifiers = append(notifiers, brokerComponents.Publisher)
	}

	serviceComponents, err := InitializeServices(cfg, notifiers...)
	if err != nil {
		dbComponents.Close()
		brokerComponents.Close()
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, brokerComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handlers, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
		broker:   brokerComponents,
		router:   routerComponents,
	}, nil
}

// Close stops background workers and closes external connections.
func (a *App) Close() {
	a.router.Close()
	a.services.Stop()
	a.broker.Close()
	a.database.Close()
}
