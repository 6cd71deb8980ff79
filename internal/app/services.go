// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalog    *service.CatalogStore
	Dispatcher *service.OrderDispatchService
	Sessions   *service.SessionRegistry
	Tracker    *service.DeliveryTracker
	Admin      *service.AdminAuthService
}

// InitializeServices initializes business logic services over the seeded
// catalog. Every dispatched order is passed to notifiers.
func InitializeServices(cfg config.Config, notifiers ...service.OrderNotifier) (*ServiceComponents, error) {
	admin, err := service.NewAdminAuthServiceFromConfig(cfg.Admin)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize admin credentials: %w", err)
	}

	catalog := service.NewDefaultCatalogStore()
	dispatcher := service.NewOrderDispatchService(catalog, cfg.Checkout, notifiers...)

	return &ServiceComponents{
		Catalog:    catalog,
		Dispatcher: dispatcher,
		Sessions:   service.NewSessionRegistry(catalog, dispatcher, cfg.Session),
		Tracker:    service.NewDeliveryTracker(cfg.Tracker, dispatcher),
		Admin:      admin,
	}, nil
}

// Stop releases the session and order caches.
func (s *ServiceComponents) Stop() {
	if s == nil {
		return
	}
	s.Sessions.Stop()
	s.Dispatcher.Stop()
}
