// Package http exposes the pizzeria service over HTTP: customer routes for the
// menu, cart, configurator and checkout, the delivery tracker websocket and
// the admin panel.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/service"
)

var errNoSession = errors.New("route mounted without the session middleware")

// menuSnapshot is a rendered menu and the catalog version it was built from.
type menuSnapshot struct {
	menu    []service.CategoryMenu
	version uint64
	etag    string
}

// menuCache keeps the last rendered menu until the catalog changes or the
// TTL expires.
type menuCache struct {
	snapshot  atomic.Value // holds *menuSnapshot
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

func newMenuCache(ttl time.Duration) *menuCache {
	c := &menuCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached snapshot, or nil if the cache is expired or empty.
func (c *menuCache) get() *menuSnapshot {
	if exp, ok := c.expiresAt.Load().(time.Time); ok && time.Now().Before(exp) {
		if snap, ok := c.snapshot.Load().(*menuSnapshot); ok {
			return snap
		}
	}
	return nil
}

func (c *menuCache) set(snap *menuSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Keep a newer snapshot stored by another goroutine.
	if current, ok := c.snapshot.Load().(*menuSnapshot); ok && current.version > snap.version {
		if exp, ok := c.expiresAt.Load().(time.Time); ok && time.Now().Before(exp) {
			return
		}
	}

	c.snapshot.Store(snap)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

func (c *menuCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler serves the customer facing routes: pizzeria info, menu, cart,
// configurator and checkout.
type Handler struct {
	catalog     service.CatalogService
	menuCache   *menuCache
	unsubscribe func()
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMenuCacheTTL sets how long a rendered menu is reused.
func WithMenuCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.menuCache = newMenuCache(ttl)
	}
}

// NewHandler creates a Handler reading from catalog. The menu cache is
// dropped on every catalog change.
func NewHandler(catalog service.CatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalog:   catalog,
		menuCache: newMenuCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	h.unsubscribe = catalog.Subscribe(func(service.CatalogEvent) {
		h.menuCache.invalidate()
	})

	return h
}

// Close detaches the handler from the catalog.
func (h *Handler) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}
}

// menu returns the rendered menu from cache or the catalog.
func (h *Handler) menu() *menuSnapshot {
	if snap := h.menuCache.get(); snap != nil {
		return snap
	}

	menu, version := h.catalog.Menu()
	snap := &menuSnapshot{
		menu:    menu,
		version: version,
		etag:    fmt.Sprintf(`W/"menu-%d"`, version),
	}
	h.menuCache.set(snap)
	return snap
}

// session returns the session resolved by the Session middleware, writing a
// 500 when the route was mounted without it.
func (h *Handler) session(c *gin.Context) (*service.Session, bool) {
	s := middleware.GetSession(c)
	if s == nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, errNoSession)
		return nil, false
	}
	return s, true
}

// LoggingServiceKey is the context key of the audit log sink set by the router.
const LoggingServiceKey = "logging_service"

func loggingService(c *gin.Context) service.LoggingService {
	if v, exists := c.Get(LoggingServiceKey); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// audit records an audit entry when a logging service is configured.
func audit(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLog(ls, c, actionType, message, fields)
	}
}

// auditError records a failed action when a logging service is configured.
func auditError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if ls := loggingService(c); ls != nil {
		middleware.AuditLogError(ls, c, actionType, message, err, fields)
	}
}
