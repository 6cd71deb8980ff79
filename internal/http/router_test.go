//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	catalog := service.NewDefaultCatalogStore()
	dispatcher := service.NewOrderDispatchService(catalog, config.CheckoutConfig{})
	sessions := service.NewSessionRegistry(catalog, dispatcher, config.SessionConfig{})
	t.Cleanup(func() {
		sessions.Stop()
		dispatcher.Stop()
	})

	tests := []struct {
		name     string
		handlers Handlers
		cfg      RouterConfig
		path     string
		expected int
	}{
		{
			name:     "default config",
			handlers: Handlers{Menu: NewHandler(catalog), Health: NewHealthHandler()},
			cfg:      RouterConfig{RateLimit: 100, RateWindow: time.Minute, Sessions: sessions},
			path:     "/api/menu",
			expected: http.StatusOK,
		},
		{
			name:     "customer routes need a session provider",
			handlers: Handlers{Menu: NewHandler(catalog), Health: NewHealthHandler()},
			cfg:      RouterConfig{},
			path:     "/api/menu",
			expected: http.StatusNotFound,
		},
		{
			name:     "tracker only",
			handlers: Handlers{Tracker: NewTrackerHandler(service.NewDeliveryTracker(config.TrackerConfig{}, nil), nil)},
			cfg:      RouterConfig{},
			path:     "/api/tracker/preview",
			expected: http.StatusOK,
		},
		{
			name:     "admin disabled",
			handlers: Handlers{Menu: NewHandler(catalog)},
			cfg:      RouterConfig{Sessions: sessions},
			path:     "/api/admin/dashboard",
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(tt.handlers, tt.cfg)
			require.NotNil(t, router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"healthz endpoint", http.MethodGet, "/healthz", http.StatusOK},
		{"readyz endpoint", http.MethodGet, "/readyz", http.StatusOK},
		{"metrics endpoint", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger endpoint", http.MethodGet, "/swagger/index.html", http.StatusOK},
		{"menu endpoint", http.MethodGet, "/api/menu", http.StatusOK},
		{"cart endpoint", http.MethodGet, "/api/cart", http.StatusOK},
		{"checkout endpoint", http.MethodGet, "/api/checkout", http.StatusOK},
		{"configurator endpoint", http.MethodGet, "/api/configurator/options", http.StatusOK},
		{"tracker preview", http.MethodGet, "/api/tracker/preview", http.StatusOK},
		{"add item without body", http.MethodPost, "/api/cart/items", http.StatusBadRequest},
		{"admin without token", http.MethodGet, "/api/admin/dashboard", http.StatusUnauthorized},
		{"unknown route", http.MethodGet, "/api/pedidos", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, "", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Session-ID, Idempotency-Key")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	allowed := w.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, allowed, "X-Session-Id")
	assert.Contains(t, allowed, "Idempotency-Key")
}

func TestRouter_RateLimitPerSession(t *testing.T) {
	catalog := service.NewDefaultCatalogStore()
	dispatcher := service.NewOrderDispatchService(catalog, config.CheckoutConfig{})
	sessions := service.NewSessionRegistry(catalog, dispatcher, config.SessionConfig{})
	t.Cleanup(func() {
		sessions.Stop()
		dispatcher.Stop()
	})

	router := NewRouter(Handlers{Menu: NewHandler(catalog)}, RouterConfig{
		RateLimit:  2,
		RateWindow: time.Minute,
		Sessions:   sessions,
	})

	send := func(sessionID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		if sessionID != "" {
			req.Header.Set(middleware.SessionIDHeader, sessionID)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send("")
	sid := first.Header().Get(middleware.SessionIDHeader)
	require.NotEmpty(t, sid)

	assert.Equal(t, http.StatusOK, send(sid).Code)
	assert.Equal(t, http.StatusTooManyRequests, send(sid).Code)
	assert.Equal(t, http.StatusOK, send("").Code, "another session has its own budget")
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	router := NewRouter(Handlers{}, RouterConfig{SwaggerUser: "docs", SwaggerPass: "secret"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_LoggingServiceInContext(t *testing.T) {
	router := NewRouter(Handlers{}, RouterConfig{})
	router.GET("/probe", func(c *gin.Context) {
		_, exists := c.Get(LoggingServiceKey)
		assert.True(t, exists)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
