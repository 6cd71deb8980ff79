//go:build !integration

package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	srv := newTestServer(t)

	registered := make(map[string]bool)
	for _, r := range srv.router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /api/info",
		"GET /api/menu",
		"GET /api/menu/:category",
		"GET /api/cart",
		"DELETE /api/cart",
		"POST /api/cart/items",
		"POST /api/cart/pizzas",
		"PATCH /api/cart/items/:id",
		"DELETE /api/cart/items/:id",
		"GET /api/configurator/options",
		"POST /api/configurator/quote",
		"GET /api/checkout",
		"PUT /api/checkout",
		"POST /api/checkout/next",
		"POST /api/checkout/back",
		"POST /api/checkout/submit",
		"GET /api/tracker/preview",
		"GET /api/tracker/ws",
		"POST /api/admin/login",
		"GET /api/admin/dashboard",
		"GET /api/admin/info",
		"PATCH /api/admin/info",
		"GET /api/admin/menu/:category",
		"POST /api/admin/menu/:category",
		"PATCH /api/admin/menu/:category/:key",
		"DELETE /api/admin/menu/:category/:key",
		"POST /api/admin/menu/:category/:key/toggle",
		"GET /healthz",
		"GET /readyz",
		"GET /metrics",
	}

	for _, route := range expected {
		assert.True(t, registered[route], "route %s is not registered", route)
	}
}

func TestAdminHandler_RegisterRoutes_WithoutConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := newTestServer(t)

	router := gin.New()
	admin := NewAdminHandler(nil, srv.catalog)
	admin.RegisterRoutes(router.Group("/api"), nil)

	paths := make(map[string]string)
	for _, r := range router.Routes() {
		paths[r.Path] = r.Method
	}
	assert.Equal(t, http.MethodPost, paths["/api/admin/login"])
	assert.Contains(t, paths, "/api/admin/menu/:category/:key/toggle")
}
