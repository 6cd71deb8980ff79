//go:build contract

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, map[string]interface{})
	}{
		{
			name:           "GET /api/menu - Success 200",
			method:         http.MethodGet,
			path:           "/api/menu",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				sections, ok := resp["data"].([]interface{})
				require.True(t, ok, "data must be a list of menu sections")
				require.NotEmpty(t, sections)

				section, ok := sections[0].(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, section, "category")
				assert.Contains(t, section, "label")
				assert.Contains(t, section, "items")
			},
		},
		{
			name:           "POST /api/cart/items - Success 201",
			method:         http.MethodPost,
			path:           "/api/cart/items",
			body:           `{"category":"bebidas","key":"cocaCola"}`,
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				cart, ok := resp["data"].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"session_id", "lines", "item_count", "total"} {
					assert.Contains(t, cart, field)
				}

				lines, ok := cart["lines"].([]interface{})
				require.True(t, ok)
				require.Len(t, lines, 1)
				line, ok := lines[0].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"id", "kind", "name", "unit_price", "quantity", "drink"} {
					assert.Contains(t, line, field)
				}
			},
		},
		{
			name:           "POST /api/cart/items - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/cart/items",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "invalid_request", resp["error"])
				assert.NotEmpty(t, resp["message"])
			},
		},
		{
			name:           "POST /api/checkout/next - Error 422 Validation",
			method:         http.MethodPost,
			path:           "/api/checkout/next",
			expectedStatus: http.StatusUnprocessableEntity,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "validation_failed", resp["error"])
				details, ok := resp["details"].(map[string]interface{})
				require.True(t, ok, "details must map fields to messages")
				assert.Contains(t, details, "name")
				assert.Contains(t, details, "phone")
			},
		},
		{
			name:           "GET /api/tracker/preview - Success 200",
			method:         http.MethodGet,
			path:           "/api/tracker/preview?progress=30",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				data, ok := resp["data"].(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, data, "map")
				frame, ok := data["frame"].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"progress", "phase", "title", "description", "icon", "vehicle", "done"} {
					assert.Contains(t, frame, field)
				}
			},
		},
		{
			name:           "GET /api/admin/dashboard - Error 401",
			method:         http.MethodGet,
			path:           "/api/admin/dashboard",
			expectedStatus: http.StatusUnauthorized,
			validateResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "unauthorized", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, tt.body, nil)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["request_id"], "Response must include request_id")
			assert.NotEmpty(t, resp["timestamp"], "Response must include timestamp")

			if tt.validateResponse != nil {
				tt.validateResponse(t, resp)
			}
		})
	}
}

// TestAPI_SessionHeaderContract checks that customer routes always echo the session id.
func TestAPI_SessionHeaderContract(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/info", "/api/cart", "/api/checkout", "/api/configurator/options"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set(middleware.SessionIDHeader, "not-a-uuid")
			w := httptest.NewRecorder()
			srv.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			sid := w.Header().Get(middleware.SessionIDHeader)
			assert.NotEmpty(t, sid)
			assert.NotEqual(t, "not-a-uuid", sid)
		})
	}
}
