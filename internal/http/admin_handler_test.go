//go:build !integration

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/circuitbreaker"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/mocks"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (s *testServer) adminToken(t *testing.T) map[string]string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"bordadefogo2024"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token dto.AdminToken
	decodeData(t, w, &token)
	require.NotEmpty(t, token.Token)
	return map[string]string{"Authorization": "Bearer " + token.Token}
}

func TestAdminHandler_Login(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
		expectedMsg    string
	}{
		{"valid credentials", `{"username":"admin","password":"bordadefogo2024"}`, http.StatusOK, "", ""},
		{"wrong password", `{"username":"admin","password":"errada"}`, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Credenciais inválidas!"},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest, dto.ErrCodeInvalidRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/admin/login", tt.body, nil)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedError == "" {
				var token dto.AdminToken
				decodeData(t, w, &token)
				assert.Equal(t, "admin", token.Username)
				assert.Nil(t, token.ExpiresAt)
				return
			}
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedError, resp.Error)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}

func TestAdminHandler_RequiresToken(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		method  string
		path    string
		headers map[string]string
	}{
		{"dashboard without token", http.MethodGet, "/api/admin/dashboard", nil},
		{"toggle without token", http.MethodPost, "/api/admin/menu/bebidas/cocaCola/toggle", nil},
		{"info with garbage token", http.MethodPatch, "/api/admin/info", map[string]string{"Authorization": "Bearer nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, "", tt.headers)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}

	entry, err := srv.catalog.Get(model.CategoryDrinks, "cocaCola")
	require.NoError(t, err)
	assert.True(t, entry.Available, "rejected requests do not mutate the catalog")
}

func TestAdminHandler_Dashboard(t *testing.T) {
	srv := newTestServer(t)
	auth := srv.adminToken(t)

	w := srv.do(t, http.MethodGet, "/api/admin/dashboard", "", auth)

	require.Equal(t, http.StatusOK, w.Code)
	var stats []service.CategoryStats
	decodeData(t, w, &stats)
	require.Len(t, stats, len(model.Categories))
	for _, s := range stats {
		assert.Equal(t, s.Total, s.Available, "seed entries start available")
	}
}

func TestAdminHandler_ToggleBlocksOrdering(t *testing.T) {
	srv := newTestServer(t)
	auth := srv.adminToken(t)

	w := srv.do(t, http.MethodPost, "/api/admin/menu/pizzas_tradicionais/margherita/toggle", "", auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var entry model.CatalogEntry
	decodeData(t, w, &entry)
	assert.False(t, entry.Available)

	w = srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"pizzas_tradicionais","key":"margherita"}`, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Item indisponível no momento", decodeError(t, w).Message)

	w = srv.do(t, http.MethodGet, "/api/menu/pizzas_tradicionais", "", nil)
	var entries []model.CatalogEntry
	decodeData(t, w, &entries)
	found := false
	for _, e := range entries {
		if e.Key == "margherita" {
			found = true
			assert.False(t, e.Available)
		}
	}
	assert.True(t, found, "unavailable entries stay listed")

	w = srv.do(t, http.MethodPost, "/api/admin/menu/pizzas_tradicionais/margherita/toggle", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	w = srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"pizzas_tradicionais","key":"margherita"}`, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminHandler_EntryCRUD(t *testing.T) {
	srv := newTestServer(t)
	auth := srv.adminToken(t)

	body := `{"key":"mate","name":"Chá Mate","volume":"500ml","price":6.5,"available":true}`
	w := srv.do(t, http.MethodPost, "/api/admin/menu/bebidas", body, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = srv.do(t, http.MethodPost, "/api/admin/menu/bebidas", body, auth)
	require.Equal(t, http.StatusOK, w.Code, "same key replaces the entry")

	w = srv.do(t, http.MethodPatch, "/api/admin/menu/bebidas/mate", `{"price":7}`, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var entry model.CatalogEntry
	decodeData(t, w, &entry)
	assert.Equal(t, 7.0, entry.Price)
	assert.Equal(t, "Chá Mate", entry.Name)

	w = srv.do(t, http.MethodGet, "/api/admin/menu/bebidas", "", auth)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodDelete, "/api/admin/menu/bebidas/mate", "", auth)
	assert.Equal(t, http.StatusNoContent, w.Code)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"remove twice", http.MethodDelete, "/api/admin/menu/bebidas/mate", "", http.StatusNotFound},
		{"update missing", http.MethodPatch, "/api/admin/menu/bebidas/mate", `{"price":1}`, http.StatusNotFound},
		{"unknown category", http.MethodGet, "/api/admin/menu/sobremesas", "", http.StatusNotFound},
		{"entry without name", http.MethodPost, "/api/admin/menu/bebidas", `{"key":"agua"}`, http.StatusBadRequest},
		{"malformed entry", http.MethodPost, "/api/admin/menu/bebidas", `{"key":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, tt.body, auth)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestAdminHandler_Info(t *testing.T) {
	srv := newTestServer(t)
	auth := srv.adminToken(t)

	w := srv.do(t, http.MethodPatch, "/api/admin/info", `{"delivery_fee":8}`, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var info model.PizzeriaInfo
	decodeData(t, w, &info)
	assert.Equal(t, 8.0, info.DeliveryFee)
	assert.Equal(t, "Borda de Fogo Pizzaria", info.Name)

	w = srv.do(t, http.MethodGet, "/api/admin/info", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &info)
	assert.Equal(t, 8.0, info.DeliveryFee)

	w = srv.do(t, http.MethodPatch, "/api/admin/info", `{"delivery_fee":-1}`, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_Activity_WithoutAuditStore(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/admin/activity", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.do(t, http.MethodGet, "/api/admin/activity", "", srv.adminToken(t))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeUnavailable, resp.Error)
	assert.Equal(t, "Histórico de atividades indisponível no momento", resp.Message)
}

func TestAdminHandler_Activity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	page := &model.ActivityPage{
		Entries: []model.LogEntry{{Actor: "admin", ActionType: model.ActionCatalogToggle}},
		Total:   1,
		Limit:   20,
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockLoggingService)
		expectedStatus int
	}{
		{
			name:  "filters are forwarded",
			query: "?action=catalog_toggle&actor=admin&limit=20",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("Activity", mock.Anything, model.LogQueryOptions{
					Actor:      "admin",
					ActionType: model.ActionCatalogToggle,
					Limit:      20,
				}).Return(page, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown level",
			query:          "?level=fatal",
			setupMock:      func(*mocks.MockLoggingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed since",
			query:          "?since=ontem",
			setupMock:      func(*mocks.MockLoggingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "open breaker",
			query: "",
			setupMock: func(m *mocks.MockLoggingService) {
				m.On("Activity", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: %v", service.ErrAuditUnavailable, circuitbreaker.ErrCircuitOpen))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := mocks.NewMockLoggingService(t)
			tt.setupMock(ls)

			handler := NewAdminHandler(nil, service.NewDefaultCatalogStore())
			router := gin.New()
			router.Use(middleware.RequestID())
			router.GET("/api/admin/activity", func(c *gin.Context) {
				c.Set(LoggingServiceKey, service.LoggingService(ls))
			}, handler.Activity)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/activity"+tt.query, nil))

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				var got model.ActivityPage
				decodeData(t, w, &got)
				assert.Equal(t, int64(1), got.Total)
				assert.Equal(t, "admin", got.Entries[0].Actor)
			}
		})
	}
}
