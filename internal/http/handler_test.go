//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/config"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/domain/model"
	"github.com/guttosm/pizzeria-service/internal/middleware"
	"github.com/guttosm/pizzeria-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer is a full router over in-memory services.
type testServer struct {
	router     *gin.Engine
	catalog    *service.CatalogStore
	dispatcher *service.OrderDispatchService
	sessions   *service.SessionRegistry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTimedTestServer(t, 0, DefaultRouterConfig().RequestTimeout)
}

// newTimedTestServer is newTestServer with a checkout submit delay and a
// request timeout.
func newTimedTestServer(t *testing.T, submitDelay, requestTimeout time.Duration) *testServer {
	t.Helper()

	catalog := service.NewDefaultCatalogStore()
	dispatcher := service.NewOrderDispatchService(catalog, config.CheckoutConfig{
		MessagingDomain: "wa.me",
		SubmitDelay:     submitDelay,
	})
	sessions := service.NewSessionRegistry(catalog, dispatcher, config.SessionConfig{})
	tracker := service.NewDeliveryTracker(config.TrackerConfig{Tick: time.Millisecond}, dispatcher)
	admin, err := service.NewAdminAuthServiceFromConfig(config.AdminConfig{
		Username:  "admin",
		Password:  "bordadefogo2024",
		JWTSecret: "test-secret",
	})
	require.NoError(t, err)

	handler := NewHandler(catalog)
	t.Cleanup(func() {
		handler.Close()
		sessions.Stop()
		dispatcher.Stop()
	})

	cfg := DefaultRouterConfig()
	cfg.Sessions = sessions
	cfg.RequestTimeout = requestTimeout

	router := NewRouter(Handlers{
		Menu:    handler,
		Tracker: NewTrackerHandler(tracker, nil),
		Admin:   NewAdminHandler(admin, catalog),
		Health:  NewHealthHandler(),
	}, cfg)

	return &testServer{router: router, catalog: catalog, dispatcher: dispatcher, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success response into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var resp struct {
		Data      json.RawMessage `json:"data"`
		RequestID string          `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	assert.NotEmpty(t, resp.RequestID)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func session(id string) map[string]string {
	return map[string]string{middleware.SessionIDHeader: id}
}

func TestGetInfo(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/info", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var info model.PizzeriaInfo
	decodeData(t, w, &info)
	assert.Equal(t, "Borda de Fogo Pizzaria", info.Name)
	assert.Equal(t, 5.0, info.DeliveryFee)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionIDHeader))
}

func TestGetMenu_ETag(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)
	var menu []service.CategoryMenu
	decodeData(t, w, &menu)
	require.Len(t, menu, 7)
	assert.Equal(t, model.CategoryTraditionalPizzas, menu[0].Category)

	w = srv.do(t, http.MethodGet, "/api/menu", "", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.Bytes())

	_, err := srv.catalog.ToggleAvailability(model.CategoryDrinks, "cocaCola")
	require.NoError(t, err)

	w = srv.do(t, http.MethodGet, "/api/menu", "", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, etag, w.Header().Get("ETag"))
}

func TestGetMenuCategory(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{"drinks", "/api/menu/bebidas", http.StatusOK},
		{"traditional pizzas", "/api/menu/pizzas_tradicionais", http.StatusOK},
		{"unknown category", "/api/menu/sobremesas", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var entries []model.CatalogEntry
				decodeData(t, w, &entries)
				assert.NotEmpty(t, entries)
				return
			}
			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
			assert.Equal(t, "Categoria de cardápio desconhecida", resp.Message)
		})
	}
}

func TestCart_AddMenuItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{"drink", `{"category":"bebidas","key":"cocaCola","quantity":2}`, http.StatusCreated, ""},
		{"pizza defaults to medium", `{"category":"pizzas_tradicionais","key":"margherita"}`, http.StatusCreated, ""},
		{"missing key", `{"category":"bebidas"}`, http.StatusBadRequest, dto.ErrCodeInvalidRequest},
		{"invalid size", `{"category":"calzones","key":"calabresa","size":"XL"}`, http.StatusBadRequest, dto.ErrCodeInvalidRequest},
		{"unknown category", `{"category":"sobremesas","key":"pudim"}`, http.StatusNotFound, dto.ErrCodeNotFound},
		{"unknown item", `{"category":"bebidas","key":"vinho"}`, http.StatusNotFound, dto.ErrCodeNotFound},
		{"malformed body", `{"category":`, http.StatusBadRequest, dto.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)

			w := srv.do(t, http.MethodPost, "/api/cart/items", tt.body, nil)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
				return
			}
			var cart dto.CartResponse
			decodeData(t, w, &cart)
			assert.Len(t, cart.Lines, 1)
			assert.Equal(t, w.Header().Get(middleware.SessionIDHeader), cart.SessionID)
		})
	}
}

func TestCart_SessionLifecycle(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"bebidas","key":"cocaCola"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sid := w.Header().Get(middleware.SessionIDHeader)
	require.NotEmpty(t, sid)

	w = srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"bebidas","key":"cocaCola"}`, session(sid))
	require.Equal(t, http.StatusCreated, w.Code)
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	require.Len(t, cart.Lines, 1, "same drink merges into one line")
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 10.0, cart.Total)
	lineID := cart.Lines[0].ID

	w = srv.do(t, http.MethodPatch, "/api/cart/items/"+lineID, `{"quantity":5}`, session(sid))
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cart)
	assert.Equal(t, 5, cart.ItemCount)
	assert.Equal(t, 25.0, cart.Total)

	w = srv.do(t, http.MethodPatch, "/api/cart/items/missing", `{"quantity":1}`, session(sid))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.do(t, http.MethodPatch, "/api/cart/items/"+lineID, `{}`, session(sid))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodGet, "/api/cart", "", nil)
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Lines, "a new session starts with an empty cart")

	w = srv.do(t, http.MethodPatch, "/api/cart/items/"+lineID, `{"quantity":0}`, session(sid))
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Lines)

	srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"bebidas","key":"guarana"}`, session(sid))
	w = srv.do(t, http.MethodDelete, "/api/cart", "", session(sid))
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.Total)
}

func TestCart_RemoveItem(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"bebidas","key":"cocaCola"}`, nil)
	sid := w.Header().Get(middleware.SessionIDHeader)
	var cart dto.CartResponse
	decodeData(t, w, &cart)

	w = srv.do(t, http.MethodDelete, "/api/cart/items/"+cart.Lines[0].ID, "", session(sid))

	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Lines)

	w = srv.do(t, http.MethodDelete, "/api/cart/items/unknown", "", session(sid))
	assert.Equal(t, http.StatusOK, w.Code, "removing an unknown line is a no-op")
}

func TestConfigurator(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/configurator/options", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var options service.ConfiguratorOptions
	decodeData(t, w, &options)
	assert.Len(t, options.Sizes, 3)
	assert.NotEmpty(t, options.Flavors)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedTotal  float64
	}{
		{"defaults", `{}`, http.StatusOK, 35},
		{"large half and half", `{"size":"G","division":"metade","flavor1":"margherita","flavor2":"calabresa","quantity":2}`, http.StatusOK, 90},
		{"invalid size", `{"size":"XL"}`, http.StatusBadRequest, 0},
		{"unknown flavor", `{"flavor1":"abacaxi-com-presunto"}`, http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/configurator/quote", tt.body, nil)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp struct {
				Quote service.PizzaQuote `json:"quote"`
			}
			decodeData(t, w, &resp)
			assert.Equal(t, tt.expectedTotal, resp.Quote.Total)
		})
	}
}

func TestCart_AddPizza(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/cart/pizzas",
		`{"size":"G","division":"metade","flavor1":"margherita","flavor2":"calabresa","crust":"borda-recheada"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	require.Len(t, cart.Lines, 1)
	line := cart.Lines[0]
	assert.Equal(t, model.LineKindPizza, line.Kind)
	assert.Equal(t, 45.0, line.UnitPrice)
	require.NotNil(t, line.Pizza)
	assert.Equal(t, model.CrustStuffed, line.Pizza.Crust)
}

func TestCheckout_StepValidation(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodGet, "/api/checkout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionIDHeader)

	w = srv.do(t, http.MethodPost, "/api/checkout/next", "", session(sid))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error)
	assert.Equal(t, "Verifique os campos destacados", resp.Message)
	assert.Equal(t, "Nome é obrigatório", resp.Details["name"])
	assert.Contains(t, resp.Details, "phone")

	w = srv.do(t, http.MethodPost, "/api/checkout/next", "", map[string]string{
		middleware.SessionIDHeader: sid,
		"Accept-Language":          "en-US,en;q=0.9",
	})
	resp = decodeError(t, w)
	assert.Equal(t, "Name is required", resp.Details["name"])
}

func TestCheckout_UpdateAndNavigate(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodPut, "/api/checkout",
		`{"order_type":"mesa","customer":{"name":"João","phone":"11333344444","table_number":"7"}}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sid := w.Header().Get(middleware.SessionIDHeader)

	var state service.CheckoutState
	decodeData(t, w, &state)
	assert.Equal(t, model.OrderTypeTable, state.OrderType)
	assert.Equal(t, 2, state.TotalSteps)
	assert.Equal(t, "7", state.Data.TableNumber)

	w = srv.do(t, http.MethodPost, "/api/checkout/next", "", session(sid))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeData(t, w, &state)
	assert.Equal(t, service.StepPayment, state.Step)
	assert.Equal(t, 2, state.DisplayStep)

	w = srv.do(t, http.MethodPost, "/api/checkout/back", "", session(sid))
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &state)
	assert.Equal(t, service.StepCustomer, state.Step)

	w = srv.do(t, http.MethodPut, "/api/checkout", `{"order_type":"balcao","customer":{}}`, session(sid))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckout_Submit(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"pizzas_tradicionais","key":"margherita","size":"M"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sid := w.Header().Get(middleware.SessionIDHeader)
	srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"bebidas","key":"cocaCola"}`, session(sid))

	w = srv.do(t, http.MethodPost, "/api/checkout/submit", "", session(sid))
	require.Equal(t, http.StatusConflict, w.Code, "submit before the final step")

	customer := `{"customer":{"name":"Maria Silva","phone":"(11) 99999-9999","postal_code":"01234567",` +
		`"street":"Rua das Flores","number":"42","neighborhood":"Centro","city":"São Paulo","payment_method":"pix"}}`
	w = srv.do(t, http.MethodPut, "/api/checkout", customer, session(sid))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for i := 0; i < 2; i++ {
		w = srv.do(t, http.MethodPost, "/api/checkout/next", "", session(sid))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	headers := map[string]string{middleware.SessionIDHeader: sid, "Idempotency-Key": "submit-1"}
	w = srv.do(t, http.MethodPost, "/api/checkout/submit", "", headers)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.OrderSubmittedResponse
	decodeData(t, w, &resp)
	assert.Equal(t, 40.0, resp.Order.Subtotal)
	assert.Equal(t, 5.0, resp.Order.DeliveryFee)
	assert.Equal(t, 45.0, resp.Order.Total)
	assert.Equal(t, "Pedido enviado! Confirme no WhatsApp.", resp.Message)
	assert.Contains(t, resp.Link, "https://wa.me/")
	assert.NotEmpty(t, resp.QRCode)
	assert.Equal(t, "/api/tracker/ws?order_id="+resp.Order.ID, resp.TrackerURL)

	_, err := srv.dispatcher.Order(resp.Order.ID)
	assert.NoError(t, err)

	replay := srv.do(t, http.MethodPost, "/api/checkout/submit", "", headers)
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, w.Body.String(), replay.Body.String(), "retried submit replays the first order")

	w = srv.do(t, http.MethodGet, "/api/cart", "", session(sid))
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Lines)

	w = srv.do(t, http.MethodGet, "/api/checkout", "", session(sid))
	var state service.CheckoutState
	decodeData(t, w, &state)
	assert.Equal(t, service.StepCustomer, state.Step)
	assert.Empty(t, state.Data.Name)
}

func TestCheckout_SubmitOutlastsRequestTimeout(t *testing.T) {
	srv := newTimedTestServer(t, 300*time.Millisecond, 100*time.Millisecond)
	w := srv.do(t, http.MethodPost, "/api/cart/items", `{"category":"bebidas","key":"cocaCola"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sid := w.Header().Get(middleware.SessionIDHeader)

	w = srv.do(t, http.MethodPut, "/api/checkout",
		`{"order_type":"mesa","customer":{"name":"João","phone":"(11) 3333-4444","table_number":"3","payment_method":"pix"}}`, session(sid))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = srv.do(t, http.MethodPost, "/api/checkout/next", "", session(sid))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(t, http.MethodPost, "/api/checkout/submit", "", session(sid))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.OrderSubmittedResponse
	decodeData(t, w, &resp)
	assert.Contains(t, resp.Link, "https://wa.me/")

	w = srv.do(t, http.MethodGet, "/api/cart", "", session(sid))
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Lines)
}

func TestCheckout_SubmitEmptyCart(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodPut, "/api/checkout",
		`{"order_type":"mesa","customer":{"name":"João","phone":"(11) 3333-4444","table_number":"3"}}`, nil)
	sid := w.Header().Get(middleware.SessionIDHeader)
	srv.do(t, http.MethodPost, "/api/checkout/next", "", session(sid))

	w = srv.do(t, http.MethodPost, "/api/checkout/submit", "", session(sid))

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeConflict, decodeError(t, w).Error)
}

func TestHandler_MissingSession(t *testing.T) {
	catalog := service.NewDefaultCatalogStore()
	handler := NewHandler(catalog)
	defer handler.Close()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/cart", handler.GetCart)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMenuCache(t *testing.T) {
	cache := newMenuCache(time.Minute)
	assert.Nil(t, cache.get())

	cache.set(&menuSnapshot{version: 2})
	require.NotNil(t, cache.get())
	assert.Equal(t, uint64(2), cache.get().version)

	cache.set(&menuSnapshot{version: 1})
	assert.Equal(t, uint64(2), cache.get().version, "an older snapshot does not replace a fresh one")

	cache.invalidate()
	assert.Nil(t, cache.get())

	cache.set(&menuSnapshot{version: 1})
	assert.Equal(t, uint64(1), cache.get().version)
}

func TestHandler_WithMenuCacheTTL(t *testing.T) {
	catalog := service.NewDefaultCatalogStore()
	handler := NewHandler(catalog, WithMenuCacheTTL(time.Millisecond))
	defer handler.Close()

	first := handler.menu()
	time.Sleep(5 * time.Millisecond)

	assert.NotSame(t, first, handler.menu())
}
