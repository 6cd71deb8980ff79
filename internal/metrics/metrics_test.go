package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/menu", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/api/menu",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordOrderSubmitted(t *testing.T) {
	before := value(t, OrdersSubmittedTotal.WithLabelValues("entrega", "success"))

	RecordOrderSubmitted("entrega", "success", 45)
	RecordOrderSubmitted("mesa", "invalid", 0)

	assert.Equal(t, before+1, value(t, OrdersSubmittedTotal.WithLabelValues("entrega", "success")))
}

func TestRecordCartOperation(t *testing.T) {
	before := value(t, CartOperationsTotal.WithLabelValues("add"))

	RecordCartOperation("add")

	assert.Equal(t, before+1, value(t, CartOperationsTotal.WithLabelValues("add")))
}

func TestRecordCatalogMutation(t *testing.T) {
	before := value(t, CatalogMutationsTotal.WithLabelValues("toggle", "bebidas"))

	RecordCatalogMutation("toggle", "bebidas")

	assert.Equal(t, before+1, value(t, CatalogMutationsTotal.WithLabelValues("toggle", "bebidas")))
}

func TestUpdateCacheSize(t *testing.T) {
	UpdateCacheSize("sessions", 3)

	assert.Equal(t, 3.0, value(t, CacheSize.WithLabelValues("sessions")))
}

func TestCircuitBreakerMetrics(t *testing.T) {
	SetCircuitBreakerState("broker", 1)
	before := value(t, CircuitBreakerRejections.WithLabelValues("broker"))

	RecordCircuitBreakerRejection("broker")

	assert.Equal(t, 1.0, value(t, CircuitBreakerState.WithLabelValues("broker")))
	assert.Equal(t, before+1, value(t, CircuitBreakerRejections.WithLabelValues("broker")))
}

func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}
	return out.GetGauge().GetValue()
}

func TestRecordRateLimited(t *testing.T) {
	before := value(t, RateLimitedTotal.WithLabelValues("session"))

	RecordRateLimited("session")
	RecordRateLimited("session")

	assert.Equal(t, before+2, value(t, RateLimitedTotal.WithLabelValues("session")))
}
