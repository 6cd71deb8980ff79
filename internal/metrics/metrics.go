// Package metrics provides Prometheus metrics collection for the pizzeria service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// CartOperationsTotal counts cart mutations by operation.
	CartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation"},
	)

	// OrdersSubmittedTotal counts orders handed off, by order type and result.
	OrdersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Total number of submitted orders",
		},
		[]string{"order_type", "status"},
	)

	// OrderValue tracks the total value of dispatched orders.
	OrderValue = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_value_reais",
			Help:    "Order total in reais",
			Buckets: []float64{10, 25, 50, 75, 100, 150, 200, 300},
		},
		[]string{"order_type"},
	)

	// CheckoutValidationFailures counts rejected checkout steps by step.
	CheckoutValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_validation_failures_total",
			Help: "Total number of checkout steps rejected by validation",
		},
		[]string{"step"},
	)

	// CatalogMutationsTotal counts admin catalog changes.
	CatalogMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_mutations_total",
			Help: "Total number of menu catalog mutations",
		},
		[]string{"operation", "category"},
	)

	// TrackerStreams tracks open delivery tracker streams.
	TrackerStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_streams_active",
			Help: "Number of open delivery tracker streams",
		},
	)

	// BrokerPublishTotal counts order events published to the broker.
	BrokerPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broker_publish_total",
			Help: "Total number of order events published",
		},
		[]string{"status"},
	)

	// CircuitBreakerState reports each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"breaker"},
	)

	// CircuitBreakerRejections counts calls short-circuited by an open breaker.
	CircuitBreakerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_rejections_total",
			Help: "Total number of calls rejected by an open circuit breaker",
		},
		[]string{"breaker"},
	)

	// RateLimitedTotal counts requests refused with 429, by limiter scope.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Total number of requests refused by the rate limiter",
		},
		[]string{"scope"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCartOperation records one cart mutation.
func RecordCartOperation(operation string) {
	CartOperationsTotal.WithLabelValues(operation).Inc()
}

// RecordOrderSubmitted records a submit attempt and, on success, its value.
func RecordOrderSubmitted(orderType, status string, total float64) {
	OrdersSubmittedTotal.WithLabelValues(orderType, status).Inc()
	if status == "success" {
		OrderValue.WithLabelValues(orderType).Observe(total)
	}
}

// RecordCheckoutValidationFailure records a step rejected by its guard.
func RecordCheckoutValidationFailure(step int) {
	CheckoutValidationFailures.WithLabelValues(strconv.Itoa(step)).Inc()
}

// RecordCatalogMutation records an admin change to the menu.
func RecordCatalogMutation(operation, category string) {
	CatalogMutationsTotal.WithLabelValues(operation, category).Inc()
}

// RecordBrokerPublish records the outcome of an order event publish.
func RecordBrokerPublish(status string) {
	BrokerPublishTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(breaker string, state int) {
	CircuitBreakerState.WithLabelValues(breaker).Set(float64(state))
}

// RecordCircuitBreakerRejection records a call refused by an open breaker.
func RecordCircuitBreakerRejection(breaker string) {
	CircuitBreakerRejections.WithLabelValues(breaker).Inc()
}

// RecordRateLimited records a request refused by the rate limiter. scope is
// the identifier kind (ip, session or admin), never the identifier itself.
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheSize updates the size gauge of a named cache.
func UpdateCacheSize(cache string, size int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
}
