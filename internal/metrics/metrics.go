// Package metrics provides Prometheus metrics collection for the storefront cart.
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

	// CartMutationsTotal counts cart mutations by operation.
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations",
		},
		[]string{"operation"},
	)

	// CartLines tracks the number of distinct lines in the cart.
	CartLines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_lines",
			Help: "Number of lines in the cart",
		},
	)

	// CartItems tracks the total quantity in the cart.
	CartItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items",
			Help: "Sum of quantities in the cart",
		},
	)

	// CartTotalPrice tracks the cart total for dashboards. Checkout uses the
	// exact decimal total, never this gauge.
	CartTotalPrice = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_total_price",
			Help: "Current cart total price",
		},
	)

	// PersistenceWritesTotal counts cart writes to the durable slot by result.
	PersistenceWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_persistence_writes_total",
			Help: "Total number of cart persistence writes",
		},
		[]string{"result"},
	)

	// PersistenceLoadsTotal counts cart restores by result.
	PersistenceLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_persistence_loads_total",
			Help: "Total number of cart persistence loads",
		},
		[]string{"result"},
	)

	// CatalogLookupDuration tracks catalog lookups that miss the cache.
	CatalogLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_lookup_duration_seconds",
			Help:    "Catalog lookup duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// CacheOperationsTotal tracks catalog cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"method"},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
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

// RecordCartMutation records a completed cart mutation.
func RecordCartMutation(operation string) {
	CartMutationsTotal.WithLabelValues(operation).Inc()
}

// UpdateCartMetrics sets the cart gauges.
func UpdateCartMetrics(lines, items int, total float64) {
	CartLines.Set(float64(lines))
	CartItems.Set(float64(items))
	CartTotalPrice.Set(total)
}

// RecordPersistenceWrite records the outcome of a cart write.
func RecordPersistenceWrite(result string) {
	PersistenceWritesTotal.WithLabelValues(result).Inc()
}

// RecordPersistenceLoad records the outcome of a cart restore.
func RecordPersistenceLoad(result string) {
	PersistenceLoadsTotal.WithLabelValues(result).Inc()
}

// RecordCatalogLookup records the duration of a catalog lookup.
func RecordCatalogLookup(duration time.Duration) {
	CatalogLookupDuration.Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited(method string) {
	RateLimitedTotal.WithLabelValues(method).Inc()
}

// SetCircuitBreakerState publishes the state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
