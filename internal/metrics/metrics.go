// Package metrics provides Prometheus metrics collection for the recipe service.
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

	// UpstreamRequestDuration tracks recipe API call latency by endpoint and outcome.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_api_request_duration_seconds",
			Help:    "Recipe API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "outcome"},
	)

	// IngredientsParsedTotal counts parsed ingredient lines by the branch that produced them.
	IngredientsParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingredients_parsed_total",
			Help: "Total number of parsed ingredient lines",
		},
		[]string{"outcome"},
	)

	// ServingsUpdatesTotal counts recipe rescale operations.
	ServingsUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "servings_updates_total",
			Help: "Total number of servings updates",
		},
		[]string{"mode", "result"},
	)

	// StaleResultsTotal counts results discarded because a newer load had started.
	StaleResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stale_results_total",
			Help: "Total number of discarded stale search or recipe results",
		},
		[]string{"kind"},
	)

	// LikesTotal counts like and unlike actions.
	LikesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "likes_total",
			Help: "Total number of like and unlike actions",
		},
		[]string{"action"},
	)

	// KVOperationsTotal tracks key-value store operations by backend.
	KVOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_operations_total",
			Help: "Total number of key-value store operations",
		},
		[]string{"backend", "operation", "result"},
	)

	// SessionOperationsTotal tracks session store operations.
	SessionOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_operations_total",
			Help: "Total number of session store operations",
		},
		[]string{"operation", "result"},
	)

	// SessionStoreSize tracks current number of live sessions.
	SessionStoreSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_store_size",
			Help: "Current number of live sessions",
		},
	)

	// SessionStoreCapacity tracks session store capacity.
	SessionStoreCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_store_capacity",
			Help: "Session store capacity",
		},
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

// RecordUpstreamRequest records metrics for a recipe API call.
func RecordUpstreamRequest(endpoint string, duration time.Duration, outcome string) {
	UpstreamRequestDuration.WithLabelValues(endpoint, outcome).Observe(duration.Seconds())
}

// RecordIngredientParsed records which parser branch handled a line.
func RecordIngredientParsed(outcome string) {
	IngredientsParsedTotal.WithLabelValues(outcome).Inc()
}

// RecordServingsUpdate records a rescale attempt.
func RecordServingsUpdate(mode, result string) {
	ServingsUpdatesTotal.WithLabelValues(mode, result).Inc()
}

// RecordStaleResult records a discarded out-of-date result.
func RecordStaleResult(kind string) {
	StaleResultsTotal.WithLabelValues(kind).Inc()
}

// RecordLike records a like or unlike.
func RecordLike(action string) {
	LikesTotal.WithLabelValues(action).Inc()
}

// RecordKVOperation records a key-value store operation.
func RecordKVOperation(backend, operation, result string) {
	KVOperationsTotal.WithLabelValues(backend, operation, result).Inc()
}

// RecordSessionOperation records metrics for a session store operation.
func RecordSessionOperation(operation, result string) {
	SessionOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateSessionMetrics updates session store size and capacity metrics.
func UpdateSessionMetrics(size, capacity int) {
	SessionStoreSize.Set(float64(size))
	SessionStoreCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState records the current state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
