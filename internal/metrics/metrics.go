// Package metrics provides Prometheus metrics collection for the move-labels service.
package metrics

import (
	"strconv"
	"strings"
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

	// LabelsRenderedTotal counts rendered labels by output format and template.
	LabelsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "labels_rendered_total",
			Help: "Total number of rendered labels",
		},
		[]string{"format", "template"},
	)

	// LabelRenderDuration tracks how long an export takes to render.
	LabelRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "label_render_duration_seconds",
			Help:    "Label render duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"format", "status"},
	)

	// LabelLayoutWarningsTotal counts layout warnings by message.
	LabelLayoutWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_layout_warnings_total",
			Help: "Total number of label layout warnings",
		},
		[]string{"warning"},
	)

	// ShortCodeRetriesTotal counts box inserts retried after a short code collision.
	ShortCodeRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "box_short_code_retries_total",
			Help: "Total number of box inserts retried after a short code collision",
		},
	)

	// CircuitBreakerState reports each breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// LogQueueEntriesTotal counts request logs and activity events by queue outcome.
	LogQueueEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_queue_entries_total",
			Help: "Total number of log queue entries by result (enqueued, dropped, written, failed)",
		},
		[]string{"result"},
	)

	// PanicsRecoveredTotal counts handler panics turned into 500 responses.
	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Total number of handler panics recovered, by route",
		},
		[]string{"route"},
	)

	// CacheOperationsTotal tracks cache operations.
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

// RecordLabelRender records a finished export of n labels.
func RecordLabelRender(format, template, status string, n int, duration time.Duration) {
	LabelRenderDuration.WithLabelValues(format, status).Observe(duration.Seconds())
	if status == "success" && n > 0 {
		LabelsRenderedTotal.WithLabelValues(format, template).Add(float64(n))
	}
}

// RecordLayoutWarnings counts the warnings of one solved layout.
func RecordLayoutWarnings(warnings []string) {
	for _, w := range warnings {
		LabelLayoutWarningsTotal.WithLabelValues(warningLabel(w)).Inc()
	}
}

// warningLabel keeps the label set bounded: inventory warnings carry the
// item count, which is dropped here.
func warningLabel(w string) string {
	if strings.HasPrefix(w, "label text may be hard to read") {
		return "inventory_readability"
	}
	return w
}

// RecordShortCodeRetry counts one short code collision.
func RecordShortCodeRetry() {
	ShortCodeRetriesTotal.Inc()
}

// SetCircuitBreakerState publishes the state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordLogQueue counts n log queue entries with the given result.
func RecordLogQueue(result string, n int) {
	LogQueueEntriesTotal.WithLabelValues(result).Add(float64(n))
}

// RecordPanic counts one recovered panic on route.
func RecordPanic(route string) {
	PanicsRecoveredTotal.WithLabelValues(route).Inc()
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
