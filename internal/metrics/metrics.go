// Package metrics provides Prometheus metrics collection for the allocation service.
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

	// AllocationRunsTotal tracks allocation batch runs by outcome.
	AllocationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_runs_total",
			Help: "Total number of allocation batch runs",
		},
		[]string{"status"},
	)

	// AllocationRunDuration tracks allocation batch run duration.
	// Batches range from interactive (a few orders) to millions of rows,
	// hence the wide bucket spread.
	AllocationRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "allocation_run_duration_seconds",
			Help:    "Allocation batch run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
		},
	)

	// OrdersProcessedTotal counts orders evaluated across all batch runs.
	OrdersProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_processed_total",
			Help: "Total number of orders evaluated by the allocation engine",
		},
	)

	// RunningAnalyses tracks the number of batch workers currently running.
	RunningAnalyses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "running_analyses",
			Help: "Number of asynchronous analyses currently running",
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

// RecordAllocationRun records metrics for one allocation batch run.
func RecordAllocationRun(duration time.Duration, status string) {
	AllocationRunDuration.Observe(duration.Seconds())
	AllocationRunsTotal.WithLabelValues(status).Inc()
}

// AddOrdersProcessed adds to the processed-orders counter.
func AddOrdersProcessed(n int) {
	OrdersProcessedTotal.Add(float64(n))
}
