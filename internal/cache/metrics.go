// internal/cache/metrics.go
package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_cache_operations_total",
			Help: "Cache operations by backend and result",
		},
		[]string{"backend", "op", "result"},
	)

	cacheLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fusion_cache_operation_duration_seconds",
			Help:    "Latency of cache backend calls",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"backend", "op"},
	)

	cacheCleanupRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fusion_cache_cleanup_rows_total",
			Help: "Expired rows removed by the cleanup job",
		},
	)
)

func recordOperation(backend, op, result string, took time.Duration) {
	cacheOperations.WithLabelValues(backend, op, result).Inc()
	cacheLatency.WithLabelValues(backend, op).Observe(took.Seconds())
}
