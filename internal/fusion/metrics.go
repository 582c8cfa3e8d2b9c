package fusion

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fusion_analyses_total",
			Help: "Total number of analyses by kind and outcome",
		},
		[]string{"kind", "result"},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fusion_compatibility_scores",
			Help:    "Distribution of overall compatibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	matrixScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fusion_matrix_scores",
			Help:    "Distribution of destiny matrix overall scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	analysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fusion_analysis_duration_seconds",
			Help:    "Analysis latency including cache lookups",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"kind"},
	)
)

// observe records one finished analysis
func observe(kind string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	analysesTotal.WithLabelValues(kind, result).Inc()
	analysisDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
