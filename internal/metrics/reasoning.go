package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "reasoner"

// Reasoning Prometheus metrics.
var (
	ReasonTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reason_total",
			Help:      "Total number of reasoning calls",
		},
		[]string{"decision", "fallback"},
	)

	ReasonDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reason_duration_seconds",
			Help:      "Reasoning call duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	BestMatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "best_match_score",
			Help:      "Score of the selected best match",
			Buckets:   []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1},
		},
	)

	BatchItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_items_total",
			Help:      "Total number of batch items by outcome",
		},
		[]string{"status"}, // "ok" / "error"
	)
)

var reasoningMetricsRegistered bool

// RegisterReasoningMetrics registers Prometheus reasoning metrics. Must be called once from main.
func RegisterReasoningMetrics() {
	if reasoningMetricsRegistered {
		return
	}
	prometheus.MustRegister(ReasonTotal, ReasonDuration, BestMatchScore, BatchItemsTotal)
	reasoningMetricsRegistered = true
}
