package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SelectionMetrics counts how shortlists were produced.
type SelectionMetrics struct {
	selections *prometheus.CounterVec
	fallbacks  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewSelectionMetrics registers the selection metrics on reg. A nil reg gives
// a recorder that drops everything.
func NewSelectionMetrics(reg prometheus.Registerer) *SelectionMetrics {
	if reg == nil {
		return &SelectionMetrics{}
	}
	selections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "selection_total",
		Help: "Shortlists produced, by suite and by the component that produced them.",
	}, []string{"suite", "source"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "selection_fallback_total",
		Help: "Fallbacks taken while producing shortlists.",
	}, []string{"suite", "reason"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "selection_duration_seconds",
		Help:    "Time spent producing a shortlist.",
		Buckets: prometheus.DefBuckets,
	}, []string{"suite"})
	reg.MustRegister(selections, fallbacks, duration)
	return &SelectionMetrics{
		selections: selections,
		fallbacks:  fallbacks,
		duration:   duration,
	}
}

func (m *SelectionMetrics) IncSelection(suite, source string) {
	if m == nil || m.selections == nil {
		return
	}
	m.selections.WithLabelValues(normalizeLabel(suite), normalizeLabel(source)).Inc()
}

func (m *SelectionMetrics) IncFallback(suite, reason string) {
	if m == nil || m.fallbacks == nil {
		return
	}
	m.fallbacks.WithLabelValues(normalizeLabel(suite), normalizeLabel(reason)).Inc()
}

func (m *SelectionMetrics) ObserveDuration(suite string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(suite)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
