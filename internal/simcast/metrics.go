package simcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
)

var (
	simulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simcast_simulations_total",
		Help: "Simulation runs by mode.",
	}, []string{"mode"})

	simulationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "simcast_simulation_duration_seconds",
		Help:    "Wall-clock duration of simulation runs by mode.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode"})

	suggestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "simcast_suggestions_total",
		Help: "Staffing suggestions generated by severity.",
	}, []string{"severity"})
)

// recordSuggestions bumps the per-severity suggestion counter.
func recordSuggestions(suggestions []opsmodel.Suggestion) {
	for _, s := range suggestions {
		suggestionsTotal.WithLabelValues(s.Severity).Inc()
	}
}
