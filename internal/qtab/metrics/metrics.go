// Package metrics instruments the tableau protocols with Prometheus
// counters and histograms.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectTotal counts project! calls by tableau kind and outcome.
	ProjectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qtab_project_total",
		Help: "Total number of project! calls",
	}, []string{"kind", "outcome"})

	// ProjectDuration measures project! latency by tableau kind.
	ProjectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qtab_project_duration_seconds",
		Help:    "Duration of project! calls",
		Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
	}, []string{"kind"})

	// GenerateTotal counts generate! calls by outcome.
	GenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qtab_generate_total",
		Help: "Total number of generate! calls",
	}, []string{"outcome"})

	// RankGrowth counts rank increments on MixedStabilizer and
	// MixedDestabilizer project! calls.
	RankGrowth = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qtab_rank_growth_total",
		Help: "Number of project! calls that grew a mixed tableau's rank",
	})

	// TraceoutQubits counts the number of qubits traced out across all
	// traceout! calls.
	TraceoutQubits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qtab_traceout_qubits_total",
		Help: "Total number of qubits removed by traceout!",
	})
)

// OutcomeLabel maps a project! result to the "outcome" label value used
// by ProjectTotal.
func OutcomeLabel(anticomIndex int, inGroup bool) string {
	if anticomIndex != 0 {
		return "anticommute"
	}
	if inGroup {
		return "in_group"
	}
	return "not_in_group"
}
