package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wavegrid_runs_total",
			Help: "Executions by outcome (completed, incomplete, failed, canceled)",
		},
		[]string{"outcome"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wavegrid_run_duration_seconds",
			Help:    "Wall time of one execution",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.WavesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wavegrid_waves_total",
			Help: "Waves started across all executions",
		},
	)

	r.WaveSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wavegrid_wave_size_nodes",
			Help:    "Number of nodes evaluated concurrently in one wave",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
}

func (r *Registry) initNodeMetrics() {
	r.NodeEvaluationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wavegrid_node_evaluations_total",
			Help: "Node evaluations by kind and status",
		},
		[]string{"kind", "status"},
	)

	r.NodeEvaluationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wavegrid_node_evaluation_duration_seconds",
			Help:    "Duration of one node evaluation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	r.NodesInFlight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "wavegrid_nodes_in_flight",
			Help: "Nodes currently evaluating",
		},
	)

	r.NodesStalledTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "wavegrid_nodes_stalled_total",
			Help: "Nodes left unexecuted at the end of a run, by reason",
		},
		[]string{"reason"},
	)

	r.NodesSkippedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "wavegrid_nodes_skipped_total",
			Help: "Nodes not scheduled because the run stopped after a failed wave or cancellation",
		},
	)
}
