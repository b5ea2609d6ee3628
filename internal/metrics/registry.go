// Package metrics exposes Prometheus instrumentation for grid executions.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector the executor reports into, registered on a
// private prometheus.Registry so tests and embedders never collide on the
// global one.
type Registry struct {
	// Run Metrics
	RunsTotal   *prometheus.CounterVec
	RunDuration prometheus.Histogram

	// Wave Metrics
	WavesTotal prometheus.Counter
	WaveSize   prometheus.Histogram

	// Node Metrics
	NodeEvaluationsTotal   *prometheus.CounterVec
	NodeEvaluationDuration *prometheus.HistogramVec
	NodesInFlight          prometheus.Gauge
	NodesStalledTotal      *prometheus.CounterVec
	NodesSkippedTotal      prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initRunMetrics()
	r.initNodeMetrics()
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
