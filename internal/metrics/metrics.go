package metrics

import "time"

// RecordRun records the outcome and duration of one execution.
func (r *Registry) RecordRun(outcome string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(outcome).Inc()
	r.RunDuration.Observe(duration.Seconds())
}

// RecordWave records the start of a wave of the given size.
func (r *Registry) RecordWave(size int) {
	r.WavesTotal.Inc()
	r.WaveSize.Observe(float64(size))
}

// NodeStarted and NodeFinished bracket one evaluation.
func (r *Registry) NodeStarted() {
	r.NodesInFlight.Inc()
}

func (r *Registry) NodeFinished(kind, status string, duration time.Duration) {
	r.NodesInFlight.Dec()
	r.NodeEvaluationsTotal.WithLabelValues(kind, status).Inc()
	r.NodeEvaluationDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordStall counts one node left unexecuted for reason.
func (r *Registry) RecordStall(reason string) {
	r.NodesStalledTotal.WithLabelValues(reason).Inc()
}

// RecordSkipped counts nodes dropped after the run stopped early.
func (r *Registry) RecordSkipped(n int) {
	r.NodesSkippedTotal.Add(float64(n))
}
