package executor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodestore"
	"github.com/specialistvlad/wavegrid/internal/scheduler"
	"github.com/zclconf/go-cty/cty"
)

// ExecuteSnapshot runs the wave loop over snap. The returned report is
// always non-nil; the error is non-nil when a wave failed or ctx was
// canceled.
func (e *Executor) ExecuteSnapshot(ctx context.Context, snap *graph.Snapshot) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	ctx = ctxlog.With(ctx, "run_id", report.RunID)
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	store := e.newStore()
	for _, n := range snap.Nodes() {
		if err := store.SetStatus(ctx, n.Address(), node.StatusPending); err != nil {
			return report, fmt.Errorf("initializing node state: %w", err)
		}
	}
	logger.Info("Execution started.", "nodes", snap.Len(), "edges", len(snap.Edges()), "workers", e.workers)

	executed := make(scheduler.Executed, snap.Len())
	var runErr error
	for wave := 0; ; wave++ {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("execution stopped before wave %d: %w", wave, err)
			break
		}

		ready := scheduler.Ready(snap, executed)
		if len(ready) == 0 {
			break
		}
		ids := make([]string, len(ready))
		for i, n := range ready {
			ids[i] = node.ID(n)
		}
		report.Waves = append(report.Waves, ids)

		var failures []error
		for i, err := range e.runWave(ctx, store, wave, ready) {
			if err == nil {
				report.Executed = append(report.Executed, ids[i])
				continue
			}
			report.Failed = append(report.Failed, ids[i])
			failures = append(failures, err)
		}
		if len(failures) > 0 {
			runErr = &WaveError{Wave: wave, Failures: failures}
			break
		}

		propagate(ctx, snap, ready)
		for _, id := range ids {
			executed[id] = true
		}
	}

	if runErr == nil {
		report.Stalls = scheduler.Diagnose(snap, executed)
		for _, s := range report.Stalls {
			logger.Warn("Node never became ready.", "node_id", s.Node, "reason", s.Reason.String(), "inputs", s.Inputs, "waiting_on", s.WaitingOn)
			e.metrics.RecordStall(s.Reason.String())
		}
	} else {
		skipped, err := e.skipRemaining(ctx, store, snap, report)
		report.Skipped = skipped
		if err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	if err := e.collect(ctx, store, snap, report); err != nil {
		return report, err
	}

	report.Duration = time.Since(start)
	report.Outcome = outcome(ctx, report, runErr)
	e.metrics.RecordRun(string(report.Outcome), report.Duration)

	logArgs := []any{
		"outcome", report.Outcome,
		"waves", len(report.Waves),
		"executed", len(report.Executed),
		"stalled", len(report.Stalls),
		"skipped", len(report.Skipped),
		"duration", report.Duration,
	}
	if runErr != nil {
		logger.Error("Execution finished with errors.", append(logArgs, "error", runErr)...)
	} else {
		logger.Info("Execution finished.", logArgs...)
	}
	return report, runErr
}

// skipRemaining marks every node that never ran as skipped. Nodes are
// reported as skipped even when the store rejects the transition.
func (e *Executor) skipRemaining(ctx context.Context, store nodestore.Store, snap *graph.Snapshot, report *Report) ([]string, error) {
	ran := make(map[string]bool, len(report.Executed)+len(report.Failed))
	for _, id := range report.Executed {
		ran[id] = true
	}
	for _, id := range report.Failed {
		ran[id] = true
	}

	var skipped []string
	var errs []error
	for _, n := range snap.Nodes() {
		id := node.ID(n)
		if ran[id] {
			continue
		}
		if err := store.SetStatus(ctx, n.Address(), node.StatusSkipped); err != nil {
			errs = append(errs, fmt.Errorf("node %s: recording state: %w", id, err))
		}
		skipped = append(skipped, id)
	}
	if len(skipped) > 0 {
		ctxlog.FromContext(ctx).Warn("Nodes skipped after the run stopped.", "count", len(skipped))
		e.metrics.RecordSkipped(len(skipped))
	}
	return skipped, errors.Join(errs...)
}

// collect copies statuses and recorded outputs from the store into report.
func (e *Executor) collect(ctx context.Context, store nodestore.Store, snap *graph.Snapshot, report *Report) error {
	statuses, err := store.Statuses(ctx)
	if err != nil {
		return fmt.Errorf("reading node state: %w", err)
	}
	report.Statuses = statuses

	report.Outputs = make(map[string]map[string]cty.Value, len(report.Executed))
	for _, id := range report.Executed {
		n, ok := snap.Node(id)
		if !ok {
			continue
		}
		outputs, err := store.GetOutputs(ctx, n.Address())
		if err != nil {
			return fmt.Errorf("reading outputs of %s: %w", id, err)
		}
		report.Outputs[id] = outputs
	}
	return nil
}

func outcome(ctx context.Context, report *Report, runErr error) Outcome {
	switch {
	case runErr == nil && len(report.Stalls) == 0:
		return OutcomeCompleted
	case runErr == nil:
		return OutcomeIncomplete
	case ctx.Err() != nil || errors.Is(runErr, context.Canceled):
		return OutcomeCanceled
	default:
		return OutcomeFailed
	}
}
