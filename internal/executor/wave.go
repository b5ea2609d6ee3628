package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodestore"
	"github.com/zclconf/go-cty/cty"
)

// runWave evaluates every node of the wave concurrently and waits for all of
// them. It returns one error per node of ready, nil for the nodes that
// succeeded.
func (e *Executor) runWave(ctx context.Context, store nodestore.Store, wave int, ready []node.Node) []error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Wave started.", "wave", wave, "size", len(ready))
	e.metrics.RecordWave(len(ready))

	var sem chan struct{}
	if e.workers > 0 {
		sem = make(chan struct{}, e.workers)
	}

	errs := make([]error, len(ready))
	var wg sync.WaitGroup
	for i, n := range ready {
		wg.Add(1)
		go func(i int, n node.Node) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			errs[i] = e.runNode(ctx, store, wave, n)
		}(i, n)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	logger.Debug("Wave finished.", "wave", wave, "size", len(ready), "failed", failed)
	return errs
}

// runNode evaluates one node and records the outcome in the store. A node
// whose state cannot be recorded fails with the store error joined in.
func (e *Executor) runNode(ctx context.Context, store nodestore.Store, wave int, n node.Node) (err error) {
	id := n.Address()
	nodeCtx := ctxlog.With(ctx, "node_id", id.String(), "kind", n.Kind(), "wave", wave)
	logger := ctxlog.FromContext(nodeCtx)

	if e.nodeTimeout > 0 {
		var cancel context.CancelFunc
		nodeCtx, cancel = context.WithTimeout(nodeCtx, e.nodeTimeout)
		defer cancel()
	}

	if serr := store.SetStatus(ctx, id, node.StatusRunning); serr != nil {
		return fmt.Errorf("node %s: recording state: %w", id, serr)
	}
	e.metrics.NodeStarted()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("node %s: evaluation panicked: %v", id, r)
		}
		if err == nil {
			if serr := store.SetOutputs(ctx, id, outputValues(n)); serr != nil {
				err = fmt.Errorf("node %s: recording outputs: %w", id, serr)
			}
		}
		status := node.StatusCompleted
		if err != nil {
			status = node.StatusFailed
			if serr := store.SetError(ctx, id, err); serr != nil {
				err = errors.Join(err, fmt.Errorf("node %s: recording error: %w", id, serr))
			}
			logger.Error("Node evaluation failed.", "error", err)
		} else {
			logger.Debug("Node evaluation succeeded.", "duration", time.Since(start))
		}
		if serr := store.SetStatus(ctx, id, status); serr != nil {
			status = node.StatusFailed
			err = errors.Join(err, fmt.Errorf("node %s: recording state: %w", id, serr))
			logger.Error("Node state not recorded.", "error", serr)
		}
		e.metrics.NodeFinished(n.Kind(), status.String(), time.Since(start))
	}()

	return n.Evaluate(nodeCtx)
}

func outputValues(n node.Node) map[string]cty.Value {
	outs := n.Outputs()
	values := make(map[string]cty.Value, len(outs))
	for _, o := range outs {
		values[o.Identity()] = o.Value()
	}
	return values
}

// propagate copies every edge leaving the wave from its source to its
// target, in wave order then edge order. Absent sources propagate as absent.
func propagate(ctx context.Context, snap *graph.Snapshot, wave []node.Node) {
	logger := ctxlog.FromContext(ctx)
	for _, n := range wave {
		for _, e := range snap.Outgoing(node.ID(n)) {
			e.Target.Set(e.Source.Value())
			logger.Debug("Value propagated.", "edge", e.String())
		}
	}
}
