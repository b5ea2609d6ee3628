package executor

import (
	"context"
	"time"

	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/inmemorystore"
	"github.com/specialistvlad/wavegrid/internal/metrics"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodestore"
)

// Executor evaluates graphs in waves. The zero configuration evaluates each
// wave with one goroutine per ready node and no per-node timeout.
type Executor struct {
	workers     int
	nodeTimeout time.Duration
	metrics     *metrics.Registry
	newStore    func() nodestore.Store
}

// Option configures an Executor.
type Option func(*Executor)

// WithWorkers bounds the number of nodes evaluating at once within a wave.
// Values <= 0 mean unbounded.
func WithWorkers(n int) Option {
	return func(e *Executor) { e.workers = n }
}

// WithNodeTimeout bounds every single evaluation. Zero disables the bound.
func WithNodeTimeout(d time.Duration) Option {
	return func(e *Executor) { e.nodeTimeout = d }
}

// WithMetrics reports into r instead of the process-wide registry.
func WithMetrics(r *metrics.Registry) Option {
	return func(e *Executor) { e.metrics = r }
}

// WithStore replaces the per-run node state store factory.
func WithStore(factory func() nodestore.Store) Option {
	return func(e *Executor) { e.newStore = factory }
}

// New creates an executor.
func New(opts ...Option) *Executor {
	e := &Executor{
		metrics:  metrics.DefaultRegistry(),
		newStore: inmemorystore.New,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute validates nodes and edges, then runs them. A structural problem is
// returned as a *graph.ValidationError before anything is evaluated.
func (e *Executor) Execute(ctx context.Context, nodes []node.Node, edges []graph.Edge) (*Report, error) {
	snap, err := graph.NewSnapshot(nodes, edges)
	if err != nil {
		return nil, err
	}
	return e.ExecuteSnapshot(ctx, snap)
}

// ExecuteGraph runs a snapshot of g taken at call time.
func (e *Executor) ExecuteGraph(ctx context.Context, g *graph.Graph) (*Report, error) {
	return e.ExecuteSnapshot(ctx, g.Snapshot())
}
