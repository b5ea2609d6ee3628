package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/registry"
)

var (
	ErrDuplicateName    = errors.New("node name declared more than once")
	ErrUnknownConnector = errors.New("unknown connector")
	ErrInvalidSeed      = errors.New("seed value does not fit the connector")
)

// built pairs a declaration with the node created for it.
type built struct {
	decl *config.Node
	kind *registry.Kind
	node node.Node
}

// Build constructs every node of grid, seeds their inputs and links them.
func Build(ctx context.Context, grid *config.Grid, r *registry.Registry) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "nodes", len(grid.Nodes), "edges", len(grid.Edges))

	all, byName, err := createNodes(ctx, grid, r)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "node_count", len(all))

	if err := seedNodes(ctx, all); err != nil {
		return nil, err
	}
	logger.Debug("Build: Seeding complete.")

	edges, err := linkEdges(ctx, grid, byName)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Edge linking complete.", "edge_count", len(edges))

	nodes := make([]node.Node, len(all))
	for i, b := range all {
		nodes[i] = b.node
	}
	g, err := graph.New(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("error validating grid: %w", err)
	}

	logger.Info("Build: Graph construction successful.", "nodes", len(nodes), "edges", len(edges))
	return g, nil
}
