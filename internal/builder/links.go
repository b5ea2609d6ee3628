package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
)

// linkEdges resolves every edge declaration to connectors. Targets prefer
// the argument connector and fall back to the override connector.
func linkEdges(ctx context.Context, grid *config.Grid, byName map[string]node.Node) ([]graph.Edge, error) {
	logger := ctxlog.FromContext(ctx)

	var errs []error
	edges := make([]graph.Edge, 0, len(grid.Edges))
	for _, decl := range grid.Edges {
		src, err := resolveNode(decl.From, byName, graph.ErrUnknownSource)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: from: %w", decl.Source, err))
			continue
		}
		dst, err := resolveNode(decl.To, byName, graph.ErrUnknownTarget)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: to: %w", decl.Source, err))
			continue
		}

		out, ok := node.FindOutput(src.node, src.ref.Identity)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: from: %w: node %q has no output %q", decl.Source, ErrUnknownConnector, src.ref.Node, src.ref.Identity))
			continue
		}
		in, ok := node.ResolveInput(dst.node, dst.ref.Identity)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: to: %w: node %q has no input %q", decl.Source, ErrUnknownConnector, dst.ref.Node, dst.ref.Identity))
			continue
		}

		edge, err := graph.NewEdge(out, in)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", decl.Source, err))
			continue
		}
		logger.Debug("Linked edge.", "edge", edge.String())
		edges = append(edges, edge)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return edges, nil
}

type endpoint struct {
	ref  config.Ref
	node node.Node
}

// resolveNode finds the node an endpoint names. An undeclared node is a
// structural problem of the grid, reported with the graph's own sentinels.
func resolveNode(raw string, byName map[string]node.Node, unknown error) (endpoint, error) {
	ref, err := config.ParseRef(raw)
	if err != nil {
		return endpoint{}, err
	}
	addr, err := nodeid.Parse(ref.Node)
	if err != nil {
		return endpoint{}, fmt.Errorf("invalid node name in %q: %w", raw, err)
	}
	n, ok := byName[addr.String()]
	if !ok {
		return endpoint{}, fmt.Errorf("%w: %w: node %q is not declared", graph.ErrStructuralValidation, unknown, ref.Node)
	}
	return endpoint{ref: ref, node: n}, nil
}
