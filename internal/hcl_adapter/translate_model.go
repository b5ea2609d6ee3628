// This file contains the logic for translating HCL schema structs into the
// format-agnostic grid model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
)

// translateNode converts a node block into the agnostic model.
func (l *Loader) translateNode(ctx context.Context, n *nodeBlock) (*config.Node, error) {
	ctx = ctxlog.With(ctx, "node_kind", n.Kind, "node_name", n.Name)
	ctxlog.FromContext(ctx).Debug("Translating HCL node to internal config model.")

	out := &config.Node{Kind: n.Kind, Name: n.Name, Source: n.DefRange.String()}
	if isExprDefined(ctx, n.Inputs, "inputs") {
		attrs, err := objectAttributes(n.Inputs)
		if err != nil {
			return nil, fmt.Errorf("node %q inputs: %w", n.Name, err)
		}
		out.Inputs = attrs
	}
	if isExprDefined(ctx, n.Overrides, "overrides") {
		attrs, err := objectAttributes(n.Overrides)
		if err != nil {
			return nil, fmt.Errorf("node %q overrides: %w", n.Name, err)
		}
		out.Overrides = attrs
	}
	return out, nil
}

// translateEdge converts an edge block into the agnostic model.
func (l *Loader) translateEdge(e *edgeBlock) (*config.Edge, error) {
	from, err := referenceString(e.From)
	if err != nil {
		return nil, fmt.Errorf("edge at %s: from: %w", e.DefRange, err)
	}
	to, err := referenceString(e.To)
	if err != nil {
		return nil, fmt.Errorf("edge at %s: to: %w", e.DefRange, err)
	}
	return &config.Edge{From: from, To: to, Source: e.DefRange.String()}, nil
}
