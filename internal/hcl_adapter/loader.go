package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL grid loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every file and merges their blocks into one grid.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(files))

	grid := &config.Grid{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, n := range root.Nodes {
			node, err := l.translateNode(ctx, n)
			if err != nil {
				return nil, err
			}
			grid.Nodes = append(grid.Nodes, node)
		}
		for _, e := range root.Edges {
			edge, err := l.translateEdge(e)
			if err != nil {
				return nil, err
			}
			grid.Edges = append(grid.Edges, edge)
		}
		logger.Debug("Loaded HCL file.", "file", file, "nodes", len(root.Nodes), "edges", len(root.Edges))
	}

	logger.Debug("HCL loading complete.", "nodes", len(grid.Nodes), "edges", len(grid.Edges))
	return grid, nil
}
