// Package yaml_adapter loads grids written in YAML into the format-agnostic
// config model. A file may hold several YAML documents; each one contributes
// its `nodes` and `edges` lists.
package yaml_adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/document"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Nodes []nodeDoc `yaml:"nodes"`
	Edges []edgeDoc `yaml:"edges"`
}

type nodeDoc struct {
	Kind      string         `yaml:"kind"`
	Name      string         `yaml:"name"`
	Inputs    map[string]any `yaml:"inputs"`
	Overrides map[string]any `yaml:"overrides"`
}

type edgeDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML grid loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load decodes every document of every file and merges them into one grid.
// Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, files ...string) (*config.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file_count", len(files))

	grid := &config.Grid{}
	for _, file := range files {
		if err := l.loadFile(file, grid); err != nil {
			return nil, err
		}
		logger.Debug("Loaded YAML file.", "file", file)
	}

	logger.Debug("YAML loading complete.", "nodes", len(grid.Nodes), "edges", len(grid.Edges))
	return grid, nil
}

func (l *Loader) loadFile(file string, grid *config.Grid) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open YAML file %s: %w", file, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	for doc := 0; ; doc++ {
		var root fileRoot
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}

		for i, n := range root.Nodes {
			source := fmt.Sprintf("%s#%d/nodes[%d]", file, doc, i)
			node, err := translateNode(n, source)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			grid.Nodes = append(grid.Nodes, node)
		}
		for i, e := range root.Edges {
			grid.Edges = append(grid.Edges, &config.Edge{
				From:   e.From,
				To:     e.To,
				Source: fmt.Sprintf("%s#%d/edges[%d]", file, doc, i),
			})
		}
	}
}

func translateNode(n nodeDoc, source string) (*config.Node, error) {
	if n.Kind == "" || n.Name == "" {
		return nil, errors.New("node requires both kind and name")
	}
	inputs, err := toValues(n.Inputs)
	if err != nil {
		return nil, fmt.Errorf("node %q inputs: %w", n.Name, err)
	}
	overrides, err := toValues(n.Overrides)
	if err != nil {
		return nil, fmt.Errorf("node %q overrides: %w", n.Name, err)
	}
	return &config.Node{
		Kind:      n.Kind,
		Name:      n.Name,
		Inputs:    inputs,
		Overrides: overrides,
		Source:    source,
	}, nil
}

func toValues(m map[string]any) (map[string]cty.Value, error) {
	if m == nil {
		return nil, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]cty.Value, len(m))
	for _, k := range keys {
		v, err := document.FromNative(m[k])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}
