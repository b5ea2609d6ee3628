package app

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/specialistvlad/wavegrid/internal/document"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
)

// writeOutputs prints every output connector as {node: {identity: value}}.
// Absent values print as null.
func (a *App) writeOutputs(g *graph.Graph) error {
	doc := make(map[string]map[string]json.RawMessage, len(g.Nodes()))
	for _, n := range g.Nodes() {
		values := make(map[string]json.RawMessage, len(n.Outputs()))
		for _, out := range n.Outputs() {
			raw, err := document.MarshalJSON(out.Value())
			if err != nil {
				return fmt.Errorf("encoding %s: %w", out, err)
			}
			values[out.Identity()] = raw
		}
		doc[node.ID(n)] = values
	}
	return a.writeJSON(doc)
}

// writeKinds prints the node kind catalog as a table.
func (a *App) writeKinds() error {
	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tINPUT\tOUTPUT\tDESCRIPTION")
	for _, k := range a.registry.Kinds() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k.Name, k.Input, k.Output, k.Description)
	}
	return tw.Flush()
}
