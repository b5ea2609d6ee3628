package config

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Grid is the unified, format-agnostic representation of a user's grid:
// the nodes to build, the values to seed and the edges between them.
type Grid struct {
	Nodes []*Node
	Edges []*Edge
}

// Node is the format-agnostic representation of one node declaration.
type Node struct {
	Kind string
	Name string
	// Inputs seed argument connectors by identity. An identity with no
	// argument connector falls back to the override connector.
	Inputs map[string]cty.Value
	// Overrides seed override connectors by identity.
	Overrides map[string]cty.Value
	// Source locates the declaration, e.g. "grid.hcl:3,1-20".
	Source string
}

// Edge connects `<node>.<identity>` of an output to that of an input.
type Edge struct {
	From   string
	To     string
	Source string
}

// Ref is a parsed edge endpoint.
type Ref struct {
	Node     string
	Identity string
}

func (r Ref) String() string { return r.Node + "." + r.Identity }

// ParseRef splits an endpoint at its last '.'; node names may themselves
// contain dots.
func ParseRef(s string) (Ref, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return Ref{}, fmt.Errorf("connector reference %q must have the form <node>.<identity>", s)
	}
	return Ref{Node: s[:i], Identity: s[i+1:]}, nil
}

// Merge appends other's declarations to g.
func (g *Grid) Merge(other *Grid) {
	if other == nil {
		return
	}
	g.Nodes = append(g.Nodes, other.Nodes...)
	g.Edges = append(g.Edges, other.Edges...)
}
