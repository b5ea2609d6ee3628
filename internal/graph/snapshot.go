package graph

import (
	"slices"

	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/node"
)

// Snapshot is an immutable view of a graph at one instant.
type Snapshot struct {
	nodes []node.Node
	edges []Edge

	index    map[string]int
	outOwner map[*connector.Output]string
	inOwner  map[*connector.Input]string
	incoming map[*connector.Input][]Edge
	outgoing map[string][]Edge
}

// NewSnapshot validates nodes and edges and indexes them without going
// through a live Graph.
func NewSnapshot(nodes []node.Node, edges []Edge) (*Snapshot, error) {
	if _, problems := validate(nodes, edges); len(problems) > 0 {
		return nil, asError(problems)
	}
	return newSnapshot(nodes, edges), nil
}

func newSnapshot(nodes []node.Node, edges []Edge) *Snapshot {
	s := &Snapshot{
		nodes:    slices.Clone(nodes),
		edges:    slices.Clone(edges),
		index:    make(map[string]int, len(nodes)),
		outOwner: make(map[*connector.Output]string),
		inOwner:  make(map[*connector.Input]string),
		incoming: make(map[*connector.Input][]Edge),
		outgoing: make(map[string][]Edge),
	}
	for i, n := range s.nodes {
		id := node.ID(n)
		s.index[id] = i
		for _, out := range n.Outputs() {
			s.outOwner[out] = id
		}
		for _, in := range n.Inputs() {
			s.inOwner[in] = id
		}
	}
	for _, e := range s.edges {
		s.incoming[e.Target] = append(s.incoming[e.Target], e)
		if src, ok := s.outOwner[e.Source]; ok {
			s.outgoing[src] = append(s.outgoing[src], e)
		}
	}
	return s
}

// Nodes returns the nodes in graph order.
func (s *Snapshot) Nodes() []node.Node { return slices.Clone(s.nodes) }

// Edges returns the edges in graph order.
func (s *Snapshot) Edges() []Edge { return slices.Clone(s.edges) }

// Len returns the number of nodes.
func (s *Snapshot) Len() int { return len(s.nodes) }

// Node looks a node up by address string.
func (s *Snapshot) Node(id string) (node.Node, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.nodes[i], true
}

// SourceOwner returns the id of the node owning e's source.
func (s *Snapshot) SourceOwner(e Edge) (string, bool) {
	id, ok := s.outOwner[e.Source]
	return id, ok
}

// Incoming returns the edges targeting in.
func (s *Snapshot) Incoming(in *connector.Input) []Edge {
	return s.incoming[in]
}

// Outgoing returns the edges whose source is owned by the node id.
func (s *Snapshot) Outgoing(id string) []Edge {
	return s.outgoing[id]
}

// Dependencies returns the ids of the nodes feeding any input of node id,
// in graph order, without duplicates. Self-loops are included.
func (s *Snapshot) Dependencies(id string) []string {
	i, ok := s.index[id]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{})
	var deps []string
	for _, in := range s.nodes[i].Inputs() {
		for _, e := range s.incoming[in] {
			src := s.outOwner[e.Source]
			if _, dup := seen[src]; dup {
				continue
			}
			seen[src] = struct{}{}
			deps = append(deps, src)
		}
	}
	slices.SortFunc(deps, func(a, b string) int { return s.index[a] - s.index[b] })
	return deps
}

// Dependents returns the ids of the nodes fed by node id, in graph order,
// without duplicates.
func (s *Snapshot) Dependents(id string) []string {
	seen := make(map[string]struct{})
	var deps []string
	for _, e := range s.outgoing[id] {
		dst := s.inOwner[e.Target]
		if _, dup := seen[dst]; dup {
			continue
		}
		seen[dst] = struct{}{}
		deps = append(deps, dst)
	}
	slices.SortFunc(deps, func(a, b string) int { return s.index[a] - s.index[b] })
	return deps
}
