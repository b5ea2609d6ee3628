package graph

import (
	"slices"
	"sync"

	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/notify"
)

// ChangeKind names what happened to the graph.
type ChangeKind int

const (
	NodeAdded ChangeKind = iota
	NodeRemoved
	EdgeAdded
	EdgeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case NodeAdded:
		return "node_added"
	case NodeRemoved:
		return "node_removed"
	case EdgeAdded:
		return "edge_added"
	case EdgeRemoved:
		return "edge_removed"
	default:
		return "unknown"
	}
}

// Change is published for every mutation. Node is set for node changes,
// Edge for edge changes.
type Change struct {
	Kind ChangeKind
	Node node.Node
	Edge Edge
}

// Graph is the mutable, observable set of nodes and edges.
type Graph struct {
	mu    sync.RWMutex
	nodes []node.Node
	edges []Edge
	own   *ownership
	hub   notify.Hub[Change]
}

// New validates nodes and edges and returns a graph holding them. Nothing is
// retained when validation fails.
func New(nodes []node.Node, edges []Edge) (*Graph, error) {
	own, problems := validate(nodes, edges)
	if err := asError(problems); err != nil {
		return nil, err
	}
	return &Graph{
		nodes: slices.Clone(nodes),
		edges: slices.Clone(edges),
		own:   own,
	}, nil
}

// Subscribe registers fn for every future change.
func (g *Graph) Subscribe(fn func(Change)) (cancel func()) {
	return g.hub.Subscribe(fn)
}

// Nodes returns a copy of the node list in insertion order.
func (g *Graph) Nodes() []node.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.nodes)
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.edges)
}

// Node looks a node up by its address string.
func (g *Graph) Node(id string) (node.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.own.ids[id]
	return n, ok
}

// AddNode appends n. Its address must not collide with an existing node.
func (g *Graph) AddNode(n node.Node) error {
	g.mu.Lock()
	if p := g.own.addNode(n); p != nil {
		g.mu.Unlock()
		return asError([]*Problem{p})
	}
	g.nodes = append(g.nodes, n)
	g.mu.Unlock()

	g.hub.Publish(Change{Kind: NodeAdded, Node: n})
	return nil
}

// RemoveNode removes the node with n's address together with every edge
// touching one of its connectors. Edge removals are published before the
// node removal.
func (g *Graph) RemoveNode(n node.Node) error {
	if n == nil {
		return asError([]*Problem{problemf(ErrNilNode, "")})
	}
	id := node.ID(n)

	g.mu.Lock()
	existing, ok := g.own.ids[id]
	if !ok {
		g.mu.Unlock()
		return asError([]*Problem{problemf(ErrUnknownNode, "%q", id)})
	}

	var dropped []Edge
	kept := g.edges[:0:0]
	for _, e := range g.edges {
		if g.own.ownsEdgeEnd(id, e) {
			dropped = append(dropped, e)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.nodes = slices.DeleteFunc(g.nodes, func(c node.Node) bool { return node.ID(c) == id })
	g.own.removeNode(existing)
	g.mu.Unlock()

	for _, e := range dropped {
		g.hub.Publish(Change{Kind: EdgeRemoved, Edge: e})
	}
	g.hub.Publish(Change{Kind: NodeRemoved, Node: existing})
	return nil
}

// AddEdge validates e against the current node set and appends it.
func (g *Graph) AddEdge(e Edge) error {
	g.mu.Lock()
	problems := g.own.checkEdge(e)
	if len(problems) == 0 && slices.Contains(g.edges, e) {
		problems = append(problems, problemf(ErrDuplicateEdge, "%s", e))
	}
	if err := asError(problems); err != nil {
		g.mu.Unlock()
		return err
	}
	g.edges = append(g.edges, e)
	g.mu.Unlock()

	g.hub.Publish(Change{Kind: EdgeAdded, Edge: e})
	return nil
}

// RemoveEdge removes e and reports whether it was present.
func (g *Graph) RemoveEdge(e Edge) bool {
	g.mu.Lock()
	i := slices.Index(g.edges, e)
	if i < 0 {
		g.mu.Unlock()
		return false
	}
	g.edges = slices.Delete(g.edges, i, i+1)
	g.mu.Unlock()

	g.hub.Publish(Change{Kind: EdgeRemoved, Edge: e})
	return true
}

// Snapshot returns an immutable, indexed copy of the current graph.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return newSnapshot(g.nodes, g.edges)
}
