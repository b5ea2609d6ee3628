package graph

import (
	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/node"
)

// ownership indexes which node owns which connector.
type ownership struct {
	ids     map[string]node.Node
	outputs map[*connector.Output]node.Node
	inputs  map[*connector.Input]node.Node
}

func newOwnership() *ownership {
	return &ownership{
		ids:     make(map[string]node.Node),
		outputs: make(map[*connector.Output]node.Node),
		inputs:  make(map[*connector.Input]node.Node),
	}
}

// addNode registers n, reporting nil or duplicate nodes.
func (o *ownership) addNode(n node.Node) *Problem {
	if n == nil {
		return problemf(ErrNilNode, "")
	}
	id := node.ID(n)
	if _, dup := o.ids[id]; dup {
		return problemf(ErrDuplicateNode, "%q", id)
	}
	o.ids[id] = n
	for _, out := range n.Outputs() {
		o.outputs[out] = n
	}
	for _, in := range n.Inputs() {
		o.inputs[in] = n
	}
	return nil
}

func (o *ownership) removeNode(n node.Node) {
	delete(o.ids, node.ID(n))
	for _, out := range n.Outputs() {
		delete(o.outputs, out)
	}
	for _, in := range n.Inputs() {
		delete(o.inputs, in)
	}
}

// ownsEdgeEnd reports whether the node with the given id owns either end of e.
func (o *ownership) ownsEdgeEnd(id string, e Edge) bool {
	if src, ok := o.outputs[e.Source]; ok && node.ID(src) == id {
		return true
	}
	if dst, ok := o.inputs[e.Target]; ok && node.ID(dst) == id {
		return true
	}
	return false
}

// checkEdge reports every reason e cannot be part of a graph owning o.
func (o *ownership) checkEdge(e Edge) []*Problem {
	if e.Source == nil || e.Target == nil {
		return []*Problem{problemf(ErrIncompleteEdge, "%s", e)}
	}
	var problems []*Problem
	if _, ok := o.outputs[e.Source]; !ok {
		problems = append(problems, problemf(ErrUnknownSource, "%s", e))
	}
	if _, ok := o.inputs[e.Target]; !ok {
		problems = append(problems, problemf(ErrUnknownTarget, "%s", e))
	}
	return problems
}

// validate checks a complete node and edge set.
func validate(nodes []node.Node, edges []Edge) (*ownership, []*Problem) {
	own := newOwnership()
	var problems []*Problem
	for _, n := range nodes {
		if p := own.addNode(n); p != nil {
			problems = append(problems, p)
		}
	}
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		problems = append(problems, own.checkEdge(e)...)
		if _, dup := seen[e]; dup {
			problems = append(problems, problemf(ErrDuplicateEdge, "%s", e))
		}
		seen[e] = struct{}{}
	}
	return own, problems
}
