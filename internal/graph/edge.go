package graph

import (
	"fmt"

	"github.com/specialistvlad/wavegrid/internal/connector"
)

// Edge carries the value of an output connector to an input connector after
// the source's owner has evaluated.
type Edge struct {
	Source *connector.Output
	Target *connector.Input
}

// NewEdge wires source to target. Both ends are required.
func NewEdge(source *connector.Output, target *connector.Input) (Edge, error) {
	if source == nil || target == nil {
		return Edge{}, &ValidationError{Problems: []*Problem{problemf(ErrIncompleteEdge, "source=%v target=%v", source != nil, target != nil)}}
	}
	return Edge{Source: source, Target: target}, nil
}

// MustEdge is like NewEdge but panics on a missing end.
func MustEdge(source *connector.Output, target *connector.Input) Edge {
	e, err := NewEdge(source, target)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Edge) String() string {
	src, dst := "<nil>", "<nil>"
	if e.Source != nil {
		src = e.Source.Address().String()
	}
	if e.Target != nil {
		dst = e.Target.Address().String()
		if e.Target.Override() {
			dst += " (override)"
		}
	}
	return fmt.Sprintf("%s -> %s", src, dst)
}
