package graph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStructuralValidation matches every *ValidationError.
	ErrStructuralValidation = errors.New("structural validation failed")

	ErrUnknownSource  = errors.New("edge source is not an output of any node in the graph")
	ErrUnknownTarget  = errors.New("edge target is not an input of any node in the graph")
	ErrIncompleteEdge = errors.New("edge is missing an endpoint")
	ErrDuplicateNode  = errors.New("duplicate node address")
	ErrDuplicateEdge  = errors.New("duplicate edge")
	ErrNilNode        = errors.New("nil node")
	ErrUnknownNode    = errors.New("node is not part of the graph")
)

// Problem is one validation failure. Kind is one of the sentinel errors above.
type Problem struct {
	Kind error
	Msg  string
}

func (p *Problem) Error() string {
	if p.Msg == "" {
		return p.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", p.Kind.Error(), p.Msg)
}

func (p *Problem) Unwrap() error { return p.Kind }

func problemf(kind error, format string, args ...any) *Problem {
	return &Problem{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError aggregates every problem found by one validation pass.
type ValidationError struct {
	Problems []*Problem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("%s: %s", ErrStructuralValidation, strings.Join(msgs, "; "))
}

// Unwrap exposes ErrStructuralValidation and every problem, so errors.Is
// matches both the umbrella sentinel and each problem kind.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Problems)+1)
	errs = append(errs, ErrStructuralValidation)
	for _, p := range e.Problems {
		errs = append(errs, p)
	}
	return errs
}

func asError(problems []*Problem) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}
