package executor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/scheduler"
	"github.com/zclconf/go-cty/cty"
)

// Outcome summarizes how a run ended.
type Outcome string

const (
	OutcomeCompleted  Outcome = "completed"
	OutcomeIncomplete Outcome = "incomplete"
	OutcomeFailed     Outcome = "failed"
	OutcomeCanceled   Outcome = "canceled"
)

// Report describes one run.
type Report struct {
	RunID   string
	Outcome Outcome
	// Waves lists the node ids of every wave started, in order.
	Waves [][]string
	// Executed lists the nodes that evaluated successfully, in wave order.
	Executed []string
	// Failed lists the nodes whose evaluation returned an error.
	Failed []string
	// Skipped lists the nodes never scheduled because the run stopped early.
	Skipped []string
	// Stalls explains every node left over by a run that ran out of ready
	// nodes.
	Stalls   []scheduler.Stall
	Statuses map[string]node.Status
	// Outputs holds the output values of every executed node, keyed by node
	// id then connector identity, as they were right after its wave.
	Outputs  map[string]map[string]cty.Value
	Duration time.Duration
}

// Err returns an *IncompleteError when nodes were left unexecuted by a run
// that otherwise succeeded.
func (r *Report) Err() error {
	if len(r.Stalls) == 0 {
		return nil
	}
	return &IncompleteError{Stalls: r.Stalls}
}

// WaveOf returns the index of the wave id ran in, or -1.
func (r *Report) WaveOf(id string) int {
	for i, wave := range r.Waves {
		for _, member := range wave {
			if member == id {
				return i
			}
		}
	}
	return -1
}

// ErrIncomplete matches every *IncompleteError.
var ErrIncomplete = errors.New("execution incomplete")

// IncompleteError lists the nodes a run could never reach.
type IncompleteError struct {
	Stalls []scheduler.Stall
}

func (e *IncompleteError) Error() string {
	parts := make([]string, len(e.Stalls))
	for i, s := range e.Stalls {
		parts[i] = s.String()
	}
	return fmt.Sprintf("%s: %d node(s) never ran: %s", ErrIncomplete, len(e.Stalls), strings.Join(parts, "; "))
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

// WaveError aggregates the failures of one wave. It unwraps to each failure.
type WaveError struct {
	Wave     int
	Failures []error
}

func (e *WaveError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, err := range e.Failures {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("wave %d: %d node(s) failed: %s", e.Wave, len(e.Failures), strings.Join(msgs, "; "))
}

func (e *WaveError) Unwrap() []error { return e.Failures }
