package node

import "fmt"

// Status is the execution state of a node within one run.
type Status int32

const (
	// StatusPending means the node has not been scheduled yet.
	StatusPending Status = iota
	// StatusRunning means the node is evaluating in the current wave.
	StatusRunning
	// StatusCompleted means the node evaluated successfully.
	StatusCompleted
	// StatusFailed means the node's evaluation returned an error.
	StatusFailed
	// StatusSkipped means the run stopped before the node could be scheduled.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Status(%d)", int32(s))
	}
}

// Terminal reports whether no further transition is expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSkipped
}
