package scheduler

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/graph"
	"github.com/specialistvlad/wavegrid/internal/node"
)

// Executed is the set of node ids that have run in the current execution.
type Executed map[string]bool

// Satisfied reports whether a required input can be read now.
func Satisfied(snap *graph.Snapshot, in *connector.Input, executed Executed) bool {
	if in.HasValue() {
		return true
	}
	for _, e := range snap.Incoming(in) {
		if src, ok := snap.SourceOwner(e); ok && executed[src] {
			return true
		}
	}
	return false
}

// Ready returns the nodes that have not executed and whose required inputs
// are all satisfied, in graph order.
func Ready(snap *graph.Snapshot, executed Executed) []node.Node {
	var ready []node.Node
	for _, n := range snap.Nodes() {
		if executed[node.ID(n)] {
			continue
		}
		if isReady(snap, n, executed) {
			ready = append(ready, n)
		}
	}
	return ready
}

// RequiredInputs returns the inputs of n that gate its readiness: every
// argument input, plus every override input fed by an edge in snap.
func RequiredInputs(snap *graph.Snapshot, n node.Node) []*connector.Input {
	var required []*connector.Input
	for _, in := range n.Inputs() {
		if !in.Override() || len(snap.Incoming(in)) > 0 {
			required = append(required, in)
		}
	}
	return required
}

func isReady(snap *graph.Snapshot, n node.Node, executed Executed) bool {
	for _, in := range RequiredInputs(snap, n) {
		if !Satisfied(snap, in, executed) {
			return false
		}
	}
	return true
}

// StallReason explains why a node never became ready.
type StallReason int

const (
	StallCycle StallReason = iota
	StallUnsatisfied
	StallUpstream
)

func (r StallReason) String() string {
	switch r {
	case StallCycle:
		return "cycle"
	case StallUnsatisfied:
		return "unsatisfied_input"
	case StallUpstream:
		return "upstream_not_executed"
	default:
		return fmt.Sprintf("StallReason(%d)", int(r))
	}
}

// Stall describes one node left unexecuted.
type Stall struct {
	Node   string
	Reason StallReason
	// Inputs lists the identities of the required inputs that were not
	// satisfied.
	Inputs []string
	// WaitingOn lists the producers of those inputs that never ran.
	WaitingOn []string
}

func (s Stall) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", s.Node, s.Reason)
	if len(s.Inputs) > 0 {
		fmt.Fprintf(&sb, " inputs=[%s]", strings.Join(s.Inputs, ","))
	}
	if len(s.WaitingOn) > 0 {
		fmt.Fprintf(&sb, " waiting_on=[%s]", strings.Join(s.WaitingOn, ","))
	}
	return sb.String()
}

// Diagnose returns one Stall per node that has not executed, in graph order.
func Diagnose(snap *graph.Snapshot, executed Executed) []Stall {
	// Edges into inputs that already hold a value never block, so they
	// cannot close a blocking cycle.
	cycles := snap.CycleMembersWhere(func(e graph.Edge) bool {
		return !e.Target.HasValue()
	})

	var stalls []Stall
	for _, n := range snap.Nodes() {
		id := node.ID(n)
		if executed[id] {
			continue
		}

		stall := Stall{Node: id}
		unfed := false
		seen := make(map[string]bool)
		for _, in := range RequiredInputs(snap, n) {
			if Satisfied(snap, in, executed) {
				continue
			}
			stall.Inputs = append(stall.Inputs, in.Identity())
			incoming := snap.Incoming(in)
			if len(incoming) == 0 {
				unfed = true
			}
			for _, e := range incoming {
				src, _ := snap.SourceOwner(e)
				if !seen[src] {
					seen[src] = true
					stall.WaitingOn = append(stall.WaitingOn, src)
				}
			}
		}

		switch {
		case cycles[id]:
			stall.Reason = StallCycle
		case unfed:
			stall.Reason = StallUnsatisfied
		default:
			stall.Reason = StallUpstream
		}
		stalls = append(stalls, stall)
	}
	return stalls
}

// Plan predicts the waves an execution would run if every node evaluated
// successfully, together with the stalls it would end with. Connector values
// are only read, never written.
func Plan(snap *graph.Snapshot) ([][]string, []Stall) {
	executed := make(Executed, snap.Len())
	var waves [][]string
	for {
		ready := Ready(snap, executed)
		if len(ready) == 0 {
			break
		}
		wave := make([]string, len(ready))
		for i, n := range ready {
			wave[i] = node.ID(n)
		}
		for _, id := range wave {
			executed[id] = true
		}
		waves = append(waves, wave)
	}
	return waves, Diagnose(snap, executed)
}
