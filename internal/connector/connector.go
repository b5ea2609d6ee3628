// Package connector implements the typed-agnostic slots through which values
// enter and leave a node.
//
// Every connector belongs to exactly one node and is named by an identity
// that is unique among that node's connectors of the same role. Values are
// documents (cty.Value); cty.NilVal means the connector holds nothing yet.
// Each assignment publishes a Change to the connector's subscribers.
package connector

import (
	"fmt"
	"sync"

	"github.com/specialistvlad/wavegrid/internal/document"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/notify"
	"github.com/zclconf/go-cty/cty"
)

// Direction tells inputs and outputs apart.
type Direction int

const (
	DirectionInput Direction = iota
	DirectionOutput
)

func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Change describes one assignment.
type Change struct {
	Connector Connector
	Old       cty.Value
	New       cty.Value
}

// Connector is the read side shared by inputs and outputs.
type Connector interface {
	Identity() string
	Owner() nodeid.Address
	// Address is the owner's address with the identity appended.
	Address() nodeid.Address
	Direction() Direction
	Value() cty.Value
	HasValue() bool
	Subscribe(fn func(Change)) (cancel func())
}

type slot struct {
	owner    nodeid.Address
	identity string
	dir      Direction

	mu    sync.RWMutex
	value cty.Value

	hub notify.Hub[Change]
}

func (s *slot) Identity() string        { return s.identity }
func (s *slot) Owner() nodeid.Address   { return s.owner }
func (s *slot) Address() nodeid.Address { return s.owner.Child(s.identity) }
func (s *slot) Direction() Direction    { return s.dir }

func (s *slot) Value() cty.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *slot) HasValue() bool {
	return !document.IsAbsent(s.Value())
}

func (s *slot) Subscribe(fn func(Change)) func() {
	return s.hub.Subscribe(fn)
}

// assign stores v and notifies subscribers outside the lock.
func (s *slot) assign(self Connector, v cty.Value) {
	s.mu.Lock()
	old := s.value
	s.value = v
	s.mu.Unlock()
	s.hub.Publish(Change{Connector: self, Old: old, New: v})
}

// Input accepts values from outside the node: a seed, an edge propagation or
// an explicit override.
type Input struct {
	slot
	override bool
}

// NewInput creates an argument input connector.
func NewInput(owner nodeid.Address, identity string) *Input {
	return &Input{slot: slot{owner: owner, identity: identity, dir: DirectionInput}}
}

// NewOverrideInput creates an input connector that mirrors an output field.
// Override inputs are optional unless an edge feeds them: when they hold a
// value it replaces the computed output field of the same identity.
func NewOverrideInput(owner nodeid.Address, identity string) *Input {
	in := NewInput(owner, identity)
	in.override = true
	return in
}

// Set assigns v. Setting cty.NilVal is equivalent to Clear.
func (i *Input) Set(v cty.Value) { i.assign(i, v) }

// Clear removes the current value.
func (i *Input) Clear() { i.assign(i, cty.NilVal) }

// Override reports whether the input mirrors an output field.
func (i *Input) Override() bool { return i.override }

func (i *Input) String() string {
	if i.override {
		return i.Address().String() + " (override)"
	}
	return i.Address().String()
}

// Output carries a value produced by its owning node.
type Output struct {
	slot
}

// Writer is the only way to assign an output. It is handed to the node that
// owns the output.
type Writer func(v cty.Value)

// NewOutput creates an output connector and its writer.
func NewOutput(owner nodeid.Address, identity string) (*Output, Writer) {
	out := &Output{slot: slot{owner: owner, identity: identity, dir: DirectionOutput}}
	return out, func(v cty.Value) { out.assign(out, v) }
}

func (o *Output) String() string { return o.Address().String() }

// SameSlot reports whether a and b describe the same slot: the same owner,
// identity and direction, and for inputs the same role. Graph matching uses
// pointer identity; SameSlot is for connectors recreated elsewhere.
func SameSlot(a, b Connector) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Direction() != b.Direction() || a.Identity() != b.Identity() || !a.Owner().Equal(b.Owner()) {
		return false
	}
	ai, aok := a.(*Input)
	bi, bok := b.(*Input)
	if aok && bok {
		return ai.Override() == bi.Override()
	}
	return true
}
