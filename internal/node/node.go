// Package node defines the capability surface every computation node in a
// grid exposes, plus the per-run status a node moves through.
package node

import (
	"context"

	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
)

// Node is a single vertex of the execution graph.
//
// Inputs and Outputs return the node's connectors in a stable declared order.
// Evaluate reads the inputs, computes, and writes the outputs; it may be
// called once per wave it is scheduled in and must honor ctx cancellation.
type Node interface {
	Address() nodeid.Address
	// Kind names the catalog entry the node was created from.
	Kind() string
	Inputs() []*connector.Input
	Outputs() []*connector.Output
	Evaluate(ctx context.Context) error
}

// ID returns the canonical string form of the node's address.
func ID(n Node) string {
	return n.Address().String()
}

// FindInput returns the input with the given identity and role.
func FindInput(n Node, identity string, override bool) (*connector.Input, bool) {
	for _, in := range n.Inputs() {
		if in.Identity() == identity && in.Override() == override {
			return in, true
		}
	}
	return nil, false
}

// ResolveInput looks up an input by identity, preferring the argument
// connector and falling back to the override connector.
func ResolveInput(n Node, identity string) (*connector.Input, bool) {
	if in, ok := FindInput(n, identity, false); ok {
		return in, true
	}
	return FindInput(n, identity, true)
}

// FindOutput returns the output with the given identity.
func FindOutput(n Node, identity string) (*connector.Output, bool) {
	for _, out := range n.Outputs() {
		if out.Identity() == identity {
			return out, true
		}
	}
	return nil, false
}

// ArgumentInputs returns the non-override inputs. They must hold a value, or
// be fed by an executed producer, before the node may run.
func ArgumentInputs(n Node) []*connector.Input {
	var required []*connector.Input
	for _, in := range n.Inputs() {
		if !in.Override() {
			required = append(required, in)
		}
	}
	return required
}
