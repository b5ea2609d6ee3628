// Package nodestore defines the interface for recording the mutable execution
// state of nodes during one run.
//
// # Why Node Store Exists
//
// The store keeps per-run bookkeeping (status, produced outputs, errors) apart
// from the graph structure. The graph describes what exists; the store
// describes what happened to it in this run. Connector values themselves live
// on the connectors; the store keeps the copy of the outputs a node produced
// in the wave it ran, so a report can be built after the fact.
//
// # Lifecycle and Usage
//
// The node store is:
//  1. **Created** once per execution (ephemeral, not persistent across runs)
//  2. **Initialized** with every node in Pending status before the first wave
//  3. **Mutated** by the executor as nodes run, complete, fail or are skipped
//  4. **Read** when the executor assembles the run report
//
// # State Transitions
//
// Nodes follow this lifecycle:
//
//	Pending → Running → Completed (with outputs) OR Failed (with error)
//	Pending → Skipped (the run stopped before the node became ready)
package nodestore

import (
	"context"

	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
)

// Store is the interface for managing the mutable execution state of nodes
// during one run.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent reads and writes: every node of
// a wave records its own transitions from its own goroutine.
//
// # Typical Implementation
//
// See internal/inmemorystore for the reference in-memory implementation.
type Store interface {
	// SetStatus updates the execution status of a node.
	SetStatus(ctx context.Context, id nodeid.Address, status node.Status) error

	// GetStatus retrieves the current execution status of a node.
	//
	// Returns StatusPending if no status has been set for this node yet.
	GetStatus(ctx context.Context, id nodeid.Address) (node.Status, error)

	// SetOutputs records the output documents a node produced, keyed by
	// connector identity.
	SetOutputs(ctx context.Context, id nodeid.Address, outputs map[string]cty.Value) error

	// GetOutputs retrieves the recorded outputs of a node.
	//
	// Returns nil if the node hasn't completed yet.
	GetOutputs(ctx context.Context, id nodeid.Address) (map[string]cty.Value, error)

	// SetError records the failure error of a node.
	SetError(ctx context.Context, id nodeid.Address, nodeErr error) error

	// GetError retrieves the recorded error of a failed node.
	//
	// Returns nil if the node succeeded or hasn't executed yet.
	GetError(ctx context.Context, id nodeid.Address) (error, error)

	// Statuses returns the status of every node that has one, keyed by the
	// node's address string.
	Statuses(ctx context.Context) (map[string]node.Status, error)
}
