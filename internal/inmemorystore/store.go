package inmemorystore

import (
	"context"
	"maps"
	"sync"

	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/nodestore"
	"github.com/zclconf/go-cty/cty"
)

// Store is an in-memory implementation of nodestore.Store using sync.Map
// for fine-grained concurrent access without global lock contention.
//
// The store maintains three independent sync.Maps:
//   - states: node ID string → node.Status
//   - outputs: node ID string → map[string]cty.Value
//   - errors: node ID string → error
//
// The key space is known up front (every node of the snapshot) while values
// change on every wave, which is the access pattern sync.Map is built for.
type Store struct {
	states  sync.Map
	outputs sync.Map
	errors  sync.Map
}

// New creates a new, empty in-memory node state store.
func New() nodestore.Store {
	return &Store{}
}

// SetStatus updates the execution status of a specific node.
func (s *Store) SetStatus(ctx context.Context, id nodeid.Address, status node.Status) error {
	s.states.Store(id.String(), status)
	return nil
}

// GetStatus retrieves the execution status of a specific node.
// If a status has not been set, it returns StatusPending.
func (s *Store) GetStatus(ctx context.Context, id nodeid.Address) (node.Status, error) {
	status, ok := s.states.Load(id.String())
	if !ok {
		return node.StatusPending, nil
	}
	return status.(node.Status), nil
}

// SetOutputs records a copy of the outputs a node produced.
func (s *Store) SetOutputs(ctx context.Context, id nodeid.Address, outputs map[string]cty.Value) error {
	s.outputs.Store(id.String(), maps.Clone(outputs))
	return nil
}

// GetOutputs retrieves the recorded outputs of a completed node.
func (s *Store) GetOutputs(ctx context.Context, id nodeid.Address) (map[string]cty.Value, error) {
	outputs, ok := s.outputs.Load(id.String())
	if !ok {
		return nil, nil
	}
	return maps.Clone(outputs.(map[string]cty.Value)), nil
}

// SetError records the failure error of a node.
func (s *Store) SetError(ctx context.Context, id nodeid.Address, nodeErr error) error {
	s.errors.Store(id.String(), nodeErr)
	return nil
}

// GetError retrieves the recorded error of a failed node.
func (s *Store) GetError(ctx context.Context, id nodeid.Address) (error, error) {
	err, ok := s.errors.Load(id.String())
	if !ok {
		return nil, nil
	}
	return err.(error), nil
}

// Statuses returns a point-in-time copy of every recorded status.
func (s *Store) Statuses(ctx context.Context) (map[string]node.Status, error) {
	out := make(map[string]node.Status)
	s.states.Range(func(key, value any) bool {
		out[key.(string)] = value.(node.Status)
		return true
	})
	return out, nil
}
