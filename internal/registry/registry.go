package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/schema"
)

// ErrUnknownKind is returned when a grid names a kind nobody registered.
var ErrUnknownKind = errors.New("unknown node kind")

// Factory builds a fresh node of one kind at addr.
type Factory func(addr nodeid.Address) (node.Node, error)

// Kind describes one entry of the catalog.
type Kind struct {
	Name        string
	Description string
	Input       schema.Record
	Output      schema.Record
	New         Factory
}

// Module is the interface that all node kind modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds every registered kind for a single application instance.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// Lookup returns the kind registered under name.
func (r *Registry) Lookup(name string) (*Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[name]
	return k, ok
}

// Kinds returns every registered kind sorted by name.
func (r *Registry) Kinds() []*Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Kind, 0, len(r.kinds))
	for _, k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NewNode builds a node of the named kind.
func (r *Registry) NewNode(kind string, addr nodeid.Address) (node.Node, error) {
	k, ok := r.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	n, err := k.New(addr)
	if err != nil {
		return nil, fmt.Errorf("building %s node %s: %w", kind, addr, err)
	}
	return n, nil
}
