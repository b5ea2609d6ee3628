package testutil

import "github.com/specialistvlad/wavegrid/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers the given kinds.
type SimpleModule struct {
	Kinds []registry.Kind
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, k := range m.Kinds {
		r.Register(k)
	}
}
