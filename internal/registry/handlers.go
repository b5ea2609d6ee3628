package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/transform"
)

// Register adds a kind to the catalog. Registering the same name twice, or a
// kind without a name or factory, is a programming error and panics.
func (r *Registry) Register(k Kind) {
	if k.Name == "" {
		panic("node kind registered without a name")
	}
	if k.New == nil {
		panic(fmt.Sprintf("node kind '%s' registered without a factory", k.Name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.kinds[k.Name]; exists {
		panic(fmt.Sprintf("node kind with name '%s' already registered", k.Name))
	}
	slog.Debug("Registering node kind.", "kind", k.Name)
	r.kinds[k.Name] = &k
}

// Transform describes a kind backed by a transformation node.
func Transform[TIn, TOut any](
	name, description string,
	in codec.Codec[TIn],
	out codec.Codec[TOut],
	process transform.ProcessFunc[TIn, TOut],
	opts ...transform.Option,
) Kind {
	return Kind{
		Name:        name,
		Description: description,
		Input:       in.Schema(),
		Output:      out.Schema(),
		New: func(addr nodeid.Address) (node.Node, error) {
			n, err := transform.New(addr, name, in, out, process, opts...)
			if err != nil {
				return nil, err
			}
			return n, nil
		},
	}
}
