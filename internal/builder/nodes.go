package builder

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// createNodes builds one node per declaration, in declaration order. byName
// is keyed by canonical node address.
func createNodes(ctx context.Context, grid *config.Grid, r *registry.Registry) ([]built, map[string]node.Node, error) {
	logger := ctxlog.FromContext(ctx)

	var errs []error
	all := make([]built, 0, len(grid.Nodes))
	byName := make(map[string]node.Node, len(grid.Nodes))
	for _, decl := range grid.Nodes {
		addr, err := nodeid.Parse(decl.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid node name %q: %w", decl.Source, decl.Name, err))
			continue
		}
		if _, exists := byName[addr.String()]; exists {
			errs = append(errs, fmt.Errorf("%s: %w: %q", decl.Source, ErrDuplicateName, decl.Name))
			continue
		}
		kind, ok := r.Lookup(decl.Kind)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w: %q", decl.Source, registry.ErrUnknownKind, decl.Kind))
			continue
		}
		n, err := r.NewNode(decl.Kind, addr)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", decl.Source, err))
			continue
		}
		logger.Debug("Created node.", "node_id", addr.String(), "kind", decl.Kind)
		all = append(all, built{decl: decl, kind: kind, node: n})
		byName[addr.String()] = n
	}
	if err := errors.Join(errs...); err != nil {
		return nil, nil, err
	}
	return all, byName, nil
}

// seedNodes stores the grid's literal values on their connectors. Inputs
// resolve to the argument connector first; overrides only to overrides.
func seedNodes(ctx context.Context, all []built) error {
	var errs []error
	for _, b := range all {
		decl := b.decl
		for _, identity := range sortedKeys(decl.Inputs) {
			in, ok := node.ResolveInput(b.node, identity)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: node %q has no input %q", decl.Source, ErrUnknownConnector, decl.Name, identity))
				continue
			}
			if err := seed(ctx, in, b.fieldType(in), decl.Inputs[identity]); err != nil {
				errs = append(errs, fmt.Errorf("%s: node %q input %q: %w", decl.Source, decl.Name, identity, err))
			}
		}
		for _, identity := range sortedKeys(decl.Overrides) {
			in, ok := node.FindInput(b.node, identity, true)
			if !ok {
				errs = append(errs, fmt.Errorf("%s: %w: node %q has no override %q", decl.Source, ErrUnknownConnector, decl.Name, identity))
				continue
			}
			if err := seed(ctx, in, b.fieldType(in), decl.Overrides[identity]); err != nil {
				errs = append(errs, fmt.Errorf("%s: node %q override %q: %w", decl.Source, decl.Name, identity, err))
			}
		}
	}
	return errors.Join(errs...)
}

// fieldType returns the declared type behind an input connector: the input
// record for arguments, the output record for overrides.
func (b built) fieldType(in *connector.Input) cty.Type {
	record := b.kind.Input
	if in.Override() {
		record = b.kind.Output
	}
	if f, ok := record.Lookup(in.Identity()); ok {
		return f.Type
	}
	return cty.DynamicPseudoType
}

// seed converts v to ty before storing it, so type mistakes surface at
// build time instead of mid-run.
func seed(ctx context.Context, in *connector.Input, ty cty.Type, v cty.Value) error {
	if !ty.Equals(cty.DynamicPseudoType) {
		converted, err := convert.Convert(v, ty)
		if err != nil {
			return fmt.Errorf("%w: want %s: %s", ErrInvalidSeed, schema.TypeString(ty), err)
		}
		v = converted
	}
	in.Set(v)
	ctxlog.FromContext(ctx).Debug("Seeded input.", "connector", in.String())
	return nil
}

func sortedKeys(m map[string]cty.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
