package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

var probeAddress = nodeid.MustParse("registry_probe")

// Validate performs a strict parity check between each kind's declared
// records and the connectors its factory actually builds.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, k := range r.Kinds() {
		if err := k.Input.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("kind '%s': input record: %v", k.Name, err))
			continue
		}
		if err := k.Output.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("kind '%s': output record: %v", k.Name, err))
			continue
		}
		for _, f := range append(append([]schema.Field{}, k.Input.Fields...), k.Output.Fields...) {
			if f.Type.Equals(cty.DynamicPseudoType) {
				logger.Warn("Kind declares a field of type 'any', which disables static type checking.", "kind", k.Name, "field", f.Name)
			}
		}

		n, err := k.New(probeAddress)
		if err != nil {
			errs = append(errs, fmt.Sprintf("kind '%s': factory failed: %v", k.Name, err))
			continue
		}
		if n.Kind() != k.Name {
			errs = append(errs, fmt.Sprintf("kind '%s': factory builds nodes of kind '%s'", k.Name, n.Kind()))
		}

		args := make(map[string]bool)
		for _, in := range node.ArgumentInputs(n) {
			args[in.Identity()] = true
		}
		for _, name := range k.Input.Names() {
			if !args[name] {
				errs = append(errs, fmt.Sprintf("kind '%s': input field '%s' has no argument connector", k.Name, name))
			}
		}
		for _, name := range k.Output.Names() {
			if _, ok := node.FindOutput(n, name); !ok {
				errs = append(errs, fmt.Sprintf("kind '%s': output field '%s' has no output connector", k.Name, name))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
