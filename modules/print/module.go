package print

import (
	"context"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/specialistvlad/wavegrid/internal/transform"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Record is both the input and the output of print.log.
type Record struct {
	Value string `cty:"Value"`
}

var record = schema.New(schema.F("Value", cty.String))

// Log logs the value and passes it through unchanged.
func Log(ctx context.Context, in Record) (Record, error) {
	ctxlog.FromContext(ctx).Info("Printing input.", "value", in.Value)
	return in, nil
}

// Register registers the kind with the catalog.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Transform("print.log",
		"Logs Value at info level and passes it through.",
		codec.Gocty[Record](record), codec.Gocty[Record](record), Log,
		transform.WithoutOverrides()))
}
