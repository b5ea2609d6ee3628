package env_vars

import (
	"context"
	"os"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Lookup replaces os.LookupEnv; tests use it to avoid touching the
	// process environment.
	Lookup func(name string) (string, bool)
}

// Input names the variable to read.
type Input struct {
	Name string `cty:"Name"`
}

// Output defines the data structure returned by env.lookup.
type Output struct {
	Value string `cty:"Value"`
	Found bool   `cty:"Found"`
}

var (
	inputRecord  = schema.New(schema.F("Name", cty.String))
	outputRecord = schema.New(schema.F("Value", cty.String), schema.F("Found", cty.Bool))
)

// Register registers the kind with the catalog.
func (m *Module) Register(r *registry.Registry) {
	lookup := m.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	r.Register(registry.Transform("env.lookup",
		"Reads one environment variable. Found is false when it is unset.",
		codec.Gocty[Input](inputRecord), codec.Gocty[Output](outputRecord),
		func(_ context.Context, in Input) (Output, error) {
			v, ok := lookup(in.Name)
			return Output{Value: v, Found: ok}, nil
		}))
}
