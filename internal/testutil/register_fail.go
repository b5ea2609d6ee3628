package testutil

import (
	"context"
	"errors"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// ErrMockFailure is returned by every "test.fail" evaluation.
var ErrMockFailure = errors.New("mock failure")

// FailModule registers "test.fail", a kind whose process always fails.
type FailModule struct{}

type failRecord struct {
	Value string `cty:"Value"`
}

// Register registers the "test.fail" kind.
func (m *FailModule) Register(r *registry.Registry) {
	record := schema.New(schema.F("Value", cty.String))
	r.Register(registry.Transform("test.fail", "Always fails.",
		codec.Gocty[failRecord](record), codec.Gocty[failRecord](record),
		func(context.Context, failRecord) (failRecord, error) { return failRecord{}, ErrMockFailure }))
}
