// Package arith registers numeric node kinds.
package arith

import (
	"context"
	"fmt"
	"math"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// ValueInput is the single-number record shared by several kinds.
type ValueInput struct {
	Value float64 `cty:"Value"`
}

// ExpandInput carries the integer expanded by arith.expand.
type ExpandInput struct {
	Value int `cty:"Value"`
}

// Inner is the nested record of ExpandOutput.
type Inner struct {
	Inner float64 `cty:"Inner"`
}

// ExpandOutput copies the input into Data1 and doubles it into Data2.Inner.
type ExpandOutput struct {
	Data1 int   `cty:"Data1"`
	Data2 Inner `cty:"Data2"`
}

// ScaleInput and ScaleOutput define arith.scale.
type ScaleInput struct {
	Value  float64 `cty:"Value"`
	Factor float64 `cty:"Factor"`
}

type ScaleOutput struct {
	Result float64 `cty:"Result"`
}

// SumInput and SumOutput define arith.sum.
type SumInput struct {
	A float64 `cty:"A"`
	B float64 `cty:"B"`
}

type SumOutput struct {
	Sum float64 `cty:"Sum"`
}

var (
	// InnerType is the document type of the Data2 field.
	InnerType = cty.Object(map[string]cty.Type{"Inner": cty.Number})

	valueRecord        = schema.New(schema.F("Value", cty.Number))
	expandOutputRecord = schema.New(schema.F("Data1", cty.Number), schema.F("Data2", InnerType))
	scaleInputRecord   = schema.New(schema.F("Value", cty.Number), schema.F("Factor", cty.Number))
	scaleOutputRecord  = schema.New(schema.F("Result", cty.Number))
	sumInputRecord     = schema.New(schema.F("A", cty.Number), schema.F("B", cty.Number))
	sumOutputRecord    = schema.New(schema.F("Sum", cty.Number))
)

// Expand is the process function of arith.expand.
func Expand(_ context.Context, in ExpandInput) (ExpandOutput, error) {
	return ExpandOutput{Data1: in.Value, Data2: Inner{Inner: float64(in.Value) * 2}}, nil
}

// Sqrt is the process function of arith.sqrt.
func Sqrt(_ context.Context, in ValueInput) (ValueInput, error) {
	if in.Value < 0 {
		return ValueInput{}, fmt.Errorf("square root of negative value %g", in.Value)
	}
	return ValueInput{Value: math.Sqrt(in.Value)}, nil
}

// Scale is the process function of arith.scale.
func Scale(_ context.Context, in ScaleInput) (ScaleOutput, error) {
	return ScaleOutput{Result: in.Value * in.Factor}, nil
}

// Sum is the process function of arith.sum.
func Sum(_ context.Context, in SumInput) (SumOutput, error) {
	return SumOutput{Sum: in.A + in.B}, nil
}

// Register registers the kinds with the catalog.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Transform("arith.expand",
		"Copies Value into Data1 and doubles it into Data2.Inner.",
		codec.Gocty[ExpandInput](valueRecord), codec.Gocty[ExpandOutput](expandOutputRecord), Expand))
	r.Register(registry.Transform("arith.sqrt",
		"Square root of Value. Negative values fail.",
		codec.Gocty[ValueInput](valueRecord), codec.Gocty[ValueInput](valueRecord), Sqrt))
	r.Register(registry.Transform("arith.scale",
		"Multiplies Value by Factor.",
		codec.Gocty[ScaleInput](scaleInputRecord), codec.Gocty[ScaleOutput](scaleOutputRecord), Scale))
	r.Register(registry.Transform("arith.sum",
		"Adds A and B.",
		codec.Gocty[SumInput](sumInputRecord), codec.Gocty[SumOutput](sumOutputRecord), Sum))
}
