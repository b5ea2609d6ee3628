// Package text registers string-producing node kinds.
package text

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/registry"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

type Inner struct {
	Inner float64 `cty:"Inner"`
}

// DescribeInput matches the output record of arith.expand.
type DescribeInput struct {
	Data1 int   `cty:"Data1"`
	Data2 Inner `cty:"Data2"`
}

// TextOutput is the output record of every kind in this module.
type TextOutput struct {
	Text string `cty:"Text"`
}

// JoinInput is decoded by hand; Parts may be empty but never absent.
type JoinInput struct {
	Parts     []string
	Separator string
}

var (
	describeInputRecord = schema.New(
		schema.F("Data1", cty.Number),
		schema.F("Data2", cty.Object(map[string]cty.Type{"Inner": cty.Number})),
	)
	joinInputRecord = schema.New(
		schema.F("Parts", cty.List(cty.String)),
		schema.F("Separator", cty.String),
	)
	textRecord = schema.New(schema.F("Text", cty.String))
)

// Describe renders a nested record as one line.
func Describe(_ context.Context, in DescribeInput) (TextOutput, error) {
	return TextOutput{Text: fmt.Sprintf("Data1=%d Inner=%s", in.Data1, strconv.FormatFloat(in.Data2.Inner, 'f', -1, 64))}, nil
}

// Join concatenates Parts with Separator.
func Join(_ context.Context, in JoinInput) (TextOutput, error) {
	return TextOutput{Text: strings.Join(in.Parts, in.Separator)}, nil
}

func serializeJoin(in JoinInput) (cty.Value, error) {
	parts := cty.ListValEmpty(cty.String)
	if len(in.Parts) > 0 {
		vals := make([]cty.Value, len(in.Parts))
		for i, p := range in.Parts {
			vals[i] = cty.StringVal(p)
		}
		parts = cty.ListVal(vals)
	}
	return cty.ObjectVal(map[string]cty.Value{
		"Parts":     parts,
		"Separator": cty.StringVal(in.Separator),
	}), nil
}

func deserializeJoin(doc cty.Value) (JoinInput, error) {
	var out JoinInput
	parts, sep := doc.GetAttr("Parts"), doc.GetAttr("Separator")
	if parts.IsNull() || !parts.IsKnown() {
		return out, errors.New("field Parts is null")
	}
	if sep.IsNull() || !sep.IsKnown() {
		return out, errors.New("field Separator is null")
	}
	for it := parts.ElementIterator(); it.Next(); {
		_, v := it.Element()
		if v.IsNull() {
			return out, errors.New("field Parts contains a null element")
		}
		out.Parts = append(out.Parts, v.AsString())
	}
	out.Separator = sep.AsString()
	return out, nil
}

// Register registers the kinds with the catalog.
func (m *Module) Register(r *registry.Registry) {
	r.Register(registry.Transform("text.describe",
		"Renders Data1 and Data2.Inner as text.",
		codec.Gocty[DescribeInput](describeInputRecord), codec.Gocty[TextOutput](textRecord), Describe))
	r.Register(registry.Transform("text.join",
		"Joins Parts with Separator.",
		codec.Funcs[JoinInput](joinInputRecord, serializeJoin, deserializeJoin), codec.Gocty[TextOutput](textRecord), Join))
}
