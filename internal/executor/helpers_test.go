package executor

import (
	"context"
	"testing"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/metrics"
	"github.com/specialistvlad/wavegrid/internal/node"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/specialistvlad/wavegrid/internal/transform"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type num struct {
	Value float64 `cty:"Value"`
}

type pair struct {
	A float64 `cty:"A"`
	B float64 `cty:"B"`
}

type total struct {
	Sum float64 `cty:"Sum"`
}

var (
	numRecord   = schema.New(schema.F("Value", cty.Number))
	pairRecord  = schema.New(schema.F("A", cty.Number), schema.F("B", cty.Number))
	totalRecord = schema.New(schema.F("Sum", cty.Number))
)

type numNode = transform.Node[num, num]

func newNum(t *testing.T, id string, fn transform.ProcessFunc[num, num]) *numNode {
	t.Helper()
	n, err := transform.New(nodeid.MustParse(id), "test.num",
		codec.Gocty[num](numRecord), codec.Gocty[num](numRecord), fn, transform.WithoutOverrides())
	require.NoError(t, err)
	return n
}

func addOne(_ context.Context, in num) (num, error) {
	return num{Value: in.Value + 1}, nil
}

func newSum(t *testing.T, id string) *transform.Node[pair, total] {
	t.Helper()
	n, err := transform.New(nodeid.MustParse(id), "test.sum",
		codec.Gocty[pair](pairRecord), codec.Gocty[total](totalRecord),
		func(_ context.Context, in pair) (total, error) { return total{Sum: in.A + in.B}, nil },
		transform.WithoutOverrides())
	require.NoError(t, err)
	return n
}

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func newTestExecutor(opts ...Option) (*Executor, *metrics.Registry) {
	reg := metrics.NewRegistry()
	return New(append([]Option{WithMetrics(reg)}, opts...)...), reg
}

func nodes(ns ...node.Node) []node.Node { return ns }

func float(t *testing.T, v cty.Value) float64 {
	t.Helper()
	require.False(t, v == cty.NilVal, "value is absent")
	f, _ := v.AsBigFloat().Float64()
	return f
}
