package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type valueIn struct {
	Value int `cty:"Value"`
}

type innerData struct {
	Inner float64 `cty:"Inner"`
}

type expanded struct {
	Data1 int       `cty:"Data1"`
	Data2 innerData `cty:"Data2"`
}

var (
	valueRecord    = schema.New(schema.F("Value", cty.Number))
	expandedRecord = schema.New(
		schema.F("Data1", cty.Number),
		schema.F("Data2", cty.Object(map[string]cty.Type{"Inner": cty.Number})),
	)
)

func expand(_ context.Context, in valueIn) (expanded, error) {
	return expanded{Data1: in.Value, Data2: innerData{Inner: float64(in.Value) * 2}}, nil
}

func newExpand(t *testing.T, opts ...Option) *Node[valueIn, expanded] {
	t.Helper()
	n, err := New(nodeid.MustParse("probe"), "test.expand",
		codec.Gocty[valueIn](valueRecord), codec.Gocty[expanded](expandedRecord), expand, opts...)
	require.NoError(t, err)
	return n
}

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func identities(ins []*connector.Input) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.Identity()
	}
	return out
}

func TestNew_DerivesConnectorsFromSchemas(t *testing.T) {
	n := newExpand(t)

	assert.Equal(t, []string{"Value"}, identities(n.Arguments()))
	assert.Equal(t, []string{"Data1", "Data2"}, identities(n.Overrides()))
	assert.Equal(t, []string{"Value", "Data1", "Data2"}, identities(n.Inputs()))

	require.Len(t, n.Outputs(), 2)
	assert.Equal(t, "Data1", n.Outputs()[0].Identity())
	assert.Equal(t, "Data2", n.Outputs()[1].Identity())
	for _, out := range n.Outputs() {
		assert.False(t, out.HasValue())
	}
	assert.Equal(t, "test.expand", n.Kind())
	assert.Equal(t, "probe", n.Address().String())
}

func TestNew_SharedFieldNameYieldsTwoInputs(t *testing.T) {
	n, err := New(nodeid.MustParse("root"), "test.identity",
		codec.Gocty[valueIn](valueRecord), codec.Gocty[valueIn](valueRecord),
		func(_ context.Context, in valueIn) (valueIn, error) { return in, nil })
	require.NoError(t, err)

	require.Len(t, n.Inputs(), 2)
	assert.Equal(t, "Value", n.Inputs()[0].Identity())
	assert.Equal(t, "Value", n.Inputs()[1].Identity())
	assert.False(t, n.Inputs()[0].Override())
	assert.True(t, n.Inputs()[1].Override())
}

func TestNew_WithoutOverrides(t *testing.T) {
	n := newExpand(t, WithoutOverrides())
	assert.Empty(t, n.Overrides())
	assert.Equal(t, []string{"Value"}, identities(n.Inputs()))
}

func TestNew_Rejects(t *testing.T) {
	partial := codec.Funcs(valueRecord,
		func(valueIn) (cty.Value, error) { return cty.EmptyObjectVal, nil },
		func(cty.Value) (valueIn, error) { return valueIn{}, nil },
	)

	_, err := New(nodeid.MustParse("probe"), "k", partial, codec.Gocty[expanded](expandedRecord), expand)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing field "Value"`)

	_, err = New[valueIn, expanded](nodeid.MustParse("probe"), "k", codec.Gocty[valueIn](valueRecord), codec.Gocty[expanded](expandedRecord), nil)
	assert.Error(t, err)

	_, err = New(nodeid.Address{}, "k", codec.Gocty[valueIn](valueRecord), codec.Gocty[expanded](expandedRecord), expand)
	assert.Error(t, err)
}

func TestEvaluate_ExpandsValue(t *testing.T) {
	// --- Arrange ---
	n := newExpand(t)
	n.Arguments()[0].Set(cty.NumberIntVal(5))

	// --- Act ---
	err := n.Evaluate(testCtx())

	// --- Assert ---
	require.NoError(t, err)
	assert.True(t, n.Outputs()[0].Value().RawEquals(cty.NumberIntVal(5)))
	inner := n.Outputs()[1].Value().GetAttr("Inner")
	f, _ := inner.AsBigFloat().Float64()
	assert.Equal(t, 10.0, f)
}

func TestEvaluate_MissingArgumentIsSerializationError(t *testing.T) {
	n := newExpand(t)

	err := n.Evaluate(testCtx())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerialization))
	var serr *SerializationError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageInput, serr.Stage)
	assert.Equal(t, "probe", serr.Node)
	for _, out := range n.Outputs() {
		assert.False(t, out.HasValue(), "outputs stay untouched on failure")
	}
}

func TestEvaluate_ProcessFailure(t *testing.T) {
	boom := errors.New("boom")
	n, err := New(nodeid.MustParse("probe"), "k",
		codec.Gocty[valueIn](valueRecord), codec.Gocty[expanded](expandedRecord),
		func(context.Context, valueIn) (expanded, error) { return expanded{}, boom })
	require.NoError(t, err)
	n.Arguments()[0].Set(cty.NumberIntVal(1))

	err = n.Evaluate(testCtx())

	assert.True(t, errors.Is(err, ErrProcessing))
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, ErrSerialization))
}

func TestEvaluate_ProcessPanicIsProcessingError(t *testing.T) {
	n, err := New(nodeid.MustParse("probe"), "k",
		codec.Gocty[valueIn](valueRecord), codec.Gocty[expanded](expandedRecord),
		func(context.Context, valueIn) (expanded, error) { panic("bad input") })
	require.NoError(t, err)
	n.Arguments()[0].Set(cty.NumberIntVal(1))

	err = n.Evaluate(testCtx())

	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Error(), "bad input")
}

func TestEvaluate_OutputSerializationFailure(t *testing.T) {
	failing := codec.Funcs(expandedRecord,
		func(v expanded) (cty.Value, error) {
			if v.Data1 != 0 {
				return cty.NilVal, errors.New("cannot encode")
			}
			return cty.ObjectVal(map[string]cty.Value{
				"Data1": cty.NumberIntVal(0),
				"Data2": cty.ObjectVal(map[string]cty.Value{"Inner": cty.NumberIntVal(0)}),
			}), nil
		},
		func(cty.Value) (expanded, error) { return expanded{}, nil },
	)
	n, err := New(nodeid.MustParse("probe"), "k", codec.Gocty[valueIn](valueRecord), failing, expand)
	require.NoError(t, err)
	n.Arguments()[0].Set(cty.NumberIntVal(3))

	err = n.Evaluate(testCtx())

	var serr *SerializationError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageOutput, serr.Stage)
}

func TestEvaluate_OverridePinsOutputField(t *testing.T) {
	n := newExpand(t)
	n.Arguments()[0].Set(cty.NumberIntVal(5))
	n.Overrides()[0].Set(cty.NumberIntVal(42))

	require.NoError(t, n.Evaluate(testCtx()))

	assert.True(t, n.Outputs()[0].Value().RawEquals(cty.NumberIntVal(42)))
	f, _ := n.Outputs()[1].Value().GetAttr("Inner").AsBigFloat().Float64()
	assert.Equal(t, 10.0, f, "fields without an override keep the computed value")
}

func TestEvaluate_OverrideIsConvertedToOutputType(t *testing.T) {
	n := newExpand(t)
	n.Arguments()[0].Set(cty.NumberIntVal(5))
	n.Overrides()[0].Set(cty.StringVal("7"))

	require.NoError(t, n.Evaluate(testCtx()))

	assert.Equal(t, cty.Number, n.Outputs()[0].Value().Type())
	assert.True(t, n.Outputs()[0].Value().RawEquals(cty.NumberIntVal(7)))
}

func TestEvaluate_MismatchedOverrideIsSerializationError(t *testing.T) {
	n := newExpand(t)
	n.Arguments()[0].Set(cty.NumberIntVal(5))
	n.Overrides()[0].Set(cty.StringVal("not a number"))

	err := n.Evaluate(testCtx())

	var serr *SerializationError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, StageOutput, serr.Stage)
	assert.Contains(t, serr.Error(), `override "Data1"`)
	for _, out := range n.Outputs() {
		assert.False(t, out.HasValue(), "outputs stay untouched on failure")
	}
}

func TestEvaluate_CanceledContext(t *testing.T) {
	n := newExpand(t)
	n.Arguments()[0].Set(cty.NumberIntVal(5))
	ctx, cancel := context.WithCancel(testCtx())
	cancel()

	err := n.Evaluate(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, ErrProcessing))
	assert.False(t, n.Outputs()[0].HasValue())
}

func TestEvaluate_NotifiesOutputSubscribers(t *testing.T) {
	n := newExpand(t)
	n.Arguments()[0].Set(cty.NumberIntVal(2))
	var seen []string
	for _, out := range n.Outputs() {
		out.Subscribe(func(c connector.Change) { seen = append(seen, c.Connector.Identity()) })
	}

	require.NoError(t, n.Evaluate(testCtx()))
	assert.Equal(t, []string{"Data1", "Data2"}, seen)
}
