package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(cty.NilVal))
	assert.False(t, IsAbsent(cty.NullVal(cty.String)), "a typed null is a value")
	assert.False(t, IsAbsent(cty.EmptyObjectVal), "the empty object is a value")
	assert.False(t, IsAbsent(cty.ObjectVal(map[string]cty.Value{"A": cty.NumberIntVal(1)})))
}

func TestEqual(t *testing.T) {
	a := cty.ObjectVal(map[string]cty.Value{"Value": cty.NumberIntVal(5)})
	b := cty.ObjectVal(map[string]cty.Value{"Value": cty.NumberIntVal(5)})
	c := cty.ObjectVal(map[string]cty.Value{"Value": cty.NumberIntVal(6)})

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.True(t, Equal(cty.NilVal, cty.NilVal))
	assert.False(t, Equal(cty.NilVal, a))
	assert.False(t, Equal(a, cty.NilVal))
}

func TestField(t *testing.T) {
	doc := cty.ObjectVal(map[string]cty.Value{
		"Data1": cty.NumberIntVal(5),
		"Data2": cty.ObjectVal(map[string]cty.Value{"Inner": cty.NumberFloatVal(10)}),
	})

	v, ok := Field(doc, "Data1")
	require.True(t, ok)
	assert.True(t, v.RawEquals(cty.NumberIntVal(5)))

	_, ok = Field(doc, "Missing")
	assert.False(t, ok)

	_, ok = Field(cty.NilVal, "Data1")
	assert.False(t, ok)

	_, ok = Field(cty.StringVal("scalar"), "Data1")
	assert.False(t, ok)
}

func TestFromNative(t *testing.T) {
	v, err := FromNative(map[string]any{
		"Value": 5,
		"Name":  "probe",
		"Flags": []any{true, false},
		"Ratio": 0.5,
		"Empty": map[string]any{},
	})
	require.NoError(t, err)

	assert.True(t, v.GetAttr("Value").RawEquals(cty.NumberIntVal(5)))
	assert.Equal(t, "probe", v.GetAttr("Name").AsString())
	assert.Equal(t, 2, v.GetAttr("Flags").LengthInt())
	assert.True(t, v.GetAttr("Ratio").RawEquals(cty.NumberFloatVal(0.5)))
	assert.True(t, v.GetAttr("Empty").RawEquals(cty.EmptyObjectVal))

	null, err := FromNative(nil)
	require.NoError(t, err)
	assert.True(t, null.IsNull())
	assert.False(t, IsAbsent(null))
}

func TestToNative(t *testing.T) {
	doc := cty.ObjectVal(map[string]cty.Value{
		"Data1": cty.NumberIntVal(5),
		"Data2": cty.ObjectVal(map[string]cty.Value{"Inner": cty.NumberFloatVal(10)}),
		"Tags":  cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
		"On":    cty.True,
		"Gone":  cty.NullVal(cty.String),
	})

	native, err := ToNative(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"Data1": 5.0,
		"Data2": map[string]any{"Inner": 10.0},
		"Tags":  []any{"a", "b"},
		"On":    true,
		"Gone":  nil,
	}, native)

	absent, err := ToNative(cty.NilVal)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMarshalJSON(t *testing.T) {
	out, err := MarshalJSON(cty.ObjectVal(map[string]cty.Value{"Inner": cty.NumberFloatVal(10)}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Inner":10}`, string(out))

	out, err = MarshalJSON(cty.NilVal)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestAttributeNames(t *testing.T) {
	doc := cty.ObjectVal(map[string]cty.Value{"b": cty.True, "a": cty.False})
	assert.Equal(t, []string{"a", "b"}, AttributeNames(doc))
	assert.Nil(t, AttributeNames(cty.NilVal))
}
