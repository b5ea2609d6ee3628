// Package document holds helpers around cty.Value, the uniform representation
// every connector carries.
//
// A document is either a primitive (string, number, bool), an object whose
// attributes are addressed by name, or a list/tuple. cty.NilVal stands for
// "no value" and is distinct from every real document, including typed nulls
// and the empty object.
package document

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// IsAbsent reports whether v is the "no value" marker.
func IsAbsent(v cty.Value) bool {
	return v == cty.NilVal
}

// Equal reports whether two documents are structurally identical. Two absent
// values are equal; an absent value never equals a present one.
func Equal(a, b cty.Value) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return IsAbsent(a) && IsAbsent(b)
	}
	return a.RawEquals(b)
}

// Field returns the named attribute of an object document.
func Field(doc cty.Value, name string) (cty.Value, bool) {
	if IsAbsent(doc) || doc.IsNull() || !doc.IsKnown() || !doc.Type().IsObjectType() {
		return cty.NilVal, false
	}
	if !doc.Type().HasAttribute(name) {
		return cty.NilVal, false
	}
	return doc.GetAttr(name), true
}

// FromNative converts the loosely typed values produced by generic decoders
// (YAML, JSON) into a document. Maps become objects, slices become tuples
// and every numeric kind becomes cty.Number.
func FromNative(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return x, nil
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case uint64:
		return cty.NumberUIntVal(x), nil
	case float64:
		return cty.NumberFloatVal(x), nil
	case *big.Float:
		return cty.NumberVal(x), nil
	case []any:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(x))
		for i, e := range x {
			ev, err := FromNative(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(x))
		for k, e := range x {
			ev, err := FromNative(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("attribute %q: %w", k, err)
			}
			attrs[k] = ev
		}
		return cty.ObjectVal(attrs), nil
	default:
		ty, err := gocty.ImpliedType(v)
		if err != nil {
			return cty.NilVal, fmt.Errorf("unable to infer document type for %T: %w", v, err)
		}
		return gocty.ToCtyValue(v, ty)
	}
}

// ToNative recursively converts a document into plain Go values: strings,
// float64, bools, []any and map[string]any. Null, unknown and absent values
// become nil.
func ToNative(v cty.Value) (any, error) {
	if IsAbsent(v) || v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, val := it.Element()
			nativeVal, err := ToNative(val)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nativeVal)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		goMap := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, val := it.Element()
			keyStr := key.AsString()
			nativeVal, err := ToNative(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", keyStr, err)
			}
			goMap[keyStr] = nativeVal
		}
		return goMap, nil

	default:
		return nil, fmt.Errorf("unsupported document type: %s", ty.FriendlyName())
	}
}

// MarshalJSON renders a document as JSON. Absent values render as null.
func MarshalJSON(v cty.Value) ([]byte, error) {
	if IsAbsent(v) {
		return []byte("null"), nil
	}
	return ctyjson.Marshal(v, v.Type())
}

// AttributeNames returns the attribute names of an object document in
// lexical order.
func AttributeNames(doc cty.Value) []string {
	if IsAbsent(doc) || !doc.Type().IsObjectType() {
		return nil
	}
	names := make([]string, 0, len(doc.Type().AttributeTypes()))
	for name := range doc.Type().AttributeTypes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
