// Package codec bridges strongly typed Go values and the uniform document
// representation connectors carry.
//
// Every codec satisfies the round-trip law: Deserialize(Serialize(v)) is
// semantically equal to v.
package codec

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/wavegrid/internal/document"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrAbsent is returned when a codec is asked to decode the "no value" marker.
var ErrAbsent = errors.New("document is absent")

// Codec converts between T and its document form.
type Codec[T any] interface {
	// Schema returns the declared record layout of T.
	Schema() schema.Record
	Serialize(v T) (cty.Value, error)
	Deserialize(doc cty.Value) (T, error)
}

// Gocty returns a codec for struct types tagged with `cty:"Field"`. The
// struct must carry one tagged field for every field of the record.
func Gocty[T any](record schema.Record) Codec[T] {
	return &goctyCodec[T]{record: record, ty: record.Type()}
}

type goctyCodec[T any] struct {
	record schema.Record
	ty     cty.Type
}

func (c *goctyCodec[T]) Schema() schema.Record { return c.record }

func (c *goctyCodec[T]) Serialize(v T) (cty.Value, error) {
	doc, err := gocty.ToCtyValue(v, c.ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("serializing %T: %w", v, err)
	}
	return doc, nil
}

func (c *goctyCodec[T]) Deserialize(doc cty.Value) (T, error) {
	var out T
	if document.IsAbsent(doc) {
		return out, ErrAbsent
	}
	converted, err := convert.Convert(doc, c.ty)
	if err != nil {
		return out, fmt.Errorf("document does not match %s: %w", c.record, err)
	}
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return out, fmt.Errorf("deserializing into %T: %w", out, err)
	}
	return out, nil
}

// SerializeFunc and DeserializeFunc are the hand-written halves of a codec.
type (
	SerializeFunc[T any]   func(v T) (cty.Value, error)
	DeserializeFunc[T any] func(doc cty.Value) (T, error)
)

// Funcs builds a codec from hand-written conversion functions. Deserialize
// receives documents already converted to the record's type.
func Funcs[T any](record schema.Record, ser SerializeFunc[T], de DeserializeFunc[T]) Codec[T] {
	return &funcCodec[T]{record: record, ty: record.Type(), ser: ser, de: de}
}

type funcCodec[T any] struct {
	record schema.Record
	ty     cty.Type
	ser    SerializeFunc[T]
	de     DeserializeFunc[T]
}

func (c *funcCodec[T]) Schema() schema.Record { return c.record }

func (c *funcCodec[T]) Serialize(v T) (cty.Value, error) {
	return c.ser(v)
}

func (c *funcCodec[T]) Deserialize(doc cty.Value) (T, error) {
	var zero T
	if document.IsAbsent(doc) {
		return zero, ErrAbsent
	}
	converted, err := convert.Convert(doc, c.ty)
	if err != nil {
		return zero, fmt.Errorf("document does not match %s: %w", c.record, err)
	}
	return c.de(converted)
}

// Check verifies that a serialized document carries every field the record
// declares. It is used at node construction time.
func Check(record schema.Record, doc cty.Value) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if document.IsAbsent(doc) || doc.IsNull() || !doc.Type().IsObjectType() {
		return fmt.Errorf("serialized form of %s is not an object", record)
	}
	for _, f := range record.Fields {
		if !doc.Type().HasAttribute(f.Name) {
			return fmt.Errorf("serialized form is missing field %q", f.Name)
		}
	}
	return nil
}
