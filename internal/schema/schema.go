// Package schema declares the ordered field layout of the records that flow
// through a node. A Record is written down once next to the Go type it
// describes; connectors are derived from it, never from reflection.
package schema

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/zclconf/go-cty/cty"
)

// Field is one named, typed member of a record.
type Field struct {
	Name        string
	Type        cty.Type
	Description string
}

// Record is an ordered list of fields. The order is the order connectors are
// created in.
type Record struct {
	Fields []Field
}

// New builds a record from its fields.
func New(fields ...Field) Record {
	return Record{Fields: fields}
}

// F is shorthand for a Field without description.
func F(name string, ty cty.Type) Field {
	return Field{Name: name, Type: ty}
}

// Names returns the field names in declared order.
func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a field by name.
func (r Record) Lookup(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Type returns the cty object type equivalent to the record.
func (r Record) Type() cty.Type {
	attrs := make(map[string]cty.Type, len(r.Fields))
	for _, f := range r.Fields {
		attrs[f.Name] = f.Type
	}
	return cty.Object(attrs)
}

// Validate reports empty, duplicate or untyped field names.
func (r Record) Validate() error {
	seen := make(map[string]struct{}, len(r.Fields))
	for i, f := range r.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d has an empty name", i)
		}
		if f.Type == cty.NilType {
			return fmt.Errorf("field %q has no type", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("field %q is declared more than once", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// String renders the record as `{Name type, ...}` using HCL type syntax.
func (r Record) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + " " + TypeString(f.Type)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// TypeString renders ty in HCL type syntax, e.g. "list(string)".
func TypeString(ty cty.Type) string {
	return typeexpr.TypeString(ty)
}
