package transform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/wavegrid/internal/codec"
	"github.com/specialistvlad/wavegrid/internal/connector"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/document"
	"github.com/specialistvlad/wavegrid/internal/nodeid"
	"github.com/specialistvlad/wavegrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ProcessFunc computes an output record from an input record. It must be
// pure: no I/O, no shared mutable state. It should return promptly once ctx
// is done.
type ProcessFunc[TIn, TOut any] func(ctx context.Context, in TIn) (TOut, error)

type options struct {
	overrides bool
}

// Option customizes New.
type Option func(*options)

// WithoutOverrides suppresses the override inputs mirrored from TOut.
func WithoutOverrides() Option {
	return func(o *options) { o.overrides = false }
}

// Node is a transformation node. Its connector set is fixed at construction.
type Node[TIn, TOut any] struct {
	addr     nodeid.Address
	kind     string
	inCodec  codec.Codec[TIn]
	outCodec codec.Codec[TOut]
	process  ProcessFunc[TIn, TOut]

	args      []*connector.Input
	overrides []*connector.Input
	inputs    []*connector.Input
	outputs   []*connector.Output
	writers   []connector.Writer
}

// New builds a transformation node at addr. It fails when either record is
// malformed or when the zero value of a record does not serialize to an
// object carrying every declared field.
func New[TIn, TOut any](
	addr nodeid.Address,
	kind string,
	inCodec codec.Codec[TIn],
	outCodec codec.Codec[TOut],
	process ProcessFunc[TIn, TOut],
	opts ...Option,
) (*Node[TIn, TOut], error) {
	if addr.IsZero() {
		return nil, errors.New("transform: node address is empty")
	}
	if inCodec == nil || outCodec == nil {
		return nil, fmt.Errorf("transform: node %s: both codecs are required", addr)
	}
	if process == nil {
		return nil, fmt.Errorf("transform: node %s: process function is nil", addr)
	}

	o := options{overrides: true}
	for _, opt := range opts {
		opt(&o)
	}

	var zeroIn TIn
	inDoc, err := inCodec.Serialize(zeroIn)
	if err != nil {
		return nil, fmt.Errorf("transform: node %s: input record: %w", addr, err)
	}
	if err := codec.Check(inCodec.Schema(), inDoc); err != nil {
		return nil, fmt.Errorf("transform: node %s: input record: %w", addr, err)
	}

	var zeroOut TOut
	outDoc, err := outCodec.Serialize(zeroOut)
	if err != nil {
		return nil, fmt.Errorf("transform: node %s: output record: %w", addr, err)
	}
	if err := codec.Check(outCodec.Schema(), outDoc); err != nil {
		return nil, fmt.Errorf("transform: node %s: output record: %w", addr, err)
	}

	n := &Node[TIn, TOut]{
		addr:     addr,
		kind:     kind,
		inCodec:  inCodec,
		outCodec: outCodec,
		process:  process,
	}

	for _, f := range inCodec.Schema().Fields {
		n.args = append(n.args, connector.NewInput(addr, f.Name))
	}
	for _, f := range outCodec.Schema().Fields {
		if o.overrides {
			n.overrides = append(n.overrides, connector.NewOverrideInput(addr, f.Name))
		}
		out, w := connector.NewOutput(addr, f.Name)
		n.outputs = append(n.outputs, out)
		n.writers = append(n.writers, w)
	}
	n.inputs = make([]*connector.Input, 0, len(n.args)+len(n.overrides))
	n.inputs = append(n.inputs, n.args...)
	n.inputs = append(n.inputs, n.overrides...)

	return n, nil
}

func (n *Node[TIn, TOut]) Address() nodeid.Address      { return n.addr }
func (n *Node[TIn, TOut]) Kind() string                 { return n.kind }
func (n *Node[TIn, TOut]) Inputs() []*connector.Input   { return n.inputs }
func (n *Node[TIn, TOut]) Outputs() []*connector.Output { return n.outputs }

// Arguments returns the required inputs derived from TIn.
func (n *Node[TIn, TOut]) Arguments() []*connector.Input { return n.args }

// Overrides returns the optional inputs mirrored from TOut.
func (n *Node[TIn, TOut]) Overrides() []*connector.Input { return n.overrides }

// InputSchema and OutputSchema describe the node's records.
func (n *Node[TIn, TOut]) InputSchema() schema.Record  { return n.inCodec.Schema() }
func (n *Node[TIn, TOut]) OutputSchema() schema.Record { return n.outCodec.Schema() }

// Evaluate runs one transformation: gather the arguments, decode them, run
// the process function, encode the result, apply overrides and write every
// output whose identity is a field of the result. Output connectors are left
// untouched when any step fails.
func (n *Node[TIn, TOut]) Evaluate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	id := n.addr.String()

	if err := ctx.Err(); err != nil {
		return &ProcessingError{Node: id, Err: err}
	}

	inDoc := n.gather()
	in, err := n.inCodec.Deserialize(inDoc)
	if err != nil {
		return &SerializationError{Node: id, Stage: StageInput, Err: err}
	}

	out, err := n.run(ctx, in)
	if err != nil {
		return &ProcessingError{Node: id, Err: err}
	}

	outDoc, err := n.outCodec.Serialize(out)
	if err != nil {
		return &SerializationError{Node: id, Stage: StageOutput, Err: err}
	}
	if document.IsAbsent(outDoc) || outDoc.IsNull() || !outDoc.Type().IsObjectType() {
		return &SerializationError{Node: id, Stage: StageOutput, Err: errors.New("result is not an object")}
	}

	outDoc, err = n.applyOverrides(ctx, outDoc)
	if err != nil {
		return &SerializationError{Node: id, Stage: StageOutput, Err: err}
	}

	written := 0
	for i, o := range n.outputs {
		if v, ok := document.Field(outDoc, o.Identity()); ok {
			n.writers[i](v)
			written++
		}
	}
	logger.Debug("Node evaluated.", "node_id", id, "kind", n.kind, "outputs_written", written)
	return nil
}

// gather builds the input document from the argument connectors. Absent
// values become typed nulls so the decoder reports them as missing.
func (n *Node[TIn, TOut]) gather() cty.Value {
	fields := n.inCodec.Schema().Fields
	attrs := make(map[string]cty.Value, len(n.args))
	for i, in := range n.args {
		v := in.Value()
		if document.IsAbsent(v) {
			v = cty.NullVal(fields[i].Type)
		}
		attrs[in.Identity()] = v
	}
	return cty.ObjectVal(attrs)
}

func (n *Node[TIn, TOut]) run(ctx context.Context, in TIn) (out TOut, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return n.process(ctx, in)
}

// applyOverrides replaces the fields of doc whose override input holds a
// value. Pinned values are converted to the declared output field type.
func (n *Node[TIn, TOut]) applyOverrides(ctx context.Context, doc cty.Value) (cty.Value, error) {
	record := n.outCodec.Schema()
	var pinned map[string]cty.Value
	for _, o := range n.overrides {
		v := o.Value()
		if document.IsAbsent(v) || !doc.Type().HasAttribute(o.Identity()) {
			continue
		}
		field, ok := record.Lookup(o.Identity())
		if !ok {
			continue
		}
		cv, err := convert.Convert(v, field.Type)
		if err != nil {
			return cty.NilVal, fmt.Errorf("override %q does not match %s: %w", o.Identity(), schema.TypeString(field.Type), err)
		}
		if pinned == nil {
			pinned = doc.AsValueMap()
		}
		pinned[o.Identity()] = cv
		ctxlog.FromContext(ctx).Debug("Output pinned by override.",
			slog.String("node_id", n.addr.String()),
			slog.String("field", o.Identity()),
		)
	}
	if pinned == nil {
		return doc, nil
	}
	return cty.ObjectVal(pinned), nil
}
