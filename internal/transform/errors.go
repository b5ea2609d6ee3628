package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrSerialization matches every *SerializationError.
	ErrSerialization = errors.New("serialization failed")
	// ErrProcessing matches every *ProcessingError.
	ErrProcessing = errors.New("processing failed")
)

// Stage names the side of the node a serialization error happened on.
type Stage string

const (
	StageInput  Stage = "input"
	StageOutput Stage = "output"
)

// SerializationError reports that inputs could not be decoded into the
// node's input record, or that its result could not be encoded.
type SerializationError struct {
	Node  string
	Stage Stage
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("node %s: %s serialization: %v", e.Node, e.Stage, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }

// ProcessingError wraps a failure raised by the node's process function,
// including a recovered panic.
type ProcessingError struct {
	Node string
	Err  error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("node %s: processing: %v", e.Node, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

func (e *ProcessingError) Is(target error) bool { return target == ErrProcessing }
