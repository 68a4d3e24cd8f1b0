package errors

import (
	"fmt"
)

// ArityError occurs when an aggregation call, or a Row handed to it, does not have exactly the expected number of arguments
type ArityError struct {
	Context  string // Context is "call" for argument type lists, or "row" for Row values
	Expected int
	Actual   int
}

// Error returns a textual representation of this ArityError
func (e ArityError) Error() string {
	return fmt.Sprintf("SUM expects exactly %d %s argument(s), got %d", e.Expected, e.Context, e.Actual)
}

// TypeCategoryError occurs when an aggregation argument is not of a primitive type
type TypeCategoryError struct {
	Position int
	TypeName string
}

// Error returns a textual representation of this TypeCategoryError
func (e TypeCategoryError) Error() string {
	return fmt.Sprintf("SUM argument %d must be of a primitive type, got %s", e.Position, e.TypeName)
}

// UnsupportedTypeError occurs when an aggregation argument is primitive, but has no accumulator
type UnsupportedTypeError struct {
	Position int
	TypeName string
}

// Error returns a textual representation of this UnsupportedTypeError
func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("SUM argument %d has unsupported type %s", e.Position, e.TypeName)
}

// IncompatibleBufferError occurs when an Evaluator is handed a buffer allocated by a different kind of Evaluator
type IncompatibleBufferError struct {
	Expected string
	Actual   string
}

// Error returns a textual representation of this IncompatibleBufferError
func (e IncompatibleBufferError) Error() string {
	return fmt.Sprintf("Incoming buffer is not a %s (was %s)", e.Expected, e.Actual)
}

// ValueTypeError occurs when a non-null value cannot be read in an Evaluator's numeric domain
type ValueTypeError struct {
	Value  interface{}
	Domain string
	Err    error
}

// Error returns a textual representation of this ValueTypeError
func (e ValueTypeError) Error() string {
	return fmt.Sprintf("Value %#v cannot be read as %s: %v", e.Value, e.Domain, e.Err)
}

// Unwrap returns the underlying conversion error
func (e ValueTypeError) Unwrap() error {
	return e.Err
}

// UninitializedError occurs when an Evaluator is used before Init has bound its input type
type UninitializedError struct{}

// Error returns a textual representation of this UninitializedError
func (e UninitializedError) Error() string {
	return "Evaluator has not been initialized"
}

// CorruptPartialError occurs when serialized partial data cannot be decoded
type CorruptPartialError struct{ Reason string }

// Error returns a textual representation of this CorruptPartialError
func (e CorruptPartialError) Error() string {
	return fmt.Sprintf("Corrupt partial data: %s", e.Reason)
}

// ModeError occurs when an Evaluator is asked for an operation its Mode does not perform
type ModeError struct {
	Operation string
	Mode      string
}

// Error returns a textual representation of this ModeError
func (e ModeError) Error() string {
	return fmt.Sprintf("Evaluator initialized for %s cannot %s", e.Mode, e.Operation)
}
