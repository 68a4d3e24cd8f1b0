package accumulators

import (
	"fmt"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
)

// FloatingBuffer holds a running sum in the double precision domain
type FloatingBuffer struct {
	sum   float64
	empty bool
}

// IsEmpty returns true iff no non-null value has been folded into this buffer
func (b *FloatingBuffer) IsEmpty() bool {
	return b.empty
}

// Sum returns the running sum held by this buffer
func (b *FloatingBuffer) Sum() float64 {
	return b.sum
}

// FloatingSum sums floating point columns, with ordinary float64 rounding
type FloatingSum struct {
	mode    sumagg.Mode
	input   *floatingReader
	partial *floatingReader
}

// Kind identifies the numeric domain of this Evaluator
func (s *FloatingSum) Kind() sumagg.EvaluatorKind {
	return sumagg.FloatingKind
}

// Mode returns the Mode this Evaluator was last initialized for
func (s *FloatingSum) Mode() sumagg.Mode {
	return s.mode
}

// Init binds the input type of this Evaluator, returning the output type. Once an
// input type has been bound, later calls only update the Mode.
func (s *FloatingSum) Init(mode sumagg.Mode, argTypes ...sumagg.ColumnType) (sumagg.ColumnType, error) {
	if len(argTypes) != 1 {
		return nil, errors.ArityError{Context: "call", Expected: 1, Actual: len(argTypes)}
	}
	if s.input == nil {
		input, err := newFloatingReader(argTypes[0])
		if err != nil {
			return nil, err
		}
		s.input = input
		s.partial, _ = newFloatingReader(&sumagg.Float64ColumnType{})
	}
	s.mode = mode
	return &sumagg.Float64ColumnType{}, nil
}

// NewBuffer allocates an empty FloatingBuffer
func (s *FloatingSum) NewBuffer() sumagg.AggregationBuffer {
	buf := &FloatingBuffer{}
	s.reset(buf)
	return buf
}

// Reset returns a buffer to the empty state
func (s *FloatingSum) Reset(buf sumagg.AggregationBuffer) error {
	fb, err := s.buffer(buf)
	if err != nil {
		return err
	}
	s.reset(fb)
	return nil
}

// Accumulate folds the single argument value of a row into a buffer. NULLs are skipped.
func (s *FloatingSum) Accumulate(buf sumagg.AggregationBuffer, values []interface{}) error {
	if len(values) != 1 {
		return errors.ArityError{Context: "row", Expected: 1, Actual: len(values)}
	}
	fb, err := s.buffer(buf)
	if err != nil {
		return err
	}
	if !s.mode.ConsumesRows() {
		return errors.ModeError{Operation: "accumulate rows", Mode: s.mode.String()}
	}
	if values[0] == nil {
		return nil
	}
	v, err := s.input.read(values[0])
	if err != nil {
		return err
	}
	fb.sum += v
	fb.empty = false
	return nil
}

// MergePartial folds a partial produced by EmitPartial into a buffer. A nil partial is a no-op.
func (s *FloatingSum) MergePartial(buf sumagg.AggregationBuffer, partial interface{}) error {
	fb, err := s.buffer(buf)
	if err != nil {
		return err
	}
	if partial == nil {
		return nil
	}
	v, err := s.partial.read(partial)
	if err != nil {
		return err
	}
	fb.sum += v
	fb.empty = false
	return nil
}

// EmitPartial produces a partial result. Partials share the representation of final values.
func (s *FloatingSum) EmitPartial(buf sumagg.AggregationBuffer) (interface{}, error) {
	return s.EmitFinal(buf)
}

// EmitFinal produces nil for an empty buffer, or the sum as a float64
func (s *FloatingSum) EmitFinal(buf sumagg.AggregationBuffer) (interface{}, error) {
	fb, err := s.buffer(buf)
	if err != nil {
		return nil, err
	}
	if fb.empty {
		return nil, nil
	}
	return fb.sum, nil
}

func (s *FloatingSum) reset(fb *FloatingBuffer) {
	fb.sum = 0
	fb.empty = true
}

func (s *FloatingSum) buffer(buf sumagg.AggregationBuffer) (*FloatingBuffer, error) {
	if s.input == nil {
		return nil, errors.UninitializedError{}
	}
	fb, ok := buf.(*FloatingBuffer)
	if !ok {
		return nil, errors.IncompatibleBufferError{Expected: "FloatingBuffer", Actual: fmt.Sprintf("%T", buf)}
	}
	return fb, nil
}
