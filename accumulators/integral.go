package accumulators

import (
	"fmt"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
)

// IntegralBuffer holds a running sum in the 64-bit signed integer domain
type IntegralBuffer struct {
	sum   int64
	empty bool
}

// IsEmpty returns true iff no non-null value has been folded into this buffer
func (b *IntegralBuffer) IsEmpty() bool {
	return b.empty
}

// Sum returns the running sum held by this buffer
func (b *IntegralBuffer) Sum() int64 {
	return b.sum
}

// IntegralSum sums signed integer columns. Overflow wraps silently.
type IntegralSum struct {
	mode    sumagg.Mode
	input   *integralReader
	partial *integralReader
}

// Kind identifies the numeric domain of this Evaluator
func (s *IntegralSum) Kind() sumagg.EvaluatorKind {
	return sumagg.IntegralKind
}

// Mode returns the Mode this Evaluator was last initialized for
func (s *IntegralSum) Mode() sumagg.Mode {
	return s.mode
}

// Init binds the input type of this Evaluator, returning the output type. Once an
// input type has been bound, later calls only update the Mode.
func (s *IntegralSum) Init(mode sumagg.Mode, argTypes ...sumagg.ColumnType) (sumagg.ColumnType, error) {
	if len(argTypes) != 1 {
		return nil, errors.ArityError{Context: "call", Expected: 1, Actual: len(argTypes)}
	}
	if s.input == nil {
		input, err := newIntegralReader(argTypes[0])
		if err != nil {
			return nil, err
		}
		s.input = input
		s.partial, _ = newIntegralReader(&sumagg.Int64ColumnType{})
	}
	s.mode = mode
	return &sumagg.Int64ColumnType{}, nil
}

// NewBuffer allocates an empty IntegralBuffer
func (s *IntegralSum) NewBuffer() sumagg.AggregationBuffer {
	buf := &IntegralBuffer{}
	s.reset(buf)
	return buf
}

// Reset returns a buffer to the empty state
func (s *IntegralSum) Reset(buf sumagg.AggregationBuffer) error {
	ib, err := s.buffer(buf)
	if err != nil {
		return err
	}
	s.reset(ib)
	return nil
}

// Accumulate folds the single argument value of a row into a buffer. NULLs are skipped.
func (s *IntegralSum) Accumulate(buf sumagg.AggregationBuffer, values []interface{}) error {
	if len(values) != 1 {
		return errors.ArityError{Context: "row", Expected: 1, Actual: len(values)}
	}
	ib, err := s.buffer(buf)
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
	ib.sum += v
	ib.empty = false
	return nil
}

// MergePartial folds a partial produced by EmitPartial into a buffer. A nil partial is a no-op.
func (s *IntegralSum) MergePartial(buf sumagg.AggregationBuffer, partial interface{}) error {
	ib, err := s.buffer(buf)
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
	ib.sum += v
	ib.empty = false
	return nil
}

// EmitPartial produces a partial result. Partials share the representation of final values.
func (s *IntegralSum) EmitPartial(buf sumagg.AggregationBuffer) (interface{}, error) {
	return s.EmitFinal(buf)
}

// EmitFinal produces nil for an empty buffer, or the sum as an int64
func (s *IntegralSum) EmitFinal(buf sumagg.AggregationBuffer) (interface{}, error) {
	ib, err := s.buffer(buf)
	if err != nil {
		return nil, err
	}
	if ib.empty {
		return nil, nil
	}
	return ib.sum, nil
}

func (s *IntegralSum) reset(ib *IntegralBuffer) {
	ib.sum = 0
	ib.empty = true
}

func (s *IntegralSum) buffer(buf sumagg.AggregationBuffer) (*IntegralBuffer, error) {
	if s.input == nil {
		return nil, errors.UninitializedError{}
	}
	ib, ok := buf.(*IntegralBuffer)
	if !ok {
		return nil, errors.IncompatibleBufferError{Expected: "IntegralBuffer", Actual: fmt.Sprintf("%T", buf)}
	}
	return ib, nil
}
