package accumulators

import (
	"fmt"

	"github.com/go-sif/sumagg"
)

// Adder resolves and initializes a SUM over the given argument types, returning a factory
// for Sum Accumulators. Argument errors are raised here, before any row is seen.
func Adder(mode sumagg.Mode, argTypes ...sumagg.ColumnType) (sumagg.AccumulatorFactory, error) {
	eval, _, err := Bind(mode, argTypes...)
	if err != nil {
		return nil, err
	}
	return func() sumagg.Accumulator {
		return NewSum(eval)
	}, nil
}

// NewSum returns an empty Sum Accumulator driven by an initialized Evaluator
func NewSum(eval sumagg.Evaluator) *Sum {
	return &Sum{eval: eval, buf: eval.NewBuffer()}
}

// Sum pairs an Evaluator with a buffer it owns, summing Rows
type Sum struct {
	eval sumagg.Evaluator
	buf  sumagg.AggregationBuffer
}

// Evaluator returns the Evaluator driving this Sum
func (a *Sum) Evaluator() sumagg.Evaluator {
	return a.eval
}

// IsEmpty returns true iff no non-null value has been summed since the last Reset
func (a *Sum) IsEmpty() bool {
	return a.buf.IsEmpty()
}

// Reset empties this Sum so that it may be reused for another group or task
func (a *Sum) Reset() error {
	return a.eval.Reset(a.buf)
}

// Accumulate adds a row to this Accumulator
func (a *Sum) Accumulate(row sumagg.Row) error {
	return a.eval.Accumulate(a.buf, row.Values())
}

// MergePartial adds a partial value emitted by another Sum to this one
func (a *Sum) MergePartial(partial interface{}) error {
	return a.eval.MergePartial(a.buf, partial)
}

// Partial returns the partial value of this Sum
func (a *Sum) Partial() (interface{}, error) {
	return a.eval.EmitPartial(a.buf)
}

// Result returns the final value of this Sum, which is nil if no non-null value was summed
func (a *Sum) Result() (interface{}, error) {
	return a.eval.EmitFinal(a.buf)
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o sumagg.Accumulator) error {
	sa, ok := o.(*Sum)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Sum Accumulator")
	}
	partial, err := sa.Partial()
	if err != nil {
		return err
	}
	return a.MergePartial(partial)
}

// ToBytes serializes this Accumulator
func (a *Sum) ToBytes() ([]byte, error) {
	partial, err := a.Partial()
	if err != nil {
		return nil, err
	}
	return EncodePartial(partial)
}

// FromBytes produce a new Accumulator from serialized data
func (a *Sum) FromBytes(buff []byte) (sumagg.Accumulator, error) {
	partial, err := DecodePartial(buff)
	if err != nil {
		return nil, err
	}
	res := NewSum(a.eval)
	if err := res.MergePartial(partial); err != nil {
		return nil, err
	}
	return res, nil
}
