package util

import (
	"fmt"

	"github.com/go-sif/sumagg"
)

// AccumulateOperation folds a Row into some aggregation state
type AccumulateOperation func(row sumagg.Row) error

// MergeOperation folds a partial value into some aggregation state
type MergeOperation func(partial interface{}) error

// SafeAccumulateOperation wraps an AccumulateOperation such that panics are recovered and nice error messages are constructed.
// Errors are wrapped with %w, so that their types remain matchable.
func SafeAccumulateOperation(accOp AccumulateOperation) (safeAccOp AccumulateOperation) {
	return func(row sumagg.Row) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Accumulate Panic: %w\nRow: %s\n%s", anErr, row.ToString(), GetTrace())
				} else {
					err = fmt.Errorf("Accumulate Panic: %v\nRow: %s\n%s", r, row.ToString(), GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Accumulate Error: %w\nRow: %s", err, row.ToString())
			}
		}()
		err = accOp(row)
		return
	}
}

// SafeMergeOperation wraps a MergeOperation such that panics are recovered and nice error messages are constructed
func SafeMergeOperation(mergeOp MergeOperation) (safeMergeOp MergeOperation) {
	return func(partial interface{}) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Merge Panic: %w\nPartial: %v\n%s", anErr, partial, GetTrace())
				} else {
					err = fmt.Errorf("Merge Panic: %v\nPartial: %v\n%s", r, partial, GetTrace())
				}
			} else if err != nil {
				err = fmt.Errorf("Merge Error: %w\nPartial: %v", err, partial)
			}
		}()
		err = mergeOp(partial)
		return
	}
}
