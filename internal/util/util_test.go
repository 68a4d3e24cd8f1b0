package util

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
	"github.com/go-sif/sumagg/partition"
	"github.com/stretchr/testify/require"
)

func TestSafeAccumulateOperationWrapsErrors(t *testing.T) {
	op := SafeAccumulateOperation(func(row sumagg.Row) error {
		return errors.ArityError{Context: "row", Expected: 1, Actual: 2}
	})
	err := op(partition.CreateRow(nil, 1, 2))
	require.NotNil(t, err)
	var arityErr errors.ArityError
	require.ErrorAs(t, err, &arityErr)
	require.Equal(t, 2, arityErr.Actual)
	require.Contains(t, err.Error(), "Row: {values: [1 2]}")
}

func TestSafeAccumulateOperationRecoversPanics(t *testing.T) {
	op := SafeAccumulateOperation(func(row sumagg.Row) error {
		panic("boom")
	})
	err := op(partition.CreateRow(nil, 1))
	require.NotNil(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "Accumulate Panic: boom"))
}

func TestSafeMergeOperation(t *testing.T) {
	op := SafeMergeOperation(func(partial interface{}) error {
		if partial == nil {
			return nil
		}
		panic(fmt.Errorf("bad partial"))
	})
	require.Nil(t, op(nil))
	err := op(int64(3))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Merge Panic: bad partial")
}

func TestFormatMultiError(t *testing.T) {
	msg := FormatMultiError([]error{fmt.Errorf("one"), fmt.Errorf("two")})
	require.Equal(t, "2 row error(s):\none\ntwo\n", msg)
}
