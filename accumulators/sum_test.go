package accumulators

import (
	"testing"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
	"github.com/go-sif/sumagg/partition"
	"github.com/stretchr/testify/require"
)

func TestAdder(t *testing.T) {
	facc, err := Adder(sumagg.Partial1Mode, &sumagg.Int64ColumnType{})
	require.Nil(t, err)
	acc := facc().(*Sum)
	require.True(t, acc.IsEmpty())
	for _, v := range []interface{}{int64(1), nil, int64(2)} {
		require.Nil(t, acc.Accumulate(partition.CreateRow(nil, v)))
	}
	res, err := acc.Result()
	require.Nil(t, err)
	require.Equal(t, int64(3), res)
	require.Equal(t, sumagg.IntegralKind, acc.Evaluator().Kind())

	var unsupportedErr errors.UnsupportedTypeError
	_, err = Adder(sumagg.Partial1Mode, &sumagg.BoolColumnType{})
	require.ErrorAs(t, err, &unsupportedErr)
}

func TestSumMergeAndSerialization(t *testing.T) {
	facc, err := Adder(sumagg.Partial1Mode, &sumagg.Float32ColumnType{})
	require.Nil(t, err)
	left := facc()
	right := facc()
	empty := facc()
	require.Nil(t, left.Accumulate(partition.CreateRow(nil, float32(1.5))))
	require.Nil(t, right.Accumulate(partition.CreateRow(nil, float32(2.5))))

	// serialize the right side, as if it crossed a stage boundary
	ser, err := right.ToBytes()
	require.Nil(t, err)
	deser, err := left.FromBytes(ser)
	require.Nil(t, err)
	require.Nil(t, left.Merge(deser))
	require.Nil(t, left.Merge(empty))
	res, err := left.(*Sum).Result()
	require.Nil(t, err)
	require.Equal(t, 4.0, res)

	// empty accumulators survive serialization as NULL
	ser, err = empty.ToBytes()
	require.Nil(t, err)
	deser, err = empty.FromBytes(ser)
	require.Nil(t, err)
	require.True(t, deser.(*Sum).IsEmpty())
	res, err = deser.(*Sum).Result()
	require.Nil(t, err)
	require.Nil(t, res)
}

func TestSumReset(t *testing.T) {
	facc, err := Adder(sumagg.CompleteMode, &sumagg.Int8ColumnType{})
	require.Nil(t, err)
	acc := facc().(*Sum)
	require.Nil(t, acc.Accumulate(partition.CreateRow(nil, int8(9))))
	require.False(t, acc.IsEmpty())
	require.Nil(t, acc.Reset())
	require.True(t, acc.IsEmpty())
	res, err := acc.Result()
	require.Nil(t, err)
	require.Nil(t, res)
}

type otherAccumulator struct{ Sum }

func TestSumMergeIncompatible(t *testing.T) {
	facc, err := Adder(sumagg.CompleteMode, &sumagg.Int8ColumnType{})
	require.Nil(t, err)
	require.NotNil(t, facc().Merge(&otherAccumulator{}))
	_, err = facc().FromBytes([]byte{1})
	require.NotNil(t, err)
}
