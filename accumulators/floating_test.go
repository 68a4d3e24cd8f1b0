package accumulators

import (
	"math"
	"testing"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
	"github.com/stretchr/testify/require"
)

func createFloatingSum(t *testing.T, mode sumagg.Mode) *FloatingSum {
	s := &FloatingSum{}
	outType, err := s.Init(mode, &sumagg.Float64ColumnType{})
	require.Nil(t, err)
	require.IsType(t, &sumagg.Float64ColumnType{}, outType)
	return s
}

func TestFloatingSumAccumulate(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	accumulateAll(t, s, buf, 1.5, nil, 2.5)
	res, err := s.EmitFinal(buf)
	require.Nil(t, err)
	require.Equal(t, 4.0, res)
}

func TestFloatingSumMixedInputs(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	accumulateAll(t, s, buf, float32(0.5), 0.25, int64(2))
	res, err := s.EmitFinal(buf)
	require.Nil(t, err)
	require.Equal(t, 2.75, res)
}

func TestFloatingSumAllNull(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	accumulateAll(t, s, buf, nil, nil)
	res, err := s.EmitFinal(buf)
	require.Nil(t, err)
	require.Nil(t, res)
	partial, err := s.EmitPartial(buf)
	require.Nil(t, err)
	require.Nil(t, partial)
}

func TestFloatingSumReset(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	accumulateAll(t, s, buf, 3.25)
	require.Nil(t, s.Reset(buf))
	require.True(t, buf.IsEmpty())
	require.Equal(t, 0.0, buf.(*FloatingBuffer).Sum())
	require.Equal(t, s.NewBuffer(), buf)
}

func TestFloatingSumMergeAssociativity(t *testing.T) {
	values := make([]interface{}, 100)
	for i := range values {
		if i%10 == 3 {
			continue
		}
		values[i] = float64(i) * 0.1
	}
	s := createFloatingSum(t, sumagg.CompleteMode)
	single := s.NewBuffer()
	accumulateAll(t, s, single, values...)
	expected, err := s.EmitFinal(single)
	require.Nil(t, err)
	for _, groupSize := range []int{1, 7, 33} {
		dest := s.NewBuffer()
		for start := 0; start < len(values); start += groupSize {
			end := start + groupSize
			if end > len(values) {
				end = len(values)
			}
			src := s.NewBuffer()
			accumulateAll(t, s, src, values[start:end]...)
			partial, err := s.EmitPartial(src)
			require.Nil(t, err)
			require.Nil(t, s.MergePartial(dest, partial))
		}
		res, err := s.EmitFinal(dest)
		require.Nil(t, err)
		require.InDelta(t, expected, res, 1e-9, "group size %d", groupSize)
	}
}

func TestFloatingSumSpecialValues(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	accumulateAll(t, s, buf, math.Inf(1), 1.0)
	res, err := s.EmitFinal(buf)
	require.Nil(t, err)
	require.True(t, math.IsInf(res.(float64), 1))
}

func TestFloatingSumErrors(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	var arityErr errors.ArityError
	require.ErrorAs(t, s.Accumulate(buf, []interface{}{}), &arityErr)
	var valueErr errors.ValueTypeError
	require.ErrorAs(t, s.Accumulate(buf, []interface{}{[]byte("1.5")}), &valueErr)
	require.Equal(t, "FLOAT64", valueErr.Domain)
	var bufErr errors.IncompatibleBufferError
	require.ErrorAs(t, s.MergePartial(&IntegralBuffer{}, 1.0), &bufErr)
	_, err := s.EmitPartial(&IntegralBuffer{})
	require.ErrorAs(t, err, &bufErr)
}

func TestFloatingSumRejectsBooleans(t *testing.T) {
	s := createFloatingSum(t, sumagg.CompleteMode)
	buf := s.NewBuffer()
	var valueErr errors.ValueTypeError
	require.ErrorAs(t, s.Accumulate(buf, []interface{}{true}), &valueErr)
	require.ErrorAs(t, s.Accumulate(buf, []interface{}{"1.5"}), &valueErr)
	require.ErrorAs(t, s.MergePartial(buf, false), &valueErr)
	require.True(t, buf.IsEmpty())
	res, err := s.EmitFinal(buf)
	require.Nil(t, err)
	require.Nil(t, res)
}

func TestFloatingSumModes(t *testing.T) {
	s := createFloatingSum(t, sumagg.Partial2Mode)
	require.Equal(t, sumagg.Partial2Mode, s.Mode())
	var modeErr errors.ModeError
	require.ErrorAs(t, s.Accumulate(s.NewBuffer(), []interface{}{1.5}), &modeErr)

	var unsupportedErr errors.UnsupportedTypeError
	_, err := (&FloatingSum{}).Init(sumagg.CompleteMode, &sumagg.Int32ColumnType{})
	require.ErrorAs(t, err, &unsupportedErr)
}
