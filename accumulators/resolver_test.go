package accumulators

import (
	"testing"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
	"github.com/stretchr/testify/require"
)

func TestResolveIntegral(t *testing.T) {
	for _, colType := range []sumagg.ColumnType{
		&sumagg.Int8ColumnType{},
		&sumagg.Int16ColumnType{},
		&sumagg.Int32ColumnType{},
		&sumagg.Int64ColumnType{},
	} {
		eval, err := Resolve([]sumagg.ColumnType{colType})
		require.Nil(t, err)
		_, ok := eval.(*IntegralSum)
		require.True(t, ok, sumagg.TypeName(colType))
		require.Equal(t, sumagg.IntegralKind, eval.Kind())
	}
}

func TestResolveFloating(t *testing.T) {
	for _, colType := range []sumagg.ColumnType{
		&sumagg.Float32ColumnType{},
		&sumagg.Float64ColumnType{},
	} {
		eval, err := Resolve([]sumagg.ColumnType{colType})
		require.Nil(t, err)
		_, ok := eval.(*FloatingSum)
		require.True(t, ok, sumagg.TypeName(colType))
		require.Equal(t, sumagg.FloatingKind, eval.Kind())
	}
}

func TestResolveArityError(t *testing.T) {
	var arityErr errors.ArityError
	_, err := Resolve([]sumagg.ColumnType{&sumagg.Int32ColumnType{}, &sumagg.Int32ColumnType{}})
	require.ErrorAs(t, err, &arityErr)
	require.Equal(t, 2, arityErr.Actual)
	_, err = Resolve(nil)
	require.ErrorAs(t, err, &arityErr)
	require.Equal(t, 0, arityErr.Actual)
}

func TestResolveTypeCategoryError(t *testing.T) {
	var categoryErr errors.TypeCategoryError
	_, err := Resolve([]sumagg.ColumnType{&sumagg.StructColumnType{
		FieldNames: []string{"a"},
		FieldTypes: []sumagg.ColumnType{&sumagg.Int32ColumnType{}},
	}})
	require.ErrorAs(t, err, &categoryErr)
	require.Equal(t, "StructColumnType", categoryErr.TypeName)
	_, err = Resolve([]sumagg.ColumnType{&sumagg.ListColumnType{ElementType: &sumagg.Int64ColumnType{}}})
	require.ErrorAs(t, err, &categoryErr)
	_, err = Resolve([]sumagg.ColumnType{nil})
	require.ErrorAs(t, err, &categoryErr)
}

func TestResolveUnsupportedTypeError(t *testing.T) {
	for _, colType := range []sumagg.ColumnType{
		&sumagg.VarStringColumnType{},
		&sumagg.BoolColumnType{},
		&sumagg.Uint32ColumnType{},
		&sumagg.Uint64ColumnType{},
		&sumagg.TimeColumnType{},
	} {
		var unsupportedErr errors.UnsupportedTypeError
		_, err := Resolve([]sumagg.ColumnType{colType})
		require.ErrorAs(t, err, &unsupportedErr, sumagg.TypeName(colType))
		require.Equal(t, 0, unsupportedErr.Position)
	}
}

func TestBind(t *testing.T) {
	eval, outType, err := Bind(sumagg.CompleteMode, &sumagg.Int16ColumnType{})
	require.Nil(t, err)
	require.Equal(t, sumagg.Int64Tag, outType.Tag())
	require.Equal(t, sumagg.CompleteMode, eval.(*IntegralSum).Mode())
	eval, outType, err = Bind(sumagg.FinalMode, &sumagg.Float32ColumnType{})
	require.Nil(t, err)
	require.Equal(t, sumagg.Float64Tag, outType.Tag())
	require.Equal(t, sumagg.FinalMode, eval.(*FloatingSum).Mode())
	_, _, err = Bind(sumagg.CompleteMode, &sumagg.VarStringColumnType{})
	require.NotNil(t, err)
}
