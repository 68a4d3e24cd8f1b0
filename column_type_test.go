package sumagg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveToString(t *testing.T) {
	require.Equal(t, "true", (&BoolColumnType{}).ToString(true))
	require.Equal(t, "7", (&Uint32ColumnType{}).ToString(uint32(7)))
	require.Equal(t, "-3", (&Int8ColumnType{}).ToString(int8(-3)))
	require.Equal(t, "42", (&Int64ColumnType{}).ToString(int64(42)))
	require.Equal(t, "1.500000", (&Float64ColumnType{}).ToString(1.5))
	require.Equal(t, "\"abc\"", (&VarStringColumnType{}).ToString("abc"))
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.Equal(t, "\""+ts.String()+"\"", (&TimeColumnType{}).ToString(ts))
}

func TestCompositeToString(t *testing.T) {
	st := &StructColumnType{
		FieldNames: []string{"a", "b"},
		FieldTypes: []ColumnType{&Int32ColumnType{}, &VarStringColumnType{}},
	}
	require.Equal(t, CompositeCategory, st.Category())
	require.Equal(t, OtherTag, st.Tag())
	require.Equal(t, "{a: 1, b: <nil>}", st.ToString([]interface{}{int32(1), nil}))

	lt := &ListColumnType{ElementType: &Int16ColumnType{}}
	require.Equal(t, "[1 2]", lt.ToString([]interface{}{int16(1), int16(2)}))
	elems := make([]interface{}, 8)
	for i := range elems {
		elems[i] = int16(i)
	}
	require.Equal(t, "[0 1 2 3 4... 3 more]", lt.ToString(elems))
}

func TestTypeTags(t *testing.T) {
	require.True(t, Int8Tag.IsIntegral())
	require.True(t, Int64Tag.IsIntegral())
	require.False(t, Float32Tag.IsIntegral())
	require.True(t, Float64Tag.IsFloating())
	require.False(t, OtherTag.IsFloating())
	require.Equal(t, "INT32", (&Int32ColumnType{}).Tag().String())
	require.Equal(t, "Int32ColumnType", TypeName(&Int32ColumnType{}))
	require.Equal(t, "<nil>", TypeName(nil))
}
