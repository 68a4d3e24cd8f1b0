package partition

import (
	"fmt"
	"testing"

	"github.com/go-sif/sumagg"
	"github.com/stretchr/testify/require"
)

func TestCreatePartition(t *testing.T) {
	part := CreatePartition(CreateRow([]byte("a"), int32(1)), CreateRow(nil, nil))
	require.NotEmpty(t, part.ID())
	require.Equal(t, 2, part.GetNumRows())
	require.Equal(t, []byte("a"), part.GetRow(0).Key())
	require.Equal(t, []interface{}{int32(1)}, part.GetRow(0).Values())
	require.Nil(t, part.GetRow(1).Key())
	require.Equal(t, []interface{}{nil}, part.GetRow(1).Values())
	// IDs are unique
	require.NotEqual(t, part.ID(), CreatePartition().ID())
}

func TestCreateValuePartition(t *testing.T) {
	part := CreateValuePartition(int64(1), nil, int64(2))
	require.Equal(t, 3, part.GetNumRows())
	part.AppendRow(CreateRow(nil, int64(3)))
	require.Equal(t, 4, part.GetNumRows())
	var seen []interface{}
	err := part.ForEachRow(func(row sumagg.Row) error {
		seen = append(seen, row.Values()[0])
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), nil, int64(2), int64(3)}, seen)
}

func TestForEachRowStopsOnError(t *testing.T) {
	part := CreateValuePartition(int64(1), int64(2), int64(3))
	count := 0
	err := part.ForEachRow(func(row sumagg.Row) error {
		count++
		if count == 2 {
			return fmt.Errorf("stop")
		}
		return nil
	})
	require.NotNil(t, err)
	require.Equal(t, 2, count)
}

func TestRowToString(t *testing.T) {
	require.Equal(t, "{values: [1 NULL]}", CreateRow(nil, 1, nil).ToString())
	require.Equal(t, "{key: \"k\", values: [2.5]}", CreateRow([]byte("k"), 2.5).ToString())
}
