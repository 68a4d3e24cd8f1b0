package memory

import (
	"testing"

	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/partition"
	"github.com/stretchr/testify/require"
)

func TestPartitions(t *testing.T) {
	values := make([]interface{}, 11)
	for i := range values {
		values[i] = int64(i)
	}
	ds := CreateValueDataSource(values, &DataSourceConf{PartitionSize: 5})
	parts, err := ds.Partitions()
	require.Nil(t, err)
	require.Len(t, parts, 3)
	require.Equal(t, 5, parts[0].GetNumRows())
	require.Equal(t, 5, parts[1].GetNumRows())
	require.Equal(t, 1, parts[2].GetNumRows())
	require.Equal(t, []interface{}{int64(10)}, parts[2].GetRow(0).Values())
}

func TestPartitionsDefaults(t *testing.T) {
	rows := []sumagg.Row{partition.CreateRow([]byte("a"), nil)}
	parts, err := CreateDataSource(rows, nil).Partitions()
	require.Nil(t, err)
	require.Len(t, parts, 1)
	require.Equal(t, []byte("a"), parts[0].GetRow(0).Key())
	// no rows, no partitions
	parts, err = CreateValueDataSource(nil, nil).Partitions()
	require.Nil(t, err)
	require.Len(t, parts, 0)
}
