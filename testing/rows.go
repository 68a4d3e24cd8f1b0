package testing

import (
	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/partition"
)

func valueRows(values []interface{}) []sumagg.Row {
	rows := make([]sumagg.Row, len(values))
	for i, v := range values {
		rows[i] = partition.CreateRow(nil, v)
	}
	return rows
}

func splitRows(rows []sumagg.Row, boundaries []int) []sumagg.Partition {
	parts := make([]sumagg.Partition, 0, len(boundaries)+1)
	start := 0
	ends := append(append([]int{}, boundaries...), len(rows))
	for _, end := range ends {
		if end > len(rows) {
			end = len(rows)
		}
		if end < start {
			continue
		}
		parts = append(parts, partition.CreatePartition(rows[start:end]...))
		start = end
	}
	return parts
}

// SplitRows divides Rows into Partitions at the given (exclusive) boundaries
func SplitRows(rows []sumagg.Row, boundaries ...int) []sumagg.Partition {
	return splitRows(rows, boundaries)
}
