package memory

import (
	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/partition"
)

// DataSourceConf configures a memory DataSource
type DataSourceConf struct {
	PartitionSize int // The maximum number of rows per Partition. Defaults to 128.
}

// DataSource is a buffer of Rows which will be divided into Partitions
type DataSource struct {
	rows []sumagg.Row
	conf *DataSourceConf
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(rows []sumagg.Row, conf *DataSourceConf) *DataSource {
	if conf == nil {
		conf = &DataSourceConf{}
	}
	if conf.PartitionSize <= 0 {
		conf.PartitionSize = 128
	}
	return &DataSource{rows: rows, conf: conf}
}

// CreateValueDataSource is a factory for DataSources of ungrouped, single-argument Rows. A nil value is NULL.
func CreateValueDataSource(values []interface{}, conf *DataSourceConf) *DataSource {
	rows := make([]sumagg.Row, len(values))
	for i, v := range values {
		rows[i] = partition.CreateRow(nil, v)
	}
	return CreateDataSource(rows, conf)
}

// Partitions divides the buffered Rows into Partitions of at most PartitionSize Rows, preserving order
func (ds *DataSource) Partitions() ([]sumagg.Partition, error) {
	size := ds.conf.PartitionSize
	parts := make([]sumagg.Partition, 0, (len(ds.rows)+size-1)/size)
	for start := 0; start < len(ds.rows); start += size {
		end := start + size
		if end > len(ds.rows) {
			end = len(ds.rows)
		}
		parts = append(parts, partition.CreatePartition(ds.rows[start:end]...))
	}
	return parts, nil
}
