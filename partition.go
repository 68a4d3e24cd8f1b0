package sumagg

// A Row is the input of a single aggregation call for one record: the group
// it belongs to, and the (nullable) argument values for the call.
type Row interface {
	Key() []byte           // Key returns the group key for this Row, or nil if the aggregation is ungrouped
	Values() []interface{} // Values returns the argument values for this Row. A nil value is NULL.
	ToString() string      // ToString returns a string representation of this Row
}

// A Partition is a portion of a dataset, consisting of multiple Rows.
// Partitions are processed independently by shard-local tasks.
type Partition interface {
	ID() string            // ID retrieves the ID of this Partition
	GetNumRows() int       // GetNumRows retrieves the number of rows in this Partition
	GetRow(rowNum int) Row // GetRow retrieves a specific row from this Partition
}

// A DataSource produces the Partitions over which an aggregation runs
type DataSource interface {
	Partitions() ([]Partition, error)
}
