package partition

import (
	"log"

	"github.com/go-sif/sumagg"
	uuid "github.com/gofrs/uuid"
)

// Partition is an in-memory implementation of sumagg.Partition
type Partition struct {
	id   string
	rows []sumagg.Row
}

// CreatePartition returns a new Partition holding the given Rows, with a fresh ID
func CreatePartition(rows ...sumagg.Row) *Partition {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID: %v", err)
	}
	return &Partition{id: id.String(), rows: rows}
}

// CreateValuePartition returns a new Partition of ungrouped, single-argument Rows
func CreateValuePartition(values ...interface{}) *Partition {
	rows := make([]sumagg.Row, len(values))
	for i, v := range values {
		rows[i] = CreateRow(nil, v)
	}
	return CreatePartition(rows...)
}

// ID retrieves the ID of this Partition
func (p *Partition) ID() string {
	return p.id
}

// GetNumRows retrieves the number of rows in this Partition
func (p *Partition) GetNumRows() int {
	return len(p.rows)
}

// GetRow retrieves a specific row from this Partition
func (p *Partition) GetRow(rowNum int) sumagg.Row {
	return p.rows[rowNum]
}

// AppendRow adds a Row to the end of this Partition
func (p *Partition) AppendRow(row sumagg.Row) {
	p.rows = append(p.rows, row)
}

// ForEachRow iterates over the Rows in a Partition, stopping at the first error
func (p *Partition) ForEachRow(fn func(row sumagg.Row) error) error {
	for _, row := range p.rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}
