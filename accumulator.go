package sumagg

// An Accumulator siphons data from Partitions into a single running aggregate.
// Accumulation is performed locally on each task, then task results are merged,
// possibly after crossing a stage boundary in serialized form via ToBytes/FromBytes.
type Accumulator interface {
	Accumulate(row Row) error                  // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error                 // Merge merges another Accumulator into this one
	ToBytes() ([]byte, error)                  // ToBytes serializes this Accumulator
	FromBytes(buf []byte) (Accumulator, error) // FromBytes produce a new Accumulator from serialized data
}

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator
