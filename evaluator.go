package sumagg

// Mode describes which half (or both halves) of the aggregation protocol an
// Evaluator instance is initialized for. The engine picks a Mode per stage:
// shard-local stages consume raw rows, combining stages consume partials.
type Mode int

const (
	// Partial1Mode consumes raw rows and emits a partial (map stage)
	Partial1Mode Mode = iota
	// Partial2Mode merges partials and emits a partial (combine stage)
	Partial2Mode
	// FinalMode merges partials and emits the final value (reduce stage)
	FinalMode
	// CompleteMode consumes raw rows and emits the final value (single stage)
	CompleteMode
)

// String returns a textual representation of this Mode
func (m Mode) String() string {
	switch m {
	case Partial1Mode:
		return "PARTIAL1"
	case Partial2Mode:
		return "PARTIAL2"
	case FinalMode:
		return "FINAL"
	default:
		return "COMPLETE"
	}
}

// ConsumesRows returns true iff stages in this Mode accumulate raw rows rather than merging partials
func (m Mode) ConsumesRows() bool {
	return m == Partial1Mode || m == CompleteMode
}

// EvaluatorKind identifies one of the closed set of Evaluator specializations
type EvaluatorKind int

const (
	// IntegralKind sums in the 64-bit signed integer domain
	IntegralKind EvaluatorKind = iota
	// FloatingKind sums in the double precision domain
	FloatingKind
)

// String returns a textual representation of this EvaluatorKind
func (k EvaluatorKind) String() string {
	if k == FloatingKind {
		return "floating"
	}
	return "integral"
}

// An AggregationBuffer holds the running state of one aggregation group within one
// execution task. Buffers are owned by a single task at a time, and may be recycled
// across groups and tasks via Evaluator.Reset.
type AggregationBuffer interface {
	IsEmpty() bool // IsEmpty returns true iff no non-null value has been folded into this buffer since it was last reset
}

// An Evaluator drives AggregationBuffers through the phases of a distributed aggregation.
// Evaluators hold no per-group state, and may be shared by the tasks of a stage once Init has returned.
type Evaluator interface {
	Kind() EvaluatorKind                                                // Kind identifies the numeric domain of this Evaluator
	Init(mode Mode, argTypes ...ColumnType) (ColumnType, error)         // Init binds the input reader and returns the output type
	NewBuffer() AggregationBuffer                                       // NewBuffer allocates an empty buffer
	Reset(buf AggregationBuffer) error                                  // Reset returns a buffer to the empty state
	Accumulate(buf AggregationBuffer, values []interface{}) error       // Accumulate folds one row's argument values into a buffer
	MergePartial(buf AggregationBuffer, partial interface{}) error      // MergePartial folds another buffer's partial result into a buffer
	EmitPartial(buf AggregationBuffer) (partial interface{}, err error) // EmitPartial produces a partial result suitable for MergePartial
	EmitFinal(buf AggregationBuffer) (result interface{}, err error)    // EmitFinal produces the final, nullable result
}
