package sumagg

import "time"

// Stage identifies the role of a task within an aggregation plan
type Stage int

const (
	// CompleteStage accumulates rows and emits final values in a single pass
	CompleteStage Stage = iota
	// MapStage accumulates the rows of one Partition and emits partials
	MapStage
	// CombineStage merges partials from several map tasks and emits partials
	CombineStage
	// ReduceStage merges partials and emits final values
	ReduceStage
	numStages
)

// NumStages is the number of distinct Stages
const NumStages = int(numStages)

// String returns a textual representation of this Stage
func (s Stage) String() string {
	switch s {
	case CompleteStage:
		return "complete"
	case MapStage:
		return "map"
	case CombineStage:
		return "combine"
	default:
		return "reduce"
	}
}

// Mode returns the Evaluator Mode used by tasks of this Stage
func (s Stage) Mode() Mode {
	switch s {
	case CompleteStage:
		return CompleteMode
	case MapStage:
		return Partial1Mode
	case CombineStage:
		return Partial2Mode
	default:
		return FinalMode
	}
}

// RuntimeStatistics facilitates the retrieval of statistics about an aggregation run
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the run
	GetRuntime() time.Duration
	// GetNumRowsProcessed returns the number of Rows which have been accumulated
	GetNumRowsProcessed() int64
	// GetNumNullRows returns the number of Rows whose value was NULL, and which therefore contributed nothing
	GetNumNullRows() int64
	// GetNumRowErrors returns the number of Rows which failed and were skipped
	GetNumRowErrors() int64
	// GetNumTasksProcessed returns the number of tasks which have completed, indexed by Stage
	GetNumTasksProcessed() []int64
	// GetNumPartialsEmitted returns the number of partial values emitted, indexed by Stage
	GetNumPartialsEmitted() []int64
	// GetStageRuntimes returns the runtime of each Stage, indexed by Stage
	GetStageRuntimes() []time.Duration
}
