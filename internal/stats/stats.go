package stats

import (
	"sync/atomic"
	"time"

	"github.com/go-sif/sumagg"
)

// RunStatistics contains statistics about an aggregation run. Row and task
// counters may be updated concurrently by tasks; stage and run timing must be
// driven from a single goroutine.
type RunStatistics struct {
	started         bool
	finished        bool
	startTime       time.Time
	totalRuntime    int64
	rowsProcessed   int64
	nullRows        int64
	rowErrors       int64
	tasksProcessed  []int64
	partialsEmitted []int64
	stageRuntimes   []int64

	// temp vars
	currentStageStartTime []time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.tasksProcessed = make([]int64, sumagg.NumStages)
		rs.partialsEmitted = make([]int64, sumagg.NumStages)
		rs.stageRuntimes = make([]int64, sumagg.NumStages)
		rs.currentStageStartTime = make([]time.Time, sumagg.NumStages)
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.totalRuntime = time.Since(rs.startTime).Nanoseconds()
	rs.finished = true
}

// StartStage tracks the beginning of a Stage
func (rs *RunStatistics) StartStage(stage sumagg.Stage) {
	rs.currentStageStartTime[stage] = time.Now()
}

// EndStage tracks the end of a Stage
func (rs *RunStatistics) EndStage(stage sumagg.Stage) {
	rs.stageRuntimes[stage] = time.Since(rs.currentStageStartTime[stage]).Nanoseconds()
}

// EndTask tracks the end of a task within a Stage, which emitted numPartials partial values
func (rs *RunStatistics) EndTask(stage sumagg.Stage, numPartials int) {
	atomic.AddInt64(&rs.tasksProcessed[stage], 1)
	atomic.AddInt64(&rs.partialsEmitted[stage], int64(numPartials))
}

// AddRows tracks Rows accumulated by a task, of which nulls were NULL and failed were skipped due to errors
func (rs *RunStatistics) AddRows(total int, nulls int, failed int) {
	atomic.AddInt64(&rs.rowsProcessed, int64(total))
	atomic.AddInt64(&rs.nullRows, int64(nulls))
	atomic.AddInt64(&rs.rowErrors, int64(failed))
}

// GetStartTime returns the start time of the run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return time.Duration(rs.totalRuntime)
	}
	return time.Since(rs.startTime)
}

// GetNumRowsProcessed returns the number of Rows which have been accumulated
func (rs *RunStatistics) GetNumRowsProcessed() int64 {
	return atomic.LoadInt64(&rs.rowsProcessed)
}

// GetNumNullRows returns the number of NULL Rows which were skipped
func (rs *RunStatistics) GetNumNullRows() int64 {
	return atomic.LoadInt64(&rs.nullRows)
}

// GetNumRowErrors returns the number of Rows which failed and were skipped
func (rs *RunStatistics) GetNumRowErrors() int64 {
	return atomic.LoadInt64(&rs.rowErrors)
}

// GetNumTasksProcessed returns the number of tasks which have completed, indexed by Stage
func (rs *RunStatistics) GetNumTasksProcessed() []int64 {
	return loadAll(rs.tasksProcessed)
}

// GetNumPartialsEmitted returns the number of partial values emitted, indexed by Stage
func (rs *RunStatistics) GetNumPartialsEmitted() []int64 {
	return loadAll(rs.partialsEmitted)
}

// GetStageRuntimes returns the runtime of each Stage, indexed by Stage
func (rs *RunStatistics) GetStageRuntimes() []time.Duration {
	res := make([]time.Duration, len(rs.stageRuntimes))
	for i, r := range rs.stageRuntimes {
		res[i] = time.Duration(r)
	}
	return res
}

func loadAll(counters []int64) []int64 {
	res := make([]int64, len(counters))
	for i := range counters {
		res[i] = atomic.LoadInt64(&counters[i])
	}
	return res
}
