package driver

import (
	"fmt"

	"github.com/go-sif/sumagg"
)

// Plan describes the shape of an aggregation: which Stages run, and in which order
type Plan int

const (
	// SinglePhase accumulates every Partition into one set of buffers and emits final values
	SinglePhase Plan = iota + 1
	// TwoPhase accumulates each Partition in its own map task, then merges all partials in reduce tasks
	TwoPhase
	// ThreePhase inserts combine tasks, each merging the partials of several map tasks, between map and reduce
	ThreePhase
)

// Plans lists every supported Plan
var Plans = []Plan{SinglePhase, TwoPhase, ThreePhase}

// String returns a textual representation of this Plan
func (p Plan) String() string {
	switch p {
	case SinglePhase:
		return "single-phase"
	case TwoPhase:
		return "two-phase"
	case ThreePhase:
		return "three-phase"
	default:
		return fmt.Sprintf("plan(%d)", int(p))
	}
}

// Stages returns the Stages executed by this Plan, in order
func (p Plan) Stages() ([]sumagg.Stage, error) {
	switch p {
	case SinglePhase:
		return []sumagg.Stage{sumagg.CompleteStage}, nil
	case TwoPhase:
		return []sumagg.Stage{sumagg.MapStage, sumagg.ReduceStage}, nil
	case ThreePhase:
		return []sumagg.Stage{sumagg.MapStage, sumagg.CombineStage, sumagg.ReduceStage}, nil
	default:
		return nil, fmt.Errorf("Unknown plan %s", p)
	}
}
