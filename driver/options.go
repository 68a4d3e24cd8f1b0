package driver

import (
	"runtime"

	"github.com/go-sif/sumagg/logging"
	"github.com/sirupsen/logrus"
)

// Options configures an aggregation run
type Options struct {
	Parallelism     int                // Maximum number of tasks run concurrently within a Stage. Defaults to runtime.NumCPU().
	ReduceBuckets   int                // Number of independent reduce destinations that groups are routed to. Defaults to 1.
	CombineFanIn    int                // Number of map tasks whose partials are merged by each combine task. Defaults to 2.
	IgnoreRowErrors bool               // If true, Rows whose values cannot be read are logged and skipped rather than failing the run
	LogLevel        int                // One of the levels from the logging package. Defaults to logging.WarnLevel.
	Logger          logrus.FieldLogger // Logger overrides the logger which would otherwise be built from LogLevel
}

// CloneOptions is a helper function to clone Options
func CloneOptions(opts *Options) *Options {
	if opts == nil {
		return &Options{}
	}
	clone := *opts
	return &clone
}

func ensureDefaultOptionsValues(opts *Options) {
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	if opts.ReduceBuckets <= 0 {
		opts.ReduceBuckets = 1
	}
	if opts.CombineFanIn <= 1 {
		opts.CombineFanIn = 2
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logging.WarnLevel
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(opts.LogLevel, "sumagg")
	}
}
