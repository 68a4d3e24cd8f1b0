package driver

import (
	"context"

	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/accumulators"
	"github.com/go-sif/sumagg/internal/stats"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Run resolves a SUM over argTypes, then aggregates the Partitions of a DataSource according to plan.
// Argument errors are returned before any data is loaded.
func Run(ctx context.Context, plan Plan, argTypes []sumagg.ColumnType, source sumagg.DataSource, opts *Options) (*Result, error) {
	r, err := newRunner(plan, argTypes, opts)
	if err != nil {
		return nil, err
	}
	parts, err := source.Partitions()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load partitions")
	}
	return r.run(ctx, parts)
}

// RunPartitions resolves a SUM over argTypes, then aggregates the given Partitions according to plan
func RunPartitions(ctx context.Context, plan Plan, argTypes []sumagg.ColumnType, parts []sumagg.Partition, opts *Options) (*Result, error) {
	r, err := newRunner(plan, argTypes, opts)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, parts)
}

type runner struct {
	plan    Plan
	stages  []sumagg.Stage
	opts    *Options
	logger  logrus.FieldLogger
	stats   *stats.RunStatistics
	evals   [sumagg.NumStages]sumagg.Evaluator
	outType sumagg.ColumnType
}

// newRunner binds one Evaluator per Stage of the plan. The first Stage reads argTypes,
// and every later Stage reads the partials emitted by the one before it.
func newRunner(plan Plan, argTypes []sumagg.ColumnType, opts *Options) (*runner, error) {
	stages, err := plan.Stages()
	if err != nil {
		return nil, err
	}
	opts = CloneOptions(opts)
	ensureDefaultOptionsValues(opts)
	r := &runner{
		plan:   plan,
		stages: stages,
		opts:   opts,
		logger: opts.Logger.WithField("plan", plan.String()),
		stats:  &stats.RunStatistics{},
	}
	inputTypes := argTypes
	for _, stage := range stages {
		eval, outType, err := accumulators.Bind(stage.Mode(), inputTypes...)
		if err != nil {
			return nil, errors.WithMessagef(err, "unable to bind %s stage", stage)
		}
		r.evals[stage] = eval
		r.outType = outType
		inputTypes = []sumagg.ColumnType{outType}
	}
	return r, nil
}

func (r *runner) run(ctx context.Context, parts []sumagg.Partition) (*Result, error) {
	r.stats.Start()
	r.logger.WithFields(logrus.Fields{
		"partitions": len(parts),
		"kind":       r.evals[r.stages[0]].Kind().String(),
	}).Debug("Starting aggregation")
	var values map[string]interface{}
	var err error
	if r.plan == SinglePhase {
		values, err = r.runCompleteStage(ctx, parts)
	} else {
		var batches [][]byte
		batches, err = r.runMapStage(ctx, parts)
		if err == nil && r.plan == ThreePhase {
			batches, err = r.runCombineStage(ctx, batches)
		}
		if err == nil {
			values, err = r.runReduceStage(ctx, batches)
		}
	}
	if err != nil {
		return nil, err
	}
	r.stats.Finish()
	res := &Result{OutputType: r.outType, Statistics: r.stats, values: values}
	r.logger.WithFields(logrus.Fields{
		"groups":  len(values),
		"rows":    r.stats.GetNumRowsProcessed(),
		"runtime": r.stats.GetRuntime().String(),
	}).Info("Finished aggregation")
	r.logger.WithField("result", res.ToString()).Debug("Aggregation result")
	return res, nil
}

// runTasks runs numTasks tasks, at most Parallelism at a time, stopping at the first failure
func (r *runner) runTasks(ctx context.Context, numTasks int, task func(ctx context.Context, idx int) error) error {
	sem := semaphore.NewWeighted(int64(r.opts.Parallelism))
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < numTasks; i++ {
		idx := i
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, idx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// emitFinal collects the final value of every group in a table
func (r *runner) emitFinal(table *groupTable) (map[string]interface{}, error) {
	values := make(map[string]interface{}, table.numGroups())
	err := table.forEach(func(key []byte, s *accumulators.Sum) error {
		v, err := s.Result()
		if err != nil {
			return err
		}
		values[string(key)] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
