package driver

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
	iutil "github.com/go-sif/sumagg/internal/util"
	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
)

// runCompleteStage accumulates every Partition, in order, into a single table
func (r *runner) runCompleteStage(ctx context.Context, parts []sumagg.Partition) (map[string]interface{}, error) {
	r.stats.StartStage(sumagg.CompleteStage)
	table := newGroupTable(r.evals[sumagg.CompleteStage])
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.accumulatePartition(table, part); err != nil {
			return nil, pkgerrors.Wrapf(err, "complete task failed on partition %s", part.ID())
		}
	}
	values, err := r.emitFinal(table)
	if err != nil {
		return nil, err
	}
	r.stats.EndTask(sumagg.CompleteStage, 0)
	r.stats.EndStage(sumagg.CompleteStage)
	return values, nil
}

// runMapStage accumulates each Partition in its own task, producing one partial batch per Partition
func (r *runner) runMapStage(ctx context.Context, parts []sumagg.Partition) ([][]byte, error) {
	r.stats.StartStage(sumagg.MapStage)
	r.logger.WithField("tasks", len(parts)).Debug("Starting map stage")
	pool := newTablePool(r.evals[sumagg.MapStage])
	batches := make([][]byte, len(parts))
	err := r.runTasks(ctx, len(parts), func(ctx context.Context, idx int) error {
		part := parts[idx]
		table := pool.acquire()
		if err := r.accumulatePartition(table, part); err != nil {
			return pkgerrors.Wrapf(err, "map task %d failed on partition %s", idx, part.ID())
		}
		batch, err := encodePartialBatch(table)
		if err != nil {
			return pkgerrors.Wrapf(err, "map task %d failed to emit partials", idx)
		}
		batches[idx] = batch
		r.stats.EndTask(sumagg.MapStage, table.numGroups())
		return pool.release(table)
	})
	if err != nil {
		return nil, err
	}
	r.stats.EndStage(sumagg.MapStage)
	return batches, nil
}

// runCombineStage merges the partial batches of CombineFanIn consecutive map tasks per task
func (r *runner) runCombineStage(ctx context.Context, batches [][]byte) ([][]byte, error) {
	r.stats.StartStage(sumagg.CombineStage)
	fanIn := r.opts.CombineFanIn
	numTasks := (len(batches) + fanIn - 1) / fanIn
	r.logger.WithField("tasks", numTasks).Debug("Starting combine stage")
	pool := newTablePool(r.evals[sumagg.CombineStage])
	combined := make([][]byte, numTasks)
	err := r.runTasks(ctx, numTasks, func(ctx context.Context, idx int) error {
		table := pool.acquire()
		end := (idx + 1) * fanIn
		if end > len(batches) {
			end = len(batches)
		}
		for i := idx * fanIn; i < end; i++ {
			records, err := decodePartialBatch(batches[i])
			if err != nil {
				return pkgerrors.Wrapf(err, "combine task %d failed to decode partials of map task %d", idx, i)
			}
			if err := r.mergeRecords(table, records); err != nil {
				return pkgerrors.Wrapf(err, "combine task %d failed", idx)
			}
		}
		batch, err := encodePartialBatch(table)
		if err != nil {
			return pkgerrors.Wrapf(err, "combine task %d failed to emit partials", idx)
		}
		combined[idx] = batch
		r.stats.EndTask(sumagg.CombineStage, table.numGroups())
		return pool.release(table)
	})
	if err != nil {
		return nil, err
	}
	r.stats.EndStage(sumagg.CombineStage)
	return combined, nil
}

// runReduceStage routes partials to ReduceBuckets independent destinations by hashed group key,
// then merges each bucket in its own task. Within a bucket, partials merge in upstream task order.
func (r *runner) runReduceStage(ctx context.Context, batches [][]byte) (map[string]interface{}, error) {
	r.stats.StartStage(sumagg.ReduceStage)
	numBuckets := r.opts.ReduceBuckets
	r.logger.WithField("tasks", numBuckets).Debug("Starting reduce stage")
	buckets := make([][]partialRecord, numBuckets)
	for i, batch := range batches {
		records, err := decodePartialBatch(batch)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "reduce stage failed to decode partials of upstream task %d", i)
		}
		for _, rec := range records {
			bucket := xxhash.Sum64(rec.key) % uint64(numBuckets)
			buckets[bucket] = append(buckets[bucket], rec)
		}
	}
	results := make([]map[string]interface{}, numBuckets)
	err := r.runTasks(ctx, numBuckets, func(ctx context.Context, idx int) error {
		table := newGroupTable(r.evals[sumagg.ReduceStage])
		if err := r.mergeRecords(table, buckets[idx]); err != nil {
			return pkgerrors.Wrapf(err, "reduce task %d failed", idx)
		}
		values, err := r.emitFinal(table)
		if err != nil {
			return pkgerrors.Wrapf(err, "reduce task %d failed to emit results", idx)
		}
		results[idx] = values
		r.stats.EndTask(sumagg.ReduceStage, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	values := make(map[string]interface{})
	for _, bucketValues := range results {
		for k, v := range bucketValues {
			values[k] = v
		}
	}
	r.stats.EndStage(sumagg.ReduceStage)
	return values, nil
}

// accumulatePartition folds every Row of a Partition into the matching group of a table.
// Rows with unreadable values are collected, and either fail the task or are logged and
// skipped according to IgnoreRowErrors. Any other error is fatal.
func (r *runner) accumulatePartition(table *groupTable, part sumagg.Partition) error {
	accumulate := iutil.SafeAccumulateOperation(func(row sumagg.Row) error {
		return table.get(row.Key()).Accumulate(row)
	})
	var multierr *multierror.Error
	nulls, failed := 0, 0
	for i := 0; i < part.GetNumRows(); i++ {
		row := part.GetRow(i)
		if err := accumulate(row); err != nil {
			var valueErr errors.ValueTypeError
			if !pkgerrors.As(err, &valueErr) {
				return err
			}
			failed++
			multierr = multierror.Append(multierr, err)
			continue
		}
		if row.Values()[0] == nil {
			nulls++
		}
	}
	r.stats.AddRows(part.GetNumRows(), nulls, failed)
	if multierr != nil {
		multierr.ErrorFormat = iutil.FormatMultiError
		if !r.opts.IgnoreRowErrors {
			return multierr
		}
		r.logger.WithField("partition", part.ID()).Error(multierr.Error())
	}
	return nil
}

// mergeRecords folds partials into the matching groups of a table, in order
func (r *runner) mergeRecords(table *groupTable, records []partialRecord) error {
	for _, rec := range records {
		merge := iutil.SafeMergeOperation(table.get(rec.key).MergePartial)
		if err := merge(rec.partial); err != nil {
			return err
		}
	}
	return nil
}
