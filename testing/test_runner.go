package testing

import (
	"context"

	"github.com/go-sif/sumagg"
	"github.com/go-sif/sumagg/driver"
)

// RunAllPlans aggregates the same Partitions under every Plan, so that their results can be compared
func RunAllPlans(ctx context.Context, argTypes []sumagg.ColumnType, parts []sumagg.Partition, opts *driver.Options) (map[driver.Plan]*driver.Result, error) {
	results := make(map[driver.Plan]*driver.Result, len(driver.Plans))
	for _, plan := range driver.Plans {
		res, err := driver.RunPartitions(ctx, plan, argTypes, parts, driver.CloneOptions(opts))
		if err != nil {
			return nil, err
		}
		results[plan] = res
	}
	return results, nil
}

// SplitValues divides values into ungrouped, single-argument Partitions at the given (exclusive) boundaries
func SplitValues(values []interface{}, boundaries ...int) []sumagg.Partition {
	return splitRows(valueRows(values), boundaries)
}
