// Package sumagg contains the core components of a distributed SUM aggregation. A SUM
// runs in phases: shard-local tasks accumulate rows into AggregationBuffers and emit
// partials, combining tasks merge partials into new partials, and a final task merges
// partials and emits a single nullable value per group. This root package defines the
// types shared by every phase, and is an excellent overview of the key concepts:
// ColumnTypes are resolved into an Evaluator, which drives AggregationBuffers through
// the protocol, over the Rows of Partitions.
package sumagg
