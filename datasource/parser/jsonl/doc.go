// Package jsonl parses JSON Lines DataSources. This parser uses https://github.com/tidwall/gjson to process data, and locates the summed value (and optional group key) of each line via gjson paths.
package jsonl
