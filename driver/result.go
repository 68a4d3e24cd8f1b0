package driver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-sif/sumagg"
)

// Result holds the final, nullable SUM of every group seen by a run
type Result struct {
	OutputType sumagg.ColumnType        // OutputType is the type of every non-nil value in this Result
	Statistics sumagg.RuntimeStatistics // Statistics describes the run which produced this Result
	values     map[string]interface{}
}

// Value returns the SUM for ungrouped data, which is nil if no non-null value was seen
func (r *Result) Value() interface{} {
	return r.values[""]
}

// Get returns the SUM for a group, and whether the group was seen at all
func (r *Result) Get(key []byte) (value interface{}, ok bool) {
	value, ok = r.values[string(key)]
	return
}

// NumGroups returns the number of groups in this Result
func (r *Result) NumGroups() int {
	return len(r.values)
}

// Groups returns the keys of every group in this Result, in sorted order
func (r *Result) Groups() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToString returns a string representation of this Result, with groups in sorted order
func (r *Result) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for i, key := range r.Groups() {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		fmt.Fprintf(&res, "%q: ", key)
		if v := r.values[key]; v == nil {
			fmt.Fprint(&res, "NULL")
		} else {
			fmt.Fprint(&res, r.OutputType.ToString(v))
		}
	}
	fmt.Fprint(&res, "}")
	return res.String()
}
