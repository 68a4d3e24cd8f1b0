package partition

import (
	"fmt"
	"strings"
)

// Row is an in-memory implementation of sumagg.Row
type Row struct {
	key    []byte
	values []interface{}
}

// CreateRow returns a Row belonging to the group key (nil for ungrouped data) with the given argument values
func CreateRow(key []byte, values ...interface{}) *Row {
	return &Row{key: key, values: values}
}

// Key returns the group key for this Row
func (r *Row) Key() []byte {
	return r.key
}

// Values returns the argument values for this Row
func (r *Row) Values() []interface{} {
	return r.values
}

// ToString returns a string representation of this Row
func (r *Row) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	if r.key != nil {
		fmt.Fprintf(&res, "key: %q, ", r.key)
	}
	fmt.Fprint(&res, "values: [")
	for i, v := range r.values {
		if i > 0 {
			fmt.Fprint(&res, " ")
		}
		if v == nil {
			fmt.Fprint(&res, "NULL")
		} else {
			fmt.Fprintf(&res, "%v", v)
		}
	}
	fmt.Fprint(&res, "]}")
	return res.String()
}
