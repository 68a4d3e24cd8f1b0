package sumagg

import (
	"fmt"
	"strings"
)

type composite struct{}

func (composite) Category() Category { return CompositeCategory }

func (composite) Tag() TypeTag { return OtherTag }

// StructColumnType is a column type composed of named fields
type StructColumnType struct {
	composite
	FieldNames []string
	FieldTypes []ColumnType
}

// ToString produces a string representation of a value of a StructColumnType value
func (b *StructColumnType) ToString(v interface{}) string {
	fields := v.([]interface{})
	var res strings.Builder
	fmt.Fprint(&res, "{")
	for i, f := range fields {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		if i < len(b.FieldNames) {
			fmt.Fprintf(&res, "%s: ", b.FieldNames[i])
		}
		if f == nil || i >= len(b.FieldTypes) {
			fmt.Fprintf(&res, "%v", f)
		} else {
			fmt.Fprint(&res, b.FieldTypes[i].ToString(f))
		}
	}
	fmt.Fprint(&res, "}")
	return res.String()
}

// ListColumnType is a column type holding a variable number of elements of another type
type ListColumnType struct {
	composite
	ElementType ColumnType
}

// ToString produces a string representation of a value of a ListColumnType value
func (b *ListColumnType) ToString(v interface{}) string {
	elems := v.([]interface{})
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, e := range elems {
		// don't print more than 5 entries
		if i >= 5 {
			fmt.Fprintf(&res, "... %d more", len(elems)-i)
			break
		}
		if i > 0 {
			fmt.Fprint(&res, " ")
		}
		if e == nil || b.ElementType == nil {
			fmt.Fprintf(&res, "%v", e)
		} else {
			fmt.Fprint(&res, b.ElementType.ToString(e))
		}
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
