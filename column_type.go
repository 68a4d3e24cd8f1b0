package sumagg

import (
	"fmt"
	"strings"
	"time"
)

// Category distinguishes primitive column types from composite ones
type Category int

const (
	// PrimitiveCategory indicates a column type holding a single scalar value
	PrimitiveCategory Category = iota
	// CompositeCategory indicates a column type built from other column types
	CompositeCategory
)

// String returns a textual representation of this Category
func (c Category) String() string {
	if c == CompositeCategory {
		return "COMPOSITE"
	}
	return "PRIMITIVE"
}

// TypeTag identifies the primitive kind of a ColumnType, as seen by an aggregation
type TypeTag int

const (
	// OtherTag is the residual tag for any kind which is not a signed integer or a float
	OtherTag TypeTag = iota
	// Int8Tag identifies 8-bit signed integers
	Int8Tag
	// Int16Tag identifies 16-bit signed integers
	Int16Tag
	// Int32Tag identifies 32-bit signed integers
	Int32Tag
	// Int64Tag identifies 64-bit signed integers
	Int64Tag
	// Float32Tag identifies single precision floats
	Float32Tag
	// Float64Tag identifies double precision floats
	Float64Tag
)

// String returns a textual representation of this TypeTag
func (t TypeTag) String() string {
	switch t {
	case Int8Tag:
		return "INT8"
	case Int16Tag:
		return "INT16"
	case Int32Tag:
		return "INT32"
	case Int64Tag:
		return "INT64"
	case Float32Tag:
		return "FLOAT32"
	case Float64Tag:
		return "FLOAT64"
	default:
		return "OTHER"
	}
}

// IsIntegral returns true iff this tag identifies a signed integer kind
func (t TypeTag) IsIntegral() bool {
	return t >= Int8Tag && t <= Int64Tag
}

// IsFloating returns true iff this tag identifies a floating point kind
func (t TypeTag) IsFloating() bool {
	return t == Float32Tag || t == Float64Tag
}

// ColumnType describes the declared type of a column which may be handed to an aggregation.
// Sumagg provides a variety of built-in types in this package.
type ColumnType interface {
	Category() Category            // Category reports whether this type is primitive or composite
	Tag() TypeTag                  // Tag reports the primitive kind of this type, or OtherTag
	ToString(v interface{}) string // ToString produces a string representation of a value of this type
}

// TypeName produces a printable name for a ColumnType
func TypeName(colType ColumnType) string {
	if colType == nil {
		return "<nil>"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", colType), "*sumagg.")
}

type primitive struct{}

func (primitive) Category() Category { return PrimitiveCategory }

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{ primitive }

// Tag of a BoolColumnType
func (b *BoolColumnType) Tag() TypeTag { return OtherTag }

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Uint32ColumnType is a column type which stores a uint32 value
type Uint32ColumnType struct{ primitive }

// Tag of a Uint32ColumnType. Unsigned kinds have no accumulator.
func (b *Uint32ColumnType) Tag() TypeTag { return OtherTag }

// ToString produces a string representation of a value of a Uint32ColumnType value
func (b *Uint32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint32))
}

// Uint64ColumnType is a column type which stores a uint64 value
type Uint64ColumnType struct{ primitive }

// Tag of a Uint64ColumnType. Unsigned kinds have no accumulator.
func (b *Uint64ColumnType) Tag() TypeTag { return OtherTag }

// ToString produces a string representation of a value of a Uint64ColumnType value
func (b *Uint64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint64))
}

// Int8ColumnType is a column type which stores a int8 value
type Int8ColumnType struct{ primitive }

// Tag of an Int8ColumnType
func (b *Int8ColumnType) Tag() TypeTag { return Int8Tag }

// ToString produces a string representation of a value of a Int8ColumnType value
func (b *Int8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int8))
}

// Int16ColumnType is a column type which stores a int16 value
type Int16ColumnType struct{ primitive }

// Tag of an Int16ColumnType
func (b *Int16ColumnType) Tag() TypeTag { return Int16Tag }

// ToString produces a string representation of a value of a Int16ColumnType value
func (b *Int16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int16))
}

// Int32ColumnType is a column type which stores a int32 value
type Int32ColumnType struct{ primitive }

// Tag of an Int32ColumnType
func (b *Int32ColumnType) Tag() TypeTag { return Int32Tag }

// ToString produces a string representation of a value of a Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{ primitive }

// Tag of an Int64ColumnType
func (b *Int64ColumnType) Tag() TypeTag { return Int64Tag }

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{ primitive }

// Tag of a Float32ColumnType
func (b *Float32ColumnType) Tag() TypeTag { return Float32Tag }

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float32))
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{ primitive }

// Tag of a Float64ColumnType
func (b *Float64ColumnType) Tag() TypeTag { return Float64Tag }

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// TimeColumnType is a column type which stores a time.Time value
type TimeColumnType struct {
	primitive
	Format string
}

// Tag of a TimeColumnType
func (b *TimeColumnType) Tag() TypeTag { return OtherTag }

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).String())
}

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{ primitive }

// Tag of a VarStringColumnType
func (b *VarStringColumnType) Tag() TypeTag { return OtherTag }

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}
