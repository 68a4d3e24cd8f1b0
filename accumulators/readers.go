package accumulators

import (
	"fmt"
	"math"

	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
	"github.com/spf13/cast"
)

// integralReader reads decoded values as int64s, within the range of a declared integer kind
type integralReader struct {
	tag sumagg.TypeTag
	min int64
	max int64
}

func newIntegralReader(colType sumagg.ColumnType) (*integralReader, error) {
	r := &integralReader{tag: colType.Tag()}
	switch r.tag {
	case sumagg.Int8Tag:
		r.min, r.max = math.MinInt8, math.MaxInt8
	case sumagg.Int16Tag:
		r.min, r.max = math.MinInt16, math.MaxInt16
	case sumagg.Int32Tag:
		r.min, r.max = math.MinInt32, math.MaxInt32
	case sumagg.Int64Tag:
		r.min, r.max = math.MinInt64, math.MaxInt64
	default:
		return nil, errors.UnsupportedTypeError{Position: 0, TypeName: sumagg.TypeName(colType)}
	}
	return r, nil
}

func (r *integralReader) read(v interface{}) (int64, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, errors.ValueTypeError{Value: v, Domain: r.tag.String(), Err: err}
	}
	if n < r.min || n > r.max {
		return 0, errors.ValueTypeError{Value: v, Domain: r.tag.String(), Err: fmt.Errorf("%d overflows %s", n, r.tag)}
	}
	return n, nil
}

func toInt64(v interface{}) (int64, error) {
	switch tv := v.(type) {
	case int64:
		return tv, nil
	case int32:
		return int64(tv), nil
	case int16:
		return int64(tv), nil
	case int8:
		return int64(tv), nil
	case int:
		return int64(tv), nil
	case uint64:
		if tv > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", tv)
		}
		return int64(tv), nil
	case uint:
		if uint64(tv) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", tv)
		}
		return int64(tv), nil
	case float64:
		return floatToInt64(tv)
	case float32:
		return floatToInt64(float64(tv))
	case bool, string, []byte:
		return 0, fmt.Errorf("%T is not a numeric type", v)
	}
	return cast.ToInt64E(v)
}

// floatToInt64 accepts only floats holding an exact integer in the int64 range
func floatToInt64(f float64) (int64, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, fmt.Errorf("%v overflows int64", f)
	}
	return int64(f), nil
}

// floatingReader reads decoded values as float64s
type floatingReader struct {
	tag sumagg.TypeTag
}

func newFloatingReader(colType sumagg.ColumnType) (*floatingReader, error) {
	if !colType.Tag().IsFloating() {
		return nil, errors.UnsupportedTypeError{Position: 0, TypeName: sumagg.TypeName(colType)}
	}
	return &floatingReader{tag: colType.Tag()}, nil
}

func (r *floatingReader) read(v interface{}) (float64, error) {
	f, err := toFloat64(v)
	if err != nil {
		return 0, errors.ValueTypeError{Value: v, Domain: r.tag.String(), Err: err}
	}
	return f, nil
}

func toFloat64(v interface{}) (float64, error) {
	switch tv := v.(type) {
	case float64:
		return tv, nil
	case float32:
		return float64(tv), nil
	case bool, string, []byte:
		return 0, fmt.Errorf("%T is not a numeric type", v)
	}
	return cast.ToFloat64E(v)
}
