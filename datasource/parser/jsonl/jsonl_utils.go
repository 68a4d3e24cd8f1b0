package jsonl

import (
	"fmt"
	"math"

	"github.com/go-sif/sumagg"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// parseValue decodes a gjson result into the Go type matching colType. Missing values and JSON nulls are nil.
// Strings holding numbers are accepted.
func parseValue(val gjson.Result, colName string, colType sumagg.ColumnType) (interface{}, error) {
	if !val.Exists() || val.Type == gjson.Null {
		return nil, nil
	}
	tag := colType.Tag()
	switch val.Type {
	case gjson.Number:
		if tag.IsIntegral() {
			if val.Num != math.Trunc(val.Num) {
				return nil, fmt.Errorf("Column %s was not an integer. Was: %s", colName, val.Raw)
			}
			n, err := parseInt(val, colName)
			if err != nil {
				return nil, err
			}
			return narrowInt(n, colName, tag)
		}
		return narrowFloat(val.Float(), tag), nil
	case gjson.String:
		if tag.IsIntegral() {
			n, err := cast.ToInt64E(val.Str)
			if err != nil {
				return nil, fmt.Errorf("Column %s was not a number. Was: %#v", colName, val.Str)
			}
			return narrowInt(n, colName, tag)
		}
		f, err := cast.ToFloat64E(val.Str)
		if err != nil {
			return nil, fmt.Errorf("Column %s was not a number. Was: %#v", colName, val.Str)
		}
		return narrowFloat(f, tag), nil
	default:
		return nil, fmt.Errorf("Column %s was not a number. Was: %s", colName, val.Raw)
	}
}

// parseInt reads an integral JSON number exactly, rejecting anything outside the int64 range
func parseInt(val gjson.Result, colName string) (int64, error) {
	if n, err := cast.ToInt64E(val.Raw); err == nil {
		return n, nil
	}
	// exponent notation, or too many digits for int64
	if val.Num < -(1<<63) || val.Num >= 1<<63 {
		return 0, fmt.Errorf("Column %s value %s overflows %s", colName, val.Raw, sumagg.Int64Tag)
	}
	return int64(val.Num), nil
}

func narrowInt(n int64, colName string, tag sumagg.TypeTag) (interface{}, error) {
	switch tag {
	case sumagg.Int8Tag:
		if n < math.MinInt8 || n > math.MaxInt8 {
			return nil, fmt.Errorf("Column %s value %d overflows %s", colName, n, tag)
		}
		return int8(n), nil
	case sumagg.Int16Tag:
		if n < math.MinInt16 || n > math.MaxInt16 {
			return nil, fmt.Errorf("Column %s value %d overflows %s", colName, n, tag)
		}
		return int16(n), nil
	case sumagg.Int32Tag:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("Column %s value %d overflows %s", colName, n, tag)
		}
		return int32(n), nil
	default:
		return n, nil
	}
}

func narrowFloat(f float64, tag sumagg.TypeTag) interface{} {
	if tag == sumagg.Float32Tag {
		return float32(f)
	}
	return f
}

// parseKey produces a group key from a gjson result. Missing keys and JSON nulls are the ungrouped (nil) key.
func parseKey(val gjson.Result) []byte {
	if !val.Exists() || val.Type == gjson.Null {
		return nil
	}
	return []byte(val.String())
}
