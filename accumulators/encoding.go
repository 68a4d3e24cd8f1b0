package accumulators

import (
	"encoding/binary"
	"fmt"
	"math"

	errors "github.com/go-sif/sumagg/errors"
)

// PartialSize is the size in bytes of an encoded partial value
const PartialSize = 9

const (
	nullPartialTag byte = iota
	int64PartialTag
	float64PartialTag
)

// EncodePartial serializes a nullable partial value using the standard scalar encoding of its
// output type: a tag byte (null, int64, float64) followed by 8 little-endian bytes
func EncodePartial(partial interface{}) ([]byte, error) {
	buff := make([]byte, PartialSize)
	return buff, PutPartial(buff, partial)
}

// PutPartial serializes a nullable partial value into the first PartialSize bytes of buff
func PutPartial(buff []byte, partial interface{}) error {
	if len(buff) < PartialSize {
		return fmt.Errorf("Buffer of %d bytes is too small for a partial", len(buff))
	}
	switch v := partial.(type) {
	case nil:
		buff[0] = nullPartialTag
		binary.LittleEndian.PutUint64(buff[1:], 0)
	case int64:
		buff[0] = int64PartialTag
		binary.LittleEndian.PutUint64(buff[1:], uint64(v))
	case float64:
		buff[0] = float64PartialTag
		binary.LittleEndian.PutUint64(buff[1:], math.Float64bits(v))
	default:
		return fmt.Errorf("Cannot encode partial of type %T", partial)
	}
	return nil
}

// DecodePartial deserializes a partial value produced by EncodePartial
func DecodePartial(buff []byte) (interface{}, error) {
	if len(buff) < PartialSize {
		return nil, errors.CorruptPartialError{Reason: fmt.Sprintf("expected %d bytes, got %d", PartialSize, len(buff))}
	}
	bits := binary.LittleEndian.Uint64(buff[1:PartialSize])
	switch buff[0] {
	case nullPartialTag:
		return nil, nil
	case int64PartialTag:
		return int64(bits), nil
	case float64PartialTag:
		return math.Float64frombits(bits), nil
	default:
		return nil, errors.CorruptPartialError{Reason: fmt.Sprintf("unknown tag %d", buff[0])}
	}
}
