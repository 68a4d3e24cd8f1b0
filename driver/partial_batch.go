package driver

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-sif/sumagg/accumulators"
	errors "github.com/go-sif/sumagg/errors"
	"github.com/pierrec/lz4"
)

// partialRecord is a group's partial value, as shipped between Stages
type partialRecord struct {
	key     []byte
	partial interface{}
}

// encodePartialBatch serializes every group's partial from a table, then compresses the result with lz4.
// Layout before compression: uvarint record count, then per record a uvarint key length, the key, and an encoded partial.
func encodePartialBatch(t *groupTable) ([]byte, error) {
	raw := make([]byte, 0, binary.MaxVarintLen64+t.numGroups()*(binary.MaxVarintLen64+accumulators.PartialSize))
	raw = appendUvarint(raw, uint64(t.numGroups()))
	err := t.forEach(func(key []byte, s *accumulators.Sum) error {
		ser, err := s.ToBytes()
		if err != nil {
			return err
		}
		raw = appendUvarint(raw, uint64(len(key)))
		raw = append(raw, key...)
		raw = append(raw, ser...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	buff := new(bytes.Buffer)
	compressor := lz4.NewWriter(buff)
	if _, err := compressor.Write(raw); err != nil {
		return nil, err
	}
	if err := compressor.Close(); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// decodePartialBatch is the inverse of encodePartialBatch
func decodePartialBatch(data []byte) ([]partialRecord, error) {
	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.CorruptPartialError{Reason: fmt.Sprintf("unable to decompress batch: %v", err)}
	}
	count, n := binary.Uvarint(raw)
	if n <= 0 {
		return nil, errors.CorruptPartialError{Reason: "missing record count"}
	}
	raw = raw[n:]
	// every record needs at least a key length byte and a partial
	if count > uint64(len(raw)/(1+accumulators.PartialSize)) {
		return nil, errors.CorruptPartialError{Reason: fmt.Sprintf("%d records cannot fit in %d bytes", count, len(raw))}
	}
	records := make([]partialRecord, 0, count)
	for i := uint64(0); i < count; i++ {
		keyLen, n := binary.Uvarint(raw)
		if n <= 0 || keyLen > uint64(len(raw)-n) || uint64(len(raw)-n)-keyLen < accumulators.PartialSize {
			return nil, errors.CorruptPartialError{Reason: fmt.Sprintf("truncated record %d", i)}
		}
		raw = raw[n:]
		var key []byte
		if keyLen > 0 {
			key = raw[:keyLen]
		}
		raw = raw[keyLen:]
		partial, err := accumulators.DecodePartial(raw[:accumulators.PartialSize])
		if err != nil {
			return nil, err
		}
		raw = raw[accumulators.PartialSize:]
		records = append(records, partialRecord{key: key, partial: partial})
	}
	if len(raw) != 0 {
		return nil, errors.CorruptPartialError{Reason: fmt.Sprintf("%d trailing bytes", len(raw))}
	}
	return records, nil
}

func appendUvarint(buf []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(buf, tmp[:n]...)
}
