package encoding

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
)

// DecodeValue decodes a single value of type dt from the start of data.
//
// Decoded values use these Go types:
//
//	I8, I16, I32, I64                    int8, int16, int32, int64
//	U8, U16, U32, U64                    uint8, uint16, uint32, uint64
//	SingleFloat(WithUnit)                float32
//	DoubleFloat(WithUnit)                float64
//	Boolean                              bool
//	String                               string (u32 length prefix + UTF-8 bytes)
//	TimeStamp                            time.Time
//	Void                                 nil
//
// Parameters:
//   - dt: Data type of the value
//   - data: Byte slice starting at the value
//   - engine: Payload byte order
//
// Returns:
//   - any: The decoded value
//   - int: Number of bytes consumed
//   - error: ErrTruncated, ErrInvalidUTF8, or ErrUnsupportedDataType
func DecodeValue(dt format.DataType, data []byte, engine endian.EndianEngine) (any, int, error) {
	if dt.Kind() == format.KindString {
		if len(data) < 4 {
			return nil, 0, fmt.Errorf("%w: string length prefix", errs.ErrTruncated)
		}

		n := engine.Uint32(data)
		s, err := DecodeString(data[4:], n)
		if err != nil {
			return nil, 0, err
		}

		return s, 4 + int(n), nil
	}

	return decodeFixed(dt, data, engine)
}

// DecodeString decodes n bytes of UTF-8 text from the start of data.
func DecodeString(data []byte, n uint32) (string, error) {
	if uint64(len(data)) < uint64(n) {
		return "", fmt.Errorf("%w: string of %d bytes, %d available", errs.ErrTruncated, n, len(data))
	}

	b := data[:n]
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return string(b), nil
}

// decodeFixed decodes a value of a fixed-size type.
func decodeFixed(dt format.DataType, data []byte, engine endian.EndianEngine) (any, int, error) {
	if !dt.IsSupported() {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedDataType, dt)
	}

	size := dt.Size()
	if len(data) < size {
		return nil, 0, fmt.Errorf("%w: %s needs %d bytes, %d available", errs.ErrTruncated, dt, size, len(data))
	}

	switch dt {
	case format.TypeVoid:
		return nil, 0, nil
	case format.TypeI8:
		return int8(data[0]), 1, nil //nolint:gosec
	case format.TypeI16:
		return int16(engine.Uint16(data)), 2, nil //nolint:gosec
	case format.TypeI32:
		return int32(engine.Uint32(data)), 4, nil //nolint:gosec
	case format.TypeI64:
		return int64(engine.Uint64(data)), 8, nil //nolint:gosec
	case format.TypeU8:
		return data[0], 1, nil
	case format.TypeU16:
		return engine.Uint16(data), 2, nil
	case format.TypeU32:
		return engine.Uint32(data), 4, nil
	case format.TypeU64:
		return engine.Uint64(data), 8, nil
	case format.TypeSingleFloat, format.TypeSingleFloatWithUnit:
		return math.Float32frombits(engine.Uint32(data)), 4, nil
	case format.TypeDoubleFloat, format.TypeDoubleFloatWithUnit:
		return math.Float64frombits(engine.Uint64(data)), 8, nil
	case format.TypeBoolean:
		return data[0] != 0, 1, nil
	case format.TypeTimeStamp:
		return DecodeTimestamp(data, engine), TimestampSize, nil
	}

	// every supported fixed-size type is handled above
	return nil, 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedDataType, dt)
}
