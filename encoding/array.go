package encoding

import (
	"fmt"

	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
)

// DecodeArray decodes count consecutive values of type dt from the start of data.
//
// Fixed-size types are read back-to-back without padding. Strings are read as
// count u32 lengths, one per string, followed by the string bytes in the same order.
// Void arrays decode to no values.
//
// Parameters:
//   - dt: Element data type
//   - count: Number of elements
//   - data: Byte slice starting at the first element
//   - engine: Payload byte order
//
// Returns:
//   - []any: Decoded values in encoding order
//   - int: Number of bytes consumed
//   - error: ErrTruncated, ErrInvalidUTF8, or ErrUnsupportedDataType
func DecodeArray(dt format.DataType, count uint64, data []byte, engine endian.EndianEngine) ([]any, int, error) {
	switch dt.Kind() {
	case format.KindString:
		return DecodeStringArray(count, data, engine)
	case format.KindUnsupported:
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrUnsupportedDataType, dt)
	case format.KindVoid:
		// void elements occupy no bytes and carry no value
		return nil, 0, nil
	}

	size := dt.Size()
	if count > uint64(len(data)/size) {
		return nil, 0, fmt.Errorf("%w: %d values of %s need %d bytes, %d available",
			errs.ErrTruncated, count, dt, count*uint64(size), len(data))
	}

	values := make([]any, count)
	offset := 0
	for i := range values {
		v, n, err := decodeFixed(dt, data[offset:], engine)
		if err != nil {
			return nil, 0, err
		}
		values[i] = v
		offset += n
	}

	return values, offset, nil
}

// DecodeStringArray decodes count strings laid out as count u32 lengths
// followed by the concatenated UTF-8 bytes.
func DecodeStringArray(count uint64, data []byte, engine endian.EndianEngine) ([]any, int, error) {
	if count > uint64(len(data)/4) {
		return nil, 0, fmt.Errorf("%w: %d string lengths need %d bytes, %d available",
			errs.ErrTruncated, count, count*4, len(data))
	}

	lengths := make([]uint32, count)
	offset := 0
	for i := range lengths {
		lengths[i] = engine.Uint32(data[offset:])
		offset += 4
	}

	values := make([]any, count)
	for i, n := range lengths {
		s, err := DecodeString(data[offset:], n)
		if err != nil {
			return nil, 0, fmt.Errorf("string %d of %d: %w", i, count, err)
		}
		values[i] = s
		offset += int(n)
	}

	return values, offset, nil
}
