package encoding

import (
	"fmt"

	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
)

// Reader is a bounds-checked cursor over a byte slice in one byte order.
//
// Note: The Reader is NOT thread-safe.
type Reader struct {
	data   []byte
	offset int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data[offset:limit].
//
// Offsets reported by the Reader are absolute positions in data, so a Reader
// over a whole file reports file offsets.
func NewReader(data []byte, offset, limit int, engine endian.EndianEngine) *Reader {
	if limit > len(data) {
		limit = len(data)
	}
	if offset > limit {
		offset = limit
	}

	return &Reader{
		data:   data[:limit],
		offset: offset,
		engine: engine,
	}
}

// Offset returns the absolute position of the cursor.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Engine returns the byte order of the reader.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

func (r *Reader) next(n int, what string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: %s at offset %d needs %d bytes, %d available",
			errs.ErrTruncated, what, r.offset, n, r.Remaining())
	}

	b := r.data[r.offset : r.offset+n]
	r.offset += n

	return b, nil
}

// Uint32 reads a 32-bit unsigned integer.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.next(4, "uint32")
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// Uint64 reads a 64-bit unsigned integer.
func (r *Reader) Uint64() (uint64, error) {
	b, err := r.next(8, "uint64")
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// String reads a u32 length prefix followed by that many bytes of UTF-8 text.
func (r *Reader) String() (string, error) {
	n, err := r.Uint32()
	if err != nil {
		return "", err
	}

	if uint64(r.Remaining()) < uint64(n) {
		return "", fmt.Errorf("%w: string of %d bytes at offset %d, %d available",
			errs.ErrTruncated, n, r.offset, r.Remaining())
	}

	b, _ := r.next(int(n), "string")

	return DecodeString(b, n)
}

// DataType reads a u32 type code and maps it through the type table.
func (r *Reader) DataType() (format.DataType, error) {
	code, err := r.Uint32()
	if err != nil {
		return 0, err
	}

	return format.ParseDataType(code)
}

// Value reads a single value of type dt.
func (r *Reader) Value(dt format.DataType) (any, error) {
	v, n, err := DecodeValue(dt, r.data[r.offset:], r.engine)
	if err != nil {
		return nil, err
	}
	r.offset += n

	return v, nil
}
