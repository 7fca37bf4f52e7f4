// Package testutil builds TDMS byte streams for tests.
package testutil

import (
	"math"
	"math/bits"
	"time"

	"github.com/arloliu/tdms/encoding"
	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/section"
)

// IndexKind selects how an object's raw data index is written.
type IndexKind uint8

const (
	NoData IndexKind = iota // 0xFFFFFFFF
	Full                    // full descriptor
	Reuse                   // 0x00000000
	Marker                  // Object.Marker written verbatim
)

// Property is a property to write.
type Property struct {
	Name  string
	Type  format.DataType
	Value any
}

// Object is an object to write into a segment's metadata.
type Object struct {
	Path       string
	Index      IndexKind
	Marker     uint32
	Type       format.DataType
	Dimension  uint32 // defaults to 1
	Count      uint64
	TotalSize  uint64 // strings only
	Properties []Property
}

// Segment is a segment to write.
type Segment struct {
	TOC        section.TOC
	Version    uint32 // defaults to 4713
	Objects    []Object
	Raw        []byte
	Incomplete bool // write the "still being written" length
}

// Builder accumulates segments into a file image.
type Builder struct {
	data []byte
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a segment. The metadata and raw data flags are not derived from
// the content, set them in seg.TOC.
func (b *Builder) Add(seg Segment) *Builder {
	engine := seg.TOC.GetEndianEngine()

	var meta []byte
	if seg.TOC.HasMetaData() {
		meta = engine.AppendUint32(meta, uint32(len(seg.Objects))) //nolint:gosec
		for _, obj := range seg.Objects {
			meta = appendObject(meta, engine, obj)
		}
	}

	version := seg.Version
	if version == 0 {
		version = 4713
	}

	next := uint64(len(meta) + len(seg.Raw))
	if seg.Incomplete {
		next = section.IncompleteSegmentLength
	}

	b.data = append(b.data, section.Tag[:]...)
	b.data = endian.GetLittleEndianEngine().AppendUint32(b.data, uint32(seg.TOC))
	b.data = engine.AppendUint32(b.data, version)
	b.data = engine.AppendUint64(b.data, next)
	b.data = engine.AppendUint64(b.data, uint64(len(meta)))
	b.data = append(b.data, meta...)
	b.data = append(b.data, seg.Raw...)

	return b
}

// Bytes returns the file image.
func (b *Builder) Bytes() []byte {
	return b.data
}

func appendObject(dst []byte, engine endian.EndianEngine, obj Object) []byte {
	dst = AppendString(dst, engine, obj.Path)

	switch obj.Index {
	case NoData:
		dst = engine.AppendUint32(dst, 0xFFFFFFFF)
	case Reuse:
		dst = engine.AppendUint32(dst, 0)
	case Marker:
		dst = engine.AppendUint32(dst, obj.Marker)
	case Full:
		dim := obj.Dimension
		if dim == 0 {
			dim = 1
		}
		length := uint32(20)
		if obj.Type.IsVariableSize() {
			length = 28
		}
		dst = engine.AppendUint32(dst, length)
		dst = engine.AppendUint32(dst, uint32(obj.Type))
		dst = engine.AppendUint32(dst, dim)
		dst = engine.AppendUint64(dst, obj.Count)
		if obj.Type.IsVariableSize() {
			dst = engine.AppendUint64(dst, obj.TotalSize)
		}
	}

	dst = engine.AppendUint32(dst, uint32(len(obj.Properties))) //nolint:gosec
	for _, p := range obj.Properties {
		dst = AppendString(dst, engine, p.Name)
		dst = engine.AppendUint32(dst, uint32(p.Type))
		dst = AppendValue(dst, engine, p.Type, p.Value)
	}

	return dst
}

// AppendString appends a u32 length prefix and the bytes of s.
func AppendString(dst []byte, engine endian.EndianEngine, s string) []byte {
	dst = engine.AppendUint32(dst, uint32(len(s))) //nolint:gosec
	return append(dst, s...)
}

// AppendValue appends a single encoded value of type dt. Strings get a length prefix.
func AppendValue(dst []byte, engine endian.EndianEngine, dt format.DataType, v any) []byte {
	switch x := v.(type) {
	case int8:
		return append(dst, byte(x))
	case int16:
		return engine.AppendUint16(dst, uint16(x)) //nolint:gosec
	case int32:
		return engine.AppendUint32(dst, uint32(x)) //nolint:gosec
	case int64:
		return engine.AppendUint64(dst, uint64(x)) //nolint:gosec
	case uint8:
		return append(dst, x)
	case uint16:
		return engine.AppendUint16(dst, x)
	case uint32:
		return engine.AppendUint32(dst, x)
	case uint64:
		return engine.AppendUint64(dst, x)
	case float32:
		return engine.AppendUint32(dst, math.Float32bits(x))
	case float64:
		return engine.AppendUint64(dst, math.Float64bits(x))
	case bool:
		if x {
			return append(dst, 1)
		}
		return append(dst, 0)
	case string:
		return AppendString(dst, engine, x)
	case time.Time:
		return AppendTimestamp(dst, engine, x)
	case nil:
		return dst
	default:
		panic("testutil: unsupported value for " + dt.String())
	}
}

// Values encodes values back to back, the way fixed-size raw data is laid out.
func Values(engine endian.EndianEngine, dt format.DataType, values ...any) []byte {
	var dst []byte
	for _, v := range values {
		dst = AppendValue(dst, engine, dt, v)
	}

	return dst
}

// Strings encodes a raw string array: one u32 length per string, then the bytes.
func Strings(engine endian.EndianEngine, values ...string) []byte {
	var dst []byte
	for _, s := range values {
		dst = engine.AppendUint32(dst, uint32(len(s))) //nolint:gosec
	}
	for _, s := range values {
		dst = append(dst, s...)
	}

	return dst
}

// AppendTimestamp appends t as a TDMS timestamp, rounding the fraction up so
// that decoding yields the same nanosecond.
func AppendTimestamp(dst []byte, engine endian.EndianEngine, t time.Time) []byte {
	seconds := t.Unix() - encoding.Epoch.Unix()
	nanos := uint64(t.Nanosecond()) //nolint:gosec

	fraction, rem := bits.Div64(nanos, 0, 1_000_000_000)
	if rem != 0 {
		fraction++
	}

	return AppendTimestampParts(dst, engine, seconds, fraction)
}

// AppendTimestampParts appends a timestamp from its raw fields.
func AppendTimestampParts(dst []byte, engine endian.EndianEngine, seconds int64, fraction uint64) []byte {
	if endian.IsBigEndian(engine) {
		dst = engine.AppendUint64(dst, uint64(seconds)) //nolint:gosec
		return engine.AppendUint64(dst, fraction)
	}

	dst = engine.AppendUint64(dst, fraction)

	return engine.AppendUint64(dst, uint64(seconds)) //nolint:gosec
}
