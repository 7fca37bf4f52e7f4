package segment

import (
	"fmt"
	"time"

	"github.com/arloliu/tdms/format"
)

// Raw data index markers.
const (
	NoRawData            = 0xFFFFFFFF // object has no raw data in this segment
	ReuseRawDataIndex    = 0x00000000 // same descriptor as the last one for this path
	DAQmxFormatScaler    = 0x69120000 // DAQmx format changing scaler
	DAQmxDigitalLineScal = 0x69130000 // DAQmx digital line scaler
)

// Descriptor describes the raw data of one object in one segment.
type Descriptor struct {
	DataType  format.DataType
	Dimension uint32 // always 1 in files seen so far
	Count     uint64 // number of values per chunk
	TotalSize uint64 // encoded byte size per chunk, strings only
}

func (d Descriptor) String() string {
	if d.DataType.IsVariableSize() {
		return fmt.Sprintf("%s[%d] (%d bytes)", d.DataType, d.Count, d.TotalSize)
	}

	return fmt.Sprintf("%s[%d]", d.DataType, d.Count)
}

// Property is a typed property value.
type Property struct {
	Type  format.DataType
	Value any
}

// Properties maps property names to values.
type Properties map[string]Property

// Object is an object as it appears in one segment.
type Object struct {
	// Path is the raw object path, e.g. /'Group'/'Channel'.
	Path string
	// Descriptor is nil when the object has no raw data in the segment.
	Descriptor *Descriptor
	// Properties declared for the object in this segment's metadata.
	Properties Properties
	// Declared is false for objects carried over from the previous segment's
	// object list without metadata of their own.
	Declared bool
	// Reused is true when the descriptor was taken from the template registry.
	Reused bool
}

// HasRawData reports whether the object contributes values to the raw data block.
func (o *Object) HasRawData() bool {
	return o.Descriptor != nil
}

// String returns the string value of a property.
func (p Properties) String(name string) (string, bool) {
	return propertyAs[string](p, name)
}

// Bool returns the boolean value of a property.
func (p Properties) Bool(name string) (bool, bool) {
	return propertyAs[bool](p, name)
}

// Time returns the timestamp value of a property.
func (p Properties) Time(name string) (time.Time, bool) {
	return propertyAs[time.Time](p, name)
}

// Int64 returns the value of an integer property of any width.
// Unsigned values above math.MaxInt64 are not representable and report false.
func (p Properties) Int64(name string) (int64, bool) {
	prop, ok := p[name]
	if !ok {
		return 0, false
	}

	switch v := prop.Value.(type) {
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > 1<<63-1 {
			return 0, false
		}

		return int64(v), true
	default:
		return 0, false
	}
}

// Float64 returns the value of a floating point property.
func (p Properties) Float64(name string) (float64, bool) {
	prop, ok := p[name]
	if !ok {
		return 0, false
	}

	switch v := prop.Value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// Merge copies every property of src into p, overwriting existing names.
func (p Properties) Merge(src Properties) {
	for name, prop := range src {
		p[name] = prop
	}
}

func propertyAs[T any](p Properties, name string) (T, bool) {
	var zero T

	prop, ok := p[name]
	if !ok {
		return zero, false
	}

	v, ok := prop.Value.(T)

	return v, ok
}
