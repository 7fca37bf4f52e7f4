package segment

import (
	"fmt"

	"github.com/arloliu/tdms/encoding"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/section"
)

// ParseMetaData decodes the object list of the segment described by lead.
//
// Full descriptors are written to reg; reuse markers are resolved through it.
// Objects are returned in file order, which is also the order of their blocks
// in the raw data region.
//
// Parameters:
//   - data: The whole file
//   - lead: Lead-in of the segment, with the metadata flag set
//   - reg: Template registry of the current load
//
// Returns:
//   - []Object: Objects declared by the segment
//   - error: ErrTruncated, ErrUnknownDataType, ErrInvalidUTF8, ErrUndefinedTemplate or ErrDAQmx
func ParseMetaData(data []byte, lead *section.LeadIn, reg *Registry) ([]Object, error) {
	r := encoding.NewReader(data, int(lead.MetaDataStart()), int(lead.RawDataStart()), lead.GetEndianEngine())

	count, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("object count: %w", err)
	}

	// every object needs at least 12 bytes, don't trust count for the allocation
	objects := make([]Object, 0, min(int(count), r.Remaining()/12))
	for i := range count {
		obj, err := parseObject(r, reg)
		if err != nil {
			return nil, fmt.Errorf("object %d of %d: %w", i, count, err)
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

func parseObject(r *encoding.Reader, reg *Registry) (Object, error) {
	path, err := r.String()
	if err != nil {
		return Object{}, fmt.Errorf("path: %w", err)
	}

	obj := Object{Path: path, Declared: true}

	index, err := r.Uint32()
	if err != nil {
		return obj, fmt.Errorf("%s: raw data index: %w", path, err)
	}

	switch index {
	case NoRawData:
	case ReuseRawDataIndex:
		d, err := reg.Resolve(path)
		if err != nil {
			return obj, err
		}
		obj.Descriptor = &d
		obj.Reused = true
	case DAQmxFormatScaler, DAQmxDigitalLineScal:
		return obj, fmt.Errorf("%w: %s: raw data index 0x%08X", errs.ErrDAQmx, path, index)
	default:
		d, err := parseDescriptor(r)
		if err != nil {
			return obj, fmt.Errorf("%s: %w", path, err)
		}
		reg.Define(path, d)
		obj.Descriptor = &d
	}

	props, err := parseProperties(r)
	if err != nil {
		return obj, fmt.Errorf("%s: %w", path, err)
	}
	obj.Properties = props

	return obj, nil
}

func parseDescriptor(r *encoding.Reader) (Descriptor, error) {
	var d Descriptor
	var err error

	if d.DataType, err = r.DataType(); err != nil {
		return d, fmt.Errorf("raw data type: %w", err)
	}
	if d.Dimension, err = r.Uint32(); err != nil {
		return d, fmt.Errorf("raw data dimension: %w", err)
	}
	if d.Count, err = r.Uint64(); err != nil {
		return d, fmt.Errorf("raw data count: %w", err)
	}
	if d.DataType.IsVariableSize() {
		if d.TotalSize, err = r.Uint64(); err != nil {
			return d, fmt.Errorf("raw data size: %w", err)
		}
	}

	return d, nil
}

func parseProperties(r *encoding.Reader) (Properties, error) {
	count, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("property count: %w", err)
	}

	props := make(Properties, min(int(count), r.Remaining()/8))
	for i := range count {
		name, err := r.String()
		if err != nil {
			return nil, fmt.Errorf("property %d name: %w", i, err)
		}

		dt, err := r.DataType()
		if err != nil {
			return nil, fmt.Errorf("property %q type: %w", name, err)
		}

		value, err := r.Value(dt)
		if err != nil {
			return nil, fmt.Errorf("property %q value: %w", name, err)
		}

		// last write wins on duplicate names
		props[name] = Property{Type: dt, Value: value}
	}

	return props, nil
}
