package segment

import (
	"fmt"

	"github.com/arloliu/tdms/section"
)

// Segment is one decoded segment.
type Segment struct {
	LeadIn section.LeadIn
	// Objects is the object list in effect for the segment, including objects
	// carried over from earlier segments.
	Objects []Object
	// Values holds the decoded raw values, indexed like Objects.
	Values [][]any
	// Chunks is the number of repetitions of the raw data chunk.
	Chunks int
}

// Info summarizes a decoded segment.
type Info struct {
	Start        int64
	End          int64
	RawDataStart int64
	Version      uint32
	TOC          section.TOC
	Objects      int
	Chunks       int
}

// Info returns a summary of the segment.
func (s *Segment) Info() Info {
	return Info{
		Start:        s.LeadIn.Start,
		End:          s.LeadIn.End(),
		RawDataStart: s.LeadIn.RawDataStart(),
		Version:      s.LeadIn.Version,
		TOC:          s.LeadIn.TOC,
		Objects:      len(s.Objects),
		Chunks:       s.Chunks,
	}
}

// Decoder decodes the segments of one file in order.
//
// It owns the template registry and the object list of the previous segment,
// both of which later segments depend on. Use a new Decoder for every file.
//
// Note: The Decoder is NOT thread-safe.
type Decoder struct {
	registry *Registry
	objects  []Object
}

// NewDecoder creates a Decoder with an empty registry.
func NewDecoder() *Decoder {
	return &Decoder{
		registry: NewRegistry(),
	}
}

// Registry returns the template registry of the decoder.
func (d *Decoder) Registry() *Registry {
	return d.registry
}

// Decode decodes the segment starting at offset.
//
// Parameters:
//   - data: The whole file
//   - offset: Absolute offset of the segment lead-in
//
// Returns:
//   - *Segment: The decoded segment; the next segment starts at LeadIn.End()
//   - error: Any error from the lead-in, metadata or raw data decoding
func (d *Decoder) Decode(data []byte, offset int64) (*Segment, error) {
	lead, err := section.ParseLeadIn(data, offset)
	if err != nil {
		return nil, err
	}

	if err := lead.Validate(int64(len(data))); err != nil {
		return nil, err
	}

	objects, err := d.objectList(data, &lead)
	if err != nil {
		return nil, err
	}

	raw, err := ReadRawData(data, &lead, objects)
	if err != nil {
		return nil, err
	}

	d.objects = objects

	return &Segment{
		LeadIn:  lead,
		Objects: objects,
		Values:  raw.Values,
		Chunks:  raw.Chunks,
	}, nil
}

// objectList builds the object list of the segment from its metadata and the
// list of the previous segment.
func (d *Decoder) objectList(data []byte, lead *section.LeadIn) ([]Object, error) {
	if !lead.TOC.HasMetaData() {
		return d.carryOver()
	}

	declared, err := ParseMetaData(data, lead, d.registry)
	if err != nil {
		return nil, err
	}

	if lead.TOC.HasNewObjectList() {
		return declared, nil
	}

	objects, err := d.carryOver()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(objects))
	for i := range objects {
		index[objects[i].Path] = i
	}

	for _, obj := range declared {
		if i, ok := index[obj.Path]; ok {
			objects[i] = obj
			continue
		}
		index[obj.Path] = len(objects)
		objects = append(objects, obj)
	}

	return objects, nil
}

// carryOver copies the previous object list without properties, resolving
// descriptors through the registry.
func (d *Decoder) carryOver() ([]Object, error) {
	objects := make([]Object, len(d.objects))
	for i, prev := range d.objects {
		objects[i] = Object{Path: prev.Path}
		if prev.Descriptor == nil {
			continue
		}

		desc, err := d.registry.Resolve(prev.Path)
		if err != nil {
			return nil, fmt.Errorf("carried over object: %w", err)
		}
		objects[i].Descriptor = &desc
		objects[i].Reused = true
	}

	return objects, nil
}
