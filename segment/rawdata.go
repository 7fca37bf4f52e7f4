package segment

import (
	"errors"
	"fmt"

	"github.com/arloliu/tdms/encoding"
	"github.com/arloliu/tdms/errs"
	"github.com/arloliu/tdms/format"
	"github.com/arloliu/tdms/section"
)

// RawData holds the values decoded from the raw data region of one segment.
type RawData struct {
	// Values holds the decoded values of each object, indexed like the object
	// list. Objects without raw data have a nil entry.
	Values [][]any
	// Chunks is the number of times the object blocks repeat in the region.
	Chunks int
	// End is the absolute offset just past the last decoded byte.
	End int64
}

// ReadRawData decodes the raw data region [lead.RawDataStart(), lead.End())
// of a segment.
//
// The region holds one block per object with raw data, in object order. The
// sequence of blocks (a chunk) may repeat until the region is exhausted;
// values of later chunks are appended after those of earlier ones. Every byte
// of the region must be consumed.
//
// The interleaved and DAQmx flags describe the raw data layout, so they are
// only rejected when the raw data flag is set.
//
// Parameters:
//   - data: The whole file
//   - lead: Lead-in of the segment
//   - objects: Object list of the segment, with resolved descriptors
//
// Returns:
//   - *RawData: Decoded values
//   - error: ErrInterleaved, ErrDAQmx, ErrTruncated, ErrRawDataSize, ErrTruncatedSegment,
//     ErrInvalidUTF8 or ErrUnsupportedDataType
func ReadRawData(data []byte, lead *section.LeadIn, objects []Object) (*RawData, error) {
	start, end := lead.RawDataStart(), lead.End()
	if end > int64(len(data)) || start > end {
		return nil, fmt.Errorf("%w: raw data [%d, %d) in %d bytes",
			errs.ErrTruncatedSegment, start, end, len(data))
	}

	raw := &RawData{
		Values: make([][]any, len(objects)),
		End:    start,
	}

	if !lead.TOC.HasRawData() {
		return raw, nil
	}

	if lead.TOC.IsInterleaved() {
		return nil, fmt.Errorf("%w: segment at offset %d", errs.ErrInterleaved, lead.Start)
	}

	if lead.TOC.HasDAQmxRawData() {
		return nil, fmt.Errorf("%w: segment at offset %d", errs.ErrDAQmx, lead.Start)
	}

	engine := lead.GetEndianEngine()
	region := data[:end]
	offset := start

	for {
		chunkStart := offset
		for i := range objects {
			d := objects[i].Descriptor
			if d == nil {
				continue
			}

			if d.DataType == format.TypeDAQmxRawData {
				return nil, fmt.Errorf("%w: %s", errs.ErrDAQmx, objects[i].Path)
			}

			values, n, err := encoding.DecodeArray(d.DataType, d.Count, region[offset:], engine)
			if err != nil {
				if raw.Chunks > 0 && errors.Is(err, errs.ErrTruncated) {
					return nil, fmt.Errorf("%w: %d bytes left after %d chunks",
						errs.ErrRawDataSize, end-chunkStart, raw.Chunks)
				}

				return nil, fmt.Errorf("%s: %w", objects[i].Path, err)
			}

			if raw.Values[i] == nil {
				raw.Values[i] = values
			} else {
				raw.Values[i] = append(raw.Values[i], values...)
			}
			offset += int64(n)
		}
		raw.Chunks++

		// an empty chunk would repeat forever
		if offset == chunkStart || offset == end {
			break
		}
	}

	if offset != end {
		return nil, fmt.Errorf("%w: %d bytes not read by any object after %d chunks",
			errs.ErrRawDataSize, end-offset, raw.Chunks)
	}
	raw.End = offset

	return raw, nil
}
