package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/tdms/endian"
	"github.com/arloliu/tdms/errs"
)

// LeadIn represents the fixed 28-byte header at the start of every segment.
type LeadIn struct {
	// Start is the absolute byte offset of the lead-in in the file.
	Start int64
	// TOC is the table-of-contents bitmask. byte offset 4-7, always little-endian.
	TOC TOC
	// Version is the format version, 4712 or 4713 in files seen so far. byte offset 8-11
	Version uint32
	// NextSegmentLength is the byte count from the end of the lead-in to the end
	// of the segment. byte offset 12-19
	NextSegmentLength uint64
	// RawDataOffset is the byte count of the metadata block that follows the
	// lead-in. byte offset 20-27
	RawDataOffset uint64
}

// Parse parses the lead-in from a byte slice.
//
// The tag is checked before any other field is read. The TOC mask is decoded
// little-endian; the remaining fields use the byte order selected by the mask.
//
// Parameters:
//   - data: Byte slice starting at the lead-in (must be at least 28 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, ErrInvalidTag on a tag mismatch
func (l *LeadIn) Parse(data []byte) error {
	if len(data) < LeadInSize {
		return fmt.Errorf("%w: have %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	if !bytes.Equal(data[TagOffset:TagOffset+4], Tag[:]) {
		return fmt.Errorf("%w: got % X", errs.ErrInvalidTag, data[TagOffset:TagOffset+4])
	}

	l.TOC = TOC(endian.GetLittleEndianEngine().Uint32(data[TOCOffset:]))

	engine := l.TOC.GetEndianEngine()
	l.Version = engine.Uint32(data[VersionOffset:])
	l.NextSegmentLength = engine.Uint64(data[NextSegmentOffset:])
	l.RawDataOffset = engine.Uint64(data[RawDataOffsetOffset:])

	return nil
}

// Validate checks the declared lengths against the size of the buffer holding the file.
//
// Returns:
//   - error: ErrIncompleteSegment if the segment length is the "still being written"
//     sentinel, ErrTruncatedSegment if the segment or its metadata block extends
//     beyond size
func (l *LeadIn) Validate(size int64) error {
	if l.NextSegmentLength == IncompleteSegmentLength {
		return errs.ErrIncompleteSegment
	}

	available := uint64(0)
	if rest := size - l.Start - LeadInSize; rest > 0 {
		available = uint64(rest)
	}

	if l.NextSegmentLength > available {
		return fmt.Errorf("%w: declares %d bytes after the lead-in, %d available",
			errs.ErrTruncatedSegment, l.NextSegmentLength, available)
	}

	if l.RawDataOffset > l.NextSegmentLength {
		return fmt.Errorf("%w: metadata length %d exceeds segment length %d",
			errs.ErrTruncatedSegment, l.RawDataOffset, l.NextSegmentLength)
	}

	return nil
}

// MetaDataStart returns the absolute offset of the metadata block.
func (l *LeadIn) MetaDataStart() int64 {
	return l.Start + LeadInSize
}

// RawDataStart returns the absolute offset of the raw data block.
// Only meaningful after Validate succeeded.
func (l *LeadIn) RawDataStart() int64 {
	return l.Start + LeadInSize + int64(l.RawDataOffset) //nolint:gosec
}

// End returns the absolute offset one past the last byte of the segment.
// Only meaningful after Validate succeeded.
func (l *LeadIn) End() int64 {
	return l.Start + LeadInSize + int64(l.NextSegmentLength) //nolint:gosec
}

// GetEndianEngine returns the payload byte order of the segment.
func (l *LeadIn) GetEndianEngine() endian.EndianEngine {
	return l.TOC.GetEndianEngine()
}

// ParseLeadIn parses the lead-in located at offset start of data.
//
// Parameters:
//   - data: The whole file
//   - start: Absolute offset of the segment
//
// Returns:
//   - LeadIn: Parsed lead-in
//   - error: ErrInvalidHeaderSize or ErrInvalidTag
func ParseLeadIn(data []byte, start int64) (LeadIn, error) {
	if start < 0 || start > int64(len(data)) {
		return LeadIn{}, fmt.Errorf("%w: offset %d", errs.ErrInvalidHeaderSize, start)
	}

	l := LeadIn{Start: start}
	if err := l.Parse(data[start:]); err != nil {
		return LeadIn{}, err
	}

	return l, nil
}
