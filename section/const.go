package section

import "math"

const (
	// TOC bit masks
	MetaDataMask      = 1 << 1 // segment contains object metadata
	NewObjectListMask = 1 << 2 // segment starts a new object list
	RawDataMask       = 1 << 3 // segment contains raw data
	InterleavedMask   = 1 << 5 // raw data is interleaved
	BigEndianMask     = 1 << 6 // payload is big-endian
	DAQmxRawDataMask  = 1 << 7 // segment contains DAQmx raw data
)

// offsets and sizes in the lead-in
const (
	LeadInSize          = 28 // fixed lead-in size in bytes
	TagOffset           = 0
	TOCOffset           = 4
	VersionOffset       = 8
	NextSegmentOffset   = 12
	RawDataOffsetOffset = 20

	// IncompleteSegmentLength is written as the next segment length while a
	// file is still being written.
	IncompleteSegmentLength = math.MaxUint64
)

// Tag is the 4-byte marker at the start of every segment.
var Tag = [4]byte{'T', 'D', 'S', 'm'}
