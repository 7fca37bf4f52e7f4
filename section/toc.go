package section

import (
	"strings"

	"github.com/arloliu/tdms/endian"
)

// TOC is the table-of-contents bitmask of a segment.
//
// The mask is always stored little-endian, regardless of the payload byte order
// it announces.
type TOC uint32

// HasMetaData returns whether the segment contains object metadata.
func (t TOC) HasMetaData() bool {
	return t&MetaDataMask != 0
}

// HasNewObjectList returns whether the segment's objects replace the previous object list.
func (t TOC) HasNewObjectList() bool {
	return t&NewObjectListMask != 0
}

// HasRawData returns whether the segment contains raw data.
func (t TOC) HasRawData() bool {
	return t&RawDataMask != 0
}

// IsInterleaved returns whether the raw data of the segment is interleaved.
func (t TOC) IsInterleaved() bool {
	return t&InterleavedMask != 0
}

// IsBigEndian returns whether the payload of the segment is big-endian.
func (t TOC) IsBigEndian() bool {
	return t&BigEndianMask != 0
}

// HasDAQmxRawData returns whether the segment contains DAQmx raw data.
func (t TOC) HasDAQmxRawData() bool {
	return t&DAQmxRawDataMask != 0
}

// GetEndianEngine returns the engine for the payload byte order announced by the mask.
func (t TOC) GetEndianEngine() endian.EndianEngine {
	return endian.Select(t.IsBigEndian())
}

// String lists the flags set in the mask.
func (t TOC) String() string {
	names := make([]string, 0, 6)
	if t.HasMetaData() {
		names = append(names, "MetaData")
	}
	if t.HasNewObjectList() {
		names = append(names, "NewObjList")
	}
	if t.HasRawData() {
		names = append(names, "RawData")
	}
	if t.IsInterleaved() {
		names = append(names, "InterleavedData")
	}
	if t.IsBigEndian() {
		names = append(names, "BigEndian")
	}
	if t.HasDAQmxRawData() {
		names = append(names, "DAQmxRawData")
	}

	return strings.Join(names, "|")
}
