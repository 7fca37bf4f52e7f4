// Package section defines the segment lead-in of the TDMS binary format.
//
// A TDMS file is a sequence of segments. Every segment starts with a fixed
// 28-byte lead-in that announces what the segment contains and how long it is:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Lead-in (28 bytes, fixed)                               │
//	├─────────────────────────────────────────────────────────┤
//	│ Metadata (RawDataOffset bytes, optional)                │
//	│  - object count, object paths, descriptors, properties  │
//	├─────────────────────────────────────────────────────────┤
//	│ Raw data (NextSegmentLength - RawDataOffset bytes)      │
//	│  - one or more chunks of per-object value arrays        │
//	└─────────────────────────────────────────────────────────┘
//
// # Lead-in Format
//
//	Bytes  | Field             | Type   | Description
//	-------|-------------------|--------|----------------------------------
//	0-3    | Tag               | [4]u8  | "TDSm"
//	4-7    | TOC               | uint32 | Always little-endian
//	8-11   | Version           | uint32 | Payload byte order
//	12-19  | NextSegmentLength | uint64 | Payload byte order
//	20-27  | RawDataOffset     | uint64 | Payload byte order
//
// # TOC Format
//
//	Bit 1: metadata present
//	Bit 2: new object list
//	Bit 3: raw data present
//	Bit 5: interleaved raw data
//	Bit 6: big-endian payload
//	Bit 7: DAQmx raw data present
//
// The big-endian bit governs every multi-byte field after the TOC, in the
// lead-in as well as in the metadata and raw data of the segment.
package section
