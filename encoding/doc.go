// Package encoding decodes TDMS values from raw bytes.
//
// The package covers the three places where typed values appear in a TDMS
// segment:
//
//   - Property values in the metadata block (DecodeValue, Reader.Value)
//   - Raw data arrays of fixed-size types (DecodeArray)
//   - Raw data arrays of strings (DecodeStringArray)
//
// Every multi-byte value is decoded with the payload byte order of its segment,
// passed in as an endian.EndianEngine.
//
// # Strings
//
// A property string is a u32 length followed by that many UTF-8 bytes. A raw
// string array stores all lengths first, then all string bytes:
//
//	[len0][len1][len2] [bytes0][bytes1][bytes2]
//
// Invalid UTF-8 is reported as errs.ErrInvalidUTF8; it is never replaced.
//
// # Timestamps
//
// A timestamp is a binary fraction of a second (uint64, numerator over 2^64)
// plus whole seconds (int64), both since Epoch (1904-01-01T00:00:00 UTC).
// Decoded timestamps are truncated to nanosecond resolution.
//
// # Unsupported Types
//
// Extended-precision floats, fixed-point, complex and DAQmx raw types are
// recognized by the format package but have no decoder; asking for one returns
// errs.ErrUnsupportedDataType.
package encoding
