// Package errs defines the error values returned while decoding TDMS files.
//
// Every error belongs to one of three classes, each represented by a sentinel:
//
//   - ErrFormat: the bytes do not form a valid TDMS stream (bad tag, unknown
//     type code, malformed UTF-8, truncated data).
//   - ErrConsistency: the stream is well formed but contradicts itself (reuse of
//     an undefined descriptor, a second root object).
//   - ErrUnsupported: the stream uses a feature this package cannot decode
//     (interleaved raw data, DAQmx raw data, extended/fixed-point/complex types).
//
// Specific errors wrap their class, so callers can test either level:
//
//	if errors.Is(err, errs.ErrFormat) { ... }
//	if errors.Is(err, errs.ErrInvalidTag) { ... }
package errs

import (
	"errors"
	"fmt"
)

// Error classes.
var (
	ErrFormat      = errors.New("tdms: format error")
	ErrConsistency = errors.New("tdms: consistency error")
	ErrUnsupported = errors.New("tdms: unsupported feature")
)

// Format errors.
var (
	ErrInvalidTag        = fmt.Errorf("%w: invalid lead-in tag", ErrFormat)
	ErrInvalidHeaderSize = fmt.Errorf("%w: lead-in shorter than 28 bytes", ErrFormat)
	ErrUnknownDataType   = fmt.Errorf("%w: unknown data type", ErrFormat)
	ErrInvalidUTF8       = fmt.Errorf("%w: invalid UTF-8", ErrFormat)
	ErrInvalidPath       = fmt.Errorf("%w: object path nests deeper than group/channel", ErrFormat)
	ErrTruncated         = fmt.Errorf("%w: unexpected end of data", ErrFormat)
	ErrIncompleteSegment = fmt.Errorf("%w: segment length is unknown (file still being written)", ErrFormat)
	ErrTruncatedSegment  = fmt.Errorf("%w: segment extends beyond end of data", ErrFormat)
	ErrRawDataSize       = fmt.Errorf("%w: raw data size is not a multiple of the chunk size", ErrFormat)
	ErrTooManySegments   = fmt.Errorf("%w: segment limit exceeded", ErrFormat)
)

// Consistency errors.
var (
	ErrUndefinedTemplate = fmt.Errorf("%w: reuse of undefined object", ErrConsistency)
	ErrDuplicateRoot     = fmt.Errorf("%w: duplicate root", ErrConsistency)
	ErrPathCollision     = fmt.Errorf("%w: distinct object paths share a normalized key", ErrConsistency)
)

// Unsupported feature errors.
var (
	ErrInterleaved         = fmt.Errorf("%w: interleaved raw data", ErrUnsupported)
	ErrDAQmx               = fmt.Errorf("%w: DAQmx raw data", ErrUnsupported)
	ErrUnsupportedDataType = fmt.Errorf("%w: data type has no decoder", ErrUnsupported)
)

// SegmentError reports the segment in which a load failed.
type SegmentError struct {
	Index  int   // zero-based segment number
	Offset int64 // byte offset of the segment lead-in
	Err    error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("tdms: segment %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}
