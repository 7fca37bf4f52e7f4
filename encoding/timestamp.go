package encoding

import (
	"math/bits"
	"time"

	"github.com/arloliu/tdms/endian"
)

// TimestampSize is the encoded width of a TDMS timestamp.
const TimestampSize = 16

const nanosPerSecond = 1_000_000_000

// Epoch is the reference instant of TDMS timestamps, 1904-01-01T00:00:00 UTC.
var Epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

// DecodeTimestamp decodes a 16-byte TDMS timestamp.
//
// A timestamp is a count of whole seconds (int64) plus a fraction of a second
// (uint64 numerator over 2^64), both relative to Epoch. Little-endian data stores
// the fraction first; big-endian data stores the seconds first.
//
// The fraction is truncated to nanosecond resolution.
//
// Parameters:
//   - data: Byte slice holding at least 16 bytes
//   - engine: Payload byte order
//
// Returns:
//   - time.Time: The decoded instant in UTC
func DecodeTimestamp(data []byte, engine endian.EndianEngine) time.Time {
	var fraction uint64
	var seconds int64
	if endian.IsBigEndian(engine) {
		seconds = int64(engine.Uint64(data[0:8])) //nolint:gosec
		fraction = engine.Uint64(data[8:16])
	} else {
		fraction = engine.Uint64(data[0:8])
		seconds = int64(engine.Uint64(data[8:16])) //nolint:gosec
	}

	return TimestampFromParts(seconds, fraction)
}

// TimestampFromParts converts whole seconds and a binary fraction since Epoch to a time.Time.
func TimestampFromParts(seconds int64, fraction uint64) time.Time {
	// fraction / 2^64 * 1e9, keeping the high word of the 128-bit product
	nanos, _ := bits.Mul64(fraction, nanosPerSecond)

	return time.Unix(Epoch.Unix()+seconds, int64(nanos)).UTC() //nolint:gosec
}
