package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a normalized object key.
//
// Group and channel IDs are derived from their keys, so the same object keeps
// its ID across files and loads.
func ID(key string) uint64 {
	return xxhash.Sum64String(key)
}
