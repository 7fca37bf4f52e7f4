package collision

import (
	"github.com/arloliu/tdms/internal/hash"
)

// Tracker remembers which raw object path produced each normalized key and
// detects distinct raw paths that end up sharing a key (or a key hash).
//
// Path normalization is lossy: /'a b' and /'a_b' both become a_b. Objects
// with colliding keys are merged into the same tree node, which is usually
// not what the writer of the file intended.
type Tracker struct {
	rawByID    map[uint64]string // key hash → first raw path
	collisions int
}

// Collision describes a raw path whose key was already claimed by another raw path.
type Collision struct {
	Key      string
	Raw      string
	Existing string
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		rawByID: make(map[uint64]string),
	}
}

// Track records that raw normalizes to key.
//
// Returns the collision and true when key (or its hash) was previously claimed
// by a different raw path. Tracking the same raw path again is not a collision.
func (t *Tracker) Track(key, raw string) (Collision, bool) {
	id := hash.ID(key)

	existing, exists := t.rawByID[id]
	if !exists {
		t.rawByID[id] = raw

		return Collision{}, false
	}

	if existing == raw {
		return Collision{}, false
	}

	t.collisions++

	return Collision{Key: key, Raw: raw, Existing: existing}, true
}

// Collisions returns the number of collisions detected.
func (t *Tracker) Collisions() int {
	return t.collisions
}

// Count returns the number of distinct keys tracked.
func (t *Tracker) Count() int {
	return len(t.rawByID)
}
