package collision

// Tracker records label hashes for a hash index and detects collisions.
//
// For every hash it remembers the first label and the index it was seen at,
// so duplicate labels keep resolving to their earliest declaration. Distinct
// labels that share a hash mark the hash as collided; lookups for a collided
// hash must not trust the stored index alone.
type Tracker struct {
	labels     map[uint64]string // Hash → first label
	indexes    map[uint64]int    // Hash → index of the first label
	collided   map[uint64]bool   // Hashes shared by distinct labels
	duplicates int
}

// NewTracker creates a tracker sized for count labels.
func NewTracker(count int) *Tracker {
	return &Tracker{
		labels:   make(map[uint64]string, count),
		indexes:  make(map[uint64]int, count),
		collided: make(map[uint64]bool),
	}
}

// Track records label at index under hash.
//
// It returns false when the hash was already tracked, either because the
// same label appeared earlier (a duplicate) or because a different label
// produced the same hash (a collision). In both cases the earlier index wins.
func (t *Tracker) Track(label string, hash uint64, index int) bool {
	if existing, ok := t.labels[hash]; ok {
		if existing == label {
			t.duplicates++
		} else {
			t.collided[hash] = true
		}

		return false
	}

	t.labels[hash] = label
	t.indexes[hash] = index

	return true
}

// Lookup returns the first index tracked for hash and whether the hash is collided.
func (t *Tracker) Lookup(hash uint64) (index int, collided bool, ok bool) {
	index, ok = t.indexes[hash]
	if !ok {
		return 0, false, false
	}

	return index, t.collided[hash], true
}

// HasCollision returns true if any two distinct labels shared a hash.
func (t *Tracker) HasCollision() bool {
	return len(t.collided) > 0
}

// Duplicates returns how many repeated labels were skipped.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}
