package descriptor

import "github.com/arloliu/enumrefl/format"

// Null is a static descriptor with no entries. It is a safe stand-in where
// a descriptor is required but none is known; every lookup misses.
var Null = Static(format.NullName+"\x00\x00\x00\x00\x00\x00\x00\x00\x00", nil, nil, nil, nil)

// OrNull returns d, or Null when d is nil.
func OrNull(d *Descriptor) *Descriptor {
	if d == nil {
		return Null
	}

	return d
}
