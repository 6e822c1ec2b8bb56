package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a label.
func ID(label string) uint64 {
	return xxhash.Sum64String(label)
}
