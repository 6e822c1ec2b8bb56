package descriptor

import (
	"github.com/arloliu/enumrefl/internal/collision"
	"github.com/arloliu/enumrefl/internal/hash"
)

// HashIndex is an Extension that replaces the linear lookups with hash
// tables built when it is attached. Labels are keyed by their xxHash64.
//
// Lookups keep first-match semantics: duplicate values and labels resolve
// to their earliest declaration. When two distinct labels share a hash the
// index declines for that hash and the default scan answers instead.
//
// A HashIndex serves exactly one descriptor; do not attach it twice.
type HashIndex struct {
	enum  any
	items []any

	labels *collision.Tracker
	values map[Value]Index
}

var (
	_ Extension   = (*HashIndex)(nil)
	_ Attacher    = (*HashIndex)(nil)
	_ ValueFinder = (*HashIndex)(nil)
	_ LabelFinder = (*HashIndex)(nil)
	_ Destroyer   = (*HashIndex)(nil)
)

// NewHashIndex creates a hash index extension without context.
func NewHashIndex() *HashIndex {
	return &HashIndex{}
}

// NewHashIndexWithContext creates a hash index extension that also carries
// per-enum and per-item context.
func NewHashIndexWithContext(enum any, items []any) *HashIndex {
	return &HashIndex{enum: enum, items: items}
}

// EnumContext implements Extension.
func (h *HashIndex) EnumContext() any {
	return h.enum
}

// ItemContext implements Extension.
func (h *HashIndex) ItemContext() []any {
	return h.items
}

// Attach implements Attacher. It builds both tables from d.
func (h *HashIndex) Attach(d *Descriptor) {
	count := d.ValueCount()
	h.labels = collision.NewTracker(count)
	h.values = make(map[Value]Index, count)

	for i := range count {
		idx := Index(i)
		if _, seen := h.values[d.st.values[i]]; !seen {
			h.values[d.st.values[i]] = idx
		}

		label, _ := d.LabelAt(idx)
		h.labels.Track(label, hash.ID(label), i)
	}
}

// FindValue implements ValueFinder.
func (h *HashIndex) FindValue(_ *Descriptor, v Value) (Index, bool) {
	if h.values == nil {
		return NotFound, false
	}

	if idx, ok := h.values[v]; ok {
		return idx, true
	}

	return NotFound, true
}

// FindLabel implements LabelFinder.
func (h *HashIndex) FindLabel(d *Descriptor, label string) (Index, bool) {
	if h.labels == nil {
		return NotFound, false
	}

	i, collided, ok := h.labels.Lookup(hash.ID(label))
	if !ok {
		return NotFound, true
	}
	if collided {
		return NotFound, false
	}

	if stored, _ := d.LabelAt(Index(i)); stored == label {
		return Index(i), true
	}

	return NotFound, true
}

// HasCollision reports whether two distinct labels of the attached
// descriptor share a hash.
func (h *HashIndex) HasCollision() bool {
	return h.labels != nil && h.labels.HasCollision()
}

// Duplicates returns how many labels of the attached descriptor repeat an
// earlier label.
func (h *HashIndex) Duplicates() int {
	if h.labels == nil {
		return 0
	}

	return h.labels.Duplicates()
}

// Destroy implements Destroyer. It drops both tables.
func (h *HashIndex) Destroy(_ *Descriptor) {
	h.labels = nil
	h.values = nil
}
