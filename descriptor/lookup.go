package descriptor

import (
	"strings"

	"github.com/arloliu/enumrefl/format"
)

// DefaultFindByValue scans values in declaration order and returns the index
// of the first entry equal to v, or NotFound.
//
// Values need not be sorted or unique; duplicates resolve to the lowest index.
// Overrides can call it to delegate to the default behavior.
func DefaultFindByValue(d *Descriptor, v Value) Index {
	for i, val := range d.st.values {
		if val == v {
			return Index(i)
		}
	}

	return NotFound
}

// DefaultFindByLabel scans labels in declaration order and returns the index
// of the first entry whose label equals label as a whole string, or NotFound.
// A label containing a NUL byte can never be stored and never matches.
func DefaultFindByLabel(d *Descriptor, label string) Index {
	if strings.IndexByte(label, 0) >= 0 {
		return NotFound
	}

	blob := d.st.blob
	limit := len(blob) - format.BlobPadding
	n := len(label)
	for i, off := range d.st.offsets {
		start := int(off)
		end := start + n
		// The byte after the label must be the terminator, so "AB" never
		// matches a stored "ABC".
		if end < limit && blob[end] == 0 && blob[start:end] == label {
			return Index(i)
		}
	}

	return NotFound
}

// FindByValue returns the index of the first entry with value v, or NotFound.
// An extension value finder takes precedence over the default scan.
func (d *Descriptor) FindByValue(v Value) Index {
	if d.findValue != nil {
		if idx, handled := d.findValue.FindValue(d, v); handled {
			return idx
		}
	}

	return DefaultFindByValue(d, v)
}

// FindByLabel returns the index of the first entry labelled label, or NotFound.
// An extension label finder takes precedence over the default scan.
func (d *Descriptor) FindByLabel(label string) Index {
	if d.findLabel != nil {
		if idx, handled := d.findLabel.FindLabel(d, label); handled {
			return idx
		}
	}

	return DefaultFindByLabel(d, label)
}

// ValueOf returns the value labelled label, or def when there is none.
func (d *Descriptor) ValueOf(label string, def Value) Value {
	idx := d.FindByLabel(label)
	if idx == NotFound {
		return def
	}

	return d.ValueAt(idx)
}

// LabelOf returns the label of value v, or def when there is none.
func (d *Descriptor) LabelOf(v Value, def string) string {
	idx := d.FindByValue(v)
	if idx == NotFound {
		return def
	}

	label, ok := d.LabelAt(idx)
	if !ok {
		return def
	}

	return label
}

// MetadataOf returns the metadata handle of value v. ok is false when v is
// unknown or the descriptor carries no metadata.
func (d *Descriptor) MetadataOf(v Value) (meta any, ok bool) {
	return d.MetadataAt(d.FindByValue(v))
}

// Contains reports whether any entry has value v.
func (d *Descriptor) Contains(v Value) bool {
	return d.FindByValue(v) != NotFound
}
