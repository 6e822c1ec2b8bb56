package descriptor

import (
	"fmt"

	"github.com/arloliu/enumrefl/encoding"
	"github.com/arloliu/enumrefl/format"
)

// Value is the integer value of one enum entry.
type Value = int64

// Index is the position of an entry in declaration order.
type Index int

// NotFound is returned by lookups that match no entry.
const NotFound Index = format.NotFound

// store groups every buffer a descriptor reads from so they are owned and
// released as a unit.
type store struct {
	blob    string   // name NUL label_0 NUL ... label_{n-1} NUL + padding
	values  []Value  // len == count
	offsets []uint16 // len == count, offsets into blob
	meta    []any    // nil when no entry carries metadata, len == count otherwise
}

// emptyStore backs destroyed descriptors so reads stay safe.
var emptyStore = &store{blob: string(make([]byte, format.BlobPadding+1))}

// Descriptor is the complete, read-only metadata of one enum type.
//
// A Descriptor is either static (a compile-time constant built with Static)
// or owned (built at runtime with Build and released with Destroy). Both
// kinds share this type and answer reads the same way. All fields are
// immutable after construction, so concurrent reads are safe as long as no
// goroutine destroys the descriptor at the same time.
type Descriptor struct {
	st        *store
	ownership format.Ownership
	state     format.State

	ext       Extension
	findValue ValueFinder
	findLabel LabelFinder
	destroyer Destroyer
}

// Static creates a descriptor over compile-time data without copying it.
//
// blob must follow the layout documented in package format: the descriptor
// name at offset 0, every label NUL-terminated, 8 trailing zero bytes.
// offsets holds one uint16 offset per value. meta is either nil or exactly
// one handle per value. ext may be nil.
//
// Static is what generated code calls; its inputs are trusted. It panics when
// the array lengths disagree, since that is a bug in the generator rather
// than a runtime condition. Use Validate to check the rest of the layout.
func Static(blob string, values []Value, offsets []uint16, meta []any, ext Extension) *Descriptor {
	if len(values) != len(offsets) {
		panic(fmt.Sprintf("descriptor: %d values but %d offsets", len(values), len(offsets)))
	}
	if meta != nil && len(meta) != len(values) {
		panic(fmt.Sprintf("descriptor: %d values but %d metadata handles", len(values), len(meta)))
	}
	if len(values) > format.MaxValueCount {
		panic(fmt.Sprintf("descriptor: %d values exceeds %d", len(values), format.MaxValueCount))
	}

	d := &Descriptor{
		st: &store{
			blob:    blob,
			values:  values,
			offsets: offsets,
			meta:    meta,
		},
		ownership: format.Static,
		state:     format.StateBuilt,
	}
	d.attach(ext)

	return d
}

// attach resolves the extension's hooks once so lookups never re-inspect it.
func (d *Descriptor) attach(ext Extension) {
	d.ext = ext
	if ext == nil {
		return
	}

	if a, ok := ext.(Attacher); ok {
		a.Attach(d)
	}
	if f, ok := ext.(ValueFinder); ok {
		d.findValue = f
	}
	if f, ok := ext.(LabelFinder); ok {
		d.findLabel = f
	}
	if f, ok := ext.(Destroyer); ok {
		d.destroyer = f
	}
}

// valid is the single range check shared by every index accessor.
func (d *Descriptor) valid(i Index) bool {
	return i >= 0 && int(i) < len(d.st.values)
}

// Name returns the enum type name.
func (d *Descriptor) Name() string {
	return encoding.StringAt(d.st.blob, 0)
}

// ValueCount returns the number of entries.
func (d *Descriptor) ValueCount() int {
	return len(d.st.values)
}

// ValueAt returns the value at index i, or 0 when i is out of range.
func (d *Descriptor) ValueAt(i Index) Value {
	if !d.valid(i) {
		return 0
	}

	return d.st.values[i]
}

// LabelAt returns the label at index i. ok is false when i is out of range.
func (d *Descriptor) LabelAt(i Index) (label string, ok bool) {
	if !d.valid(i) {
		return "", false
	}

	return encoding.StringAt(d.st.blob, int(d.st.offsets[i])), true
}

// MetadataAt returns the metadata handle at index i. ok is false when i is
// out of range or the descriptor carries no metadata array.
func (d *Descriptor) MetadataAt(i Index) (meta any, ok bool) {
	if !d.valid(i) || d.st.meta == nil {
		return nil, false
	}

	return d.st.meta[i], true
}

// HasMetadata reports whether the descriptor carries a metadata array.
//
// A descriptor built from entries that declare no metadata omits the array
// entirely; this distinguishes that case from an array of nil handles.
func (d *Descriptor) HasMetadata() bool {
	return d.st.meta != nil
}

// Blob returns the raw label blob, including the name and trailing padding.
func (d *Descriptor) Blob() string {
	return d.st.blob
}

// Ownership reports whether the descriptor owns its buffers.
func (d *Descriptor) Ownership() format.Ownership {
	return d.ownership
}

// State returns the lifecycle state of the descriptor.
func (d *Descriptor) State() format.State {
	return d.state
}

// Extension returns the attached extension, or nil.
func (d *Descriptor) Extension() Extension {
	return d.ext
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s(%d values, %s)", d.Name(), d.ValueCount(), d.ownership)
}
