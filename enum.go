package enumrefl

import (
	"iter"
	"strconv"

	"github.com/arloliu/enumrefl/descriptor"
)

// Integer is the set of Go types an Enum can wrap. Every member converts to
// int64 without loss.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Enum binds a descriptor to a Go enum type T.
type Enum[T Integer] struct {
	d *descriptor.Descriptor
}

// Of wraps d for the Go type T. A nil d is replaced by descriptor.Null.
func Of[T Integer](d *descriptor.Descriptor) Enum[T] {
	return Enum[T]{d: descriptor.OrNull(d)}
}

// MustOf builds a descriptor for T from values and labels in the given order
// and wraps it. It panics when the lengths differ or the build fails.
func MustOf[T Integer](name string, values []T, labels []string, opts ...descriptor.BuildOption) Enum[T] {
	if len(values) != len(labels) {
		panic("enumrefl: values and labels differ in length")
	}

	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Value: int64(v), Label: labels[i]}
	}

	return Of[T](MustBuild(name, entries, opts...))
}

// Descriptor returns the wrapped descriptor.
func (e Enum[T]) Descriptor() *descriptor.Descriptor {
	return e.d
}

// Name returns the enum type name.
func (e Enum[T]) Name() string {
	return e.d.Name()
}

// Len returns the number of entries.
func (e Enum[T]) Len() int {
	return e.d.ValueCount()
}

// String returns the label of v, or "name(v)" when v is not declared.
func (e Enum[T]) String(v T) string {
	idx := e.d.FindByValue(int64(v))
	if label, ok := e.d.LabelAt(idx); ok {
		return label
	}

	return e.d.Name() + "(" + strconv.FormatInt(int64(v), 10) + ")"
}

// Parse returns the value labelled label.
func (e Enum[T]) Parse(label string) (T, bool) {
	idx := e.d.FindByLabel(label)
	if idx == descriptor.NotFound {
		return 0, false
	}

	return T(e.d.ValueAt(idx)), true
}

// IsValid reports whether v is declared.
func (e Enum[T]) IsValid(v T) bool {
	return e.d.Contains(int64(v))
}

// Metadata returns the metadata handle of v.
func (e Enum[T]) Metadata(v T) (any, bool) {
	return e.d.MetadataOf(int64(v))
}

// Values returns every value in declaration order.
func (e Enum[T]) Values() []T {
	values := make([]T, e.d.ValueCount())
	for i := range values {
		values[i] = T(e.d.ValueAt(descriptor.Index(i)))
	}

	return values
}

// Labels returns every label in declaration order.
func (e Enum[T]) Labels() []string {
	labels := make([]string, e.d.ValueCount())
	for i := range labels {
		labels[i], _ = e.d.LabelAt(descriptor.Index(i))
	}

	return labels
}

// All returns an iterator over (value, label) pairs in declaration order.
func (e Enum[T]) All() iter.Seq2[T, string] {
	return func(yield func(T, string) bool) {
		for i := range e.d.ValueCount() {
			idx := descriptor.Index(i)
			label, _ := e.d.LabelAt(idx)
			if !yield(T(e.d.ValueAt(idx)), label) {
				return
			}
		}
	}
}
