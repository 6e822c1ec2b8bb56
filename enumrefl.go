// Package enumrefl provides runtime reflection for enumerated types: given an
// enum value, retrieve its declared label and vice versa, plus optional
// per-value metadata.
//
// Each enum type is described by a compact descriptor: an ordered value
// array, one shared NUL-separated label blob and a uint16 offset table into
// it. Descriptors are either embedded as constants (generated or
// hand-written with descriptor.Static) or built at runtime from a list of
// entries.
//
// # Core Features
//
//   - Value to label and label to value lookups with caller defaults
//   - Optional per-value metadata handles, omitted when unused
//   - Pluggable lookup overrides, including an xxHash64 index for large enums
//   - Runtime descriptors with a single-step release
//   - Typed wrappers for Go enum types
//
// # Basic Usage
//
//	type Color int
//
//	const (
//	    Red Color = iota + 1
//	    Green
//	    Blue
//	)
//
//	colors := enumrefl.MustOf("color",
//	    []Color{Red, Green, Blue},
//	    []string{"RED", "GREEN", "BLUE"},
//	)
//
// or, keeping declaration order explicit:
//
//	d, err := enumrefl.Build("color", []enumrefl.Entry{
//	    {Value: int64(Red), Label: "RED"},
//	    {Value: int64(Green), Label: "GREEN"},
//	    {Value: int64(Blue), Label: "BLUE"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	colors := enumrefl.Of[Color](d)
//	colors.String(Green)       // "GREEN"
//	colors.Parse("BLUE")      // Blue, true
//	colors.String(Color(42))  // "color(42)"
//
// # Package Structure
//
// This package provides convenience wrappers around the descriptor package.
// For static descriptors, extensions and layout validation use the
// descriptor package directly. The catalog package loads enum declarations
// from configuration files.
package enumrefl

import (
	"github.com/arloliu/enumrefl/descriptor"
)

// Entry is one (value, label, metadata) triple fed to Build.
type Entry = descriptor.Entry

// Build creates an owned descriptor from entries.
//
// It is a thin wrapper over descriptor.Build; see there for option and error details.
func Build(name string, entries []Entry, opts ...descriptor.BuildOption) (*descriptor.Descriptor, error) {
	return descriptor.Build(name, entries, opts...)
}

// MustBuild is like Build but panics on error. It is intended for package
// level variables initialized from literal tables.
func MustBuild(name string, entries []Entry, opts ...descriptor.BuildOption) *descriptor.Descriptor {
	d, err := descriptor.Build(name, entries, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// Destroy releases a descriptor. It is safe to call on static descriptors and nil.
func Destroy(d *descriptor.Descriptor) {
	descriptor.Destroy(d)
}
