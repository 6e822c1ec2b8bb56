// Package descriptor implements enum descriptors: the packed record of an
// enum type's values, labels and metadata, the lookup engine over it, the
// extension mechanism that can override lookups, and the builder/destroyer
// pair for runtime-constructed descriptors.
//
// # Static descriptors
//
// Generated or hand-written code embeds descriptors as package variables:
//
//	var colorDesc = descriptor.Static(
//	    "color\x00RED\x00GREEN\x00BLUE\x00\x00\x00\x00\x00\x00\x00\x00\x00",
//	    []descriptor.Value{1, 2, 4},
//	    []uint16{6, 10, 16},
//	    nil, // no metadata
//	    nil, // no extension
//	)
//
// Static descriptors are never released; Destroy only runs their extension
// teardown hook.
//
// # Dynamic descriptors
//
//	d, err := descriptor.Build("s2", []descriptor.Entry{
//	    {Value: 10, Label: "VV1"},
//	    {Value: 20, Label: "VV2"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer descriptor.Destroy(d)
//
//	d.LabelOf(20, "?")     // "VV2"
//	d.ValueOf("VV1", -1)   // 10
//
// # Lookups
//
// FindByValue and FindByLabel scan in declaration order and return the first
// match, or NotFound. The scan is linear on purpose: descriptors optimize for
// compactness. Large enums can attach a HashIndex (WithHashIndex) or any
// Extension implementing ValueFinder/LabelFinder; callers cannot observe
// which implementation answered.
//
// Index accessors (ValueAt, LabelAt, MetadataAt) report out-of-range indices
// through a zero value or ok == false. No lookup returns an error.
//
// # Thread Safety
//
// Descriptors are immutable after construction and safe for concurrent
// reads. Destroy is not synchronized: it must happen after all readers are
// done, and only the owner may call it.
package descriptor
