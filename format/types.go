// Package format defines the constants and small types that make up the
// enum descriptor layout contract.
//
// A descriptor's label blob is laid out as:
//
//	name NUL label_0 NUL label_1 NUL ... label_{n-1} NUL + 8 NUL padding
//
// The descriptor name is always entry 0 of the blob and starts at byte 0.
// Labels are addressed through a parallel table of uint16 byte offsets, so
// the whole blob (padding included) must stay below MaxBlobSize bytes.
package format

const (
	// BlobPadding is the number of zero bytes that terminate every label blob.
	BlobPadding = 8
	// MaxBlobSize is the exclusive upper bound of an encoded label blob,
	// imposed by the uint16 offset table.
	MaxBlobSize = 1 << 16
	// MaxValueCount is the maximum number of entries a descriptor can hold.
	MaxValueCount = 1<<16 - 1
	// NotFound is the index returned by lookups that match nothing.
	NotFound = -1
)

// NullName is the name carried by the null descriptor.
const NullName = "enum_desc_null_enum"

// Ownership tells whether a descriptor's buffers belong to the descriptor.
type Ownership uint8

const (
	// Static descriptors are compile-time constants; their buffers are never released.
	Static Ownership = 0x1
	// Owned descriptors were built at runtime and release their buffers on destroy.
	Owned Ownership = 0x2
)

func (o Ownership) String() string {
	switch o {
	case Static:
		return "Static"
	case Owned:
		return "Owned"
	default:
		return "Unknown"
	}
}

// State is the lifecycle state of a descriptor.
type State uint8

const (
	StateUnbuilt   State = 0x0 // StateUnbuilt is the zero state before construction.
	StateBuilt     State = 0x1 // StateBuilt marks a usable descriptor.
	StateDestroyed State = 0x2 // StateDestroyed is terminal for owned descriptors.
)

func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "Unbuilt"
	case StateBuilt:
		return "Built"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}
