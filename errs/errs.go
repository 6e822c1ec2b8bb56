// Package errs holds the sentinel errors returned by enumrefl.
//
// Lookups never fail with an error: a missing value or label is reported
// through format.NotFound or a caller supplied default. Errors are reserved
// for construction, where proceeding would corrupt the descriptor layout.
package errs

import "errors"

var (
	// ErrBlobTooLarge is returned when an encoded label blob would not be
	// addressable with uint16 offsets.
	ErrBlobTooLarge = errors.New("label blob exceeds 65535 bytes")
	// ErrTooManyValues is returned when an enum declares more than 65535 entries.
	ErrTooManyValues = errors.New("enum value count exceeds 65535")
	// ErrEmptyName is returned when a descriptor is built without a name.
	ErrEmptyName = errors.New("enum name is empty")
	// ErrInvalidLabel is returned when a name or label contains a NUL byte.
	ErrInvalidLabel = errors.New("label contains NUL byte")
	// ErrInvalidLayout is returned by layout validation of static descriptors.
	ErrInvalidLayout = errors.New("invalid descriptor layout")
	// ErrInvalidOption wraps the error of a rejected functional option.
	ErrInvalidOption = errors.New("invalid option")
	// ErrNilDescriptor is returned when a nil descriptor is passed where one is required.
	ErrNilDescriptor = errors.New("nil descriptor")

	// ErrDuplicateEnum is returned when a catalog declares the same enum name twice.
	ErrDuplicateEnum = errors.New("duplicate enum name")
	// ErrEmptyEnum is returned when a catalog declares an enum without values.
	ErrEmptyEnum = errors.New("enum declares no values")
	// ErrUnknownEnum is returned when a catalog has no enum with the requested name.
	ErrUnknownEnum = errors.New("unknown enum")
	// ErrUnsupportedFormat is returned for a catalog file whose document
	// format or compression cannot be determined.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrDocumentTooLarge is returned when a decoded catalog document exceeds
	// the size limit.
	ErrDocumentTooLarge = errors.New("catalog document too large")
)
