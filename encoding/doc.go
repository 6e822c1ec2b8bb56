// Package encoding implements the string blob codec behind enum descriptors.
//
// A descriptor stores all of its strings in one immutable blob instead of one
// allocation per label. Each string is NUL-terminated and written back to
// back; the blob ends with 8 zero bytes so that word-at-a-time scanners may
// over-read safely:
//
//	offset: 0        3        7        11       15
//	blob:   "s2\x00" "VV1\x00" "VV2\x00" "VV3\x00" "VV4\x00" + 8 x "\x00"
//	name ───┘        │
//	offsets: [3, 7, 11, 15]
//
// The descriptor name always occupies entry 0 at offset 0; labels start at
// entry 1. A parallel table of uint16 offsets addresses each label, which
// caps the blob at 65535 bytes. EncodeLabels rejects larger inputs with
// errs.ErrBlobTooLarge rather than truncating offsets.
//
// # Usage
//
//	blob, offsets, err := encoding.EncodeLabels("color", []string{"RED", "GREEN"})
//	if err != nil {
//	    return err
//	}
//	label := encoding.StringAt(blob, int(offsets[1])) // "GREEN"
//
// # Memory Usage
//
// Encoding goes through a pooled scratch buffer and produces exactly one
// string allocation for the final blob. Reading a label is a substring of the
// blob and never allocates.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Blobs are immutable strings.
package encoding
