package descriptor

import (
	"fmt"
	"strings"

	"github.com/arloliu/enumrefl/errs"
	"github.com/arloliu/enumrefl/format"
)

// Validate checks a descriptor against the layout contract.
//
// Descriptors produced by Build always pass. Validate is meant for static
// descriptors written by hand or emitted by a generator, whose layout is
// otherwise trusted and never checked at lookup time.
func Validate(d *Descriptor) error {
	if d == nil {
		return errs.ErrNilDescriptor
	}

	st := d.st
	blob := st.blob

	if len(blob) >= format.MaxBlobSize {
		return fmt.Errorf("%w: blob size %d exceeds %d", errs.ErrBlobTooLarge, len(blob), format.MaxBlobSize-1)
	}

	if len(blob) < format.BlobPadding+1 {
		return fmt.Errorf("%w: blob size %d shorter than name terminator plus padding", errs.ErrInvalidLayout, len(blob))
	}

	if tail := blob[len(blob)-format.BlobPadding:]; tail != strings.Repeat("\x00", format.BlobPadding) {
		return fmt.Errorf("%w: blob is missing %d trailing zero bytes", errs.ErrInvalidLayout, format.BlobPadding)
	}

	if len(st.values) != len(st.offsets) {
		return fmt.Errorf("%w: %d values but %d offsets", errs.ErrInvalidLayout, len(st.values), len(st.offsets))
	}

	if st.meta != nil && len(st.meta) != len(st.values) {
		return fmt.Errorf("%w: %d values but %d metadata handles", errs.ErrInvalidLayout, len(st.values), len(st.meta))
	}

	// Name and labels must end before the padding starts.
	limit := len(blob) - format.BlobPadding
	if strings.IndexByte(blob[:limit], 0) < 0 {
		return fmt.Errorf("%w: enum name is not NUL-terminated", errs.ErrInvalidLayout)
	}

	for i, off := range st.offsets {
		start := int(off)
		if start >= limit {
			return fmt.Errorf("%w: offset %d of entry %d points past the labels (limit %d)", errs.ErrInvalidLayout, start, i, limit)
		}
		if strings.IndexByte(blob[start:limit], 0) < 0 {
			return fmt.Errorf("%w: label of entry %d at offset %d is not NUL-terminated", errs.ErrInvalidLayout, i, start)
		}
	}

	return nil
}
