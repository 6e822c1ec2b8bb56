package encoding

import (
	"fmt"
	"strings"

	"github.com/arloliu/enumrefl/errs"
	"github.com/arloliu/enumrefl/format"
	"github.com/arloliu/enumrefl/internal/pool"
)

// EncodedSize returns the exact size in bytes of the blob EncodeLabels would
// produce for name and labels, padding included.
func EncodedSize(name string, labels []string) int {
	size := len(name) + 1
	for _, label := range labels {
		size += len(label) + 1
	}

	return size + format.BlobPadding
}

// EncodeLabels packs a descriptor name and its labels into a single blob.
//
// Format: [name NUL] [label_0 NUL] ... [label_{n-1} NUL] [8 x NUL]
//
// The name is always the first entry of the blob, so offsets[i] is never zero.
// Repeated labels are not deduplicated; every label gets its own slot.
//
// Parameters:
//   - name: The descriptor name stored at offset 0
//   - labels: The ordered labels, one per enum entry
//
// Returns:
//   - string: The immutable blob, including the trailing padding
//   - []uint16: One offset per label, pointing at its first byte
//   - error: ErrBlobTooLarge if the blob would reach 65536 bytes,
//     ErrTooManyValues for more than 65535 labels, ErrInvalidLabel if a
//     string contains a NUL byte
func EncodeLabels(name string, labels []string) (string, []uint16, error) {
	if len(labels) > format.MaxValueCount {
		return "", nil, fmt.Errorf("%w: %d labels", errs.ErrTooManyValues, len(labels))
	}

	if strings.IndexByte(name, 0) >= 0 {
		return "", nil, fmt.Errorf("%w: enum name %q", errs.ErrInvalidLabel, name)
	}

	for i, label := range labels {
		if strings.IndexByte(label, 0) >= 0 {
			return "", nil, fmt.Errorf("%w: label %d %q", errs.ErrInvalidLabel, i, label)
		}
	}

	size := EncodedSize(name, labels)
	if size >= format.MaxBlobSize {
		return "", nil, fmt.Errorf("%w: encoded size %d, limit %d", errs.ErrBlobTooLarge, size, format.MaxBlobSize-1)
	}

	buf := pool.GetLabelBuffer()
	defer pool.PutLabelBuffer(buf)

	buf.Grow(size)
	buf.WriteCString(name)

	offsets := make([]uint16, len(labels))
	for i, label := range labels {
		offsets[i] = uint16(buf.Len()) //nolint:gosec
		buf.WriteCString(label)
	}
	buf.WriteZeros(format.BlobPadding)

	return buf.String(), offsets, nil
}

// StringAt returns the NUL-terminated string starting at off in blob.
// It returns an empty string when off lies outside the blob.
func StringAt(blob string, off int) string {
	if off < 0 || off >= len(blob) {
		return ""
	}

	end := strings.IndexByte(blob[off:], 0)
	if end < 0 {
		return blob[off:]
	}

	return blob[off : off+end]
}
