package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/enumrefl/errs"
	"github.com/arloliu/enumrefl/format"
)

func TestEncodeLabels_Layout(t *testing.T) {
	blob, offsets, err := EncodeLabels("s2", []string{"VV1", "VV2", "VV3", "VV4"})
	require.NoError(t, err)

	require.Equal(t, "s2\x00VV1\x00VV2\x00VV3\x00VV4\x00\x00\x00\x00\x00\x00\x00\x00\x00", blob)
	require.Equal(t, []uint16{3, 7, 11, 15}, offsets)
	require.Equal(t, EncodedSize("s2", []string{"VV1", "VV2", "VV3", "VV4"}), len(blob))
}

func TestEncodeLabels_TrailingPadding(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{"no labels", nil},
		{"single label", []string{"A"}},
		{"empty label", []string{""}},
		{"many labels", []string{"AAA", "BBB", "CCC", "DDD", "EEE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, offsets, err := EncodeLabels("e", tt.labels)
			require.NoError(t, err)
			require.Len(t, offsets, len(tt.labels))
			require.GreaterOrEqual(t, len(blob), format.BlobPadding)
			require.Equal(t, strings.Repeat("\x00", format.BlobPadding), blob[len(blob)-format.BlobPadding:])
		})
	}
}

func TestEncodeLabels_NoDeduplication(t *testing.T) {
	blob, offsets, err := EncodeLabels("dup", []string{"A", "A", "B"})
	require.NoError(t, err)

	require.Len(t, offsets, 3)
	require.NotEqual(t, offsets[0], offsets[1], "repeated labels get their own slot")
	assert.Equal(t, "A", StringAt(blob, int(offsets[0])))
	assert.Equal(t, "A", StringAt(blob, int(offsets[1])))
	assert.Equal(t, "B", StringAt(blob, int(offsets[2])))
}

func TestEncodeLabels_OffsetsInsideBlob(t *testing.T) {
	labels := []string{"ALPHA", "", "GAMMA_DELTA", "Z"}
	blob, offsets, err := EncodeLabels("greek", labels)
	require.NoError(t, err)

	for i, off := range offsets {
		require.Less(t, int(off), len(blob))
		require.Equal(t, byte(0), blob[int(off)+len(labels[i])], "label %d must be NUL-terminated", i)
	}
}

func TestEncodeLabels_BlobTooLarge(t *testing.T) {
	// name "n" + NUL = 2 bytes, padding = 8 bytes, one label of L bytes + NUL.
	// Total = 2 + L + 1 + 8 = L + 11.
	fits := strings.Repeat("x", format.MaxBlobSize-1-11)
	blob, _, err := EncodeLabels("n", []string{fits})
	require.NoError(t, err)
	require.Equal(t, format.MaxBlobSize-1, len(blob))

	reaches := strings.Repeat("x", format.MaxBlobSize-11)
	_, _, err = EncodeLabels("n", []string{reaches})
	require.ErrorIs(t, err, errs.ErrBlobTooLarge)
}

func TestEncodeLabels_BlobTooLargeManyLabels(t *testing.T) {
	labels := make([]string, 20000)
	for i := range labels {
		labels[i] = "ABCD"
	}

	_, _, err := EncodeLabels("big", labels)
	require.ErrorIs(t, err, errs.ErrBlobTooLarge)
}

func TestEncodeLabels_TooManyValues(t *testing.T) {
	labels := make([]string, format.MaxValueCount+1)

	_, _, err := EncodeLabels("n", labels)
	require.ErrorIs(t, err, errs.ErrTooManyValues)
}

func TestEncodeLabels_RejectsNUL(t *testing.T) {
	_, _, err := EncodeLabels("bad\x00name", []string{"A"})
	require.ErrorIs(t, err, errs.ErrInvalidLabel)

	_, _, err = EncodeLabels("ok", []string{"A", "B\x00C"})
	require.ErrorIs(t, err, errs.ErrInvalidLabel)
}

func TestStringAt(t *testing.T) {
	blob := "abc\x00de\x00\x00\x00\x00\x00\x00\x00\x00\x00"

	require.Equal(t, "abc", StringAt(blob, 0))
	require.Equal(t, "bc", StringAt(blob, 1))
	require.Equal(t, "de", StringAt(blob, 4))
	require.Equal(t, "", StringAt(blob, 3))
	require.Equal(t, "", StringAt(blob, -1))
	require.Equal(t, "", StringAt(blob, len(blob)))
	require.Equal(t, "tail", StringAt("tail", 0), "unterminated strings run to the end")
}

func TestStringAt_ReadsEncodedLabels(t *testing.T) {
	labels := []string{"RED", "GREEN", "BLUE"}
	blob, offsets, err := EncodeLabels("color", labels)
	require.NoError(t, err)

	require.Equal(t, "color", StringAt(blob, 0))
	for i, off := range offsets {
		require.Equal(t, labels[i], StringAt(blob, int(off)))
	}
}

func BenchmarkEncodeLabels(b *testing.B) {
	labels := make([]string, 64)
	for i := range labels {
		labels[i] = strings.Repeat(string(rune('A'+i%26)), 8)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = EncodeLabels("bench", labels)
	}
}
