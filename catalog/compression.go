package catalog

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/enumrefl/errs"
)

// MaxDocumentSize bounds the decoded size of a catalog document, so a
// compressed file cannot expand without limit.
const MaxDocumentSize = 64 << 20 // 64MiB

// Compression identifies the stream format wrapping a catalog document.
type Compression uint8

const (
	// CompressionNone reads the document as is.
	CompressionNone Compression = iota
	// CompressionZstd reads a Zstandard stream (.zst, .zstd).
	CompressionZstd
	// CompressionS2 reads an S2 stream (.s2).
	CompressionS2
	// CompressionLZ4 reads an LZ4 frame (.lz4).
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// compressionFromPath returns the compression implied by the last extension
// of path and the path with that extension removed. Uncompressed paths are
// returned unchanged.
func compressionFromPath(path string) (Compression, string) {
	ext := filepath.Ext(path)
	var c Compression
	switch strings.ToLower(ext) {
	case ".zst", ".zstd":
		c = CompressionZstd
	case ".s2":
		c = CompressionS2
	case ".lz4":
		c = CompressionLZ4
	default:
		return CompressionNone, path
	}

	return c, strings.TrimSuffix(path, ext)
}

// readDocument reads the whole document from r, decompressing it with c.
func readDocument(r io.Reader, c Compression) ([]byte, error) {
	var src io.Reader
	switch c {
	case CompressionNone:
		src = r
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer dec.Close()
		src = dec
	case CompressionS2:
		src = s2.NewReader(r)
	case CompressionLZ4:
		src = lz4.NewReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, c)
	}

	data, err := io.ReadAll(io.LimitReader(src, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s catalog stream: %w", c, err)
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: decoded catalog exceeds %d bytes", errs.ErrDocumentTooLarge, MaxDocumentSize)
	}

	return data, nil
}

// configType maps a document path to the viper config type for its extension.
func configType(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "yaml", "yml":
		return "yaml", nil
	case "json", "toml":
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrUnsupportedFormat, filepath.Base(path))
	}
}
