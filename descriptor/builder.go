package descriptor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/enumrefl/encoding"
	"github.com/arloliu/enumrefl/errs"
	"github.com/arloliu/enumrefl/format"
	"github.com/arloliu/enumrefl/internal/options"
)

// Entry is one (value, label, metadata) triple fed to Build.
//
// An entry with an empty label is a sentinel: Build stops counting there,
// so tables written with a terminating {} entry work unchanged.
type Entry struct {
	Value Value
	Label string
	// Meta is an opaque handle stored as is. The descriptor never copies or
	// releases it.
	Meta any
}

// BuildConfig holds the settings applied by BuildOption values.
type BuildConfig struct {
	ext       Extension
	hashIndex bool
	logger    *slog.Logger
}

// BuildOption represents a functional option for configuring Build.
type BuildOption = options.Option[*BuildConfig]

// WithExtension attaches ext instead of the default dynamic extension.
// A nil ext keeps the default.
func WithExtension(ext Extension) BuildOption {
	return options.NoError("WithExtension", func(c *BuildConfig) {
		c.ext = ext
	})
}

// WithHashIndex attaches a HashIndex unless an explicit extension is given.
func WithHashIndex() BuildOption {
	return options.NoError("WithHashIndex", func(c *BuildConfig) {
		c.hashIndex = true
	})
}

// WithLogger sets the logger used to report construction at debug level.
func WithLogger(logger *slog.Logger) BuildOption {
	return options.NoError("WithLogger", func(c *BuildConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Build creates an owned descriptor from a runtime entry list.
//
// Entries are counted up to the first sentinel (empty label) or the end of
// the slice. When no counted entry carries metadata the metadata array is
// omitted entirely. Values, offsets, blob and metadata are grouped in one
// owned store that Destroy releases in a single step.
//
// Parameters:
//   - name: The enum type name, stored as entry 0 of the label blob
//   - entries: The entries in declaration order
//   - opts: WithExtension, WithHashIndex, WithLogger
//
// Returns:
//   - *Descriptor: The owned descriptor, in state Built
//   - error: ErrEmptyName, ErrTooManyValues, ErrInvalidLabel or
//     ErrBlobTooLarge; no descriptor is produced on error
func Build(name string, entries []Entry, opts ...BuildOption) (*Descriptor, error) {
	cfg := &BuildConfig{logger: discardLogger}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.ErrEmptyName
	}

	count := countEntries(entries)
	if count > format.MaxValueCount {
		return nil, fmt.Errorf("%w: %d entries", errs.ErrTooManyValues, count)
	}
	entries = entries[:count]

	labels := make([]string, count)
	hasMeta := false
	for i, e := range entries {
		labels[i] = e.Label
		if e.Meta != nil {
			hasMeta = true
		}
	}

	blob, offsets, err := encoding.EncodeLabels(name, labels)
	if err != nil {
		return nil, fmt.Errorf("build enum %q: %w", name, err)
	}

	st := &store{
		blob:    blob,
		values:  make([]Value, count),
		offsets: offsets,
	}
	if hasMeta {
		st.meta = make([]any, count)
	}
	for i, e := range entries {
		st.values[i] = e.Value
		if hasMeta {
			st.meta[i] = e.Meta
		}
	}

	d := &Descriptor{
		st:        st,
		ownership: format.Owned,
		state:     format.StateBuilt,
	}

	ext := cfg.ext
	if ext == nil {
		if cfg.hashIndex {
			ext = NewHashIndex()
		} else {
			ext = DynamicExtension
		}
	}
	d.attach(ext)

	attrs := []any{
		slog.String("enum", name),
		slog.Int("values", count),
		slog.Int("blob_size", len(blob)),
		slog.Bool("metadata", hasMeta),
		slog.Bool("dynamic_extension", IsDynamic(ext)),
	}
	if hi, ok := ext.(*HashIndex); ok {
		attrs = append(attrs,
			slog.Int("duplicate_labels", hi.Duplicates()),
			slog.Bool("hash_collision", hi.HasCollision()),
		)
	}
	cfg.logger.Debug("enum descriptor built", attrs...)

	return d, nil
}

func countEntries(entries []Entry) int {
	for i, e := range entries {
		if e.Label == "" {
			return i
		}
	}

	return len(entries)
}

// Destroy releases a descriptor.
//
// The extension's Destroyer, if any, runs first so it can release its own
// context. For owned descriptors the store is then released and the
// descriptor reads as empty from then on; a second Destroy is a no-op.
// Static descriptors keep their buffers: only the extension hook runs.
// Destroy(nil) is a no-op.
func Destroy(d *Descriptor) {
	if d == nil || d.state == format.StateDestroyed {
		return
	}

	if d.destroyer != nil {
		d.destroyer.Destroy(d)
	}

	if d.ownership != format.Owned {
		return
	}

	d.st = emptyStore
	d.ext = nil
	d.findValue = nil
	d.findLabel = nil
	d.destroyer = nil
	d.state = format.StateDestroyed
}
