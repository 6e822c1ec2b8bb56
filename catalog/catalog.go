package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/enumrefl/descriptor"
	"github.com/arloliu/enumrefl/errs"
	"github.com/arloliu/enumrefl/internal/options"
)

// Config holds the settings applied by Option values.
type Config struct {
	logger        *slog.Logger
	hashThreshold int
	compression   Compression
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option represents a functional option for configuring catalog loading.
type Option = options.Option[*Config]

// WithLogger sets the logger used while building the catalog.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError("WithLogger", func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithHashIndexThreshold attaches a hash index to every enum declaring at
// least n values, in addition to enums that set hash_index explicitly.
func WithHashIndexThreshold(n int) Option {
	return options.New("WithHashIndexThreshold", func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("hash index threshold must not be negative, got %d", n)
		}
		c.hashThreshold = n

		return nil
	})
}

// WithCompression sets the stream format of the document passed to Load.
// LoadFile ignores it and infers the compression from the file extension.
func WithCompression(c Compression) Option {
	return options.New("WithCompression", func(cfg *Config) error {
		if c > CompressionLZ4 {
			return fmt.Errorf("%w: %s", errs.ErrUnsupportedFormat, c)
		}
		cfg.compression = c

		return nil
	})
}

// Catalog is a set of runtime-built descriptors addressed by enum name.
//
// The catalog owns its descriptors; Close destroys all of them.
type Catalog struct {
	order  []string
	byName map[string]*descriptor.Descriptor
	logger *slog.Logger
}

// New builds every enum declared in doc.
//
// Enum names must be unique and every enum must declare at least one value.
// If any enum fails to build, the descriptors built so far are destroyed and
// the error is returned.
func New(doc Document, opts ...Option) (*Catalog, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return build(doc, cfg)
}

func build(doc Document, cfg *Config) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(doc.Enums)),
		byName: make(map[string]*descriptor.Descriptor, len(doc.Enums)),
		logger: cfg.logger,
	}

	for _, decl := range doc.Enums {
		d, err := buildEnum(decl, cfg)
		if err == nil {
			if _, dup := c.byName[decl.Name]; dup {
				descriptor.Destroy(d)
				err = fmt.Errorf("%w: %q", errs.ErrDuplicateEnum, decl.Name)
			}
		}
		if err != nil {
			c.Close()
			return nil, err
		}

		c.order = append(c.order, decl.Name)
		c.byName[decl.Name] = d
	}

	c.logger.Info("enum catalog loaded", slog.Int("enums", len(c.order)))

	return c, nil
}

func buildEnum(decl EnumSpec, cfg *Config) (*descriptor.Descriptor, error) {
	if len(decl.Values) == 0 {
		return nil, fmt.Errorf("%w: %q", errs.ErrEmptyEnum, decl.Name)
	}

	entries := make([]descriptor.Entry, len(decl.Values))
	for i, v := range decl.Values {
		if v.Label == "" {
			// An empty label would act as the builder's sentinel and
			// silently drop the following values.
			return nil, fmt.Errorf("enum %q value %d: %w", decl.Name, i, errs.ErrInvalidLabel)
		}
		entries[i] = descriptor.Entry{Value: v.Value, Label: v.Label, Meta: v.Meta}
	}

	opts := []descriptor.BuildOption{descriptor.WithLogger(cfg.logger)}
	if decl.HashIndex || (cfg.hashThreshold > 0 && len(entries) >= cfg.hashThreshold) {
		opts = append(opts, descriptor.WithHashIndex())
	}

	return descriptor.Build(decl.Name, entries, opts...)
}

// Load reads a YAML document from r and builds the catalog.
// Unknown fields are rejected. An empty document yields an empty catalog.
// A compressed document needs WithCompression.
func Load(r io.Reader, opts ...Option) (*Catalog, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	data, err := readDocument(r, cfg.compression)
	if err != nil {
		return nil, err
	}

	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode enum catalog: %w", err)
	}

	return build(doc, cfg)
}

// LoadFile reads a catalog file and builds it.
//
// The document format (yaml, yml, json, toml) follows the file extension.
// A trailing .zst, .zstd, .s2 or .lz4 extension marks a compressed document,
// as in "enums.yaml.zst". Unknown fields are rejected.
func LoadFile(path string, opts ...Option) (*Catalog, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	compression, docPath := compressionFromPath(path)
	typ, err := configType(docPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open enum catalog: %w", err)
	}
	defer f.Close()

	data, err := readDocument(f, compression)
	if err != nil {
		return nil, fmt.Errorf("enum catalog %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType(typ)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read enum catalog %s: %w", path, err)
	}

	var doc Document
	if err := v.UnmarshalExact(&doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enum catalog %s: %w", path, err)
	}

	cfg.logger.Debug("enum catalog read",
		slog.String("path", path),
		slog.String("format", typ),
		slog.String("compression", compression.String()),
		slog.Int("size", len(data)),
	)

	return build(doc, cfg)
}

// Lookup returns the descriptor of the enum called name.
func (c *Catalog) Lookup(name string) (*descriptor.Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Get is like Lookup but reports a missing enum as ErrUnknownEnum.
func (c *Catalog) Get(name string) (*descriptor.Descriptor, error) {
	d, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownEnum, name)
	}

	return d, nil
}

// Names returns the enum names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)

	return names
}

// Len returns the number of enums in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Close destroys every descriptor in the catalog exactly once. The catalog
// is empty afterwards; calling Close again is a no-op.
func (c *Catalog) Close() {
	for _, name := range c.order {
		descriptor.Destroy(c.byName[name])
	}

	if len(c.order) > 0 {
		c.logger.Debug("enum catalog closed", slog.Int("enums", len(c.order)))
	}
	c.order = c.order[:0]
	clear(c.byName)
}
