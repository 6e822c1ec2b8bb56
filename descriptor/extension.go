package descriptor

// Extension is an optional block attached to a descriptor that can override
// lookups and carry private per-enum and per-item context.
//
// Ownership of the context objects stays with whoever installed the
// extension. Override behavior is opted into by also implementing any of
// ValueFinder, LabelFinder, Destroyer or Attacher; the descriptor resolves
// these once at construction time. An extension is never mutated by the
// descriptor after it has been attached.
type Extension interface {
	// EnumContext returns the per-descriptor private context, or nil.
	EnumContext() any
	// ItemContext returns the per-item context indexed like the values, or nil.
	ItemContext() []any
}

// ValueFinder overrides value to index lookup.
//
// FindValue must honor the default contract: the first matching index in
// declaration order, NotFound on a miss. Returning handled == false declines
// and the default scan runs instead.
type ValueFinder interface {
	FindValue(d *Descriptor, v Value) (idx Index, handled bool)
}

// LabelFinder overrides label to index lookup under the same contract as ValueFinder.
type LabelFinder interface {
	FindLabel(d *Descriptor, label string) (idx Index, handled bool)
}

// Destroyer releases an extension's private context.
//
// Destroy runs exactly once per descriptor destroy, before the descriptor's
// own buffers are released. It must not release the descriptor's values,
// offsets, blob or metadata.
type Destroyer interface {
	Destroy(d *Descriptor)
}

// Attacher is notified when the extension is attached to a descriptor, which
// lets it precompute lookup tables from the descriptor's contents.
type Attacher interface {
	Attach(d *Descriptor)
}

// Hooks is an Extension built from plain functions. A nil function declines
// its hook and the default behavior runs.
type Hooks struct {
	// Enum is the per-descriptor context.
	Enum any
	// Items is the per-item context, indexed like the values.
	Items []any

	OnFindValue func(d *Descriptor, v Value) Index
	OnFindLabel func(d *Descriptor, label string) Index
	OnDestroy   func(d *Descriptor)
}

var (
	_ Extension   = (*Hooks)(nil)
	_ ValueFinder = (*Hooks)(nil)
	_ LabelFinder = (*Hooks)(nil)
	_ Destroyer   = (*Hooks)(nil)
)

// EnumContext implements Extension.
func (h *Hooks) EnumContext() any {
	return h.Enum
}

// ItemContext implements Extension.
func (h *Hooks) ItemContext() []any {
	return h.Items
}

// FindValue implements ValueFinder.
func (h *Hooks) FindValue(d *Descriptor, v Value) (Index, bool) {
	if h.OnFindValue == nil {
		return NotFound, false
	}

	return h.OnFindValue(d, v), true
}

// FindLabel implements LabelFinder.
func (h *Hooks) FindLabel(d *Descriptor, label string) (Index, bool) {
	if h.OnFindLabel == nil {
		return NotFound, false
	}

	return h.OnFindLabel(d, label), true
}

// Destroy implements Destroyer.
func (h *Hooks) Destroy(d *Descriptor) {
	if h.OnDestroy != nil {
		h.OnDestroy(d)
	}
}

// dynamicExtension is attached by Build when the caller supplies no
// extension. It declines every hook.
type dynamicExtension struct{}

func (dynamicExtension) EnumContext() any   { return nil }
func (dynamicExtension) ItemContext() []any { return nil }

// DynamicExtension is the default extension of runtime-built descriptors.
// It behaves exactly like the default lookup engine.
var DynamicExtension Extension = dynamicExtension{}

// IsDynamic reports whether ext is the default dynamic extension.
func IsDynamic(ext Extension) bool {
	_, ok := ext.(dynamicExtension)
	return ok
}

// StateOf returns the per-item extension context of value v.
//
// The value is resolved through the active lookup, default or override.
// ok is false when v is unknown, the descriptor has no extension or the
// extension carries no per-item context for that index.
func (d *Descriptor) StateOf(v Value) (state any, ok bool) {
	return d.StateAt(d.FindByValue(v))
}

// StateAt returns the per-item extension context at index i.
func (d *Descriptor) StateAt(i Index) (state any, ok bool) {
	if !d.valid(i) || d.ext == nil {
		return nil, false
	}

	items := d.ext.ItemContext()
	if int(i) >= len(items) {
		return nil, false
	}

	return items[i], true
}

// EnumState returns the per-descriptor extension context, or nil.
func (d *Descriptor) EnumState() any {
	if d.ext == nil {
		return nil
	}

	return d.ext.EnumContext()
}
