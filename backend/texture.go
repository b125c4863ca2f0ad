package backend

// Filter selects the texture minification/magnification filter.
type Filter uint8

const (
	// FilterLinear is bilinear filtering.
	FilterLinear Filter = iota
	// FilterNearest is nearest-texel filtering.
	FilterNearest
)

// Wrap selects how UV coordinates outside [0,1] are resolved.
type Wrap uint8

const (
	// WrapClamp clamps UVs to the texture edge.
	WrapClamp Wrap = iota
	// WrapRepeat tiles the texture by the fractional UV part.
	WrapRepeat
)

// SamplerDesc describes how a texture is sampled.
//
// The software backend ignores Filter, Wrap and Mipmaps: it always
// samples nearest-texel with fractional-part repeat wrapping. This is a
// documented simplification of the software path, not a defect.
type SamplerDesc struct {
	Filter  Filter
	Wrap    Wrap
	Mipmaps bool
}

// Texture is an opaque, backend-tagged texture handle.
//
// A handle is created by one Backend instance and is only valid for
// draw calls against that same instance. After DisposeTextures runs on
// the registry holding it, the handle is invalid.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Kind returns the kind of the backend that created the handle.
	Kind() Kind
}

// Registry is the caller-owned collection of textures keyed by stable
// string identifiers. The facade is given only borrowed access during
// Draw and exclusive access during DisposeTextures; it never inserts
// entries itself.
//
// Registry is not safe for concurrent use; the caller serializes
// access together with its Backend calls.
type Registry struct {
	entries map[string]Texture
}

// NewRegistry creates an empty texture registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Texture)}
}

// Insert stores a texture under the given key, replacing any previous
// entry. Replacing does not release the previous handle; callers that
// replace entries outside DisposeTextures are responsible for the old
// handle's lifetime.
func (r *Registry) Insert(key string, tex Texture) {
	r.entries[key] = tex
}

// Lookup returns the texture stored under key, or nil.
func (r *Registry) Lookup(key string) Texture {
	return r.entries[key]
}

// Remove deletes the entry under key without releasing the handle.
func (r *Registry) Remove(key string) {
	delete(r.entries, key)
}

// Len returns the number of stored textures.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Keys returns the stored keys in unspecified order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Each calls fn for every entry. Used by backends during disposal.
func (r *Registry) Each(fn func(key string, tex Texture)) {
	for k, t := range r.entries {
		fn(k, t)
	}
}

// Clear empties the registry without releasing handles. Backends call
// this at the end of DisposeTextures after releasing every entry.
func (r *Registry) Clear() {
	clear(r.entries)
}
