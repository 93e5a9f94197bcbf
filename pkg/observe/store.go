// Package observe implements the observable store: a boxed wrapper
// around plain data that intercepts reads, writes, and deletions and
// reports each mutation to a listener with a dotted path from the
// store root.
//
// Go has no transparent property interception, so wrapping is explicit:
// maps box to *Object and slices box to *List, both exposing accessor
// methods instead of language-level field access. Nested containers are
// wrapped lazily on first read and the wrapper is memoized in place of
// the raw value, so repeated reads return the same reference.
package observe

// Change is the record delivered to a listener for every write or
// delete on a wrapped container, at any depth.
type Change struct {
	// Target is the wrapper (*Object or *List) whose key changed.
	Target any
	// Key is the property name or the decimal index within Target.
	Key string
	// Value is the written value. Unset for deletions.
	Value any
	// HasValue distinguishes writes from deletions.
	HasValue bool
	// Path is the dot-joined key chain from the store root.
	Path string
}

// Listener receives change records synchronously, before the mutating
// call returns.
type Listener func(Change)

// wrapped is the sentinel probe: only the wrapper types in this package
// implement it, so wrapping an already-wrapped value is a no-op.
type wrapped interface {
	observable()
}

// Wrap boxes target for observation. Maps become *Object, slices
// become *List, already-wrapped values are returned unchanged, and
// anything else passes through as-is (primitives are not wrapped).
func Wrap(target any, listener Listener) any {
	return wrapValue(target, listener, "")
}

func wrapValue(v any, listener Listener, path string) any {
	switch t := v.(type) {
	case wrapped:
		return v
	case map[string]any:
		return &Object{raw: t, listener: listener, path: path}
	case []any:
		return &List{raw: t, listener: listener, path: path}
	default:
		return v
	}
}

// joinPath appends key to a dotted path, omitting the leading dot at
// the store root.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
