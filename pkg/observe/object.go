package observe

import "sort"

// Object wraps a map so that reads wrap nested containers and writes
// and deletes notify the store listener.
type Object struct {
	raw      map[string]any
	listener Listener
	path     string
}

func (o *Object) observable() {}

// Get returns the value for key. A nested map or slice is replaced, in
// place, with its wrapper on first access; later reads return the same
// wrapper.
func (o *Object) Get(key string) any {
	v, ok := o.raw[key]
	if !ok {
		return nil
	}
	w := wrapValue(v, o.listener, joinPath(o.path, key))
	if _, isWrapper := w.(wrapped); isWrapper {
		o.raw[key] = w
	}
	return w
}

// Set writes the raw value for key, then notifies the listener before
// returning.
func (o *Object) Set(key string, value any) {
	o.raw[key] = value
	o.notify(key, value, true)
}

// Delete removes key, then notifies the listener with a change record
// carrying no value.
func (o *Object) Delete(key string) {
	delete(o.raw, key)
	o.notify(key, nil, false)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.raw[key]
	return ok
}

// Keys returns the present keys in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.raw))
	for k := range o.raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.raw)
}

// Path returns the dot-joined key chain from the store root to this
// object. Empty for the root itself.
func (o *Object) Path() string {
	return o.path
}

func (o *Object) notify(key string, value any, hasValue bool) {
	if o.listener == nil {
		return
	}
	o.listener(Change{
		Target:   o,
		Key:      key,
		Value:    value,
		HasValue: hasValue,
		Path:     joinPath(o.path, key),
	})
}
