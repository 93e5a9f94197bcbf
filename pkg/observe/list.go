package observe

import "strconv"

// LengthKey is the bookkeeping key written after every structural list
// mutation, mirroring how array length updates shadow element writes.
// Consumers that only care about element-level changes filter it out.
const LengthKey = "length"

// List wraps a slice so index reads wrap nested containers and
// mutations notify the store listener. Structural mutations (Push, Pop)
// emit one change per touched index followed by a length write.
type List struct {
	raw      []any
	listener Listener
	path     string
}

func (l *List) observable() {}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.raw)
}

// Index returns the element at i. A nested map or slice is replaced,
// in place, with its wrapper on first access.
func (l *List) Index(i int) any {
	v := l.raw[i]
	w := wrapValue(v, l.listener, joinPath(l.path, strconv.Itoa(i)))
	if _, isWrapper := w.(wrapped); isWrapper {
		l.raw[i] = w
	}
	return w
}

// SetIndex writes the raw value at i, then notifies the listener.
func (l *List) SetIndex(i int, value any) {
	l.raw[i] = value
	l.notify(strconv.Itoa(i), value, true)
}

// Push appends values and returns the new length. Each appended
// element emits its own index write, followed by a single length
// write; a push of n values therefore produces n+1 change events.
func (l *List) Push(values ...any) int {
	for _, v := range values {
		l.raw = append(l.raw, v)
		l.notify(strconv.Itoa(len(l.raw)-1), v, true)
	}
	l.notify(LengthKey, len(l.raw), true)
	return len(l.raw)
}

// Pop removes and returns the last element, emitting a delete for its
// index and a length write. Pop on an empty list returns nil.
func (l *List) Pop() any {
	if len(l.raw) == 0 {
		return nil
	}
	last := len(l.raw) - 1
	v := l.raw[last]
	l.raw = l.raw[:last]
	l.notify(strconv.Itoa(last), nil, false)
	l.notify(LengthKey, len(l.raw), true)
	return v
}

// Path returns the dot-joined key chain from the store root to this
// list. Empty for the root itself.
func (l *List) Path() string {
	return l.path
}

func (l *List) notify(key string, value any, hasValue bool) {
	if l.listener == nil {
		return
	}
	l.listener(Change{
		Target:   l,
		Key:      key,
		Value:    value,
		HasValue: hasValue,
		Path:     joinPath(l.path, key),
	})
}
