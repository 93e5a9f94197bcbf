// Package state provides the reactive state container: a thin owner of
// one observable store plus a set of listeners. It filters out array
// length bookkeeping writes so a structural list mutation notifies its
// listeners once per element write, not once more for the shadowing
// length update.
package state

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/petermattis/goid"

	"github.com/go-yuzu/yuzu/pkg/errors"
	"github.com/go-yuzu/yuzu/pkg/observe"
)

// DebugMode enables the goroutine-affinity check on container
// mutations. The engine is single-threaded by contract; a write from a
// goroutine other than the one that created the container is a
// programming error and is reported through the errors package.
var DebugMode = true

type listenerEntry struct {
	id uint64
	fn observe.Listener
}

// Container owns one observable store and fans change records out to
// its registered listeners, in registration order, synchronously.
type Container struct {
	value     any
	listeners []listenerEntry
	nextID    uint64
	owner     int64
}

// New wraps initial in an observable store and returns its container.
// Non-container values pass through unwrapped, matching observe.Wrap.
func New(initial any) *Container {
	c := &Container{owner: goid.Get()}
	c.value = observe.Wrap(initial, c.dispatch)
	return c
}

// Value returns the wrapped store root (*observe.Object for maps,
// *observe.List for slices).
func (c *Container) Value() any {
	return c.value
}

// Object returns the store root as an *observe.Object, or nil when the
// container does not wrap a map.
func (c *Container) Object() *observe.Object {
	o, _ := c.value.(*observe.Object)
	return o
}

// AddListener registers a listener and returns a function that removes
// it. The returned remover is idempotent. Nil listeners are ignored and
// yield a no-op remover.
func (c *Container) AddListener(l observe.Listener) (remove func()) {
	if l == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: l})
	return func() {
		c.removeByID(id)
	}
}

// RemoveListener unregisters the first listener with the same function
// identity. Removing a listener that is not registered, or nil, is a
// no-op. Prefer the remover returned by AddListener when the same
// function literal may be registered more than once.
func (c *Container) RemoveListener(l observe.Listener) {
	if l == nil {
		return
	}
	target := reflect.ValueOf(l).Pointer()
	for i, entry := range c.listeners {
		if reflect.ValueOf(entry.fn).Pointer() == target {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

func (c *Container) removeByID(id uint64) {
	for i, entry := range c.listeners {
		if entry.id == id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// dispatch forwards a store change to every listener, suppressing
// array length bookkeeping writes.
func (c *Container) dispatch(ch observe.Change) {
	if DebugMode {
		c.checkAffinity()
	}
	if isLengthPath(ch.Path) {
		return
	}
	// Snapshot so a listener removing itself does not skip its peers.
	entries := make([]listenerEntry, len(c.listeners))
	copy(entries, c.listeners)
	for _, entry := range entries {
		entry.fn(ch)
	}
}

// isLengthPath reports whether path addresses a list length key.
func isLengthPath(path string) bool {
	return path == observe.LengthKey || strings.HasSuffix(path, "."+observe.LengthKey)
}

func (c *Container) checkAffinity() {
	if gid := goid.Get(); gid != c.owner {
		errors.Report(&errors.EngineError{
			Op:   "state.Container",
			Kind: errors.KindState,
			Err: fmt.Errorf("mutation from goroutine %d, container owned by goroutine %d",
				gid, c.owner),
			StackTrace: errors.CaptureStack(),
		})
	}
}
