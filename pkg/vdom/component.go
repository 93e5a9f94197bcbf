package vdom

import (
	"github.com/go-yuzu/yuzu/pkg/observe"
	"github.com/go-yuzu/yuzu/pkg/state"
)

// Component is the user-implemented stateful producer. Embed
// ComponentBase to pick up default hook implementations; Render is
// mandatory and has no default.
//
//	type Counter struct {
//	    vdom.ComponentBase
//	}
//
//	func (c *Counter) InitialState() map[string]any {
//	    return map[string]any{"count": 0}
//	}
//
//	func (c *Counter) Render() *vdom.VNode {
//	    return vdom.H("div", nil, fmt.Sprint(c.State().Get("count")))
//	}
type Component interface {
	// Render produces the component's descriptor tree from its current
	// attrs and state.
	Render() *VNode
	// InitialState returns the plain data the engine wraps into the
	// component's reactive container. A nil return means empty state.
	InitialState() map[string]any
	// OnMounted runs once, after the component's node is first
	// attached.
	OnMounted()
	// OnUpdated runs after every re-render triggered by a state change
	// or new attrs, once the patch has been applied.
	OnUpdated()
	// BeforeUnmount runs when the component is about to be discarded,
	// after its state listener has been detached.
	BeforeUnmount()

	base() *ComponentBase
}

// StateProvider is the optional capability of components that manage
// their own reactive container. When implemented and non-nil, the
// engine subscribes to the supplied container instead of wrapping
// InitialState.
type StateProvider interface {
	StateContainer() *state.Container
}

// ComponentBase supplies the hook defaults and the accessors a
// component uses to reach its attrs and state. Embed it in every
// concrete component.
type ComponentBase struct {
	instance *Instance
}

func (b *ComponentBase) base() *ComponentBase { return b }

// InitialState defaults to empty state.
func (b *ComponentBase) InitialState() map[string]any { return nil }

// OnMounted is a no-op default.
func (b *ComponentBase) OnMounted() {}

// OnUpdated is a no-op default.
func (b *ComponentBase) OnUpdated() {}

// BeforeUnmount is a no-op default.
func (b *ComponentBase) BeforeUnmount() {}

// Attrs returns the component's current attributes.
func (b *ComponentBase) Attrs() Attrs {
	if b.instance == nil {
		return nil
	}
	return b.instance.attrs
}

// State returns the wrapped state store root. Nil until the engine has
// initialized the instance's state.
func (b *ComponentBase) State() *observe.Object {
	if b.instance == nil || b.instance.state == nil {
		return nil
	}
	return b.instance.state.Object()
}

// Container returns the component's reactive state container.
func (b *ComponentBase) Container() *state.Container {
	if b.instance == nil {
		return nil
	}
	return b.instance.state
}
