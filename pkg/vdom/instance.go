package vdom

import (
	"sync/atomic"

	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/observe"
	"github.com/go-yuzu/yuzu/pkg/state"
)

// instanceIDs allocates process-wide instance identity. Only
// uniqueness matters, not the literal values.
var instanceIDs atomic.Uint64

// Instance is the live record backing one mounted stateful-component
// descriptor. It owns the component's attrs, reactive state, the last
// descriptor the component rendered, and the visual-tree node it is
// attached to.
//
// The lifecycle is a fixed progression: constructed, state
// initialized, descriptor initialized, mounted, then updating while
// mounted, and finally unmounted.
type Instance struct {
	id        uint64
	component Component
	ctor      Ctor
	attrs     Attrs
	state     *state.Container
	vnode     *VNode
	node      *dom.Node
	mounted   bool

	stateReady  bool
	unsubscribe func()
}

func newInstance(ctor Ctor) *Instance {
	inst := &Instance{
		id:        instanceIDs.Add(1),
		ctor:      ctor,
		component: ctor(),
		attrs:     Attrs{},
	}
	inst.component.base().instance = inst
	return inst
}

// ID returns the instance's unique identity.
func (i *Instance) ID() uint64 { return i.id }

// Component returns the user component this instance backs.
func (i *Instance) Component() Component { return i.component }

// Node returns the visual-tree node the instance currently owns, nil
// when unmounted or never mounted.
func (i *Instance) Node() *dom.Node { return i.node }

// Mounted reports whether notifyMounted has run.
func (i *Instance) Mounted() bool { return i.mounted }

// State returns the instance's reactive state container.
func (i *Instance) State() *state.Container { return i.state }

// Descriptor returns the last descriptor tree the component rendered.
func (i *Instance) Descriptor() *VNode { return i.vnode }

// initState wraps the component's state in a reactive container,
// unless the component supplies an already-reactive one, and
// subscribes the instance's change handler. Calling it twice is a
// no-op, so the listener is never doubled.
func (i *Instance) initState() {
	if i.stateReady {
		return
	}
	if provider, ok := i.component.(StateProvider); ok && provider.StateContainer() != nil {
		i.state = provider.StateContainer()
	} else {
		initial := i.component.InitialState()
		if initial == nil {
			initial = map[string]any{}
		}
		i.state = state.New(initial)
	}
	i.unsubscribe = i.state.AddListener(func(observe.Change) {
		i.update()
	})
	i.stateReady = true
}

// initDescriptor records attrs, invokes the component's render method,
// caches the produced descriptor, and returns it.
func (i *Instance) initDescriptor(attrs Attrs) *VNode {
	if attrs == nil {
		attrs = Attrs{}
	}
	i.attrs = attrs
	i.vnode = i.component.Render()
	return i.vnode
}

// notifyMounted records the real node and fires OnMounted. Guarded by
// the mounted flag so it runs at most once per instance.
func (i *Instance) notifyMounted(node *dom.Node) {
	if i.mounted {
		return
	}
	i.node = node
	i.mounted = true
	i.component.OnMounted()
}

// update is the state-change handler: a no-op without an attached
// node, otherwise a full re-render, diff, and patch of the attached
// node, completing before the triggering write returns.
func (i *Instance) update() {
	if i.node == nil {
		return
	}
	i.node = i.applyUpdate(i.node)
}

// setAttrs pushes new attrs into the instance ahead of an update-patch
// computation.
func (i *Instance) setAttrs(attrs Attrs) {
	if attrs == nil {
		attrs = Attrs{}
	}
	i.attrs = attrs
}

// applyUpdate re-renders the component, diffs against the cached
// descriptor, applies the resulting patch to node, stores the result
// as the attached node, and fires OnUpdated.
func (i *Instance) applyUpdate(node *dom.Node) *dom.Node {
	next := i.component.Render()
	patch := Diff(i.vnode, next)
	i.vnode = next
	result := patch(node)
	i.node = result
	i.component.OnUpdated()
	return result
}

// Unmount tears the instance down: the unmount sequence runs on it and
// on every instance nested in its rendered subtree, and its node leaves
// the tree. The entry point for hosts that dispose a mounted root
// outside a reconciliation pass.
func (i *Instance) Unmount() {
	rendered := i.vnode
	node := i.node
	i.unmount()
	unmountTree(rendered)
	if node != nil {
		node.Remove()
	}
}

// unmount detaches the state listener, fires BeforeUnmount, and clears
// the attached node reference.
func (i *Instance) unmount() {
	if i.unsubscribe != nil {
		i.unsubscribe()
		i.unsubscribe = nil
	}
	i.component.BeforeUnmount()
	i.node = nil
	i.mounted = false
}
