package vdom

import (
	"testing"

	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/state"
)

// probeComponent records lifecycle traffic and delegates rendering to a
// pluggable function so each test can shape its output.
type probeComponent struct {
	ComponentBase
	renders  int
	mounts   int
	updates  int
	unmounts int
	initial  map[string]any
	renderFn func(c *probeComponent) *VNode
}

func (c *probeComponent) InitialState() map[string]any { return c.initial }

func (c *probeComponent) Render() *VNode {
	c.renders++
	if c.renderFn != nil {
		return c.renderFn(c)
	}
	return H("div", nil)
}

func (c *probeComponent) OnMounted()     { c.mounts++ }
func (c *probeComponent) OnUpdated()     { c.updates++ }
func (c *probeComponent) BeforeUnmount() { c.unmounts++ }

// providerComponent brings its own reactive container.
type providerComponent struct {
	ComponentBase
	container *state.Container
}

func (c *providerComponent) StateContainer() *state.Container { return c.container }

func (c *providerComponent) Render() *VNode { return H("div", nil) }

// probeCtor builds a constructor that exposes the constructed component
// to the test.
func probeCtor(out **probeComponent, renderFn func(c *probeComponent) *VNode) Ctor {
	return func() Component {
		c := &probeComponent{renderFn: renderFn}
		*out = c
		return c
	}
}

// mountPoint builds a parent element with a placeholder child, the
// shape Mount expects.
func mountPoint() (parent, attach *dom.Node) {
	parent = dom.NewElement("body")
	attach = dom.NewElement("div")
	parent.AppendChild(attach)
	return parent, attach
}

func TestComponentBase_AccessorsBeforeBinding(t *testing.T) {
	c := &probeComponent{}
	if c.Attrs() != nil {
		t.Error("expected nil attrs before the engine binds the component")
	}
	if c.State() != nil {
		t.Error("expected nil state before the engine binds the component")
	}
	if c.Container() != nil {
		t.Error("expected nil container before the engine binds the component")
	}
}

func TestComponentBase_AccessorsAfterMaterialize(t *testing.T) {
	var comp *probeComponent
	ctor := probeCtor(&comp, nil)

	v := H(ctor, Attrs{"title": "hi"})
	Materialize(v)

	if comp == nil {
		t.Fatal("constructor never ran")
	}
	if got := comp.Attrs()["title"]; got != "hi" {
		t.Errorf("expected title attr, got %v", got)
	}
	if comp.State() == nil {
		t.Error("expected a state object after materialization")
	}
	if comp.Container() == nil {
		t.Error("expected a state container after materialization")
	}
}

func TestStateProvider_SuppliedContainerIsUsed(t *testing.T) {
	own := state.New(map[string]any{"theme": "dark"})
	comp := &providerComponent{container: own}
	ctor := Ctor(func() Component { return comp })

	v := H(ctor, nil)
	Materialize(v)

	if comp.Container() != own {
		t.Fatal("expected the supplied container to be adopted")
	}
	if got := comp.State().Get("theme"); got != "dark" {
		t.Errorf("expected supplied state to be readable, got %v", got)
	}
}
