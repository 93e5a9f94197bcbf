package yuzutest

import (
	"testing"

	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/observe"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

// ComponentTester mounts components onto an in-memory document and
// exposes the attached tree for assertions. It drives the same
// materialize, diff, and patch paths as a real host, minus any actual
// rendering surface.
type ComponentTester struct {
	body *dom.Node
	inst *vdom.Instance
}

// NewComponentTester creates a tester with an empty document body.
// Call Cleanup when done, or use NewComponentTesterWithT instead.
func NewComponentTester() *ComponentTester {
	return &ComponentTester{body: dom.NewElement("body")}
}

// NewComponentTesterWithT creates a tester that cleans up via
// t.Cleanup. The recommended constructor for tests.
func NewComponentTesterWithT(t *testing.T) *ComponentTester {
	tester := NewComponentTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current component, if any, running its full
// unmount sequence.
func (ct *ComponentTester) Cleanup() {
	if ct.inst != nil {
		ct.inst.Unmount()
		ct.inst = nil
	}
}

// Mount mounts a component into the document, replacing whatever was
// mounted before.
func (ct *ComponentTester) Mount(ctor vdom.Ctor) error {
	ct.Cleanup()
	attach := dom.NewElement("div")
	ct.body.AppendChild(attach)
	inst, err := vdom.Mount(ctor, attach)
	if err != nil {
		attach.Remove()
		return err
	}
	ct.inst = inst
	return nil
}

// Body returns the document body the component is mounted under.
func (ct *ComponentTester) Body() *dom.Node { return ct.body }

// Root returns the mounted component's node, nil before Mount.
func (ct *ComponentTester) Root() *dom.Node {
	if ct.inst == nil {
		return nil
	}
	return ct.inst.Node()
}

// Instance returns the live instance backing the mounted component.
func (ct *ComponentTester) Instance() *vdom.Instance { return ct.inst }

// State returns the mounted component's state store root, nil before
// Mount. Writes to it update the tree before they return.
func (ct *ComponentTester) State() *observe.Object {
	if ct.inst == nil || ct.inst.State() == nil {
		return nil
	}
	return ct.inst.State().Object()
}

// Find evaluates a finder against the mounted tree.
func (ct *ComponentTester) Find(finder Finder) FinderResult {
	root := ct.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		nodes:  finder.Evaluate(root),
		finder: finder,
	}
}

// HTML returns the serialized markup of the mounted tree, empty before
// Mount.
func (ct *ComponentTester) HTML() string {
	root := ct.Root()
	if root == nil {
		return ""
	}
	return root.OuterHTML()
}
