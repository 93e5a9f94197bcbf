package vdom

import (
	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/errors"
)

// Materialize converts a descriptor into a real visual-tree node,
// recursively, instantiating stateful components along the way. All
// side effects — node creation, attribute assignment, lifecycle hooks
// — complete before it returns.
func Materialize(v *VNode) *dom.Node {
	switch v.Kind {
	case KindText:
		return dom.NewText(v.Text)

	case KindFunction:
		v.resolved = v.Render(v.Attrs, v.Children)
		return Materialize(v.resolved)

	case KindComponent:
		inst := v.Instance
		if inst == nil {
			inst = newInstance(v.Ctor)
			inst.initState()
			v.Instance = inst
		}
		node := Materialize(inst.initDescriptor(v.Attrs))
		inst.notifyMounted(node)
		return node

	case KindElement:
		return materializeTree(dom.NewElement(v.Tag), v)

	case KindFragment:
		return materializeTree(dom.NewFragment(), v)

	default:
		return nil
	}
}

// materializeTree applies attributes and content to a freshly created
// element or fragment node.
func materializeTree(node *dom.Node, v *VNode) *dom.Node {
	for key, value := range v.Attrs {
		if key == AttrInnerHTML {
			continue
		}
		node.SetProp(key, value)
	}

	// Raw-HTML injection takes precedence over children.
	if markup, ok := rawHTMLAttr(v.Attrs); ok {
		injectHTML(node, markup)
		return node
	}

	for _, child := range v.Children {
		node.AppendChild(Materialize(child))
	}
	return node
}

func injectHTML(node *dom.Node, markup string) {
	if err := node.SetInnerHTML(markup); err != nil {
		errors.Report(&errors.EngineError{
			Op:   "vdom.Materialize",
			Kind: errors.KindRender,
			Err:  err,
		})
	}
}
