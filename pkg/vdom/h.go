package vdom

import (
	"fmt"

	"github.com/go-yuzu/yuzu/pkg/tags"
)

// FragmentTag is the marker passed to H in tag position to produce a
// fragment descriptor.
var FragmentTag = fragmentMarker{}

type fragmentMarker struct{}

// H builds exactly one descriptor from a tag-like value, an attribute
// map, and zero or more children. It is the sole construction entry
// point used by render functions.
//
// The tag decides the variant at construction time:
//   - FragmentTag produces a fragment.
//   - A string recognized by the tag tables produces an element; any
//     other string is treated as literal text. The fallback is
//     deliberate, so h("Hello") renders the word rather than failing.
//   - A RenderFunc (or a plain func with the same signature) produces
//     a function component carrying the normalized children.
//   - A Ctor (or func() Component) produces a stateful component;
//     children are discarded for this variant, single-slot content is
//     not supported.
//
// A nil attrs map defaults to an empty one.
func H(tag any, attrs Attrs, children ...any) *VNode {
	if attrs == nil {
		attrs = Attrs{}
	}
	switch t := tag.(type) {
	case fragmentMarker:
		return &VNode{Kind: KindFragment, Attrs: attrs, Children: normalizeChildren(children)}
	case string:
		if tags.IsElement(t) {
			return &VNode{Kind: KindElement, Tag: t, Attrs: attrs, Children: normalizeChildren(children)}
		}
		return Text(t)
	case RenderFunc:
		return &VNode{Kind: KindFunction, Attrs: attrs, Children: normalizeChildren(children), Render: t}
	case func(Attrs, []*VNode) *VNode:
		return &VNode{Kind: KindFunction, Attrs: attrs, Children: normalizeChildren(children), Render: t}
	case Ctor:
		return &VNode{Kind: KindComponent, Attrs: attrs, Ctor: t}
	case func() Component:
		return &VNode{Kind: KindComponent, Attrs: attrs, Ctor: t}
	default:
		return nil
	}
}

// Text builds a text descriptor directly.
func Text(value string) *VNode {
	return &VNode{Kind: KindText, Text: value}
}

// normalizeChildren flattens raw children into descriptors: strings
// become text descriptors in place, nils are dropped, and everything
// else keeps its position.
func normalizeChildren(raw []any) []*VNode {
	children := make([]*VNode, 0, len(raw))
	for _, item := range raw {
		switch c := item.(type) {
		case nil:
			continue
		case *VNode:
			if c != nil {
				children = append(children, c)
			}
		case string:
			children = append(children, Text(c))
		default:
			children = append(children, Text(fmt.Sprint(c)))
		}
	}
	return children
}
