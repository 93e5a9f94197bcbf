// Package yuzu is the convenience entry point for building Yuzu
// applications. It re-exports the descriptor builder, the component
// contract, and the mount entry point so simple applications import a
// single package.
package yuzu

import (
	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

// Aliases for the core descriptor and component types.
type (
	VNode         = vdom.VNode
	Attrs         = vdom.Attrs
	Component     = vdom.Component
	ComponentBase = vdom.ComponentBase
	Ctor          = vdom.Ctor
	Instance      = vdom.Instance
	RawHTML       = vdom.RawHTML
)

// FragmentTag builds a children group with no node of its own.
var FragmentTag = vdom.FragmentTag

// H builds a descriptor. See vdom.H.
func H(tag any, attrs Attrs, children ...any) *VNode {
	return vdom.H(tag, attrs, children...)
}

// Text builds a text descriptor.
func Text(value string) *VNode {
	return vdom.Text(value)
}

// Mount materializes a component onto an attachment node. See
// vdom.Mount.
func Mount(ctor Ctor, attach *dom.Node) (*Instance, error) {
	return vdom.Mount(ctor, attach)
}

// NewDocument returns an empty body element holding a single
// placeholder child ready to be passed to Mount.
func NewDocument() (body, attach *dom.Node) {
	body = dom.NewElement("body")
	attach = dom.NewElement("div")
	body.AppendChild(attach)
	return body, attach
}
