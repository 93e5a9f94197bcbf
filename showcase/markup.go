package main

import "github.com/go-yuzu/yuzu/pkg/vdom"

// Markup demonstrates raw fragment injection: the html attribute wins
// over children and is parsed into real nodes.
type Markup struct {
	vdom.ComponentBase
}

func (m *Markup) Render() *vdom.VNode {
	return vdom.H("div", vdom.Attrs{"class": "markup"},
		vdom.H("h2", nil, "Pre-rendered content"),
		vdom.H("div", vdom.Attrs{
			vdom.AttrInnerHTML: vdom.RawHTML(`<p>From a <em>markdown</em> pipeline, say.</p>`),
		}),
	)
}

func NewMarkup() vdom.Component { return &Markup{} }
