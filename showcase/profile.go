package main

import "github.com/go-yuzu/yuzu/pkg/vdom"

// badge is a function component: attrs in, descriptor out, no state.
func badge(attrs vdom.Attrs, children []*vdom.VNode) *vdom.VNode {
	return vdom.H("span", vdom.Attrs{"class": "badge", "title": attrs["title"]}, children...)
}

// Avatar renders a user picture with a fallback initial.
type Avatar struct {
	vdom.ComponentBase
}

func (a *Avatar) Render() *vdom.VNode {
	name, _ := a.Attrs()["name"].(string)
	initial := "?"
	if name != "" {
		initial = name[:1]
	}
	return vdom.H("div", vdom.Attrs{"class": "avatar"}, initial)
}

func NewAvatar() vdom.Component { return &Avatar{} }

// Profile composes a stateful child and a function component.
type Profile struct {
	vdom.ComponentBase
}

func (p *Profile) Render() *vdom.VNode {
	return vdom.H("div", vdom.Attrs{"class": "profile"},
		vdom.H(NewAvatar, vdom.Attrs{"name": "Yuzu"}),
		vdom.H("h2", nil, "Yuzu"),
		vdom.H(badge, vdom.Attrs{"title": "role"}, "maintainer"),
	)
}

func NewProfile() vdom.Component { return &Profile{} }
