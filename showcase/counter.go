package main

import (
	"fmt"

	"github.com/go-yuzu/yuzu/pkg/vdom"
)

// Counter is the smallest possible stateful component: one number, one
// button, synchronous updates.
type Counter struct {
	vdom.ComponentBase
}

func (c *Counter) InitialState() map[string]any {
	return map[string]any{"count": 0}
}

func (c *Counter) Render() *vdom.VNode {
	count := c.State().Get("count")
	return vdom.H("div", vdom.Attrs{"class": "counter"},
		vdom.H("span", vdom.Attrs{"class": "value"}, fmt.Sprintf("Count: %v", count)),
		vdom.H("button", vdom.Attrs{"onclick": c.Increment}, "+1"),
	)
}

// Increment bumps the counter; the tree is already re-rendered when
// this returns.
func (c *Counter) Increment() {
	current, _ := c.State().Get("count").(int)
	c.State().Set("count", current+1)
}

func NewCounter() vdom.Component { return &Counter{} }

func exerciseCounter(inst *vdom.Instance) {
	counter := inst.Component().(*Counter)
	counter.Increment()
	counter.Increment()
}
