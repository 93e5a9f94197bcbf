package main

import (
	"fmt"

	"github.com/go-yuzu/yuzu/pkg/observe"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

// Todo keeps its items in list state; structural mutations notify per
// element and re-render the list.
type Todo struct {
	vdom.ComponentBase
}

func (t *Todo) InitialState() map[string]any {
	return map[string]any{
		"items": []any{"buy lemons", "zest lemons"},
	}
}

func (t *Todo) items() *observe.List {
	list, _ := t.State().Get("items").(*observe.List)
	return list
}

func (t *Todo) Render() *vdom.VNode {
	list := t.items()
	entries := make([]any, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		entries = append(entries,
			vdom.H("li", nil, fmt.Sprintf("%v", list.Index(i))))
	}
	return vdom.H("div", vdom.Attrs{"class": "todo"},
		vdom.H("h2", nil, fmt.Sprintf("Todo (%d)", list.Len())),
		vdom.H("ul", nil, entries...),
	)
}

// Add appends an item, triggering one update per written index.
func (t *Todo) Add(item string) {
	t.items().Push(item)
}

func NewTodo() vdom.Component { return &Todo{} }

func exerciseTodo(inst *vdom.Instance) {
	todo := inst.Component().(*Todo)
	todo.Add("juice lemons")
}
