package main

import "github.com/go-yuzu/yuzu/pkg/vdom"

// Demo represents one showcase page.
type Demo struct {
	Slug     string
	Title    string
	Subtitle string
	Ctor     vdom.Ctor
	// Exercise drives the mounted component through a few state
	// changes so the rendered output shows reactivity, not just the
	// initial tree. Optional.
	Exercise func(inst *vdom.Instance)
}

// demos is the registry of all showcase pages. Add new demos here to
// automatically update the generated index.
var demos = []Demo{
	{"counter", "Counter", "Reactive state driving a re-render", NewCounter, exerciseCounter},
	{"todo", "Todo List", "List state with per-index change records", NewTodo, exerciseTodo},
	{"profile", "Profile Card", "Nested components and attrs", NewProfile, nil},
	{"markup", "Raw Markup", "Injecting pre-rendered HTML fragments", NewMarkup, nil},
}
