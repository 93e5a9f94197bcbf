package yuzutest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-yuzu/yuzu/pkg/dom"
)

// Finder locates nodes in the attached tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *dom.Node) []*dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *dom.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s",
			index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// tagFinder matches element nodes by tag name.
type tagFinder struct {
	tag string
}

func (f *tagFinder) Evaluate(root *dom.Node) []*dom.Node {
	return collectMatches(root, func(n *dom.Node) bool {
		return n.Type() == dom.ElementNode && n.Tag() == f.tag
	})
}

func (f *tagFinder) Description() string {
	return fmt.Sprintf("ByTag(%s)", f.tag)
}

// ByTag returns a finder that matches elements with the given tag.
func ByTag(tag string) Finder {
	return &tagFinder{tag: tag}
}

// textFinder matches text nodes containing a substring.
type textFinder struct {
	substring string
}

func (f *textFinder) Evaluate(root *dom.Node) []*dom.Node {
	return collectMatches(root, func(n *dom.Node) bool {
		return n.Type() == dom.TextNode && strings.Contains(n.Text(), f.substring)
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.substring)
}

// ByText returns a finder that matches text nodes containing substring.
func ByText(substring string) Finder {
	return &textFinder{substring: substring}
}

// propFinder matches element nodes carrying a property value.
type propFinder struct {
	key   string
	value any
}

func (f *propFinder) Evaluate(root *dom.Node) []*dom.Node {
	return collectMatches(root, func(n *dom.Node) bool {
		v, ok := n.Prop(f.key)
		return ok && reflect.DeepEqual(v, f.value)
	})
}

func (f *propFinder) Description() string {
	return fmt.Sprintf("ByProp(%s=%v)", f.key, f.value)
}

// ByProp returns a finder that matches elements whose property key deep
// equals value.
func ByProp(key string, value any) Finder {
	return &propFinder{key: key, value: value}
}

// collectMatches walks the tree depth-first pre-order collecting nodes
// that satisfy the predicate.
func collectMatches(root *dom.Node, match func(*dom.Node) bool) []*dom.Node {
	if root == nil {
		return nil
	}
	var out []*dom.Node
	if match(root) {
		out = append(out, root)
	}
	for _, child := range root.Children() {
		out = append(out, collectMatches(child, match)...)
	}
	return out
}
