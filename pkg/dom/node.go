// Package dom implements the in-memory visual tree the engine renders
// into. It is a deliberately small DOM: nodes carry a property bag
// instead of typed attributes, children are kept in insertion order,
// and every mutation is synchronous.
package dom

import (
	"slices"
	"sort"
)

// NodeType discriminates the node variants.
type NodeType int

const (
	// ElementNode is a named element with properties and children.
	ElementNode NodeType = iota
	// TextNode is a leaf holding literal text.
	TextNode
	// FragmentNode groups children without a node of its own.
	FragmentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case FragmentNode:
		return "fragment"
	default:
		return "unknown"
	}
}

// Node is a single node in the visual tree.
type Node struct {
	typ      NodeType
	tag      string
	text     string
	props    map[string]any
	parent   *Node
	children []*Node
	// markup holds the last raw-HTML fragment injected via SetInnerHTML,
	// empty when the children were built node by node.
	markup string
}

// NewElement creates an element node for the given tag.
func NewElement(tag string) *Node {
	return &Node{typ: ElementNode, tag: tag}
}

// NewText creates a text node holding the literal value.
func NewText(text string) *Node {
	return &Node{typ: TextNode, text: text}
}

// NewFragment creates a children group with no own rendering.
func NewFragment() *Node {
	return &Node{typ: FragmentNode}
}

// Type returns the node variant.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the element name. Empty for text and fragment nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the literal value of a text node.
func (n *Node) Text() string { return n.text }

// Parent returns the containing node, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list in insertion order. The returned
// slice is shared; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// SetProp assigns a property on the node.
func (n *Node) SetProp(key string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[key] = value
}

// Prop returns a property value and whether it is present.
func (n *Node) Prop(key string) (any, bool) {
	v, ok := n.props[key]
	return v, ok
}

// DeleteProp removes a property from the node.
func (n *Node) DeleteProp(key string) {
	delete(n.props, key)
}

// PropNames returns the property keys in sorted order.
func (n *Node) PropNames() []string {
	names := make([]string, 0, len(n.props))
	for k := range n.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AppendChild detaches child from its current parent and appends it.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from n. A child not present is a no-op.
func (n *Node) RemoveChild(child *Node) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	child.parent = nil
}

// ReplaceChild swaps old for replacement at the same position. The
// replacement is detached from its current parent first, so moving a
// sibling within the same parent is valid. Replacing a node with
// itself and replacing a node that is not a child are no-ops.
func (n *Node) ReplaceChild(replacement, old *Node) {
	if replacement == old || !slices.Contains(n.children, old) {
		return
	}
	// Detaching a same-parent replacement shifts the slice, so the
	// index is only valid after the removal.
	replacement.Remove()
	i := slices.Index(n.children, old)
	n.children[i] = replacement
	replacement.parent = n
	old.parent = nil
}

// ReplaceWith swaps n for replacement in n's parent. Detached nodes are
// a no-op; the caller already holds the replacement.
func (n *Node) ReplaceWith(replacement *Node) {
	if n.parent == nil || replacement == n {
		return
	}
	n.parent.ReplaceChild(replacement, n)
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	for _, child := range n.children {
		child.parent = nil
	}
	n.children = nil
	n.markup = ""
}
