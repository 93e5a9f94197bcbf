// Package vdom implements the virtual-tree core of the yuzu engine:
// the descriptor model, the component lifecycle, the materializer that
// turns descriptors into visual-tree nodes, and the reconciler that
// computes minimal patches between descriptor trees.
package vdom

// Kind discriminates the descriptor variants. Every descriptor has
// exactly one kind; consumers branch on it exhaustively.
type Kind int

const (
	// KindText is a leaf of literal text.
	KindText Kind = iota
	// KindElement is a native visual-tree element.
	KindElement
	// KindFragment is a children group with no own node.
	KindFragment
	// KindFunction is a pure, stateless producer.
	KindFunction
	// KindComponent is a stateful producer with a lazily populated
	// instance.
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindElement:
		return "element"
	case KindFragment:
		return "fragment"
	case KindFunction:
		return "function"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Attrs is the attribute map carried by element and component
// descriptors.
type Attrs map[string]any

// RenderFunc is the signature of a function component: a pure producer
// from attrs and children to a descriptor.
type RenderFunc func(attrs Attrs, children []*VNode) *VNode

// Ctor constructs a fresh component. The constructor value doubles as
// the component class identity during reconciliation.
type Ctor func() Component

// VNode is a node of the descriptor tree. Descriptors are immutable by
// convention; the engine only writes the Instance and resolved fields,
// which carry live render bookkeeping.
type VNode struct {
	// Kind is the variant discriminator.
	Kind Kind
	// Tag is the element name. Set for KindElement only.
	Tag string
	// Text is the literal value. Set for KindText only.
	Text string
	// Attrs holds the attributes of elements and components.
	Attrs Attrs
	// Children is the ordered child list of elements, fragments, and
	// function components. Order is the only identity the reconciler
	// aligns on.
	Children []*VNode
	// Render is the producer of a function component.
	Render RenderFunc
	// Ctor is the component class of a stateful component.
	Ctor Ctor
	// Instance backs a mounted stateful component. Populated lazily on
	// first materialization and carried forward across diffs while the
	// component class is unchanged.
	Instance *Instance

	// resolved caches the descriptor a function component last produced
	// so the reconciler can diff against the tree whose instances are
	// actually live.
	resolved *VNode
}

// AttrInnerHTML is the reserved raw-HTML-injection attribute. When
// present on an element or fragment descriptor it suppresses normal
// child rendering and injects the given markup fragment instead.
const AttrInnerHTML = "innerHTML"

// RawHTML marks a string attribute value as markup to inject verbatim.
type RawHTML string

// rawHTMLAttr extracts the raw-HTML-injection value from attrs.
func rawHTMLAttr(attrs Attrs) (string, bool) {
	v, ok := attrs[AttrInnerHTML]
	if !ok {
		return "", false
	}
	switch markup := v.(type) {
	case RawHTML:
		return string(markup), true
	case string:
		return markup, true
	default:
		return "", false
	}
}
