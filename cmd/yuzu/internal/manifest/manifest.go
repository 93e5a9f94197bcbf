// Package manifest loads declarative component trees from YAML for
// static rendering. A manifest describes a descriptor tree with plain
// data, one node per mapping:
//
//	root:
//	  tag: div
//	  attrs: {id: app}
//	  children:
//	    - tag: h1
//	      children:
//	        - text: Hello
//	    - text: plain text node
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-yuzu/yuzu/pkg/tags"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

// Manifest is a parsed component tree description.
type Manifest struct {
	Root *Node `yaml:"root"`
}

// Node describes one descriptor. Exactly one of Text, Tag, or Fragment
// must be set; Attrs, HTML, and Children only apply to tags and
// fragments.
type Node struct {
	Text     string         `yaml:"text,omitempty"`
	Tag      string         `yaml:"tag,omitempty"`
	Fragment bool           `yaml:"fragment,omitempty"`
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	HTML     string         `yaml:"html,omitempty"`
	Children []*Node        `yaml:"children,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Root == nil {
		return nil, fmt.Errorf("manifest has no root node")
	}
	if err := m.Root.validate("root"); err != nil {
		return nil, err
	}
	return &m, nil
}

// Build converts the manifest into a descriptor tree.
func (m *Manifest) Build() *vdom.VNode {
	return m.Root.build()
}

func (n *Node) validate(path string) error {
	set := 0
	if n.Text != "" {
		set++
	}
	if n.Tag != "" {
		set++
	}
	if n.Fragment {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%s: node needs exactly one of text, tag, or fragment", path)
	}
	if n.Text != "" && (len(n.Attrs) > 0 || len(n.Children) > 0 || n.HTML != "") {
		return fmt.Errorf("%s: text nodes cannot carry attrs, html, or children", path)
	}
	if n.Tag != "" && !tags.IsElement(n.Tag) {
		return fmt.Errorf("%s: unknown tag %q", path, n.Tag)
	}
	if n.HTML != "" && len(n.Children) > 0 {
		return fmt.Errorf("%s: html and children are mutually exclusive", path)
	}
	for i, child := range n.Children {
		if err := child.validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) build() *vdom.VNode {
	if n.Text != "" {
		return vdom.Text(n.Text)
	}

	attrs := vdom.Attrs{}
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	if n.HTML != "" {
		attrs[vdom.AttrInnerHTML] = vdom.RawHTML(n.HTML)
	}

	children := make([]any, 0, len(n.Children))
	for _, child := range n.Children {
		children = append(children, child.build())
	}

	if n.Fragment {
		return vdom.H(vdom.FragmentTag, attrs, children...)
	}
	return vdom.H(n.Tag, attrs, children...)
}
