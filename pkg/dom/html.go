package dom

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements have no closing tag and never carry children.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// SetInnerHTML parses markup as an HTML fragment and replaces all of
// the node's content with the parsed nodes. The original markup is
// retained so re-injection of identical markup can be skipped.
func (n *Node) SetInnerHTML(markup string) error {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return fmt.Errorf("parse html fragment: %w", err)
	}

	n.RemoveAllChildren()
	for _, p := range parsed {
		if converted := fromHTMLNode(p); converted != nil {
			n.AppendChild(converted)
		}
	}
	n.markup = markup
	return nil
}

// InnerHTML returns the markup last injected via SetInnerHTML, or the
// empty string when content was built node by node.
func (n *Node) InnerHTML() string {
	return n.markup
}

// fromHTMLNode converts a parsed html.Node subtree into a dom subtree.
// Comments, doctypes and other non-content nodes are dropped.
func fromHTMLNode(src *html.Node) *Node {
	switch src.Type {
	case html.TextNode:
		return NewText(src.Data)
	case html.ElementNode:
		node := NewElement(src.Data)
		for _, attr := range src.Attr {
			node.SetProp(attr.Key, attr.Val)
		}
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if converted := fromHTMLNode(c); converted != nil {
				node.AppendChild(converted)
			}
		}
		return node
	default:
		return nil
	}
}

// OuterHTML serializes the subtree rooted at n. Fragment nodes emit
// their children only. Properties holding functions are skipped; bool
// properties render as bare attributes when true.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	n.writeHTML(&sb)
	return sb.String()
}

func (n *Node) writeHTML(sb *strings.Builder) {
	switch n.typ {
	case TextNode:
		sb.WriteString(html.EscapeString(n.text))
	case FragmentNode:
		for _, child := range n.children {
			child.writeHTML(sb)
		}
	case ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.tag)
		for _, key := range n.PropNames() {
			value := n.props[key]
			switch v := value.(type) {
			case bool:
				if v {
					sb.WriteByte(' ')
					sb.WriteString(key)
				}
			case string:
				sb.WriteByte(' ')
				sb.WriteString(key)
				sb.WriteString(`="`)
				sb.WriteString(html.EscapeString(v))
				sb.WriteByte('"')
			case nil:
				// skip
			default:
				if isFunc(value) {
					continue
				}
				sb.WriteByte(' ')
				sb.WriteString(key)
				sb.WriteString(`="`)
				sb.WriteString(html.EscapeString(fmt.Sprintf("%v", v)))
				sb.WriteByte('"')
			}
		}
		if _, void := voidElements[n.tag]; void && len(n.children) == 0 {
			sb.WriteString("/>")
			return
		}
		sb.WriteByte('>')
		for _, child := range n.children {
			child.writeHTML(sb)
		}
		sb.WriteString("</")
		sb.WriteString(n.tag)
		sb.WriteByte('>')
	}
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
