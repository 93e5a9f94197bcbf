package dom

import (
	"strings"
	"testing"
)

func TestSetInnerHTML_ReplacesContent(t *testing.T) {
	node := NewElement("div")
	node.AppendChild(NewText("stale"))

	if err := node.SetInnerHTML(`<b class="x">bold</b> and text`); err != nil {
		t.Fatalf("SetInnerHTML: %v", err)
	}

	children := node.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	bold := children[0]
	if bold.Tag() != "b" {
		t.Errorf("expected b element, got %q", bold.Tag())
	}
	if v, ok := bold.Prop("class"); !ok || v != "x" {
		t.Errorf("expected class=x, got %v", v)
	}
	if children[1].Type() != TextNode || children[1].Text() != " and text" {
		t.Errorf("unexpected trailing text node: %v %q", children[1].Type(), children[1].Text())
	}
	if node.InnerHTML() != `<b class="x">bold</b> and text` {
		t.Errorf("expected injected markup to be retained, got %q", node.InnerHTML())
	}
}

func TestSetInnerHTML_NestedStructure(t *testing.T) {
	node := NewElement("div")
	if err := node.SetInnerHTML("<ul><li>one</li><li>two</li></ul>"); err != nil {
		t.Fatalf("SetInnerHTML: %v", err)
	}

	ul := node.Children()[0]
	if ul.Tag() != "ul" || len(ul.Children()) != 2 {
		t.Fatalf("expected ul with 2 items, got %q with %d", ul.Tag(), len(ul.Children()))
	}
	if ul.Children()[1].Children()[0].Text() != "two" {
		t.Error("expected nested text to survive the round trip")
	}
}

func TestOuterHTML_EscapesAndOrdersAttrs(t *testing.T) {
	node := NewElement("div")
	node.SetProp("id", "a")
	node.SetProp("class", `say "hi"`)
	node.AppendChild(NewText("1 < 2"))

	got := node.OuterHTML()
	want := `<div class="say &#34;hi&#34;" id="a">1 &lt; 2</div>`
	if got != want {
		t.Errorf("OuterHTML = %q, want %q", got, want)
	}
}

func TestOuterHTML_BoolAndFuncProps(t *testing.T) {
	node := NewElement("input")
	node.SetProp("disabled", true)
	node.SetProp("hidden", false)
	node.SetProp("onClick", func() {})

	got := node.OuterHTML()
	if !strings.Contains(got, "disabled") {
		t.Errorf("expected bare disabled attribute in %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("expected false bool attribute to be dropped in %q", got)
	}
	if strings.Contains(got, "onClick") {
		t.Errorf("expected function property to be skipped in %q", got)
	}
}

func TestOuterHTML_VoidElement(t *testing.T) {
	node := NewElement("br")
	if got := node.OuterHTML(); got != "<br/>" {
		t.Errorf("OuterHTML = %q, want <br/>", got)
	}
}

func TestOuterHTML_Fragment(t *testing.T) {
	frag := NewFragment()
	frag.AppendChild(NewText("a"))
	frag.AppendChild(NewElement("hr"))

	if got := frag.OuterHTML(); got != "a<hr/>" {
		t.Errorf("OuterHTML = %q, want a<hr/>", got)
	}
}

func TestOuterHTML_NumericProp(t *testing.T) {
	node := NewElement("td")
	node.SetProp("colspan", 2)
	if got := node.OuterHTML(); got != `<td colspan="2"></td>` {
		t.Errorf("OuterHTML = %q", got)
	}
}
