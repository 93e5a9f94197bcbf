package yuzutest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-yuzu/yuzu/pkg/dom"
	"github.com/go-yuzu/yuzu/pkg/vdom"
)

// fakeT records failures instead of failing the real test.
type fakeT struct {
	fatals []string
	errors []string
}

func (f *fakeT) Helper() {}
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}
func (f *fakeT) Name() string { return "fakeT" }

func buildTree() *dom.Node {
	return vdom.Materialize(
		vdom.H("div", vdom.Attrs{"id": "app", "hidden": true, "onclick": func() {}},
			vdom.H("h1", nil, "Hello"),
		),
	)
}

func TestCapture_Structure(t *testing.T) {
	snap := Capture(buildTree())

	if snap.Tree == nil {
		t.Fatal("expected a captured tree")
	}
	if snap.Tree.Type != "element" || snap.Tree.Tag != "div" {
		t.Errorf("unexpected root: %+v", snap.Tree)
	}
	if snap.Tree.Props["id"] != "app" {
		t.Errorf("expected id prop, got %v", snap.Tree.Props)
	}
	if snap.Tree.Props["hidden"] != true {
		t.Errorf("expected hidden prop, got %v", snap.Tree.Props)
	}
	if _, present := snap.Tree.Props["onclick"]; present {
		t.Error("expected function props to be skipped")
	}
	if len(snap.Tree.Children) != 1 || snap.Tree.Children[0].Tag != "h1" {
		t.Fatalf("unexpected children: %+v", snap.Tree.Children)
	}
	text := snap.Tree.Children[0].Children[0]
	if text.Type != "text" || text.Text != "Hello" {
		t.Errorf("unexpected text node: %+v", text)
	}
}

func TestCapture_NilNode(t *testing.T) {
	snap := Capture(nil)
	if snap.Tree != nil {
		t.Error("expected an empty snapshot for a nil node")
	}
}

func TestSnapshot_DiffEqual(t *testing.T) {
	a := Capture(buildTree())
	b := Capture(buildTree())

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for equal trees, got:\n%s", diff)
	}
}

func TestSnapshot_DiffMismatch(t *testing.T) {
	a := Capture(buildTree())
	b := Capture(vdom.Materialize(vdom.H("div", vdom.Attrs{"id": "other"})))

	diff := a.Diff(b)
	if diff == "" {
		t.Fatal("expected a diff for different trees")
	}
	if !strings.Contains(diff, "app") || !strings.Contains(diff, "other") {
		t.Errorf("expected both sides in the diff, got:\n%s", diff)
	}
}

func TestSnapshot_MatchesFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "tree.json")
	snap := Capture(buildTree())

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if len(ft.fatals) != 0 || len(ft.errors) != 0 {
		t.Errorf("expected a clean match, got fatals=%v errors=%v", ft.fatals, ft.errors)
	}
}

func TestSnapshot_MatchesFileMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	if err := Capture(buildTree()).UpdateFile(path); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	other := Capture(vdom.Materialize(vdom.H("span", nil, "x")))
	ft := &fakeT{}
	other.MatchesFile(ft, path)

	if len(ft.errors) != 1 {
		t.Fatalf("expected one mismatch report, got %v", ft.errors)
	}
	if !strings.Contains(ft.errors[0], "YUZU_UPDATE_SNAPSHOTS=1") {
		t.Error("expected update instructions in the failure message")
	}
}

func TestSnapshot_MatchesFileMissing(t *testing.T) {
	ft := &fakeT{}
	Capture(buildTree()).MatchesFile(ft, filepath.Join(t.TempDir(), "absent.json"))

	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Errorf("expected a missing-file fatal, got %v", ft.fatals)
	}
}

func TestSnapshot_UpdateEnvWritesFile(t *testing.T) {
	t.Setenv("YUZU_UPDATE_SNAPSHOTS", "1")
	path := filepath.Join(t.TempDir(), "tree.json")

	ft := &fakeT{}
	Capture(buildTree()).MatchesFile(ft, path)

	if len(ft.fatals) != 0 {
		t.Fatalf("expected the update to succeed, got %v", ft.fatals)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected the snapshot file to be written: %v", err)
	}
}

func TestCapture_RetainsInjectedMarkup(t *testing.T) {
	node := vdom.Materialize(vdom.H("div", vdom.Attrs{vdom.AttrInnerHTML: vdom.RawHTML("<b>x</b>")}))
	snap := Capture(node)

	if snap.Tree.Markup != "<b>x</b>" {
		t.Errorf("expected injected markup in the snapshot, got %q", snap.Tree.Markup)
	}
}
