package yuzutest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-json"

	"github.com/go-yuzu/yuzu/pkg/dom"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure of an attached tree.
type Snapshot struct {
	Tree *TreeNode `json:"tree"`
}

// TreeNode represents one node in the serialized tree.
type TreeNode struct {
	Type     string         `json:"type"`
	Tag      string         `json:"tag,omitempty"`
	Text     string         `json:"text,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Markup   string         `json:"markup,omitempty"`
	Children []*TreeNode    `json:"children,omitempty"`
}

// CaptureSnapshot captures the mounted tree. Nil before Mount.
func (ct *ComponentTester) CaptureSnapshot() *Snapshot {
	return Capture(ct.Root())
}

// Capture builds a snapshot of the subtree rooted at node.
func Capture(node *dom.Node) *Snapshot {
	snap := &Snapshot{}
	if node != nil {
		snap.Tree = captureNode(node)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch
// it reports a diff and instructions for updating. When
// YUZU_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("YUZU_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: YUZU_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: YUZU_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating
// directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line-oriented diff between this snapshot and other.
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

func captureNode(node *dom.Node) *TreeNode {
	out := &TreeNode{
		Type:   node.Type().String(),
		Tag:    node.Tag(),
		Text:   node.Text(),
		Markup: node.InnerHTML(),
	}
	if props := captureProps(node); len(props) > 0 {
		out.Props = props
	}
	for _, child := range node.Children() {
		out.Children = append(out.Children, captureNode(child))
	}
	return out
}

// captureProps serializes the property bag. Function-valued properties
// such as event handlers have no stable representation and are skipped;
// values outside the JSON basics are rendered with their default
// format.
func captureProps(node *dom.Node) map[string]any {
	names := node.PropNames()
	if len(names) == 0 {
		return nil
	}
	props := make(map[string]any, len(names))
	for _, name := range names {
		value, _ := node.Prop(name)
		switch value.(type) {
		case nil, string, bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			props[name] = value
		default:
			if reflect.TypeOf(value).Kind() == reflect.Func {
				continue
			}
			props[name] = fmt.Sprintf("%v", value)
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := len(expectedLines)
	if len(actualLines) > maxLen {
		maxLen = len(actualLines)
	}

	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
