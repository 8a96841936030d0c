package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/paper/pkg/core"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot is a serializable copy of a node tree.
type Snapshot struct {
	Root *SnapshotNode `json:"root"`
}

// SnapshotNode is one node of a Snapshot. Style holds the flattened style.
type SnapshotNode struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	Name     string          `json:"name,omitempty"`
	Content  string          `json:"content,omitempty"`
	Props    map[string]any  `json:"props,omitempty"`
	Style    map[string]any  `json:"style,omitempty"`
	Children []*SnapshotNode `json:"children,omitempty"`
}

// Capture snapshots the tree under root.
func Capture(root core.Node) *Snapshot {
	counter := &kindCounter{}
	return &Snapshot{Root: captureNode(root, counter)}
}

// MatchesFile compares the snapshot with the golden file at path and
// reports a diff and instructions for updating. When PAPER_UPDATE_SNAPSHOTS=1
// the file is written instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("PAPER_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: PAPER_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: PAPER_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
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

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// kindCounter assigns stable IDs like "View#0", "View#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	id := fmt.Sprintf("%s#%d", kind, c.counts[kind])
	c.counts[kind]++
	return id
}

func captureNode(n core.Node, counter *kindCounter) *SnapshotNode {
	kind := n.Kind.String()
	out := &SnapshotNode{
		ID:      counter.next(kind),
		Kind:    kind,
		Name:    n.Name,
		Content: n.Content,
		Props:   serializeMap(n.Props),
		Style:   serializeMap(n.FlatStyle()),
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, captureNode(child, counter))
	}
	return out
}

func serializeMap[M ~map[string]any](m M) map[string]any {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = serializeValue(v)
	}
	return out
}

// serializeValue makes v JSON-friendly: functions become "<func>" and
// Stringers (colors, weights) their string form.
func serializeValue(v any) any {
	if v == nil {
		return nil
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "<func>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
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

// lineDiff produces a simple line-oriented diff.
func lineDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
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
