package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/paper/pkg/core"
)

// Finder selects nodes.
type Finder interface {
	// Matches reports whether n is selected.
	Matches(n core.Node) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []core.Node
	finder Finder
}

// Find returns every node under root, root included, that f matches, in
// depth-first pre-order.
func Find(root core.Node, f Finder) FinderResult {
	var nodes []core.Node
	root.Walk(func(n core.Node) bool {
		if f.Matches(n) {
			nodes = append(nodes, n)
		}
		return true
	})
	return FinderResult{nodes: nodes, finder: f}
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Node {
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

type kindFinder struct{ kind core.Kind }

func (f kindFinder) Matches(n core.Node) bool { return n.Kind == f.kind }
func (f kindFinder) Description() string      { return fmt.Sprintf("ByKind(%s)", f.kind) }

// ByKind matches nodes of the given kind.
func ByKind(kind core.Kind) Finder {
	return kindFinder{kind: kind}
}

type nameFinder struct{ name string }

func (f nameFinder) Matches(n core.Node) bool { return n.Name == f.name }
func (f nameFinder) Description() string      { return fmt.Sprintf("ByName(%q)", f.name) }

// ByName matches nodes by display name, such as "Avatar.Text".
func ByName(name string) Finder {
	return nameFinder{name: name}
}

type textFinder struct {
	text     string
	contains bool
}

func (f textFinder) Matches(n core.Node) bool {
	if n.Kind != core.KindText {
		return false
	}
	if f.contains {
		return strings.Contains(n.Content, f.text)
	}
	return n.Content == f.text
}

func (f textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText matches text nodes with exactly this content.
func ByText(text string) Finder {
	return textFinder{text: text}
}

// ByTextContaining matches text nodes containing substring.
func ByTextContaining(substring string) Finder {
	return textFinder{text: substring, contains: true}
}

type propFinder struct {
	key   string
	value any
}

func (f propFinder) Matches(n core.Node) bool {
	v, ok := n.Props[f.key]
	return ok && reflect.DeepEqual(v, f.value)
}

func (f propFinder) Description() string {
	return fmt.Sprintf("ByProp(%s=%v)", f.key, f.value)
}

// ByProp matches nodes whose prop key equals value.
func ByProp(key string, value any) Finder {
	return propFinder{key: key, value: value}
}

type predicateFinder struct {
	fn   func(core.Node) bool
	desc string
}

func (f predicateFinder) Matches(n core.Node) bool { return f.fn(n) }
func (f predicateFinder) Description() string      { return f.desc }

// ByPredicate matches nodes for which fn returns true.
func ByPredicate(desc string, fn func(core.Node) bool) Finder {
	return predicateFinder{fn: fn, desc: desc}
}
