package core

import (
	"fmt"
	"maps"

	"github.com/go-drift/paper/pkg/style"
)

// Kind identifies what a Node describes.
type Kind int

const (
	// KindUnknown is the zero Kind. Unknown nodes are passed through by
	// every widget that inspects children.
	KindUnknown Kind = iota
	// KindView is a layout container.
	KindView
	// KindText is a run of text.
	KindText
	// KindImage is a bitmap image.
	KindImage
	// KindIcon is a glyph from an icon font.
	KindIcon
	// KindAction is a themed pressable element such as a button. Composite
	// widgets may inject props into it.
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "View"
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	case KindIcon:
		return "Icon"
	case KindAction:
		return "Action"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Props holds a node's non-style properties.
type Props map[string]any

// Merge returns a new Props with over layered on p. Keys in over win.
func (p Props) Merge(over Props) Props {
	out := make(Props, len(p)+len(over))
	maps.Copy(out, p)
	maps.Copy(out, over)
	return out
}

// Node describes one element of a view tree.
type Node struct {
	Kind Kind
	// Name is the display name of the widget that produced the node,
	// such as "Avatar.Text".
	Name  string
	Props Props
	Style style.Fragment
	// Content is the text of a Text node, the glyph name of an Icon node
	// or the source of an Image node.
	Content  string
	Children []Node
}

// Prop returns the value of a prop and whether it is set.
func (n Node) Prop(key string) (any, bool) {
	v, ok := n.Props[key]
	return v, ok
}

// WithProps returns a copy of n with props layered over its own.
func (n Node) WithProps(props Props) Node {
	n.Props = n.Props.Merge(props)
	return n
}

// WithStyle returns a copy of n whose style is n.Style followed by s.
func (n Node) WithStyle(s style.Fragment) Node {
	n.Style = style.List(n.Style, s)
	return n
}

// FlatStyle flattens the node's style fragment.
func (n Node) FlatStyle() style.Map {
	return style.Flatten(n.Style)
}

// Walk calls fn for n and every descendant, depth first, in child order.
// Returning false from fn skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
