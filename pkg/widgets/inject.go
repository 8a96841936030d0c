package widgets

import (
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/style"
	"github.com/go-drift/paper/pkg/theme"
)

// Props injected into action children.
const (
	PropMode    = "mode"
	PropCompact = "compact"
)

// Action modes.
const (
	ModeOutlined  = "outlined"
	ModeContained = "contained"
)

// InjectChildProps returns children with positional, theme-derived props
// added to every action child ([core.KindAction]). Other children are
// returned as they are.
//
// Actions are numbered among themselves, ignoring other children. With the
// current schema the first action is outlined and the rest are contained.
// Each action also gets a left margin of spacing x2. With the legacy schema
// every action is compact. A nil th stands for the default theme.
//
// Props the caller set on a child win over injected ones, and the child's
// own style fragment is applied after the injected style. Neither children
// nor any node in it is modified.
func InjectChildProps(children []core.Node, th *theme.Resolved) []core.Node {
	th = Env{Theme: th}.theme()
	out := make([]core.Node, len(children))
	index := 0
	for i, child := range children {
		switch child.Kind {
		case core.KindAction:
			props, s := actionProps(index, th)
			out[i] = injectAction(child, props, s)
			index++
		default:
			out[i] = child
		}
	}
	return out
}

// actionProps derives the props for the action at index.
func actionProps(index int, th *theme.Resolved) (core.Props, style.Fragment) {
	if !th.IsCurrentSchema {
		return core.Props{PropCompact: true}, style.None()
	}
	mode := ModeContained
	if index == 0 {
		mode = ModeOutlined
	}
	return core.Props{PropMode: mode}, style.Of(style.Map{"marginLeft": th.Space(theme.SpaceX2)})
}

func injectAction(child core.Node, derived core.Props, s style.Fragment) core.Node {
	child.Props = derived.Merge(child.Props)
	child.Style = style.List(s, child.Style)
	return child
}
