package widgets

import (
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/style"
	"github.com/go-drift/paper/pkg/theme"
)

// CardActions lays out a row of actions at the bottom of a card.
//
// Action children are restyled by [InjectChildProps]: with the current
// schema the row is end-aligned, the first action is outlined and the others
// contained; with the legacy schema the row is start-aligned and every
// action is compact.
//
//	widgets.CardActions{
//	    Children: []core.Node{cancel, ok},
//	}.Build(env)
type CardActions struct {
	Children []core.Node
	Style    style.Fragment
	Props    core.Props
}

// Build returns the row view.
func (c CardActions) Build(env Env) core.Node {
	th := env.theme()
	justify := "flex-start"
	if th.IsCurrentSchema {
		justify = "flex-end"
	}
	return core.Node{
		Kind:  core.KindView,
		Name:  "Card.Actions",
		Props: c.Props,
		Style: style.List(
			style.Of(style.Map{
				"flexDirection": "row",
				"alignItems":    "center",
				"padding":       th.Space(theme.SpaceX2),
			}),
			c.Style,
			style.Of(style.Map{"justifyContent": justify}),
		),
		Children: InjectChildProps(c.Children, th),
	}
}
