package widgets

import (
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/style"
	"github.com/go-drift/paper/pkg/theme"
)

// ListImageVariant selects the shape of a list row image.
type ListImageVariant int

const (
	// ListImageSquare is a square thumbnail.
	ListImageSquare ListImageVariant = iota
	// ListImageVideo is a wide video thumbnail.
	ListImageVideo
)

// ListImage is the leading image of a list row.
type ListImage struct {
	Source  string
	Variant ListImageVariant
	// Style is applied before the variant's size, which always wins.
	Style style.Fragment
}

// Build returns the image node.
func (l ListImage) Build(env Env) core.Node {
	th := env.theme()

	var size style.Map
	switch {
	case l.Variant == ListImageVideo && th.IsCurrentSchema:
		size = style.Map{
			"width":      env.Scaler.Moderate(114),
			"height":     th.Space(theme.SpaceX16),
			"marginLeft": 0.0,
		}
	case l.Variant == ListImageVideo:
		size = style.Map{
			"width":      env.Scaler.Moderate(100),
			"height":     env.Scaler.Moderate(64),
			"marginLeft": 0.0,
		}
	default:
		size = style.Map{
			"width":  th.Space(theme.SpaceX14),
			"height": th.Space(theme.SpaceX14),
		}
	}

	return core.Node{
		Kind:    core.KindImage,
		Name:    "List.Image",
		Content: l.Source,
		Props: core.Props{
			"accessibilityIgnoresInvertColors": true,
			"testID":                           "list-image",
		},
		Style: style.List(l.Style, style.Of(size)),
	}
}
