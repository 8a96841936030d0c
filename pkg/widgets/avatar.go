package widgets

import (
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/errors"
	"github.com/go-drift/paper/pkg/graphics"
	"github.com/go-drift/paper/pkg/style"
	"github.com/go-drift/paper/pkg/theme"
)

// defaultAvatarSize is the design size of text and icon avatars.
const defaultAvatarSize = 64

var avatarContainer = style.Of(style.Map{
	"justifyContent": "center",
	"alignItems":     "center",
})

// avatarBackground splits the caller's style into the background color and
// the remaining properties. Without a background the palette's primary
// color is used. The value is not validated; a non-color is handed on to
// the view as given.
func avatarBackground(s style.Fragment, th *theme.Resolved) (any, style.Map) {
	bg, ok, rest := style.Flatten(s).Take("backgroundColor")
	if !ok || bg == nil {
		bg = th.Color(theme.RolePrimary)
	}
	return bg, rest
}

// AvatarText shows initials in a colored circle. The label color is picked
// for contrast with the background unless Color is set.
type AvatarText struct {
	Label string
	// Size is the diameter. Zero means the scaled default of 64.
	Size float64
	// Color overrides the label color.
	Color *graphics.Color
	// Style applies to the circle; its backgroundColor sets the fill.
	Style      style.Fragment
	LabelStyle style.Fragment
	Props      core.Props
}

// WithColor returns a copy with the label color set.
func (a AvatarText) WithColor(c graphics.Color) AvatarText {
	a.Color = &c
	return a
}

// Build returns the avatar view.
func (a AvatarText) Build(env Env) core.Node {
	th := env.theme()
	size := a.Size
	if size <= 0 {
		size = env.Scaler.Moderate(defaultAvatarSize)
	}
	bg, rest := avatarBackground(a.Style, th)
	fg := theme.ForegroundFor(bg, a.Color)
	half := env.Scaler.Moderate(2)

	label := core.Node{
		Kind:    core.KindText,
		Name:    "Text",
		Content: a.Label,
		Props:   core.Props{"numberOfLines": 1},
		Style: style.List(
			style.Of(style.Map{"textAlign": "center", "textAlignVertical": "center"}),
			style.Of(style.Map{"color": fg, "fontSize": size / half, "lineHeight": size}),
			a.LabelStyle,
		),
	}
	return core.Node{
		Kind:  core.KindView,
		Name:  "Avatar.Text",
		Props: a.Props,
		Style: style.List(
			style.Of(style.Map{
				"width":           size,
				"height":          size,
				"borderRadius":    size / half,
				"backgroundColor": bg,
			}),
			avatarContainer,
			style.Of(rest),
		),
		Children: []core.Node{label},
	}
}

// AvatarIcon shows an icon in a colored circle. The icon color is picked for
// contrast with the background unless Color is set.
type AvatarIcon struct {
	// Icon is the glyph name.
	Icon string
	// Size is the diameter. Zero means the scaled default of 64.
	Size  float64
	Color *graphics.Color
	Style style.Fragment
	Props core.Props
}

// WithColor returns a copy with the icon color set.
func (a AvatarIcon) WithColor(c graphics.Color) AvatarIcon {
	a.Color = &c
	return a
}

// Build returns the avatar view.
func (a AvatarIcon) Build(env Env) core.Node {
	th := env.theme()
	size := a.Size
	if size <= 0 {
		size = env.Scaler.Moderate(defaultAvatarSize)
	}
	bg, rest := avatarBackground(a.Style, th)
	fg := theme.ForegroundFor(bg, a.Color)

	icon := core.Node{
		Kind:    core.KindIcon,
		Name:    "Icon",
		Content: a.Icon,
		Props: core.Props{
			"color": fg,
			"size":  size * env.Scaler.Moderate(0.6),
		},
	}
	return core.Node{
		Kind:  core.KindView,
		Name:  "Avatar.Icon",
		Props: a.Props,
		Style: style.List(
			style.Of(style.Map{
				"width":           size,
				"height":          size,
				"borderRadius":    size / env.Scaler.Moderate(2),
				"backgroundColor": bg,
			}),
			avatarContainer,
			style.Of(rest),
		),
		Children: []core.Node{icon},
	}
}

// AvatarImage shows an image clipped to a circle.
//
// Source is an image URI. Builder, when set, replaces the image with a
// caller-built node; a Builder that panics is reported through
// [errors.ReportBuildError] and the avatar renders without content.
type AvatarImage struct {
	Source  string
	Builder func(size float64) core.Node
	// Size is the diameter. Zero means spacing x16.
	Size  float64
	Style style.Fragment
	Props core.Props

	OnError     func(err error)
	OnLoad      func()
	OnLoadStart func()
	OnLoadEnd   func()
	OnProgress  func(loaded, total int64)
}

// Build returns the avatar view.
func (a AvatarImage) Build(env Env) core.Node {
	th := env.theme()
	size := a.Size
	if size <= 0 {
		size = th.Space(theme.SpaceX16)
	}
	bg, _ := avatarBackground(a.Style, th)

	var children []core.Node
	if a.Builder != nil {
		if n, ok := a.buildCustom(size); ok {
			children = append(children, n)
		}
	} else {
		children = append(children, core.Node{
			Kind:    core.KindImage,
			Name:    "Image",
			Content: a.Source,
			Props:   a.imageProps(),
			Style: style.Of(style.Map{
				"width":        size,
				"height":       size,
				"borderRadius": size / 2,
			}),
		})
	}

	return core.Node{
		Kind:  core.KindView,
		Name:  "Avatar.Image",
		Props: a.Props,
		Style: style.List(
			style.Of(style.Map{
				"width":           size,
				"height":          size,
				"borderRadius":    size / 2,
				"backgroundColor": bg,
			}),
			a.Style,
		),
		Children: children,
	}
}

func (a AvatarImage) buildCustom(size float64) (n core.Node, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportBuildError(&errors.BuildError{
				Widget:     "Avatar.Image",
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			})
			ok = false
		}
	}()
	return a.Builder(size), true
}

func (a AvatarImage) imageProps() core.Props {
	p := core.Props{"accessibilityIgnoresInvertColors": true}
	if a.OnError != nil {
		p["onError"] = a.OnError
	}
	if a.OnLoad != nil {
		p["onLoad"] = a.OnLoad
	}
	if a.OnLoadStart != nil {
		p["onLoadStart"] = a.OnLoadStart
	}
	if a.OnLoadEnd != nil {
		p["onLoadEnd"] = a.OnLoadEnd
	}
	if a.OnProgress != nil {
		p["onProgress"] = a.OnProgress
	}
	return p
}
