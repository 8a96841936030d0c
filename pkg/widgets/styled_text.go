package widgets

import (
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/graphics"
	"github.com/go-drift/paper/pkg/style"
	"github.com/go-drift/paper/pkg/theme"
)

// StyledText is body text in the theme's text color.
//
// StyledText is explicit: Alpha 0 means fully transparent text. Use
// [StyledTextOf] for the usual opaque text.
type StyledText struct {
	Content string
	// Alpha is applied to the theme's text color.
	Alpha float64
	// Family picks a font variant. Only legacy themes apply it; current
	// themes leave the font to the text style.
	Family    theme.FontVariant
	Direction graphics.WritingDirection
	Style     style.Fragment
	Props     core.Props
}

// StyledTextOf returns opaque StyledText in the given font variant.
func StyledTextOf(content string, family theme.FontVariant) StyledText {
	return StyledText{Content: content, Alpha: 1, Family: family}
}

// WithAlpha returns a copy with the text alpha set.
func (s StyledText) WithAlpha(alpha float64) StyledText {
	s.Alpha = alpha
	return s
}

// Build returns the text node.
func (s StyledText) Build(env Env) core.Node {
	th := env.theme()

	themed := style.Map{
		"color":            th.TextColor(s.Alpha),
		"writingDirection": s.Direction.String(),
	}
	if !th.IsCurrentSchema {
		if font, ok := th.Fonts[s.Family]; ok {
			themed["fontFamily"] = font.Family
			themed["fontWeight"] = font.Weight
		}
	}

	return core.Node{
		Kind:    core.KindText,
		Name:    "StyledText",
		Content: s.Content,
		Props:   s.Props,
		Style: style.List(
			style.Of(style.Map{"textAlign": "left"}),
			style.Of(themed),
			s.Style,
		),
	}
}
