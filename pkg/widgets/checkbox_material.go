package widgets

import (
	"time"

	"github.com/go-drift/paper/pkg/animation"
	"github.com/go-drift/paper/pkg/core"
	"github.com/go-drift/paper/pkg/graphics"
	"github.com/go-drift/paper/pkg/style"
	"github.com/go-drift/paper/pkg/theme"
)

// CheckboxStatus is the state a checkbox shows.
type CheckboxStatus int

const (
	CheckboxUnchecked CheckboxStatus = iota
	CheckboxChecked
	CheckboxIndeterminate
)

func (s CheckboxStatus) String() string {
	switch s {
	case CheckboxChecked:
		return "checked"
	case CheckboxIndeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// checkboxAnimationDuration is the base duration of one scale step.
const checkboxAnimationDuration = 100 * time.Millisecond

// checkboxPressedScale is the scale the box shrinks to before settling.
const checkboxPressedScale = 0.85

// CheckboxBorderWidth maps the animated scale to the width of the fill
// border drawn inside the box.
var CheckboxBorderWidth = animation.Interpolation{
	InputRange:  []float64{0.8, 1},
	OutputRange: []float64{7, 0},
}

// CheckboxAndroid is a Material checkbox drawn with icon glyphs.
//
// The box animates its scale when the status changes: it shrinks to 0.85
// and settles back to 1. See [CheckboxAndroid.Transition].
type CheckboxAndroid struct {
	Status   CheckboxStatus
	Disabled bool
	OnPress  func()
	// Color overrides the checked color.
	Color *graphics.Color
	// UncheckedColor overrides the unchecked color.
	UncheckedColor *graphics.Color
	TestID         string
}

// Build returns the checkbox view.
func (c CheckboxAndroid) Build(env Env) core.Node {
	th := env.theme()
	checked := c.Status == CheckboxChecked
	colors := th.SelectionControlColors(theme.SelectionControlState{
		Checked:        checked,
		Disabled:       c.Disabled,
		CheckedColor:   c.Color,
		UncheckedColor: c.UncheckedColor,
	})

	props := core.Props{
		"borderless":              true,
		"rippleColor":             colors.Ripple,
		"disabled":                c.Disabled,
		"accessibilityRole":       "checkbox",
		"accessibilityState":      map[string]bool{"disabled": c.Disabled, "checked": checked},
		"accessibilityLiveRegion": "polite",
	}
	if c.OnPress != nil {
		props["onPress"] = c.OnPress
	}
	if c.TestID != "" {
		props["testID"] = c.TestID
	}

	m := env.Scaler.Moderate
	icon := core.Node{
		Kind:    core.KindIcon,
		Name:    "MaterialCommunityIcon",
		Content: c.icon(),
		Props: core.Props{
			"allowFontScaling": false,
			"size":             th.Space(theme.SpaceX6),
			"color":            colors.Control,
			"direction":        graphics.WritingDirectionLTR.String(),
		},
	}
	fill := core.Node{
		Kind: core.KindView,
		Name: "Animated.View",
		Props: core.Props{
			"borderWidth": CheckboxBorderWidth,
		},
		Style: style.Of(style.Map{
			"height":      m(14),
			"width":       m(14),
			"borderColor": colors.Control,
		}),
	}
	fillContainer := core.Node{
		Kind: core.KindView,
		Name: "View",
		Style: style.Of(style.Map{
			"position":       "absolute",
			"top":            0.0,
			"right":          0.0,
			"bottom":         0.0,
			"left":           0.0,
			"alignItems":     "center",
			"justifyContent": "center",
		}),
		Children: []core.Node{fill},
	}
	scaled := core.Node{
		Kind:     core.KindView,
		Name:     "Animated.View",
		Props:    core.Props{"transform": "scale"},
		Children: []core.Node{icon, fillContainer},
	}

	return core.Node{
		Kind:  core.KindView,
		Name:  "Checkbox.Android",
		Props: props,
		Style: style.Of(style.Map{
			"borderRadius": m(18),
			"width":        th.Space(theme.SpaceX9),
			"height":       th.Space(theme.SpaceX9),
			"padding":      m(6),
		}),
		Children: []core.Node{scaled},
	}
}

func (c CheckboxAndroid) icon() string {
	switch c.Status {
	case CheckboxIndeterminate:
		return "minus-box"
	case CheckboxChecked:
		return "checkbox-marked"
	default:
		return "checkbox-blank-outline"
	}
}

// Transition returns the scale animation to play after the checkbox was
// rebuilt with a new status. Nothing plays on the first render. Checking
// shrinks and settles over two equal steps; unchecking jumps to the shrunk
// scale and settles over a longer step. Durations follow the theme's
// animation scale.
func (c CheckboxAndroid) Transition(env Env, firstRender bool) animation.Sequence {
	if firstRender {
		return animation.Sequence{}
	}
	th := env.theme()
	step := th.Duration(checkboxAnimationDuration)
	if c.Status == CheckboxChecked {
		return animation.NewSequence(
			animation.Timing{ToValue: checkboxPressedScale, Duration: step},
			animation.Timing{ToValue: 1, Duration: step},
		)
	}
	return animation.NewSequence(
		animation.Timing{ToValue: checkboxPressedScale, Duration: 0},
		animation.Timing{ToValue: 1, Duration: time.Duration(float64(step) * 1.75)},
	)
}
