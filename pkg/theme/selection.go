package theme

import "github.com/go-drift/paper/pkg/graphics"

// TextColor returns the body text color with the given alpha applied.
// Current themes draw text in onSurface, legacy themes in text.
func (r *Resolved) TextColor(alpha float64) graphics.Color {
	role := RoleText
	if r.IsCurrentSchema {
		role = RoleOnSurface
	}
	return r.Color(role).WithAlpha(alpha)
}

// SelectionControlState describes a selection control (checkbox, radio) for
// color lookup. CheckedColor and UncheckedColor are optional caller colors.
type SelectionControlState struct {
	Checked        bool
	Disabled       bool
	CheckedColor   *graphics.Color
	UncheckedColor *graphics.Color
}

// SelectionControlColors are the colors a selection control is drawn with.
type SelectionControlColors struct {
	// Control is the icon and fill color.
	Control graphics.Color
	// Ripple is the touch feedback color.
	Ripple graphics.Color
}

// SelectionControlColors returns the colors for an Android-style selection
// control in state s.
func (r *Resolved) SelectionControlColors(s SelectionControlState) SelectionControlColors {
	checked := r.checkedControlColor(s.CheckedColor)

	var ripple graphics.Color
	if s.Disabled {
		ripple = r.Color(RoleText).WithAlpha(0.16)
	} else {
		ripple = checked.Fade(0.32)
	}

	var control graphics.Color
	switch {
	case s.Disabled && r.IsCurrentSchema:
		control = r.Color(RoleOnSurfaceDisabled)
	case s.Disabled:
		control = r.Color(RoleDisabled)
	case s.Checked:
		control = checked
	default:
		control = r.uncheckedControlColor(s.UncheckedColor)
	}
	return SelectionControlColors{Control: control, Ripple: ripple}
}

func (r *Resolved) checkedControlColor(custom *graphics.Color) graphics.Color {
	if custom != nil {
		return *custom
	}
	if r.IsCurrentSchema {
		return r.Color(RolePrimary)
	}
	return r.Color(RoleAccent)
}

func (r *Resolved) uncheckedControlColor(custom *graphics.Color) graphics.Color {
	if custom != nil {
		return *custom
	}
	if r.IsCurrentSchema {
		return r.Color(RoleOnSurfaceVariant)
	}
	if r.Dark {
		return r.Color(RoleText).WithAlpha(0.7)
	}
	return r.Color(RoleText).WithAlpha(0.54)
}
