package theme

import (
	"testing"

	"github.com/go-drift/paper/pkg/graphics"
)

func TestSelectionControlColors(t *testing.T) {
	current := Resolve(DefaultTheme(), Override{})
	legacy := Resolve(DefaultLegacyTheme(), Override{})
	legacyDark := Resolve(DefaultLegacyTheme(), Override{Dark: Ref(true)})
	custom := graphics.Hex(0x00796B)

	tests := []struct {
		name  string
		th    *Resolved
		state SelectionControlState
		want  graphics.Color
	}{
		{"current checked", current, SelectionControlState{Checked: true}, current.Color(RolePrimary)},
		{"current unchecked", current, SelectionControlState{}, current.Color(RoleOnSurfaceVariant)},
		{"current disabled", current, SelectionControlState{Checked: true, Disabled: true}, current.Color(RoleOnSurfaceDisabled)},
		{"legacy checked", legacy, SelectionControlState{Checked: true}, legacy.Color(RoleAccent)},
		{"legacy unchecked", legacy, SelectionControlState{}, graphics.RGBA(0, 0, 0, 0.54)},
		{"legacy dark unchecked", legacyDark, SelectionControlState{}, graphics.RGBA(255, 255, 255, 0.7)},
		{"legacy disabled", legacy, SelectionControlState{Disabled: true}, legacy.Color(RoleDisabled)},
		{"custom checked", current, SelectionControlState{Checked: true, CheckedColor: &custom}, custom},
		{"custom unchecked", legacy, SelectionControlState{UncheckedColor: &custom}, custom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.th.SelectionControlColors(tt.state).Control; got != tt.want {
				t.Errorf("Control = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectionControlRipple(t *testing.T) {
	th := Resolve(DefaultTheme(), Override{})
	enabled := th.SelectionControlColors(SelectionControlState{Checked: true})
	if want := th.Color(RolePrimary).Fade(0.32); enabled.Ripple != want {
		t.Errorf("ripple = %v, want %v", enabled.Ripple, want)
	}
	disabled := th.SelectionControlColors(SelectionControlState{Disabled: true})
	if want := th.Color(RoleText).WithAlpha(0.16); disabled.Ripple != want {
		t.Errorf("disabled ripple = %v, want %v", disabled.Ripple, want)
	}
}

func TestTextColor(t *testing.T) {
	current := Resolve(DefaultTheme(), Override{Colors: Palette{RoleText: graphics.ColorBlack}})
	if got, want := current.TextColor(1), current.Color(RoleOnSurface); got != want {
		t.Errorf("current TextColor = %v, want onSurface %v", got, want)
	}
	legacy := Resolve(DefaultLegacyTheme(), Override{})
	if got := legacy.TextColor(0.5); got != graphics.RGBA(0, 0, 0, 0.5) {
		t.Errorf("legacy TextColor = %v", got)
	}
}
