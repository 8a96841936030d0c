package theme

import "github.com/go-drift/paper/pkg/graphics"

// Foreground candidates chosen between by [SelectForegroundColor].
var (
	ForegroundLight = graphics.ColorWhite
	ForegroundDark  = graphics.RGBA(0, 0, 0, 0.54)
)

// SelectForegroundColor returns the color to draw text or icons with on top
// of background.
//
// A non-nil override is returned unchanged. Otherwise the candidate with the
// higher contrast ratio against background wins, and a tie goes to
// [ForegroundLight]. Alpha plays no part: a translucent background is judged
// by its RGB channels as if it were opaque, and so is the dark candidate.
func SelectForegroundColor(background graphics.Color, override *graphics.Color) graphics.Color {
	if override != nil {
		return *override
	}
	light := graphics.ContrastRatio(background, ForegroundLight)
	dark := graphics.ContrastRatio(background, ForegroundDark)
	if dark > light {
		return ForegroundDark
	}
	return ForegroundLight
}

// ColorValue interprets a style value as a color. It accepts a
// [graphics.Color] or a string [graphics.ParseColor] understands.
func ColorValue(v any) (graphics.Color, bool) {
	switch c := v.(type) {
	case graphics.Color:
		return c, true
	case string:
		parsed, err := graphics.ParseColor(c)
		return parsed, err == nil
	default:
		return 0, false
	}
}

// ForegroundFor is [SelectForegroundColor] for an untyped style value, as
// found in a flattened style map. Values that are not colors are not
// rejected: the light candidate is returned and the caller keeps passing the
// original value to the view.
func ForegroundFor(background any, override *graphics.Color) graphics.Color {
	if override != nil {
		return *override
	}
	c, ok := ColorValue(background)
	if !ok {
		return ForegroundLight
	}
	return SelectForegroundColor(c, nil)
}
