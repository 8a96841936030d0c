package graphics

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor reads a color in one of the forms style sheets use:
//
//	#rgb  #rrggbb  #rrggbbaa
//	rgb(r, g, b)  rgba(r, g, b, a)
//	transparent, or any SVG color name ("white", "teal")
//
// Alpha in rgba() is a 0-1 float; ".54" is accepted.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return 0, fmt.Errorf("graphics: empty color")
	case v == "transparent":
		return ColorTransparent, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(v)
	case strings.HasPrefix(v, "rgba(") || strings.HasPrefix(v, "rgb("):
		return parseFunc(v)
	}
	if named, ok := colornames.Map[v]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, fmt.Errorf("graphics: unknown color %q", s)
}

// MustParseColor is like ParseColor but panics on malformed input.
// It is meant for package-level palette literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(v string) (Color, error) {
	switch len(v) {
	case 4, 7:
		c, err := colorful.Hex(v)
		if err != nil {
			return 0, fmt.Errorf("graphics: invalid hex color %q: %w", v, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	case 9:
		n, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("graphics: invalid hex color %q: %w", v, err)
		}
		// #rrggbbaa -> 0xaarrggbb
		return Color(uint32(n)>>8 | uint32(n)<<24), nil
	default:
		return 0, fmt.Errorf("graphics: invalid hex color %q", v)
	}
}

func parseFunc(v string) (Color, error) {
	open := strings.IndexByte(v, '(')
	if !strings.HasSuffix(v, ")") {
		return 0, fmt.Errorf("graphics: unterminated color function %q", v)
	}
	name := v[:open]
	parts := strings.Split(v[open+1:len(v)-1], ",")
	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return 0, fmt.Errorf("graphics: %s() takes %d arguments, got %d", name, want, len(parts))
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || n < 0 || n > maxByte {
			return 0, fmt.Errorf("graphics: invalid channel %q in %q", parts[i], v)
		}
		ch[i] = uint8(n + 0.5)
	}
	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return 0, fmt.Errorf("graphics: invalid alpha %q in %q", parts[3], v)
		}
		alpha = a
	}
	return RGBA(ch[0], ch[1], ch[2], alpha), nil
}
