package graphics

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", ColorWhite},
		{"#000000", ColorBlack},
		{"#6750A4", RGB(0x67, 0x50, 0xA4)},
		{"#ff000080", RGBA8(255, 0, 0, 0x80)},
		{"rgb(28, 27, 31)", RGB(28, 27, 31)},
		{"rgba(0, 0, 0, .54)", RGBA(0, 0, 0, 0.54)},
		{"RGBA(255,255,255,0.5)", RGBA(255, 255, 255, 0.5)},
		{"white", ColorWhite},
		{"  Teal ", RGB(0, 128, 128)},
		{"transparent", ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "rgb(1,2)", "rgba(1,2,3)", "rgb(300,0,0)", "rgb(1,2,3", "not-a-color"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for _, c := range []Color{ColorWhite, RGB(0x62, 0x00, 0xEE), RGBA(0, 0, 0, 0.54), RGBA(28, 27, 31, 0.12)} {
		back, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.String(), err)
		}
		if back != c {
			t.Errorf("round trip of %q = %#08x, want %#08x", c.String(), uint32(back), uint32(c))
		}
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(0x62, 0x00, 0xEE).String(); got != "#6200ee" {
		t.Errorf("String() = %q, want #6200ee", got)
	}
	if got := RGBA(0, 0, 0, 0.54).String(); got != "rgba(0, 0, 0, 0.54)" {
		t.Errorf("String() = %q, want rgba(0, 0, 0, 0.54)", got)
	}
}

func TestFadeAndWithAlpha(t *testing.T) {
	c := RGB(10, 20, 30)
	if got := c.WithAlpha(0.5).Alpha(); math.Abs(got-0.5) > 0.01 {
		t.Errorf("WithAlpha(0.5).Alpha() = %v", got)
	}
	if got := c.Fade(0.32).Alpha(); math.Abs(got-0.68) > 0.01 {
		t.Errorf("Fade(0.32).Alpha() = %v, want ~0.68", got)
	}
	if got := c.WithAlpha(0).Opaque(); got != c {
		t.Errorf("Opaque() = %#08x, want %#08x", uint32(got), uint32(c))
	}
	if c.R() != 10 || c.G() != 20 || c.B() != 30 {
		t.Errorf("channels = %d,%d,%d", c.R(), c.G(), c.B())
	}
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		c    Color
		want float64
	}{
		{ColorBlack, 0},
		{ColorWhite, 1},
		{RGB(255, 0, 0), 0.2126},
		{RGB(0, 255, 0), 0.7152},
		{RGB(0, 0, 255), 0.0722},
		// 0x80 linearizes to ~0.2158.
		{RGB(128, 128, 128), 0.2158},
	}
	for _, tt := range tests {
		if got := RelativeLuminance(tt.c); math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("RelativeLuminance(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestRelativeLuminanceIgnoresAlpha(t *testing.T) {
	opaque := RGB(200, 40, 90)
	for _, a := range []float64{0, 0.1, 0.54, 1} {
		if got, want := RelativeLuminance(opaque.WithAlpha(a)), RelativeLuminance(opaque); got != want {
			t.Errorf("alpha %v changed luminance: %v vs %v", a, got, want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(ColorWhite, ColorBlack); math.Abs(got-21) > 1e-9 {
		t.Errorf("white/black = %v, want 21", got)
	}
	if got := ContrastRatio(ColorBlack, ColorWhite); math.Abs(got-21) > 1e-9 {
		t.Errorf("black/white = %v, want 21", got)
	}
	if got := ContrastRatio(RGB(1, 2, 3), RGB(1, 2, 3)); got != 1 {
		t.Errorf("same color = %v, want 1", got)
	}
}

func TestParseFontWeight(t *testing.T) {
	tests := []struct {
		in   string
		want FontWeight
	}{
		{"medium", FontWeightMedium},
		{"Bold", FontWeightBold},
		{"500", FontWeightMedium},
		{"350", FontWeight(350)},
	}
	for _, tt := range tests {
		got, err := ParseFontWeight(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseFontWeight(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseFontWeight("heavyish"); err == nil {
		t.Error("expected error for unknown weight")
	}
	if got := FontWeight(350).String(); got != "FontWeight(350)" {
		t.Errorf("String() = %q", got)
	}
}
