package graphics

import (
	"fmt"
	"strconv"
	"strings"
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

var fontWeightNames = map[FontWeight]string{
	FontWeightThin:       "thin",
	FontWeightExtraLight: "extra_light",
	FontWeightLight:      "light",
	FontWeightNormal:     "normal",
	FontWeightMedium:     "medium",
	FontWeightSemibold:   "semibold",
	FontWeightBold:       "bold",
	FontWeightExtraBold:  "extra_bold",
	FontWeightBlack:      "black",
}

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	if name, ok := fontWeightNames[w]; ok {
		return name
	}
	return fmt.Sprintf("FontWeight(%d)", int(w))
}

// ParseFontWeight accepts a weight name ("medium") or a number ("500").
func ParseFontWeight(s string) (FontWeight, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for w, name := range fontWeightNames {
		if name == v {
			return w, nil
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 1000 {
		return 0, fmt.Errorf("graphics: invalid font weight %q", s)
	}
	return FontWeight(n), nil
}

// FontDescriptor names a font family and the weight to draw it with.
type FontDescriptor struct {
	Family string
	Weight FontWeight
}

// String returns "family/weight".
func (d FontDescriptor) String() string {
	return d.Family + "/" + d.Weight.String()
}

// WritingDirection is the base direction of a run of text.
type WritingDirection int

const (
	WritingDirectionLTR WritingDirection = iota
	WritingDirectionRTL
)

// String returns "ltr" or "rtl".
func (d WritingDirection) String() string {
	if d == WritingDirectionRTL {
		return "rtl"
	}
	return "ltr"
}
