package graphics

// Channel weights of relative luminance for linear sRGB (WCAG 2.x).
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
//
// Only the RGB channels are used. A translucent color is treated as if it
// were drawn fully opaque; its alpha does not lower or raise the result.
func RelativeLuminance(c Color) float64 {
	r, g, b := c.colorful().LinearRgb()
	return lumaR*r + lumaG*g + lumaB*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The order of the arguments does not matter.
func ContrastRatio(a, b Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
