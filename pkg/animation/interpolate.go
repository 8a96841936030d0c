package animation

// Interpolation maps an input range onto an output range piecewise
// linearly. Inputs outside the range extend the first or last segment.
type Interpolation struct {
	InputRange  []float64
	OutputRange []float64
}

// At maps v. InputRange must be increasing and have the same length as
// OutputRange, with at least two entries; otherwise At returns v.
func (in Interpolation) At(v float64) float64 {
	n := len(in.InputRange)
	if n < 2 || n != len(in.OutputRange) {
		return v
	}
	i := 1
	for i < n-1 && v > in.InputRange[i] {
		i++
	}
	x0, x1 := in.InputRange[i-1], in.InputRange[i]
	y0, y1 := in.OutputRange[i-1], in.OutputRange[i]
	if x1 == x0 {
		return y1
	}
	return lerp(y0, y1, (v-x0)/(x1-x0))
}
