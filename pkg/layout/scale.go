// Package layout provides device-size helpers for widget dimensions.
package layout

// guidelineBaseWidth is the short side, in dp, of the device sizes are
// designed against.
const guidelineBaseWidth = 350

// defaultModerateFactor is how much of the linear scale Moderate applies.
const defaultModerateFactor = 0.5

// Scaler scales design sizes to the current device.
//
// The zero value applies no scaling.
type Scaler struct {
	// ShortSide is the device's shorter screen dimension in dp.
	// Zero means the guideline width.
	ShortSide float64
}

// NewScaler returns a Scaler for a screen of the given size.
func NewScaler(width, height float64) Scaler {
	return Scaler{ShortSide: min(width, height)}
}

func (s Scaler) ratio() float64 {
	if s.ShortSide <= 0 {
		return 1
	}
	return s.ShortSide / guidelineBaseWidth
}

// Scale scales size linearly with the screen width.
func (s Scaler) Scale(size float64) float64 {
	return size * s.ratio()
}

// Moderate scales size by half of the linear factor, so large screens get
// larger widgets without growing in proportion.
func (s Scaler) Moderate(size float64) float64 {
	return s.ModerateBy(size, defaultModerateFactor)
}

// ModerateBy is Moderate with an explicit factor in [0, 1].
func (s Scaler) ModerateBy(size, factor float64) float64 {
	return size + (s.Scale(size)-size)*factor
}
