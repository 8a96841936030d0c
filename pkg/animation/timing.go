// Package animation describes value animations for the rendering engine.
//
// Widgets do not run animations. They return descriptors, a [Timing] or a
// [Sequence] of them, that the engine plays against an animated value. The
// descriptors are plain values and can be evaluated at any point in time
// with ValueAt, which is how tests check them.
package animation

import "time"

// Timing animates a value from wherever it is to ToValue over Duration.
type Timing struct {
	ToValue  float64
	Duration time.Duration
	// Curve eases progress. Nil means EaseInOut.
	Curve Curve
}

func (t Timing) curve() Curve {
	if t.Curve == nil {
		return EaseInOut
	}
	return t.Curve
}

// ValueAt returns the value elapsed into the timing, starting from from.
// A zero Duration jumps straight to ToValue.
func (t Timing) ValueAt(from float64, elapsed time.Duration) float64 {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return t.ToValue
	}
	if elapsed <= 0 {
		return from
	}
	p := t.curve()(float64(elapsed) / float64(t.Duration))
	return lerp(from, t.ToValue, p)
}

// Sequence plays timings one after another. Each step starts from the
// value the previous one ended on.
type Sequence struct {
	Steps []Timing
}

// NewSequence returns a Sequence of steps.
func NewSequence(steps ...Timing) Sequence {
	return Sequence{Steps: steps}
}

// Duration is the sum of the step durations.
func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, step := range s.Steps {
		total += max(step.Duration, 0)
	}
	return total
}

// IsEmpty reports whether the sequence has no steps.
func (s Sequence) IsEmpty() bool {
	return len(s.Steps) == 0
}

// ValueAt returns the animated value elapsed into the sequence when the
// value starts at from.
func (s Sequence) ValueAt(from float64, elapsed time.Duration) float64 {
	v := from
	for _, step := range s.Steps {
		d := max(step.Duration, 0)
		if elapsed < d {
			return step.ValueAt(v, elapsed)
		}
		v = step.ToValue
		elapsed -= d
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
