package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// PeakGuess holds starting values derived from a single peak in data.
type PeakGuess struct {
	Amplitude float64
	Center    float64
	Sigma     float64
}

// GuessFromPeak estimates amplitude, center and width of the dominant peak
// in (x, y), or of the dominant dip when negative is true.
//
// The center is the extremum position, or the mean position of the samples
// beyond half maximum when there are more than two of them; sigma is half
// the span of those samples, else a sixth of the x range. The amplitude is
// 3*(max(y)-min(y))*ampScale, negated for dips.
func GuessFromPeak(x, y []float64, negative bool, ampScale float64) (PeakGuess, error) {
	if len(x) == 0 || len(x) != len(y) {
		return PeakGuess{}, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrBadData, len(x), len(y))
	}

	maxy, miny := floats.Max(y), floats.Min(y)
	height := 3 * (maxy - miny)
	center := x[floats.MaxIdx(y)]
	sigma := (floats.Max(x) - floats.Min(x)) / 6
	half := (maxy + miny) / 2

	beyond := func(v float64) bool { return v > half }
	if negative {
		height = -height
		center = x[floats.MinIdx(y)]
		beyond = func(v float64) bool { return v < half }
	}

	var sel []float64
	for i, v := range y {
		if beyond(v) {
			sel = append(sel, x[i])
		}
	}
	if len(sel) > 2 {
		sigma = (floats.Max(sel) - floats.Min(sel)) / 2
		center = floats.Sum(sel) / float64(len(sel))
	}

	return PeakGuess{Amplitude: height * ampScale, Center: center, Sigma: sigma}, nil
}
