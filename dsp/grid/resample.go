package grid

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/interp"
)

// Resample maps y, sampled on the internal grid in, onto the points of x.
//
// Points of x outside [in.Start, in.Stop()] take the nearest edge value of
// y. This hold is an approximation; Plan pads the internal grid so that
// caller points never need it.
func Resample(in Internal, y []float64, x []float64, mode core.Resampling) ([]float64, error) {
	if len(y) != in.N {
		return nil, fmt.Errorf("%w: got %d samples for %d points", ErrLength, len(y), in.N)
	}
	if in.N < 2 {
		return nil, fmt.Errorf("%w: internal grid has %d points", ErrGridTooSmall, in.N)
	}

	u := interp.Uniform{Start: in.Start, Step: in.Step, Values: y}

	switch mode {
	case core.ResampleHermite:
		return u.HermiteAll(x), nil
	default:
		out, err := interp.Linear(in.Points(), y, x)
		if err != nil {
			return nil, fmt.Errorf("grid: resample: %w", err)
		}
		return out, nil
	}
}
