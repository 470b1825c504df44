package lineshape

import (
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/conv"
	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/grid"
	"github.com/cwbudde/algo-lineshape/dsp/kernel"
)

// Shape evaluates an ideal response on the internal grid points.
// It must return a slice of the same length as pts.
type Shape func(pts []float64) []float64

// Broaden evaluates shape on an internal grid planned for x and widths,
// convolves it with a unit-mass Gaussian of width res and interpolates the
// result back onto x.
//
// widths lists every width that the internal grid must resolve; res is
// always included.
func Broaden(x []float64, widths []float64, res float64, shape Shape, opts ...core.EngineOption) ([]float64, error) {
	if err := requirePositive("res", res); err != nil {
		return nil, err
	}

	cfg := core.ApplyEngineOptions(opts...)

	all := append(append(make([]float64, 0, len(widths)+1), widths...), res)
	in, err := grid.Plan(x, all, cfg)
	if err != nil {
		return nil, err
	}

	pts := in.Points()
	ideal := shape(pts)
	if len(ideal) != len(pts) {
		return nil, fmt.Errorf("lineshape: shape returned %d samples for %d points", len(ideal), len(pts))
	}

	k, err := kernel.GaussianStep(in.Step, res, opts...)
	if err != nil {
		return nil, err
	}

	broadened, err := conv.Same(ideal, k)
	if err != nil {
		return nil, err
	}

	return grid.Resample(in, broadened, x, cfg.Resampling)
}
