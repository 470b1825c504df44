package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-lineshape/dsp/core"
)

// Validate checks that x has at least two finite, strictly monotonic points.
// Both increasing and decreasing grids are accepted.
func Validate(x []float64) error {
	if len(x) < 2 {
		return fmt.Errorf("%w: got %d", ErrGridTooSmall, len(x))
	}

	for i, v := range x {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: x[%d] = %v", ErrNonFinite, i, v)
		}
	}

	increasing := x[1] > x[0]
	for i := 1; i < len(x); i++ {
		if (increasing && x[i] <= x[i-1]) || (!increasing && x[i] >= x[i-1]) {
			return fmt.Errorf("%w: x[%d] = %v after %v", ErrNotMonotonic, i, x[i], x[i-1])
		}
	}

	return nil
}

// Spacing returns the mean absolute difference between consecutive points.
// It returns 0 for grids shorter than two points.
func Spacing(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	var sum float64
	for i := 1; i < len(x); i++ {
		sum += math.Abs(x[i] - x[i-1])
	}
	return sum / float64(len(x)-1)
}

// Internal is a uniform, increasing grid described by its first point,
// spacing and length.
type Internal struct {
	Start float64
	Step  float64
	N     int
}

// Stop returns the last point of the grid.
func (in Internal) Stop() float64 {
	return in.Start + in.Step*float64(in.N-1)
}

// At returns the i-th grid point.
func (in Internal) At(i int) float64 {
	return in.Start + in.Step*float64(i)
}

// Points materializes the grid.
func (in Internal) Points() []float64 {
	if in.N <= 0 {
		return nil
	}
	if in.N == 1 {
		return []float64{in.Start}
	}
	return floats.Span(make([]float64, in.N), in.Start, in.Stop())
}

// Plan builds the internal grid for the caller grid x and the width
// parameters of a lineshape (intrinsic widths and resolution).
//
// The spacing resolves the narrowest of the widths and the caller spacing by
// cfg.OversampleFactor samples. The span covers x padded by cfg.SpanFactor
// times the widest width on both sides. Plans longer than
// cfg.MaxInternalPoints fail with ErrGridTooLarge.
func Plan(x []float64, widths []float64, cfg core.EngineConfig) (Internal, error) {
	if err := Validate(x); err != nil {
		return Internal{}, err
	}
	if len(widths) == 0 {
		return Internal{}, fmt.Errorf("%w: no widths given", ErrInvalidWidth)
	}

	narrowest := Spacing(x)
	widest := 0.0
	for i, w := range widths {
		if !core.IsPositive(w) {
			return Internal{}, fmt.Errorf("%w: widths[%d] = %v", ErrInvalidWidth, i, w)
		}
		narrowest = math.Min(narrowest, w)
		widest = math.Max(widest, w)
	}

	lo, hi := floats.Min(x), floats.Max(x)
	pad := cfg.SpanFactor * widest
	start, stop := lo-pad, hi+pad
	step := narrowest / cfg.OversampleFactor

	// Guard the float-to-int conversion before comparing against the cap.
	count := math.Ceil((stop-start)/step) + 1
	if !core.IsFinite(count) || count > float64(cfg.MaxInternalPoints) {
		return Internal{}, fmt.Errorf("%w: need %.0f points for span [%g, %g] at step %g, limit %d",
			ErrGridTooLarge, count, start, stop, step, cfg.MaxInternalPoints)
	}

	in := Internal{Start: start, Step: step, N: int(count)}
	cfg.Debug("planned internal grid",
		"points", in.N, "step", in.Step, "start", in.Start, "stop", in.Stop(),
		"narrowest", narrowest, "widest", widest)

	return in, nil
}
