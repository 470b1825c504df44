package interp

import (
	"errors"
	"fmt"
	"math"

	gonuminterp "gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-lineshape/dsp/core"
)

// Errors returned by Linear.
var (
	ErrLengthMismatch = errors.New("interp: xs and ys length mismatch")
	ErrTooFewPoints   = errors.New("interp: need at least 2 sample points")
	ErrNotIncreasing  = errors.New("interp: xs must be strictly increasing")
)

// Linear evaluates the piecewise-linear interpolant through (xs, ys) at each
// point of at. xs must be strictly increasing with at least two points.
// Points outside [xs[0], xs[len-1]] take the nearest end value.
func Linear(xs, ys, at []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d] = %v", ErrNotIncreasing, i, xs[i])
		}
	}

	var pl gonuminterp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interp: %w", err)
	}

	first, last := ys[0], ys[len(ys)-1]
	out := make([]float64, len(at))
	for i, x := range at {
		switch {
		case x <= xs[0]:
			out[i] = first
		case x >= xs[len(xs)-1]:
			out[i] = last
		default:
			out[i] = pl.Predict(x)
		}
	}
	return out, nil
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Uniform holds samples on the grid Start + i*Step.
type Uniform struct {
	Start  float64
	Step   float64
	Values []float64
}

// locate returns the segment index and fractional position of x. ok is false
// when x lies outside the sampled range; idx then names the edge sample.
func (u Uniform) locate(x float64) (idx int, frac float64, ok bool) {
	n := len(u.Values)
	pos := (x - u.Start) / u.Step
	switch {
	case pos <= 0:
		return 0, 0, false
	case pos >= float64(n-1):
		return n - 1, 0, false
	}

	i := int(math.Floor(pos))
	return i, pos - float64(i), true
}

// Linear evaluates the linear interpolant at x.
func (u Uniform) Linear(x float64) float64 {
	if len(u.Values) == 0 {
		return 0
	}
	i, t, ok := u.locate(x)
	if !ok {
		return u.Values[i]
	}
	return u.Values[i] + t*(u.Values[i+1]-u.Values[i])
}

// Hermite evaluates the cubic Hermite interpolant at x. Neighbors beyond the
// ends are replaced by the edge samples.
func (u Uniform) Hermite(x float64) float64 {
	n := len(u.Values)
	if n == 0 {
		return 0
	}
	i, t, ok := u.locate(x)
	if !ok {
		return u.Values[i]
	}

	v := u.Values
	return Hermite4(t,
		v[core.ClampIndex(i-1, n)],
		v[i],
		v[core.ClampIndex(i+1, n)],
		v[core.ClampIndex(i+2, n)],
	)
}

// LinearAll evaluates Linear at every point of xs.
func (u Uniform) LinearAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = u.Linear(x)
	}
	return out
}

// HermiteAll evaluates Hermite at every point of xs.
func (u Uniform) HermiteAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = u.Hermite(x)
	}
	return out
}
