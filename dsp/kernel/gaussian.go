// Package kernel builds normalized convolution kernels for resolution
// broadening.
package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/grid"
)

// undersampleRatio is the smallest sigma/step ratio at which the discrete
// kernel still tracks the continuous Gaussian.
const undersampleRatio = 10

// Gaussian returns a unit-mass Gaussian kernel of width sigma sampled at the
// mean spacing of ref.
//
// The kernel has odd length 2*half+1 with half = floor(KernelHalfWidth*sigma/step),
// so its center tap sits on the convolution origin. It always sums to 1; when
// sigma spans less than one step the result degenerates to the identity [1].
func Gaussian(ref []float64, sigma float64, opts ...core.EngineOption) ([]float64, error) {
	if len(ref) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridTooSmall, len(ref))
	}
	return GaussianStep(grid.Spacing(ref), sigma, opts...)
}

// GaussianStep is Gaussian with the sample spacing given directly.
func GaussianStep(step, sigma float64, opts ...core.EngineOption) ([]float64, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	if err := validateStep(step); err != nil {
		return nil, err
	}

	cfg := core.ApplyEngineOptions(opts...)
	if Undersampled(step, sigma) {
		cfg.Warn("gaussian kernel undersampled", "sigma", sigma, "step", step)
	}

	halfWidth := math.Floor(cfg.KernelHalfWidth * sigma / step)
	if !core.IsFinite(halfWidth) || 2*halfWidth+1 > float64(cfg.MaxInternalPoints) {
		return nil, fmt.Errorf("%w: sigma %g at step %g needs %.0f taps, limit %d",
			ErrKernelTooLarge, sigma, step, 2*halfWidth+1, cfg.MaxInternalPoints)
	}

	half := int(halfWidth)
	k := make([]float64, 2*half+1)
	inv := 1 / (2 * sigma * sigma)
	for i := range k {
		u := float64(i-half) * step
		k[i] = math.Exp(-u * u * inv)
	}

	floats.Scale(1/floats.Sum(k), k)
	return k, nil
}

// Undersampled reports whether step is too coarse for sigma, i.e. whether
// fewer than ten samples fall within one sigma.
func Undersampled(step, sigma float64) bool {
	return step*undersampleRatio > sigma
}
