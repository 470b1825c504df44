package lineshape

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lineshape/dsp/core"
)

// MagnonParams parameterizes Magnon. Energies share the units of the grid.
type MagnonParams struct {
	Amplitude float64 // peak height of the intrinsic Lorentzian
	Center    float64 // excitation energy
	Sigma     float64 // intrinsic half width
	Res       float64 // Gaussian resolution sigma
	KBT       float64 // thermal energy
}

// Validate checks that widths and kBT are positive and everything is finite.
func (p MagnonParams) Validate() error {
	if err := requireFinite("amplitude", p.Amplitude); err != nil {
		return err
	}
	if err := requireFinite("center", p.Center); err != nil {
		return err
	}
	if err := requirePositive("sigma", p.Sigma); err != nil {
		return err
	}
	if err := requirePositive("res", p.Res); err != nil {
		return err
	}
	return requirePositive("kBT", p.KBT)
}

// CrossoverParams parameterizes ZeroToLinear and ZeroToQuadratic.
type CrossoverParams struct {
	Center float64 // onset position
	Sigma  float64 // Gaussian smoothing width
	Coeff  float64 // gradient (linear) or curvature (quadratic)
}

// Validate checks that sigma is positive and everything is finite.
func (p CrossoverParams) Validate() error {
	if err := requireFinite("center", p.Center); err != nil {
		return err
	}
	if err := requireFinite("coeff", p.Coeff); err != nil {
		return err
	}
	return requirePositive("sigma", p.Sigma)
}

// Magnon returns the resolution-broadened magnon response on x: an
// antisymmetrized Lorentzian weighted by the Bose factor and convolved with
// a Gaussian of width p.Res.
func Magnon(x []float64, p MagnonParams, opts ...core.EngineOption) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	eps := core.ApplyEngineOptions(opts...).BoseEpsilon
	shape := func(pts []float64) []float64 {
		chi := AntisymmetrizedLorentzian(pts, p.Amplitude, p.Center, p.Sigma)
		vecmath.MulBlockInPlace(chi, BoseFactor(pts, p.KBT, eps))
		return chi
	}

	return Broaden(x, []float64{p.Sigma}, p.Res, shape, opts...)
}

// ZeroToLinear returns a ramp that is 0 below p.Center and rises with
// gradient p.Coeff above it, with the kink smoothed by a Gaussian of width
// p.Sigma.
func ZeroToLinear(x []float64, p CrossoverParams, opts ...core.EngineOption) ([]float64, error) {
	return crossover(x, p, 1, opts)
}

// ZeroToQuadratic is ZeroToLinear with p.Coeff*(x-center)^2 above the onset.
func ZeroToQuadratic(x []float64, p CrossoverParams, opts ...core.EngineOption) ([]float64, error) {
	return crossover(x, p, 2, opts)
}

func crossover(x []float64, p CrossoverParams, power int, opts []core.EngineOption) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	shape := func(pts []float64) []float64 {
		out := make([]float64, len(pts))
		for i, v := range pts {
			out[i] = OnsetAt(v, p.Center, p.Coeff, power)
		}
		return out
	}

	return Broaden(x, nil, p.Sigma, shape, opts...)
}
