package model

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/lineshape"
)

// Starting values used by the magnon guess for the parameters that a single
// peak does not constrain.
const (
	GuessRes = 0.1
	GuessKBT = 0.01
)

// peakAmpScale scales the peak height estimate for magnon guesses.
const peakAmpScale = 0.5

type evalFunc func(x []float64, p Params, opts ...core.EngineOption) ([]float64, error)

type guessFunc func(x, y []float64, negative bool) (Params, error)

// Model is a named lineshape with parameter hints.
type Model struct {
	Name  string
	Doc   string
	Hints []ParamHint

	eval  evalFunc
	guess guessFunc
}

// Eval binds p against the model's hints and evaluates the model on x.
func (m Model) Eval(x []float64, p Params, opts ...core.EngineOption) ([]float64, error) {
	bound, err := m.Bind(p)
	if err != nil {
		return nil, err
	}
	y, err := m.eval(x, bound, opts...)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", m.Name, err)
	}
	return y, nil
}

// Bind returns a full parameter set: values from p, defaults for the rest.
func (m Model) Bind(p Params) (Params, error) {
	bound, err := bind(m.Hints, p)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", m.Name, err)
	}
	return bound, nil
}

// Hint returns the hint for the named parameter.
func (m Model) Hint(name string) (ParamHint, bool) {
	idx := slices.IndexFunc(m.Hints, func(h ParamHint) bool { return h.Name == name })
	if idx < 0 {
		return ParamHint{}, false
	}
	return m.Hints[idx], true
}

// HasGuess reports whether Guess is supported.
func (m Model) HasGuess() bool {
	return m.guess != nil
}

// Guess derives starting values from data. Missing parameters take their
// defaults.
func (m Model) Guess(x, y []float64, negative bool) (Params, error) {
	if m.guess == nil {
		return nil, fmt.Errorf("model %s: %w", m.Name, ErrNoGuess)
	}
	p, err := m.guess(x, y, negative)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", m.Name, err)
	}
	return m.Bind(p)
}

var magnonHints = []ParamHint{
	hint("amplitude", 0.1, "peak height of the intrinsic Lorentzian"),
	hint("center", 0.15, "excitation energy"),
	nonNegative("sigma", 0.05, "intrinsic half width"),
	nonNegative("res", GuessRes, "Gaussian resolution sigma"),
	nonNegative("kBT", 8.617e-3, "thermal energy in the units of x"),
}

func evalMagnon(x []float64, p Params, opts ...core.EngineOption) ([]float64, error) {
	return lineshape.Magnon(x, lineshape.MagnonParams{
		Amplitude: p["amplitude"],
		Center:    p["center"],
		Sigma:     p["sigma"],
		Res:       p["res"],
		KBT:       p["kBT"],
	}, opts...)
}

func guessMagnon(x, y []float64, negative bool) (Params, error) {
	g, err := GuessFromPeak(x, y, negative, peakAmpScale)
	if err != nil {
		return nil, err
	}
	return Params{
		"amplitude": g.Amplitude,
		"center":    g.Center,
		"sigma":     max(g.Sigma, 0),
		"res":       GuessRes,
		"kBT":       GuessKBT,
	}, nil
}

func crossoverHints(coeff, doc string) []ParamHint {
	return []ParamHint{
		hint("center", 0, "onset position"),
		nonNegative("sigma", 0.1, "Gaussian smoothing width"),
		hint(coeff, 1, doc),
	}
}

func crossoverEval(coeff string, f func([]float64, lineshape.CrossoverParams, ...core.EngineOption) ([]float64, error)) evalFunc {
	return func(x []float64, p Params, opts ...core.EngineOption) ([]float64, error) {
		return f(x, lineshape.CrossoverParams{
			Center: p["center"],
			Sigma:  p["sigma"],
			Coeff:  p[coeff],
		}, opts...)
	}
}

var registry = map[string]Model{
	"magnon": {
		Name:  "magnon",
		Doc:   "antisymmetrized Lorentzian times Bose factor, broadened by Gaussian resolution",
		Hints: magnonHints,
		eval:  evalMagnon,
		guess: guessMagnon,
	},
	"paramagnon": {
		Name:  "paramagnon",
		Doc:   "damped magnon; same lineshape as magnon",
		Hints: magnonHints,
		eval:  evalMagnon,
		guess: guessMagnon,
	},
	"zero2linear": {
		Name:  "zero2linear",
		Doc:   "zero below center, linear above, kink smoothed by a Gaussian",
		Hints: crossoverHints("grad", "gradient above the onset"),
		eval:  crossoverEval("grad", lineshape.ZeroToLinear),
	},
	"zero2quad": {
		Name:  "zero2quad",
		Doc:   "zero below center, quadratic above, onset smoothed by a Gaussian",
		Hints: crossoverHints("quad", "curvature above the onset"),
		eval:  crossoverEval("quad", lineshape.ZeroToQuadratic),
	},
}

// Lookup returns the model registered under name.
func Lookup(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return m, nil
}

// Names returns the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
