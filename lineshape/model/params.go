package model

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Params maps parameter names to values.
type Params map[string]float64

// ParamHint describes one model parameter.
type ParamHint struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
	Doc     string
}

// Contains reports whether v lies inside the hint's bounds.
func (h ParamHint) Contains(v float64) bool {
	return v >= h.Min && v <= h.Max
}

func hint(name string, def float64, doc string) ParamHint {
	return ParamHint{Name: name, Default: def, Min: math.Inf(-1), Max: math.Inf(1), Doc: doc}
}

func nonNegative(name string, def float64, doc string) ParamHint {
	h := hint(name, def, doc)
	h.Min = 0
	return h
}

// Clone returns a copy of p.
func (p Params) Clone() Params {
	return maps.Clone(p)
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// bind fills missing parameters from hints and rejects unknown names, NaN
// and out-of-bounds values.
func bind(hints []ParamHint, p Params) (Params, error) {
	out := make(Params, len(hints))
	for _, h := range hints {
		out[h.Name] = h.Default
	}

	for _, name := range p.Names() {
		v := p[name]
		idx := slices.IndexFunc(hints, func(h ParamHint) bool { return h.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		h := hints[idx]
		if math.IsNaN(v) || !h.Contains(v) {
			return nil, fmt.Errorf("%w: %s = %v not in [%v, %v]", ErrOutOfBounds, name, v, h.Min, h.Max)
		}
		out[name] = v
	}

	return out, nil
}
