package lineshape

import "math"

// LorentzianAt returns amplitude / (1 + ((x-center)/sigma)^2).
// amplitude is the peak height, not the area.
func LorentzianAt(x, amplitude, center, sigma float64) float64 {
	d := (x - center) / sigma
	return amplitude / (1 + d*d)
}

// Lorentzian evaluates LorentzianAt at every point of x. sigma must be > 0.
func Lorentzian(x []float64, amplitude, center, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = LorentzianAt(v, amplitude, center, sigma)
	}
	return out
}

// AntisymmetrizedLorentzianAt returns the Lorentzian at +center minus its
// mirror at -center. The result is odd in x and vanishes for center == 0.
func AntisymmetrizedLorentzianAt(x, amplitude, center, sigma float64) float64 {
	return LorentzianAt(x, amplitude, center, sigma) - LorentzianAt(x, amplitude, -center, sigma)
}

// AntisymmetrizedLorentzian evaluates AntisymmetrizedLorentzianAt at every
// point of x. sigma must be > 0.
func AntisymmetrizedLorentzian(x []float64, amplitude, center, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = AntisymmetrizedLorentzianAt(v, amplitude, center, sigma)
	}
	return out
}

// BoseAt returns Re(1 / (1 - exp(-x/kBT) + i*eps)).
//
// eps removes the pole at x = 0: the factor is 0 there and bounded by
// 1/(2*eps) nearby. Away from zero the relative bias is about
// (eps/(1-exp(-x/kBT)))^2. When exp(-x/kBT) overflows the factor is 0.
func BoseAt(x, kBT, eps float64) float64 {
	a := -math.Expm1(-x / kBT)
	if math.IsInf(a, 0) {
		return 0
	}
	return a / (a*a + eps*eps)
}

// BoseFactor evaluates BoseAt at every point of x. kBT must be > 0 and in
// the units of x.
func BoseFactor(x []float64, kBT, eps float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = BoseAt(v, kBT, eps)
	}
	return out
}

// OnsetAt returns 0 below center and coeff*(x-center)^power from center on.
func OnsetAt(x, center, coeff float64, power int) float64 {
	if x < center {
		return 0
	}
	d := x - center
	switch power {
	case 1:
		return coeff * d
	case 2:
		return coeff * d * d
	default:
		return coeff * math.Pow(d, float64(power))
	}
}
