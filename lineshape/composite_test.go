package lineshape

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/grid"
	"github.com/cwbudde/algo-lineshape/internal/testutil"
)

var magnonScenario = MagnonParams{Amplitude: 1, Center: 0.15, Sigma: 0.05, Res: 0.1, KBT: 0.0862}

func TestMagnonScenario(t *testing.T) {
	x := []float64{-1, 0, 1}

	y, err := Magnon(x, magnonScenario)
	if err != nil {
		t.Fatal(err)
	}
	if len(y) != 3 {
		t.Fatalf("len = %d, want 3", len(y))
	}
	testutil.RequireFinite(t, y)

	bare := AntisymmetrizedLorentzianAt(magnonScenario.Center, 1, magnonScenario.Center, magnonScenario.Sigma)
	if peak := testutil.MaxAbs(y); peak >= bare {
		t.Fatalf("peak %v not below unbroadened peak %v", peak, bare)
	}

	// Thermal weighting suppresses the energy-gain side.
	if math.Abs(y[0]) >= math.Abs(y[2]) {
		t.Fatalf("|f(-1)| = %v not below |f(1)| = %v", math.Abs(y[0]), math.Abs(y[2]))
	}
}

func TestMagnonBroadeningLowersPeak(t *testing.T) {
	x := testutil.Linspace(-0.6, 0.6, 241)

	y, err := Magnon(x, magnonScenario)
	if err != nil {
		t.Fatal(err)
	}

	ideal := AntisymmetrizedLorentzian(x, 1, magnonScenario.Center, magnonScenario.Sigma)
	bose := BoseFactor(x, magnonScenario.KBT, core.DefaultBoseEpsilon)
	for i := range ideal {
		ideal[i] *= bose[i]
	}

	peak, idealPeak := testutil.MaxAbs(y), testutil.MaxAbs(ideal)
	if peak >= 0.75*idealPeak {
		t.Fatalf("broadened peak %v, want well below %v", peak, idealPeak)
	}

	// Peak stays on the energy-loss side near the excitation.
	imax := 0
	for i, v := range y {
		if v > y[imax] {
			imax = i
		}
	}
	if x[imax] < 0.05 || x[imax] > 0.3 {
		t.Fatalf("peak at %v, want near 0.15", x[imax])
	}
}

func TestMagnonConservesWeight(t *testing.T) {
	// Far from zero energy the Bose factor is ~1 and the antisymmetric
	// partner is negligible, so broadening must keep the Lorentzian area.
	p := MagnonParams{Amplitude: 1, Center: 5, Sigma: 0.05, Res: 0.1, KBT: 0.01}
	x := testutil.Linspace(3, 7, 4001)

	y, err := Magnon(x, p)
	if err != nil {
		t.Fatal(err)
	}
	ideal := AntisymmetrizedLorentzian(x, 1, p.Center, p.Sigma)

	if a, b := trapz(x, y), trapz(x, ideal); math.Abs(a-b) > 1e-3*b {
		t.Fatalf("area %v, want %v", a, b)
	}
}

func TestMagnonZeroCenter(t *testing.T) {
	p := magnonScenario
	p.Center = 0
	y, err := Magnon([]float64{-1, -0.5, 0, 0.5, 1}, p)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, make([]float64, 5), 0)
}

func TestMagnonHermiteAgrees(t *testing.T) {
	x := testutil.Linspace(-0.5, 0.5, 51)

	lin, err := Magnon(x, magnonScenario)
	if err != nil {
		t.Fatal(err)
	}
	herm, err := Magnon(x, magnonScenario, core.WithResampling(core.ResampleHermite))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, herm, lin, 1e-4)
}

func TestMagnonDecreasingGrid(t *testing.T) {
	up := testutil.Linspace(-0.5, 0.5, 21)
	down := make([]float64, len(up))
	for i := range up {
		down[i] = up[len(up)-1-i]
	}

	yUp, err := Magnon(up, magnonScenario)
	if err != nil {
		t.Fatal(err)
	}
	yDown, err := Magnon(down, magnonScenario)
	if err != nil {
		t.Fatal(err)
	}
	for i := range yUp {
		if math.Abs(yUp[i]-yDown[len(yDown)-1-i]) > 1e-12 {
			t.Fatalf("index %d: %v vs %v", i, yUp[i], yDown[len(yDown)-1-i])
		}
	}
}

func TestMagnonErrors(t *testing.T) {
	x := []float64{-1, 0, 1}

	for _, mutate := range []func(*MagnonParams){
		func(p *MagnonParams) { p.Sigma = 0 },
		func(p *MagnonParams) { p.Res = -0.1 },
		func(p *MagnonParams) { p.KBT = 0 },
		func(p *MagnonParams) { p.Amplitude = math.NaN() },
		func(p *MagnonParams) { p.Center = math.Inf(1) },
	} {
		p := magnonScenario
		mutate(&p)
		if _, err := Magnon(x, p); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected ErrInvalidParameter, got %v", p, err)
		}
	}

	if _, err := Magnon([]float64{0}, magnonScenario); !errors.Is(err, grid.ErrGridTooSmall) {
		t.Fatalf("expected ErrGridTooSmall, got %v", err)
	}
	if _, err := Magnon([]float64{0, 1, 0.5}, magnonScenario); !errors.Is(err, grid.ErrNotMonotonic) {
		t.Fatalf("expected ErrNotMonotonic, got %v", err)
	}

	tiny := magnonScenario
	tiny.Res = 1e-9
	if _, err := Magnon([]float64{-1000, 1000}, tiny); !errors.Is(err, grid.ErrGridTooLarge) {
		t.Fatalf("expected ErrGridTooLarge, got %v", err)
	}
}

func TestZeroToLinear(t *testing.T) {
	p := CrossoverParams{Center: 0, Sigma: 0.1, Coeff: 2}
	y, err := ZeroToLinear([]float64{-1, 0, 1}, p)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(y[0]) > 1e-12 {
		t.Fatalf("f(-1) = %v, want 0", y[0])
	}
	// E[max(0, u)] for u ~ N(0, sigma^2) is sigma/sqrt(2 pi).
	if want := 2 * 0.1 / math.Sqrt(2*math.Pi); math.Abs(y[1]-want) > 1e-4 {
		t.Fatalf("f(0) = %v, want %v", y[1], want)
	}
	if math.Abs(y[2]-2) > 1e-9 {
		t.Fatalf("f(1) = %v, want 2", y[2])
	}
}

func TestZeroToLinearSmallSigmaConverges(t *testing.T) {
	const sigma = 1e-3
	x := testutil.Linspace(-1, 1, 21)
	p := CrossoverParams{Center: 0.05, Sigma: sigma, Coeff: 1.5}

	y, err := ZeroToLinear(x, p)
	if err != nil {
		t.Fatal(err)
	}

	bare := testutil.Eval(x, func(v float64) float64 { return OnsetAt(v, p.Center, p.Coeff, 1) })
	testutil.RequireSliceNearlyEqual(t, y, bare, p.Coeff*sigma)
}

func TestZeroToLinearIsContinuous(t *testing.T) {
	x := testutil.Linspace(-0.5, 0.5, 401)
	y, err := ZeroToLinear(x, CrossoverParams{Center: 0.1, Sigma: 0.05, Coeff: 1})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNonDecreasing(t, y, 1e-12)

	// The slope moves smoothly from 0 to the gradient.
	h := x[1] - x[0]
	for i := 1; i < len(y)-1; i++ {
		slope := (y[i+1] - y[i-1]) / (2 * h)
		if slope < -1e-6 || slope > 1+1e-3 {
			t.Fatalf("slope at %v = %v outside [0, 1]", x[i], slope)
		}
	}
}

func TestZeroToQuadraticScenario(t *testing.T) {
	p := CrossoverParams{Center: 0, Sigma: 0.5, Coeff: 1}

	y, err := ZeroToQuadratic([]float64{-5, 0, 5}, p)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y[0]) > 1e-9 {
		t.Fatalf("f(-5) = %v, want ~0", y[0])
	}
	// Smoothing adds quad*sigma^2 far past the onset.
	if math.Abs(y[2]-25.25) > 1e-3 {
		t.Fatalf("f(5) = %v, want ~25.25", y[2])
	}
	if math.Abs(y[1]-0.125) > 1e-3 {
		t.Fatalf("f(0) = %v, want sigma^2/2 = 0.125", y[1])
	}

	dense, err := ZeroToQuadratic(testutil.Linspace(-5, 5, 201), p)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireNonDecreasing(t, dense, 1e-9)
}

func TestCrossoverErrors(t *testing.T) {
	x := []float64{-1, 0, 1}
	for _, p := range []CrossoverParams{
		{Center: 0, Sigma: 0, Coeff: 1},
		{Center: 0, Sigma: -1, Coeff: 1},
		{Center: math.NaN(), Sigma: 0.1, Coeff: 1},
		{Center: 0, Sigma: 0.1, Coeff: math.Inf(-1)},
	} {
		if _, err := ZeroToLinear(x, p); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected ErrInvalidParameter, got %v", p, err)
		}
		if _, err := ZeroToQuadratic(x, p); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected ErrInvalidParameter, got %v", p, err)
		}
	}
}

func TestBroadenCustomShape(t *testing.T) {
	x := testutil.Linspace(-1, 1, 9)

	// A constant stays constant under a unit-mass kernel away from the edges.
	y, err := Broaden(x, nil, 0.05, func(pts []float64) []float64 {
		return testutil.Eval(pts, func(float64) float64 { return 3 })
	})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, y, []float64{3, 3, 3, 3, 3, 3, 3, 3, 3}, 1e-9)

	_, err = Broaden(x, nil, 0.05, func(pts []float64) []float64 { return pts[:1] })
	if err == nil {
		t.Fatal("expected error for short shape output")
	}
	if _, err := Broaden(x, nil, 0, func(pts []float64) []float64 { return pts }); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestCompositesConcurrent(t *testing.T) {
	x := testutil.Linspace(-0.5, 0.5, 31)
	want, err := Magnon(x, magnonScenario)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Magnon(x, magnonScenario)
			if err != nil {
				errs <- err
				return
			}
			for i := range got {
				if got[i] != want[i] {
					errs <- errors.New("concurrent result differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func trapz(x, y []float64) float64 {
	var s float64
	for i := 1; i < len(x); i++ {
		s += 0.5 * (y[i] + y[i-1]) * (x[i] - x[i-1])
	}
	return s
}
