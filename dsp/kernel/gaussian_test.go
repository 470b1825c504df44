package kernel

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/dsp/grid"
	"github.com/cwbudde/algo-lineshape/internal/testutil"
)

func TestGaussianSumsToOne(t *testing.T) {
	for _, sigma := range []float64{1e-3, 0.01, 0.1, 0.37, 1, 10} {
		for _, step := range []float64{1e-4, 2.5e-3, 0.01, 0.3, 5} {
			if 10*sigma/step > 1e6 {
				continue
			}
			k, err := GaussianStep(step, sigma)
			if err != nil {
				t.Fatalf("sigma=%v step=%v: %v", sigma, step, err)
			}

			var sum float64
			for _, v := range k {
				if v < 0 {
					t.Fatalf("sigma=%v step=%v: negative tap %v", sigma, step, v)
				}
				sum += v
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("sigma=%v step=%v: sum = %v", sigma, step, sum)
			}
		}
	}
}

func TestGaussianShape(t *testing.T) {
	k, err := GaussianStep(0.005, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	// half = floor(10*0.1/0.005) = 200
	if len(k) != 401 {
		t.Fatalf("len = %d, want 401", len(k))
	}
	if len(k)%2 != 1 {
		t.Fatal("kernel length must be odd")
	}

	mid := len(k) / 2
	for i := 0; i < mid; i++ {
		if k[i] != k[len(k)-1-i] {
			t.Fatalf("kernel not symmetric at %d", i)
		}
		if k[i] > k[i+1] {
			t.Fatalf("kernel not increasing towards center at %d", i)
		}
	}

	// Continuous normalization: peak * step ~ 1/(sqrt(2 pi) sigma) * step.
	want := 0.005 / (math.Sqrt(2*math.Pi) * 0.1)
	if math.Abs(k[mid]-want) > 1e-6 {
		t.Fatalf("peak = %v, want %v", k[mid], want)
	}

	// Second moment matches sigma^2.
	var m2 float64
	for i, v := range k {
		u := float64(i-mid) * 0.005
		m2 += u * u * v
	}
	if math.Abs(m2-0.01) > 1e-6 {
		t.Fatalf("variance = %v, want 0.01", m2)
	}
}

func TestGaussianUsesMeanSpacing(t *testing.T) {
	x := []float64{0, 0.01, 0.03, 0.04}
	got, err := Gaussian(x, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	want, err := GaussianStep(grid.Spacing(x), 0.05)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestGaussianHalfWidthOption(t *testing.T) {
	k, err := GaussianStep(0.01, 0.1, core.WithKernelHalfWidth(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(k) != 101 {
		t.Fatalf("len = %d, want 101", len(k))
	}
}

func TestGaussianDegenerate(t *testing.T) {
	k, err := GaussianStep(1, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, k, []float64{1}, 0)
}

func TestGaussianErrors(t *testing.T) {
	tests := []struct {
		name  string
		ref   []float64
		sigma float64
		want  error
	}{
		{name: "zero sigma", ref: []float64{0, 1}, sigma: 0, want: ErrInvalidSigma},
		{name: "negative sigma", ref: []float64{0, 1}, sigma: -1, want: ErrInvalidSigma},
		{name: "nan sigma", ref: []float64{0, 1}, sigma: math.NaN(), want: ErrInvalidSigma},
		{name: "short grid", ref: []float64{0}, sigma: 1, want: ErrGridTooSmall},
		{name: "flat grid", ref: []float64{1, 1, 1}, sigma: 1, want: ErrInvalidStep},
		{name: "too long", ref: []float64{0, 1e-9}, sigma: 1, want: ErrKernelTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Gaussian(tt.ref, tt.sigma)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUndersampledWarning(t *testing.T) {
	if !Undersampled(0.1, 0.5) || Undersampled(0.01, 0.5) {
		t.Fatal("Undersampled threshold wrong")
	}

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.WarnLevel)

	if _, err := GaussianStep(0.2, 0.5, core.WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "undersampled") {
		t.Fatalf("expected undersampling warning, got %q", buf.String())
	}
}
