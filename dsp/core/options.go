package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Engine defaults. The oversampling and span factors are applied to the
// narrowest and widest width parameter respectively.
const (
	DefaultOversampleFactor  = 20.0
	DefaultSpanFactor        = 20.0
	DefaultKernelHalfWidth   = 10.0
	DefaultMaxInternalPoints = 1 << 21

	// DefaultBoseEpsilon is the imaginary offset added to the Bose denominator.
	// It bounds the factor near x=0 at 1/(2*eps) and biases the real part by
	// O(eps^2) elsewhere.
	DefaultBoseEpsilon = 1e-5
)

// Resampling selects how dense internal signals are mapped back onto the
// caller grid.
type Resampling int

const (
	// ResampleLinear interpolates linearly and holds the edge values outside
	// the internal span.
	ResampleLinear Resampling = iota

	// ResampleHermite uses 4-point cubic Hermite interpolation on the uniform
	// internal grid, with the same edge hold.
	ResampleHermite
)

// String returns the configuration name of the resampling mode.
func (r Resampling) String() string {
	switch r {
	case ResampleLinear:
		return "linear"
	case ResampleHermite:
		return "hermite"
	default:
		return "unknown"
	}
}

// ParseResampling converts a configuration name back to a Resampling.
func ParseResampling(name string) (Resampling, error) {
	switch strings.ToLower(name) {
	case "", "linear":
		return ResampleLinear, nil
	case "hermite", "cubic":
		return ResampleHermite, nil
	default:
		return ResampleLinear, fmt.Errorf("core: unknown resampling %q", name)
	}
}

// EngineConfig holds the numeric tunables shared by the grid planner, the
// kernel builder and the composite lineshapes.
type EngineConfig struct {
	OversampleFactor  float64
	SpanFactor        float64
	KernelHalfWidth   float64
	MaxInternalPoints int
	BoseEpsilon       float64
	Resampling        Resampling

	// Logger receives debug output about internal grid plans. Nil disables it.
	Logger *log.Logger
}

// EngineOption mutates an EngineConfig.
type EngineOption func(*EngineConfig)

// DefaultEngineConfig returns the canonical engine settings.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		OversampleFactor:  DefaultOversampleFactor,
		SpanFactor:        DefaultSpanFactor,
		KernelHalfWidth:   DefaultKernelHalfWidth,
		MaxInternalPoints: DefaultMaxInternalPoints,
		BoseEpsilon:       DefaultBoseEpsilon,
		Resampling:        ResampleLinear,
	}
}

// WithOversampleFactor sets the ratio between the narrowest width and the
// internal grid spacing.
func WithOversampleFactor(factor float64) EngineOption {
	return func(cfg *EngineConfig) {
		if factor >= 1 {
			cfg.OversampleFactor = factor
		}
	}
}

// WithSpanFactor sets how many of the widest width the internal grid extends
// past each end of the caller grid.
func WithSpanFactor(factor float64) EngineOption {
	return func(cfg *EngineConfig) {
		if factor > 0 {
			cfg.SpanFactor = factor
		}
	}
}

// WithKernelHalfWidth sets the Gaussian kernel support in sigmas.
func WithKernelHalfWidth(sigmas float64) EngineOption {
	return func(cfg *EngineConfig) {
		if sigmas > 0 {
			cfg.KernelHalfWidth = sigmas
		}
	}
}

// WithMaxInternalPoints caps the internal grid and kernel length.
func WithMaxInternalPoints(n int) EngineOption {
	return func(cfg *EngineConfig) {
		if n >= 2 {
			cfg.MaxInternalPoints = n
		}
	}
}

// WithBoseEpsilon sets the Bose factor regularizer.
func WithBoseEpsilon(eps float64) EngineOption {
	return func(cfg *EngineConfig) {
		if eps > 0 {
			cfg.BoseEpsilon = eps
		}
	}
}

// WithResampling selects the resampling mode.
func WithResampling(r Resampling) EngineOption {
	return func(cfg *EngineConfig) {
		if r == ResampleLinear || r == ResampleHermite {
			cfg.Resampling = r
		}
	}
}

// WithLogger attaches a logger for plan diagnostics.
func WithLogger(l *log.Logger) EngineOption {
	return func(cfg *EngineConfig) {
		cfg.Logger = l
	}
}

// ApplyEngineOptions applies zero or more options to the default config.
func ApplyEngineOptions(opts ...EngineOption) EngineConfig {
	cfg := DefaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Debug logs msg on cfg.Logger when one is attached.
func (cfg EngineConfig) Debug(msg string, keyvals ...any) {
	if cfg.Logger != nil {
		cfg.Logger.Debug(msg, keyvals...)
	}
}

// Warn logs msg on cfg.Logger when one is attached.
func (cfg EngineConfig) Warn(msg string, keyvals ...any) {
	if cfg.Logger != nil {
		cfg.Logger.Warn(msg, keyvals...)
	}
}
