// Package config loads YAML run files for the lineshape command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-lineshape/dsp/core"
	"github.com/cwbudde/algo-lineshape/lineshape/model"
)

const (
	DefaultModel = "magnon"
	DefaultFrom  = -1.0
	DefaultTo    = 1.0
	DefaultNum   = 201
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is a single evaluation run.
type Config struct {
	Model  string             `yaml:"model"`
	Grid   GridConfig         `yaml:"grid"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Engine EngineConfig       `yaml:"engine"`
}

// GridConfig describes an evenly spaced evaluation grid.
type GridConfig struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Num  int     `yaml:"num"`
}

// EngineConfig mirrors core.EngineConfig. Zero values keep the engine
// defaults.
type EngineConfig struct {
	Oversample      float64 `yaml:"oversample,omitempty"`
	Span            float64 `yaml:"span,omitempty"`
	KernelHalfWidth float64 `yaml:"kernel_half_width,omitempty"`
	MaxPoints       int     `yaml:"max_points,omitempty"`
	BoseEpsilon     float64 `yaml:"bose_epsilon,omitempty"`
	Resampling      string  `yaml:"resampling,omitempty"`
}

// Default returns a run over [-1, 1] for the magnon model with its default
// parameters.
func Default() *Config {
	return &Config{
		Model: DefaultModel,
		Grid: GridConfig{
			From: DefaultFrom,
			To:   DefaultTo,
			Num:  DefaultNum,
		},
		Params: map[string]float64{},
	}
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]float64{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the model name, the grid and the engine block. Parameter
// values are checked when they are bound to the model.
func (c *Config) Validate() error {
	if _, err := model.Lookup(c.Model); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Grid.Num < 2 {
		return fmt.Errorf("%w: grid.num must be >= 2, got %d", ErrInvalid, c.Grid.Num)
	}
	if !core.IsFinite(c.Grid.From) || !core.IsFinite(c.Grid.To) || c.Grid.From == c.Grid.To {
		return fmt.Errorf("%w: grid [%v, %v] is empty or not finite", ErrInvalid, c.Grid.From, c.Grid.To)
	}
	e := c.Engine
	if e.Oversample < 0 || e.Span < 0 || e.KernelHalfWidth < 0 || e.MaxPoints < 0 || e.BoseEpsilon < 0 {
		return fmt.Errorf("%w: engine values must not be negative", ErrInvalid)
	}
	if _, err := core.ParseResampling(e.Resampling); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineOptions converts the engine block to options. Unset fields are
// skipped.
func (c *Config) EngineOptions() []core.EngineOption {
	e := c.Engine
	var opts []core.EngineOption
	if e.Oversample > 0 {
		opts = append(opts, core.WithOversampleFactor(e.Oversample))
	}
	if e.Span > 0 {
		opts = append(opts, core.WithSpanFactor(e.Span))
	}
	if e.KernelHalfWidth > 0 {
		opts = append(opts, core.WithKernelHalfWidth(e.KernelHalfWidth))
	}
	if e.MaxPoints > 0 {
		opts = append(opts, core.WithMaxInternalPoints(e.MaxPoints))
	}
	if e.BoseEpsilon > 0 {
		opts = append(opts, core.WithBoseEpsilon(e.BoseEpsilon))
	}
	if r, err := core.ParseResampling(e.Resampling); err == nil && e.Resampling != "" {
		opts = append(opts, core.WithResampling(r))
	}
	return opts
}
