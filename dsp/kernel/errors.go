package kernel

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/core"
)

// Errors returned by the kernel builders.
var (
	ErrInvalidSigma   = errors.New("kernel: sigma must be finite and > 0")
	ErrInvalidStep    = errors.New("kernel: step must be finite and > 0")
	ErrGridTooSmall   = errors.New("kernel: reference grid needs at least 2 points")
	ErrKernelTooLarge = errors.New("kernel: kernel too long for sample spacing")
)

func validateSigma(sigma float64) error {
	if !core.IsPositive(sigma) {
		return fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}
	return nil
}

func validateStep(step float64) error {
	if !core.IsPositive(step) {
		return fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	return nil
}
