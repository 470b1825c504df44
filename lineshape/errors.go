package lineshape

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lineshape/dsp/core"
)

// ErrInvalidParameter is returned when a width or kBT is not finite and
// positive, or any other parameter is not finite.
var ErrInvalidParameter = errors.New("lineshape: invalid parameter")

func requirePositive(name string, v float64) error {
	if !core.IsPositive(v) {
		return fmt.Errorf("%w: %s must be finite and > 0, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}

func requireFinite(name string, v float64) error {
	if !core.IsFinite(v) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}
