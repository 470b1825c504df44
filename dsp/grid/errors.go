package grid

import "errors"

// Errors returned by grid validation and planning.
var (
	ErrGridTooSmall = errors.New("grid: grid too small, need at least 2 points")
	ErrNotMonotonic = errors.New("grid: grid must be strictly monotonic")
	ErrNonFinite    = errors.New("grid: grid contains NaN or Inf")
	ErrInvalidWidth = errors.New("grid: width parameters must be finite and > 0")
	ErrGridTooLarge = errors.New("grid: resolution too fine for requested span")
	ErrLength       = errors.New("grid: signal length does not match internal grid")
)
