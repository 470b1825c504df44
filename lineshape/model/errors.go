package model

import "errors"

// Errors returned by the model registry and parameter binding.
var (
	ErrUnknownModel = errors.New("model: unknown model")
	ErrUnknownParam = errors.New("model: unknown parameter")
	ErrOutOfBounds  = errors.New("model: parameter out of bounds")
	ErrNoGuess      = errors.New("model: model has no starting-value heuristic")
	ErrBadData      = errors.New("model: x and y must be non-empty and of equal length")
)
