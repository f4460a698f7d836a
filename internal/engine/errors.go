package engine

import "errors"

// Structural parameter violations. Range violations beyond these (a
// negative initial level, extreme drifts) are deliberately not errors:
// the run completes and returns the degenerate path it implies.
var (
	// ErrStepSize indicates a non-positive step size.
	ErrStepSize = errors.New("engine: step size must be positive")

	// ErrStepCount indicates fewer than one step.
	ErrStepCount = errors.New("engine: step count must be at least 1")

	// ErrVolatility indicates a negative volatility.
	ErrVolatility = errors.New("engine: volatility must be non-negative")

	// ErrUnknownAsset indicates an unrecognized asset class.
	ErrUnknownAsset = errors.New("engine: unknown asset class")
)
