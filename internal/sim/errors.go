package sim

import "errors"

// Domain errors for simulation runs.
var (
	// ErrInvalidState indicates position or velocity went non-finite, usually
	// a degenerate force from a zero-magnitude normalization upstream.
	ErrInvalidState = errors.New("sim: state went non-finite (NaN or Inf)")

	// ErrBadConfig indicates a run configuration that cannot be executed.
	ErrBadConfig = errors.New("sim: invalid run configuration")
)
