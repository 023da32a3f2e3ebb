package strategy

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	// ErrInvalidInput covers an empty roster, a team count below 2, or
	// an unknown strategy name. It is raised before any computation and
	// never alongside partial output.
	ErrInvalidInput = errors.New("invalid input")
)
