package metrics

import "errors"

// Sentinel error kinds for this package.
var (
	ErrRegister = errors.New("metrics registration failed")
)
