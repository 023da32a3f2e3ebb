package roster

import "errors"

// Sentinel error kinds for this package.
var (
	ErrInvalidPlayer = errors.New("invalid player record")
)
