package csv

import "errors"

// Sentinel error kinds for this package.
var (
	ErrBadRecord = errors.New("bad roster record")
)
