package algebra

import "errors"

// Sentinel errors returned by the package's parsers. Callers can match
// against these with errors.Is.
var (
	ErrBadFace   = errors.New("algebra: bad face letter")
	ErrBadAmount = errors.New("algebra: bad turn amount")
	ErrEmptyMove = errors.New("algebra: empty move token")
)
