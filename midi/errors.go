package midi

import "errors"

var (
	ErrInvalidVelocity = errors.New("velocity must be in 0..127")
)
