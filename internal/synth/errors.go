package synth

import "errors"

var (
	ErrInvalidCount    = errors.New("count must be positive")
	ErrQuotaInfeasible = errors.New("team size below selected skill count")
)
