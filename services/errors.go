package services

import (
	"errors"
	"math"
)

// Engine error taxonomy. Callers classify with errors.Is; computation errors
// are surfaced synchronously and never swallowed or retried here.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidActivityRecord = errors.New("invalid activity record")
	ErrInconsistentActivity  = errors.New("activity must support exactly one of rep or hour logging")
	ErrLedgerNotFound        = errors.New("daily ledger not found")
	ErrNotFound              = errors.New("record not found")
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round1 rounds to one decimal place with halves away from zero (math.Round).
// Used for per-100g profiles and challenge percentages so both surfaces
// round the same way.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
