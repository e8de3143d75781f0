package model

import (
	"errors"
	"fmt"
)

// ErrEmptyData signals that no price data exists for the requested
// symbol/range. The whole run fails; there is no partial result.
var ErrEmptyData = errors.New("no price data for symbol and range")

// ErrNoContributions signals that the simulation window yields no executable
// contribution: the schedule is empty, or no tradable day exists in range.
// Distinct from ErrEmptyData so callers can report it per-row in batches.
var ErrNoContributions = errors.New("no contributions possible in range")

// InvalidParameterError rejects malformed inputs before any simulation work
// starts (fail fast, no partial simulation).
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
