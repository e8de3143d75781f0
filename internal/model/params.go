package model

import (
	"strings"
	"time"
)

// DayLayout is the wire format for dates everywhere in the system
// (API, CLI flags, CSV rows, extracted documents).
const DayLayout = "2006-01-02"

// BacktestParams is the canonical "inputs to a run" object: one instrument,
// one fixed monthly contribution, one inclusive date window.
type BacktestParams struct {
	Ticker string
	Start  time.Time
	End    time.Time
	// Amount is the fixed contribution per scheduled date, in the
	// instrument's currency. Must be > 0.
	Amount float64
}

// Validate rejects malformed parameters before any data retrieval or
// simulation happens.
func (p BacktestParams) Validate() error {
	if strings.TrimSpace(p.Ticker) == "" {
		return &InvalidParameterError{Field: "ticker", Reason: "must not be empty"}
	}
	if p.Start.IsZero() {
		return &InvalidParameterError{Field: "start", Reason: "must be set"}
	}
	if p.End.IsZero() {
		return &InvalidParameterError{Field: "end", Reason: "must be set"}
	}
	if Day(p.Start).After(Day(p.End)) {
		return &InvalidParameterError{Field: "start", Reason: "must not be after end"}
	}
	if p.Amount <= 0 {
		return &InvalidParameterError{Field: "amount", Reason: "must be > 0"}
	}
	return nil
}

// Normalized returns a copy with both dates stripped to calendar days.
func (p BacktestParams) Normalized() BacktestParams {
	p.Start = Day(p.Start)
	p.End = Day(p.End)
	return p
}

// ParseDay parses a YYYY-MM-DD string into a calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
