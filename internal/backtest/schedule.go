package backtest

import (
	"time"

	"dca-backtest/internal/model"
)

// MonthlySchedule derives the contribution target dates for the inclusive
// window [start, end]: one date per calendar month, on the first day of the
// month, except the first element which is clamped to start when the
// month-aligned date would precede it. An empty result means no
// contribution is possible (start after end).
//
// The dates are targets, not execution dates: a target falling on a
// non-trading day executes on the next trading day (see Engine.Run).
func MonthlySchedule(start, end time.Time) []time.Time {
	start = model.Day(start)
	end = model.Day(end)
	if start.After(end) {
		return nil
	}

	monthStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := monthStart; !d.After(end); d = d.AddDate(0, 1, 0) {
		dates = append(dates, d)
	}

	if len(dates) > 0 && dates[0].Before(start) {
		// The first contribution happens at simulation start, not at the
		// month boundary that precedes it.
		dates[0] = start
	}
	if len(dates) == 0 {
		// start <= end always covers the start month, so this only
		// guards against a future change to the generation above.
		return []time.Time{start}
	}

	// Clamping never pushes a date past end, but keep the window invariant
	// enforced in one place.
	out := dates[:0]
	for _, d := range dates {
		if !d.After(end) {
			out = append(out, d)
		}
	}
	return out
}
