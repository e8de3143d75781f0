package model

import (
	"sort"
	"time"
)

// PricePoint is one daily closing price for an instrument.
// Dates are calendar days (UTC midnight); Close is in the instrument's
// native currency.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered collection of daily closes:
// - strictly ascending by date
// - no duplicate dates
// - Close > 0
//
// Build it with NewPriceSeries and treat it as read-only afterwards.
type PriceSeries struct {
	points []PricePoint
}

// Day normalizes a timestamp to its calendar date at UTC midnight.
// All series and schedule arithmetic happens on Day-normalized values.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewPriceSeries cleans raw provider output into a usable series:
// dates normalized to calendar days, rows with non-positive closes dropped,
// duplicate dates collapsed (last one wins), result sorted ascending.
// Returns ErrEmptyData when nothing usable survives.
func NewPriceSeries(raw []PricePoint) (*PriceSeries, error) {
	byDate := make(map[time.Time]float64, len(raw))
	for _, p := range raw {
		if p.Close <= 0 {
			continue
		}
		byDate[Day(p.Date)] = p.Close
	}
	if len(byDate) == 0 {
		return nil, ErrEmptyData
	}

	points := make([]PricePoint, 0, len(byDate))
	for d, c := range byDate {
		points = append(points, PricePoint{Date: d, Close: c})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return &PriceSeries{points: points}, nil
}

func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// Points returns the underlying ordered points. Callers must not mutate
// the returned slice.
func (s *PriceSeries) Points() []PricePoint {
	if s == nil {
		return nil
	}
	return s.points
}

func (s *PriceSeries) First() PricePoint { return s.points[0] }
func (s *PriceSeries) Last() PricePoint  { return s.points[len(s.points)-1] }

// At returns the close on an exact trading date, if present.
func (s *PriceSeries) At(date time.Time) (float64, bool) {
	d := Day(date)
	i := s.searchFrom(d)
	if i < len(s.points) && s.points[i].Date.Equal(d) {
		return s.points[i].Close, true
	}
	return 0, false
}

// NextOn finds the earliest trading day on or after target (forward-fill).
// ok is false when target is past the last available trading day.
func (s *PriceSeries) NextOn(target time.Time) (PricePoint, bool) {
	i := s.searchFrom(Day(target))
	if i >= len(s.points) {
		return PricePoint{}, false
	}
	return s.points[i], true
}

// Window restricts the series to the inclusive range [start, end].
// The result shares backing storage with the receiver.
func (s *PriceSeries) Window(start, end time.Time) *PriceSeries {
	if s == nil {
		return nil
	}
	lo := s.searchFrom(Day(start))
	hi := s.searchFrom(Day(end).AddDate(0, 0, 1))
	return &PriceSeries{points: s.points[lo:hi]}
}

// searchFrom returns the index of the leftmost point with date >= d.
// The series is sorted ascending, so this is a binary search.
func (s *PriceSeries) searchFrom(d time.Time) int {
	return sort.Search(len(s.points), func(i int) bool {
		return !s.points[i].Date.Before(d)
	})
}
