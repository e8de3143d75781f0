package backtest

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlySchedule(t *testing.T) {
	t.Run("start on the first of a month", func(t *testing.T) {
		got := MonthlySchedule(day(2020, 1, 1), day(2020, 3, 31))
		want := []time.Time{day(2020, 1, 1), day(2020, 2, 1), day(2020, 3, 1)}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("mid-month start clamps the first date", func(t *testing.T) {
		got := MonthlySchedule(day(2020, 1, 15), day(2020, 3, 31))
		want := []time.Time{day(2020, 1, 15), day(2020, 2, 1), day(2020, 3, 1)}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("end before the next month boundary", func(t *testing.T) {
		got := MonthlySchedule(day(2020, 1, 1), day(2020, 2, 3))
		want := []time.Time{day(2020, 1, 1), day(2020, 2, 1)}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("single day window", func(t *testing.T) {
		got := MonthlySchedule(day(2020, 1, 15), day(2020, 1, 15))
		want := []time.Time{day(2020, 1, 15)}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("start after end", func(t *testing.T) {
		require.Empty(t, MonthlySchedule(day(2020, 2, 1), day(2020, 1, 1)))
	})

	t.Run("year boundary", func(t *testing.T) {
		got := MonthlySchedule(day(2019, 12, 10), day(2020, 2, 1))
		want := []time.Time{day(2019, 12, 10), day(2020, 1, 1), day(2020, 2, 1)}
		require.Empty(t, cmp.Diff(want, got))
	})

	t.Run("twelve contributions in a calendar year", func(t *testing.T) {
		got := MonthlySchedule(day(2023, 1, 1), day(2023, 12, 31))
		require.Len(t, got, 12)
		for i, d := range got {
			require.Equal(t, time.Month(i+1), d.Month())
			require.Equal(t, 1, d.Day())
		}
	})
}
