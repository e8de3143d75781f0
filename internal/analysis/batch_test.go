package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dca-backtest/internal/ingest"
	"dca-backtest/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixtureProvider serves canned series per symbol; unknown symbols fail
// like a provider outage would.
type fixtureProvider struct {
	series map[string]*model.PriceSeries
}

func (p *fixtureProvider) DailyCloses(symbol string, start, end time.Time) (*model.PriceSeries, error) {
	s, ok := p.series[symbol]
	if !ok {
		return nil, fmt.Errorf("fetch %s: no data", symbol)
	}
	return s.Window(start, end), nil
}

func flatSeries(t *testing.T, start, end time.Time, closes func(time.Time) float64) *model.PriceSeries {
	t.Helper()
	var raw []model.PricePoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		raw = append(raw, model.PricePoint{Date: d, Close: closes(d)})
	}
	s, err := model.NewPriceSeries(raw)
	require.NoError(t, err)
	return s
}

func TestRunBatch(t *testing.T) {
	start, end := day(2020, 1, 1), day(2020, 3, 31)

	// UP doubles over the window, FLAT stays constant.
	provider := &fixtureProvider{series: map[string]*model.PriceSeries{
		"UP": flatSeries(t, start, end, func(d time.Time) float64 {
			if d.Month() >= 3 {
				return 20
			}
			return 10
		}),
		"FLAT": flatSeries(t, start, end, func(time.Time) float64 { return 10 }),
	}}

	rows := []ingest.BatchRow{
		{Ticker: "FLAT", MonthlyAmount: "100"},
		{Ticker: "MISSING", MonthlyAmount: "100"},
		{Ticker: "UP", MonthlyAmount: "100"},
		{Ticker: "BADAMT", MonthlyAmount: "oops"},
	}

	results, summary := RunBatch(provider, rows, "2020-01-01", "2020-03-31", zap.NewNop().Sugar())
	require.Len(t, results, 4)

	t.Run("row failures are isolated", func(t *testing.T) {
		require.NoError(t, results[0].Err)
		require.Error(t, results[1].Err)
		require.NoError(t, results[2].Err)
		require.Error(t, results[3].Err)
	})

	t.Run("summary counts", func(t *testing.T) {
		require.Equal(t, 4, summary.Rows)
		require.Equal(t, 2, summary.Succeeded)
		require.Equal(t, 2, summary.Failed)
	})

	t.Run("totals fold successes only", func(t *testing.T) {
		wantInvested := results[0].Result.Summary.TotalInvested + results[2].Result.Summary.TotalInvested
		wantFinal := results[0].Result.Summary.FinalValue + results[2].Result.Summary.FinalValue
		require.InDelta(t, wantInvested, summary.TotalInvested, 1e-9)
		require.InDelta(t, wantFinal, summary.TotalFinalValue, 1e-9)
		require.InDelta(t, wantFinal-wantInvested, summary.TotalGrossProfit, 1e-9)
	})

	t.Run("ranking drops failures and sorts by return", func(t *testing.T) {
		ranked := RankByReturn(results)
		require.Len(t, ranked, 2)
		require.Equal(t, "UP", ranked[0].Params.Ticker)
		require.Equal(t, "FLAT", ranked[1].Params.Ticker)
		require.Greater(t, ranked[0].Result.Summary.ReturnPct, ranked[1].Result.Summary.ReturnPct)
	})
}

func TestRunBatch_EmptyRows(t *testing.T) {
	provider := &fixtureProvider{}
	results, summary := RunBatch(provider, nil, "2020-01-01", "2020-03-31", zap.NewNop().Sugar())
	require.Empty(t, results)
	require.Equal(t, BatchSummary{}, summary)
}
