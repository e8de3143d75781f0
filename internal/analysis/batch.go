// Package analysis runs batches of backtests and aggregates their results.
package analysis

import (
	"time"

	"go.uber.org/zap"

	"dca-backtest/internal/backtest"
	"dca-backtest/internal/ingest"
	"dca-backtest/internal/model"
)

// SeriesProvider supplies a cleaned price series for one symbol and range.
// data.YahooClient satisfies this; tests plug in fixtures.
type SeriesProvider interface {
	DailyCloses(symbol string, start, end time.Time) (*model.PriceSeries, error)
}

// RowResult is the outcome of one batch row. Exactly one of Result and Err
// is set: row failures are isolated and never abort the batch.
type RowResult struct {
	Row    ingest.BatchRow
	Params model.BacktestParams
	Result *backtest.Result
	Err    error
}

// BatchSummary folds successful rows into running totals. Totals are only
// updated after a row's run completes; a failed row contributes nothing.
type BatchSummary struct {
	Rows      int
	Succeeded int
	Failed    int

	TotalFinalValue  float64
	TotalInvested    float64
	TotalGrossProfit float64
}

// RunBatch processes rows strictly sequentially, each as an independent,
// isolated simulation. defaultStart/defaultEnd (YYYY-MM-DD) fill rows that
// omit their dates.
func RunBatch(provider SeriesProvider, rows []ingest.BatchRow, defaultStart, defaultEnd string, log *zap.SugaredLogger) ([]RowResult, BatchSummary) {
	if log == nil {
		log = zap.S()
	}

	engine := backtest.New()
	results := make([]RowResult, 0, len(rows))
	summary := BatchSummary{Rows: len(rows)}

	for _, row := range rows {
		res := runRow(engine, provider, row, defaultStart, defaultEnd)
		if res.Err != nil {
			summary.Failed++
			log.Warnw("batch row failed", "ticker", row.Ticker, "err", res.Err)
		} else {
			summary.Succeeded++
			summary.TotalFinalValue += res.Result.Summary.FinalValue
			summary.TotalInvested += res.Result.Summary.TotalInvested
			summary.TotalGrossProfit += res.Result.Summary.GrossProfit
			log.Infow("batch row ok",
				"ticker", res.Params.Ticker,
				"contributions", len(res.Result.Evolution),
				"return_pct", res.Result.Summary.ReturnPct)
		}
		results = append(results, res)
	}

	return results, summary
}

func runRow(engine *backtest.Engine, provider SeriesProvider, row ingest.BatchRow, defaultStart, defaultEnd string) RowResult {
	out := RowResult{Row: row}

	params, err := row.ToParams(defaultStart, defaultEnd)
	if err != nil {
		out.Err = err
		return out
	}
	out.Params = params

	series, err := provider.DailyCloses(params.Ticker, params.Start, params.End)
	if err != nil {
		out.Err = err
		return out
	}

	result, err := engine.Run(series, params)
	if err != nil {
		out.Err = err
		return out
	}

	out.Result = result
	return out
}

// RankByReturn sorts successful rows descending by return percentage.
// Failed rows are dropped from the ranking.
func RankByReturn(results []RowResult) []RowResult {
	ranked := make([]RowResult, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			ranked = append(ranked, r)
		}
	}
	sortByReturnDesc(ranked)
	return ranked
}
