package backtest

import (
	"fmt"
	"time"

	"dca-backtest/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes a DCA backtest: it walks the monthly contribution schedule
// against the price series, buying amount/close units at each executed
// contribution, and emits one EvolutionRecord per purchase.
//
// Scheduled dates are forward-filled to the next available trading day.
// Once a target walks past the last trading day in the window the run stops
// and the remaining contributions are dropped. That early stop is a lossy,
// deliberate policy inherited from the product behavior: trailing months
// without data simply do not contribute.
//
// Run is pure: identical inputs produce identical results, and no state
// survives between invocations.
func (e *Engine) Run(series *model.PriceSeries, params model.BacktestParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params = params.Normalized()

	if series.Len() == 0 {
		return nil, model.ErrEmptyData
	}

	window := series.Window(params.Start, params.End)
	if window.Len() == 0 {
		return nil, fmt.Errorf("%s %s..%s: %w",
			params.Ticker,
			params.Start.Format(model.DayLayout),
			params.End.Format(model.DayLayout),
			model.ErrNoContributions)
	}

	schedule := MonthlySchedule(params.Start, params.End)
	if len(schedule) == 0 {
		return nil, model.ErrNoContributions
	}

	portfolio := model.NewPortfolio()
	evolution := make([]EvolutionRecord, 0, len(schedule))
	var lastDate time.Time

	for _, target := range schedule {
		// Two targets may forward-fill to the same trading day across a
		// data gap; push the later one to the next trading day so
		// execution dates stay strictly increasing.
		if !lastDate.IsZero() && !target.After(lastDate) {
			target = lastDate.AddDate(0, 0, 1)
		}
		pt, ok := window.NextOn(target)
		if ok && !lastDate.IsZero() && !pt.Date.After(lastDate) {
			pt, ok = window.NextOn(lastDate.AddDate(0, 0, 1))
		}
		if !ok {
			// Past the last trading day in the window: stop here, keep
			// everything already executed.
			break
		}
		if pt.Date.After(params.End) {
			break
		}

		res, err := portfolio.ApplyContribution(params.Amount, pt.Close)
		if err != nil {
			return nil, fmt.Errorf("contribution on %s: %w", pt.Date.Format(model.DayLayout), err)
		}

		lastDate = pt.Date
		evolution = append(evolution, EvolutionRecord{
			Index:          len(evolution),
			Date:           pt.Date,
			Close:          pt.Close,
			UnitsBought:    res.UnitsBought,
			Units:          res.Units,
			TotalInvested:  res.Invested,
			PortfolioValue: res.Value,
		})
	}

	if len(evolution) == 0 {
		return nil, model.ErrNoContributions
	}

	return &Result{
		Params:     params,
		Evolution:  evolution,
		Summary:    Summarize(evolution),
		FinalUnits: portfolio.State.Units,
	}, nil
}
