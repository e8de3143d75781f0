package backtest

import (
	"time"

	"dca-backtest/internal/model"
)

// EvolutionRecord is one row of per-contribution output.
// This is the primary artifact for "what happened" in a backtest.
type EvolutionRecord struct {
	Index int

	// Date is the execution date: the target date forward-filled to the
	// first available trading day.
	Date time.Time

	Close       float64
	UnitsBought float64
	Units       float64

	// TotalInvested is cumulative and non-decreasing across the run.
	TotalInvested float64
	// PortfolioValue is Units * Close at Date.
	PortfolioValue float64
}

// Result bundles the full evolution sequence with its reduced metrics.
type Result struct {
	Params     model.BacktestParams
	Evolution  []EvolutionRecord
	Summary    Summary
	FinalUnits float64
}
