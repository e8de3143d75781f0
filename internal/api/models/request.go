package models

// BacktestRequest represents the request body for running a single backtest.
type BacktestRequest struct {
	Ticker    string          `json:"ticker" binding:"required"`
	StartDate string          `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string          `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Amount    float64         `json:"amount" binding:"required"`     // fixed monthly contribution
	Options   BacktestOptions `json:"options,omitempty"`
}

// BacktestOptions contains optional backtest parameters.
type BacktestOptions struct {
	IncludeEvolution bool `json:"include_evolution,omitempty"` // default: false
}

// BatchRequest represents a request to run several independent backtests.
type BatchRequest struct {
	Rows []BatchRow `json:"rows" binding:"required"`
}

// BatchRow is one row of a batch request. Empty dates fall back to the
// server's configured defaults.
type BatchRow struct {
	Ticker    string `json:"ticker" binding:"required"`
	Amount    string `json:"amount" binding:"required"` // accepts comma decimals
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
