package models

// BacktestResponse represents the response from a single backtest run.
type BacktestResponse struct {
	Status    string          `json:"status"`
	Ticker    string          `json:"ticker"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Amount    float64         `json:"amount"`
	Summary   SummaryResponse `json:"summary"`
	Evolution []EvolutionRow  `json:"evolution,omitempty"`
}

// SummaryResponse contains the reduced final metrics.
type SummaryResponse struct {
	FinalValue    float64 `json:"final_value"`
	TotalInvested float64 `json:"total_invested"`
	GrossProfit   float64 `json:"gross_profit"`
	ReturnPct     float64 `json:"return_pct"`
	Contributions int     `json:"contributions"`
}

// EvolutionRow represents one contribution event in the response.
type EvolutionRow struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Close          float64 `json:"close"`
	UnitsBought    float64 `json:"units_bought"`
	Units          float64 `json:"units"`
	TotalInvested  float64 `json:"total_invested"`
	PortfolioValue float64 `json:"portfolio_value"`
}

// BatchResponse aggregates the outcomes of a batch run.
type BatchResponse struct {
	Status  string           `json:"status"`
	Results []BatchRowResult `json:"results"`
	Totals  BatchTotals      `json:"totals"`
}

// BatchRowResult is the per-row outcome. Failed rows carry an error detail
// instead of a summary.
type BatchRowResult struct {
	Ticker  string           `json:"ticker"`
	Summary *SummaryResponse `json:"summary,omitempty"`
	Error   *ErrorDetail     `json:"error,omitempty"`
}

// BatchTotals contains totals folded over the successful rows.
type BatchTotals struct {
	Rows             int     `json:"rows"`
	Succeeded        int     `json:"succeeded"`
	Failed           int     `json:"failed"`
	TotalFinalValue  float64 `json:"total_final_value"`
	TotalInvested    float64 `json:"total_invested"`
	TotalGrossProfit float64 `json:"total_gross_profit"`
}

// TickerInfo represents one catalog entry.
type TickerInfo struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
