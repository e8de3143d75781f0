package backtest

// Summary reduces an evolution sequence to its final metrics.
type Summary struct {
	FinalValue    float64 `json:"final_value"`
	TotalInvested float64 `json:"total_invested"`
	GrossProfit   float64 `json:"gross_profit"`
	// ReturnPct is (FinalValue/TotalInvested - 1) * 100, or 0 when nothing
	// was invested.
	ReturnPct float64 `json:"return_pct"`
}

// Summarize derives the final metrics from the last record. Earlier records
// are not consulted. Callers guarantee a non-empty sequence (Engine.Run
// never returns an empty one); an empty input yields a zero Summary rather
// than a panic.
func Summarize(evolution []EvolutionRecord) Summary {
	if len(evolution) == 0 {
		return Summary{}
	}

	last := evolution[len(evolution)-1]
	s := Summary{
		FinalValue:    last.PortfolioValue,
		TotalInvested: last.TotalInvested,
		GrossProfit:   last.PortfolioValue - last.TotalInvested,
	}
	if s.TotalInvested > 0 {
		s.ReturnPct = (s.FinalValue/s.TotalInvested - 1) * 100
	}
	return s
}
