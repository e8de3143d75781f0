package model

import "errors"

// PortfolioState captures mutable accumulation state across contributions.
type PortfolioState struct {
	// Units is the cumulative fractional quantity held.
	Units float64
	// Invested is the cumulative capital contributed.
	Invested float64
}

// Portfolio bundles the accumulation state for one simulation run.
// Runs never share a Portfolio.
type Portfolio struct {
	State PortfolioState
}

func NewPortfolio() *Portfolio {
	return &Portfolio{}
}

// ContributionResult captures what happened in one contribution event.
type ContributionResult struct {
	UnitsBought float64
	Units       float64 // cumulative units after the purchase
	Invested    float64 // cumulative invested after the purchase
	Value       float64 // Units * price at the execution date
}

// ApplyContribution buys amount/price units at the given price and updates
// the cumulative state. price must be > 0 (guaranteed by PriceSeries);
// amount must be > 0 (guaranteed by BacktestParams.Validate).
func (p *Portfolio) ApplyContribution(amount, price float64) (ContributionResult, error) {
	if price <= 0 {
		return ContributionResult{}, errors.New("price must be > 0")
	}
	if amount <= 0 {
		return ContributionResult{}, errors.New("amount must be > 0")
	}

	bought := amount / price
	p.State.Units += bought
	p.State.Invested += amount

	return ContributionResult{
		UnitsBought: bought,
		Units:       p.State.Units,
		Invested:    p.State.Invested,
		Value:       p.State.Units * price,
	}, nil
}
