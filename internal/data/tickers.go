package data

import (
	"encoding/json"
	"fmt"
	"os"
)

// Ticker represents one known instrument offered to users.
type Ticker struct {
	Symbol   string `json:"symbol"`   // e.g., "PETR4.SA"
	Name     string `json:"name"`     // display name
	Exchange string `json:"exchange"` // e.g., "SAO"
	Currency string `json:"currency"` // e.g., "BRL"
}

// TickerList represents a catalog of tickers.
type TickerList struct {
	UpdatedAt string   `json:"updated_at"` // ISO 8601 timestamp
	Tickers   []Ticker `json:"tickers"`
}

// LoadTickers loads a ticker catalog from a JSON file.
func LoadTickers(filePath string) (*TickerList, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tickers file: %w", err)
	}

	var list TickerList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse tickers file: %w", err)
	}

	return &list, nil
}

// DefaultTickers is the built-in catalog used when no tickers file is
// configured. Any Yahoo Finance symbol works; these just seed the UI.
func DefaultTickers() *TickerList {
	return &TickerList{
		Tickers: []Ticker{
			{Symbol: "PETR4.SA", Name: "Petrobras PN", Exchange: "SAO", Currency: "BRL"},
			{Symbol: "VALE3.SA", Name: "Vale ON", Exchange: "SAO", Currency: "BRL"},
			{Symbol: "ITUB4.SA", Name: "Itaú Unibanco PN", Exchange: "SAO", Currency: "BRL"},
			{Symbol: "BOVA11.SA", Name: "iShares Ibovespa", Exchange: "SAO", Currency: "BRL"},
			{Symbol: "VOO", Name: "Vanguard S&P 500 ETF", Exchange: "NYSE", Currency: "USD"},
			{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "NASDAQ", Currency: "USD"},
		},
	}
}

// GetDefaultTickersPath returns the default path for the tickers file.
func GetDefaultTickersPath() string {
	if path := os.Getenv("TICKERS_FILE"); path != "" {
		return path
	}
	return "./data/tickers.json"
}
