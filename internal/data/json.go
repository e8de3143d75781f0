package data

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dca-backtest/internal/model"
)

// PriceHistory is the on-disk JSON shape for a saved price download.
// cmd/fetch writes these; the CLI --data flag and tests read them back, so
// backtests can run offline and deterministically.
type PriceHistory struct {
	Symbol    string             `json:"symbol"`
	UpdatedAt time.Time          `json:"updated_at"`
	Points    []model.PricePoint `json:"points"`
}

func LoadPriceHistory(path string) (*PriceHistory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var h PriceHistory
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("parse price history %s: %w", path, err)
	}
	return &h, nil
}

func SavePriceHistory(path string, h *PriceHistory) error {
	raw, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Series cleans the stored points into a PriceSeries.
func (h *PriceHistory) Series() (*model.PriceSeries, error) {
	return model.NewPriceSeries(h.Points)
}
