package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"dca-backtest/internal/model"
)

func WriteEvolutionCSV(path string, evolution []EvolutionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"date",
		"close",
		"units_bought",
		"units",
		"total_invested",
		"portfolio_value",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range evolution {
		row := []string{
			strconv.Itoa(r.Index),
			fmtDay(r.Date),
			fmtFloat(r.Close),
			fmtFloat(r.UnitsBought),
			fmtFloat(r.Units),
			fmtFloat(r.TotalInvested),
			fmtFloat(r.PortfolioValue),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DayLayout)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
