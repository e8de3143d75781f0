package main

import (
	"flag"
	"fmt"
	"time"

	"dca-backtest/internal/backtest"
	"dca-backtest/internal/model"
)

// Demo:
// - Build a small synthetic daily price series (weekdays only)
// - Run a DCA simulation over it
// - Print the evolution and the final summary
func main() {
	amount := flag.Float64("amount", 500, "Monthly contribution")
	outCSV := flag.String("out", "", "Optional path to write evolution CSV")
	flag.Parse()

	series, err := model.NewPriceSeries(syntheticPrices())
	if err != nil {
		panic(err)
	}

	params := model.BacktestParams{
		Ticker: "DEMO",
		Start:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		Amount: *amount,
	}

	engine := backtest.New()
	result, err := engine.Run(series, params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loaded %d trading days (%s..%s)\n",
		series.Len(),
		series.First().Date.Format(model.DayLayout),
		series.Last().Date.Format(model.DayLayout))
	fmt.Printf("Monthly amount=%.2f\n\n", params.Amount)

	for _, r := range result.Evolution {
		fmt.Printf(
			"%s close=%8.2f  bought=%8.4f  units=%9.4f  invested=%9.2f  value=%10.2f\n",
			r.Date.Format(model.DayLayout),
			r.Close,
			r.UnitsBought,
			r.Units,
			r.TotalInvested,
			r.PortfolioValue,
		)
	}

	if *outCSV != "" {
		if err := backtest.WriteEvolutionCSV(*outCSV, result.Evolution); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	s := result.Summary
	fmt.Printf("\nDone. Final value=%.2f  Invested=%.2f  Profit=%.2f  Return=%.2f%%\n",
		s.FinalValue, s.TotalInvested, s.GrossProfit, s.ReturnPct)
}

// syntheticPrices generates a year of weekday closes following a gentle
// upward drift with a mid-year dip, enough to show DCA averaging at work.
func syntheticPrices() []model.PricePoint {
	points := []model.PricePoint{}
	price := 20.0

	day := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; day.Year() == 2023; i++ {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			points = append(points, model.PricePoint{Date: day, Close: price})
			// Drift up slowly, dip through Q3.
			switch {
			case day.Month() >= time.July && day.Month() <= time.September:
				price *= 0.999
			default:
				price *= 1.001
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return points
}
