package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dca-backtest/internal/data"
	"dca-backtest/internal/logger"
	"dca-backtest/internal/model"
)

// fetch downloads a daily close history from Yahoo Finance and saves it as
// a local JSON file, so backtests can run offline (cli --data) and test
// fixtures can be refreshed.
func main() {
	var (
		ticker     = flag.String("ticker", "", "Instrument symbol, e.g. PETR4.SA")
		start      = flag.String("start", "", "Start date YYYY-MM-DD")
		end        = flag.String("end", "", "End date YYYY-MM-DD (default: today)")
		outputPath = flag.String("output", "", "Output file path (default: ./data/<ticker>.json)")
	)
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	if *ticker == "" {
		log.Fatal("--ticker is required")
	}
	if *start == "" {
		log.Fatal("--start is required")
	}

	startDay, err := model.ParseDay(*start)
	if err != nil {
		log.Fatalw("invalid --start", "value", *start, "err", err)
	}

	endDay := model.Day(time.Now())
	if *end != "" {
		endDay, err = model.ParseDay(*end)
		if err != nil {
			log.Fatalw("invalid --end", "value", *end, "err", err)
		}
	}

	if *outputPath == "" {
		*outputPath = filepath.Join("data", *ticker+".json")
	}

	client := data.NewYahooClient(log)
	series, err := client.DailyCloses(*ticker, startDay, endDay)
	if err != nil {
		log.Fatalw("fetch failed", "ticker", *ticker, "err", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		log.Fatalw("create output dir", "err", err)
	}

	history := &data.PriceHistory{
		Symbol:    *ticker,
		UpdatedAt: time.Now().UTC(),
		Points:    series.Points(),
	}
	if err := data.SavePriceHistory(*outputPath, history); err != nil {
		log.Fatalw("save failed", "path", *outputPath, "err", err)
	}

	fmt.Printf("Saved %d points for %s to %s\n", series.Len(), *ticker, *outputPath)
}
