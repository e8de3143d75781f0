package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dca-backtest/internal/analysis"
	"dca-backtest/internal/backtest"
	"dca-backtest/internal/config"
	"dca-backtest/internal/data"
	"dca-backtest/internal/ingest"
	"dca-backtest/internal/logger"
	"dca-backtest/internal/model"
	"dca-backtest/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backtest":
		cmdBacktest(os.Args[2:])
	case "batch":
		cmdBatch(os.Args[2:])
	case "pdf":
		cmdPDF(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli backtest --ticker PETR4.SA --start 2015-09-08 --end 2018-09-10 --amount 500 [--data prices.json] [--out evolution.csv]")
	fmt.Println("  cli batch --file rows.csv")
	fmt.Println("  cli pdf --file params.pdf")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - backtest simulates fixed monthly contributions against daily closes")
	fmt.Println("  - batch runs one simulation per CSV/TXT row and folds the totals")
	fmt.Println("  - pdf extracts (ticker, start, end, amount) from a parameter document")
}

func cmdBacktest(args []string) {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	ticker := fs.String("ticker", "", "Instrument symbol (default from config)")
	start := fs.String("start", "", "Start date YYYY-MM-DD (default from config)")
	end := fs.String("end", "", "End date YYYY-MM-DD (default from config)")
	amount := fs.Float64("amount", 0, "Monthly contribution (default from config)")
	dataPath := fs.String("data", "", "Optional local price history JSON (skips network fetch)")
	outPath := fs.String("out", "", "Optional evolution CSV output path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)

	if *ticker == "" {
		*ticker = cfg.Defaults.Ticker
	}
	if *start == "" {
		*start = cfg.Defaults.StartDate
	}
	if *end == "" {
		*end = cfg.Defaults.EndDate
	}
	if *amount == 0 {
		*amount = cfg.Defaults.Amount
	}

	startDay, err := model.ParseDay(*start)
	if err != nil {
		fatalf("invalid --start %q: %v", *start, err)
	}
	endDay, err := model.ParseDay(*end)
	if err != nil {
		fatalf("invalid --end %q: %v", *end, err)
	}

	params := model.BacktestParams{
		Ticker: *ticker,
		Start:  startDay,
		End:    endDay,
		Amount: *amount,
	}

	result := run(params, provider(*dataPath))

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatalf("create output dir: %v", err)
		}
		if err := backtest.WriteEvolutionCSV(*outPath, result.Evolution); err != nil {
			fatalf("write evolution CSV: %v", err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.Evolution), *outPath)
	}

	finishRun(cfg, result)
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	filePath := fs.String("file", "", "Batch input file (.csv comma-separated, .txt tab-separated)")
	_ = fs.Parse(args)

	if *filePath == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}

	cfg := loadConfig(*cfgPath)
	log := logger.New()
	defer log.Sync()

	rows, err := ingest.ReadBatchFile(*filePath)
	if err != nil {
		fatalf("read batch file: %v", err)
	}

	results, totals := analysis.RunBatch(
		data.NewYahooClient(log), rows, cfg.Defaults.StartDate, cfg.Defaults.EndDate, log)

	content := report.RenderBatch(results, totals)
	fmt.Print(content)

	path, err := report.Write(cfg.Report.Dir, "batch", content)
	if err != nil {
		fatalf("write report: %v", err)
	}
	fmt.Printf("Report written to %s\n", path)

	if totals.Succeeded == 0 {
		os.Exit(1)
	}
}

func cmdPDF(args []string) {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	filePath := fs.String("file", "", "PDF parameter document")
	_ = fs.Parse(args)

	if *filePath == "" {
		fmt.Println("--file is required")
		os.Exit(2)
	}

	cfg := loadConfig(*cfgPath)

	params, err := ingest.FromPDF(*filePath)
	if err != nil {
		fatalf("extract parameters: %v", err)
	}
	fmt.Printf("Extracted: ticker=%s start=%s end=%s amount=%.2f\n",
		params.Ticker,
		params.Start.Format(model.DayLayout),
		params.End.Format(model.DayLayout),
		params.Amount)

	result := run(params, provider(""))
	finishRun(cfg, result)
}

// provider picks the price source: a local JSON history when dataPath is
// set, Yahoo Finance otherwise.
func provider(dataPath string) analysis.SeriesProvider {
	if dataPath == "" {
		return data.NewYahooClient(logger.New())
	}
	return localProvider{path: dataPath}
}

type localProvider struct {
	path string
}

func (p localProvider) DailyCloses(symbol string, start, end time.Time) (*model.PriceSeries, error) {
	h, err := data.LoadPriceHistory(p.path)
	if err != nil {
		return nil, err
	}
	series, err := h.Series()
	if err != nil {
		return nil, err
	}
	windowed := series.Window(start, end)
	if windowed.Len() == 0 {
		return nil, model.ErrEmptyData
	}
	return windowed, nil
}

func run(params model.BacktestParams, p analysis.SeriesProvider) *backtest.Result {
	series, err := p.DailyCloses(params.Ticker, params.Start, params.End)
	if err != nil {
		fatalf("load prices: %v", err)
	}

	result, err := backtest.New().Run(series, params)
	if err != nil {
		fatalf("backtest: %v", err)
	}
	return result
}

func finishRun(cfg *config.Config, result *backtest.Result) {
	content := report.Render(result)
	fmt.Print(content)

	path, err := report.Write(cfg.Report.Dir, result.Params.Ticker, content)
	if err != nil {
		fatalf("write report: %v", err)
	}
	fmt.Printf("Report written to %s\n", path)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatalf("load config: %v", err)
	}
	return cfg
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
