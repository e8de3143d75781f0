// Package report renders backtest results as plain-text reports and writes
// them to disk. Rounding happens only here; the engine never rounds.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dca-backtest/internal/analysis"
	"dca-backtest/internal/backtest"
	"dca-backtest/internal/model"
)

const divider = "============================================================"

// Render produces the full single-run report: parameters used, then the
// final metrics block.
func Render(res *backtest.Result) string {
	var b strings.Builder

	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "                DCA BACKTEST REPORT")
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Parameters")
	fmt.Fprintf(&b, "- Ticker:           %s\n", res.Params.Ticker)
	fmt.Fprintf(&b, "- Start date:       %s\n", res.Params.Start.Format(model.DayLayout))
	fmt.Fprintf(&b, "- End date:         %s\n", res.Params.End.Format(model.DayLayout))
	fmt.Fprintf(&b, "- Monthly amount:   %.2f\n", res.Params.Amount)
	fmt.Fprintf(&b, "- Contributions:    %d\n", len(res.Evolution))
	fmt.Fprintln(&b, strings.Repeat("-", len(divider)))
	writeSummary(&b, res.Summary)
	fmt.Fprintln(&b, divider)

	return b.String()
}

// RenderBatch produces the aggregate report for a batch run: per-row lines
// ranked by return, failures, and the folded totals.
func RenderBatch(results []analysis.RowResult, summary analysis.BatchSummary) string {
	var b strings.Builder

	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b, "                DCA BACKTEST BATCH REPORT")
	fmt.Fprintln(&b, divider)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Rows: %d  succeeded: %d  failed: %d\n", summary.Rows, summary.Succeeded, summary.Failed)
	fmt.Fprintln(&b)

	ranked := analysis.RankByReturn(results)
	if len(ranked) > 0 {
		fmt.Fprintln(&b, "Ranking by return")
		for i, r := range ranked {
			s := r.Result.Summary
			fmt.Fprintf(&b, "%2d. %-12s final %.2f  invested %.2f  return %.2f%%\n",
				i+1, r.Params.Ticker, s.FinalValue, s.TotalInvested, s.ReturnPct)
		}
		fmt.Fprintln(&b)
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&b, "FAILED %-12s %v\n", r.Row.Ticker, r.Err)
		}
	}
	if summary.Failed > 0 {
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, strings.Repeat("-", len(divider)))
	fmt.Fprintln(&b, "TOTALS")
	fmt.Fprintf(&b, "- Final value:      %.2f\n", summary.TotalFinalValue)
	fmt.Fprintf(&b, "- Total invested:   %.2f\n", summary.TotalInvested)
	fmt.Fprintf(&b, "- Gross profit:     %.2f\n", summary.TotalGrossProfit)
	fmt.Fprintln(&b, divider)

	return b.String()
}

func writeSummary(b *strings.Builder, s backtest.Summary) {
	fmt.Fprintln(b, "FINAL SUMMARY")
	fmt.Fprintf(b, "- Final value:      %.2f\n", s.FinalValue)
	fmt.Fprintf(b, "- Total invested:   %.2f\n", s.TotalInvested)
	fmt.Fprintf(b, "- Gross profit:     %.2f\n", s.GrossProfit)
	fmt.Fprintf(b, "- Return:           %.2f%%\n", s.ReturnPct)
}

// Write stores a rendered report under dir, creating it if needed, and
// returns the written path. The filename embeds the ticker and run time so
// successive runs do not clobber each other.
func Write(dir, ticker, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	name := fmt.Sprintf("backtest_%s_%s.txt",
		sanitize(ticker), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
