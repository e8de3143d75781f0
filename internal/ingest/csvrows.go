package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"dca-backtest/internal/model"
)

// BatchRow is one line of a batch input file. Columns beyond ticker and
// monthly_amount are optional; empty dates fall back to the defaults the
// caller passes to ToParams.
type BatchRow struct {
	Ticker        string `csv:"ticker"`
	MonthlyAmount string `csv:"monthly_amount"`
	StartDate     string `csv:"start_date"`
	EndDate       string `csv:"end_date"`
}

// ReadBatchFile parses a batch file into rows. ".csv" files are
// comma-separated; ".txt" files are tab-separated. An empty file (headers
// only) is an InvalidParameterError, not an empty batch.
func ReadBatchFile(path string) ([]BatchRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	delim := ','
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		delim = '\t'
	}
	rows, err := readBatch(f, delim)
	if err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}
	return rows, nil
}

// ReadBatchCSV parses comma-separated batch rows from a reader.
func ReadBatchCSV(r io.Reader) ([]BatchRow, error) {
	return readBatch(r, ',')
}

func readBatch(r io.Reader, delim rune) ([]BatchRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	var rows []BatchRow
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &model.InvalidParameterError{Field: "file", Reason: "no rows"}
	}
	return rows, nil
}

// ToParams converts a row into validated backtest parameters, filling
// missing dates from defaults.
func (row BatchRow) ToParams(defaultStart, defaultEnd string) (model.BacktestParams, error) {
	var params model.BacktestParams

	amount, err := ParseAmount(row.MonthlyAmount)
	if err != nil {
		return params, err
	}

	startStr := strings.TrimSpace(row.StartDate)
	if startStr == "" {
		startStr = defaultStart
	}
	start, err := model.ParseDay(startStr)
	if err != nil {
		return params, &model.InvalidParameterError{Field: "start", Reason: "not a date: " + startStr}
	}

	endStr := strings.TrimSpace(row.EndDate)
	if endStr == "" {
		endStr = defaultEnd
	}
	end, err := model.ParseDay(endStr)
	if err != nil {
		return params, &model.InvalidParameterError{Field: "end", Reason: "not a date: " + endStr}
	}

	params = model.BacktestParams{
		Ticker: strings.TrimSpace(row.Ticker),
		Start:  start,
		End:    end,
		Amount: amount,
	}
	if err := params.Validate(); err != nil {
		return model.BacktestParams{}, err
	}
	return params.Normalized(), nil
}
