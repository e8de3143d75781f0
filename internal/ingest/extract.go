// Package ingest turns user-supplied inputs (CSV/TXT batch files, PDF
// documents, free text) into validated backtest parameters. The core never
// sees raw files; it only receives BacktestParams that already passed
// validation here.
package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"dca-backtest/internal/model"
)

// Field patterns are tried in order; the first capture wins. The Portuguese
// variants match the document format the product historically accepted.
var (
	tickerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)ticke[rt]\s*[:\s]\s*([\w.^=-]+)`),
	}
	startDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)start\s+date\s*[:\s]\s*([\d\s-]+)`),
		regexp.MustCompile(`(?is)data\s+de\s+in[ií]cio\s*[:\s]\s*([\d\s-]+)`),
		regexp.MustCompile(`(?is)data\s+inicial\s*[:\s]\s*([\d\s-]+)`),
	}
	endDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)end\s+date\s*[:\s]\s*([\d\s-]+)`),
		regexp.MustCompile(`(?is)data\s+final\s*[:\s]\s*([\d\s-]+)`),
	}
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)amount\s*(?:\([^)]*\))?\s*[:\s]\s*(\d+[.,]?\d*)`),
		regexp.MustCompile(`(?is)aporte\s*\(R\$\)\s*[:\s]\s*(\d+[.,]?\d*)`),
		regexp.MustCompile(`(?is)aporte\s*mensal\s*.*?(\d+[.,]?\d*)`),
		regexp.MustCompile(`(?is)aporte\s*.*?(\d+[.,]?\d*)`),
	}
)

func firstMatch(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// ParseAmount converts a contribution amount string to float64. Accepts a
// comma as the decimal separator and ignores embedded spaces.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.ReplaceAll(s, ",", "."), " ", "")
	if s == "" {
		return 0, &model.InvalidParameterError{Field: "amount", Reason: "must not be empty"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &model.InvalidParameterError{Field: "amount", Reason: "not a number: " + s}
	}
	return v, nil
}

// stripSpaces removes internal whitespace from an extracted date string
// (PDF text extraction often injects spaces between digits).
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// FromText extracts (ticker, start, end, amount) from free-form text and
// validates the result. Any missing essential field is an
// InvalidParameterError.
func FromText(text string) (model.BacktestParams, error) {
	var params model.BacktestParams

	ticker, ok := firstMatch(tickerPatterns, text)
	if !ok {
		return params, &model.InvalidParameterError{Field: "ticker", Reason: "not found in document"}
	}

	startStr, ok := firstMatch(startDatePatterns, text)
	if !ok {
		return params, &model.InvalidParameterError{Field: "start", Reason: "not found in document"}
	}
	start, err := model.ParseDay(stripSpaces(startStr))
	if err != nil {
		return params, &model.InvalidParameterError{Field: "start", Reason: "not a date: " + startStr}
	}

	endStr, ok := firstMatch(endDatePatterns, text)
	if !ok {
		return params, &model.InvalidParameterError{Field: "end", Reason: "not found in document"}
	}
	end, err := model.ParseDay(stripSpaces(endStr))
	if err != nil {
		return params, &model.InvalidParameterError{Field: "end", Reason: "not a date: " + endStr}
	}

	amountStr, ok := firstMatch(amountPatterns, text)
	if !ok {
		return params, &model.InvalidParameterError{Field: "amount", Reason: "not found in document"}
	}
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return params, err
	}

	params = model.BacktestParams{
		Ticker: ticker,
		Start:  start,
		End:    end,
		Amount: amount,
	}
	if err := params.Validate(); err != nil {
		return model.BacktestParams{}, err
	}
	return params.Normalized(), nil
}
