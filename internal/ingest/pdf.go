package ingest

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"dca-backtest/internal/model"
)

// FromPDF extracts backtest parameters from a PDF file on disk.
func FromPDF(path string) (model.BacktestParams, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return model.BacktestParams{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	return fromPDFReader(r)
}

// FromPDFBytes extracts backtest parameters from an in-memory PDF, as
// received from an upload.
func FromPDFBytes(raw []byte) (model.BacktestParams, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return model.BacktestParams{}, fmt.Errorf("read pdf: %w", err)
	}

	return fromPDFReader(r)
}

func fromPDFReader(r *pdf.Reader) (model.BacktestParams, error) {
	plain, err := r.GetPlainText()
	if err != nil {
		return model.BacktestParams{}, fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return model.BacktestParams{}, fmt.Errorf("extract pdf text: %w", err)
	}

	return FromText(buf.String())
}
