package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, "PETR4.SA", c.Defaults.Ticker)
	require.Equal(t, 500.00, c.Defaults.Amount)
	require.Equal(t, "./reports", c.Report.Dir)
}

func TestLoad(t *testing.T) {
	t.Run("partial file overlays defaults", func(t *testing.T) {
		path := writeConfig(t, `
defaults:
  ticker: VOO
  amount: 250
report:
  evolution_csv: true
`)
		c, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "VOO", c.Defaults.Ticker)
		require.Equal(t, 250.0, c.Defaults.Amount)
		// Untouched fields keep their defaults.
		require.Equal(t, "2010-01-01", c.Defaults.StartDate)
		require.Equal(t, "./reports", c.Report.Dir)
		require.True(t, c.Report.EvolutionCSV)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := writeConfig(t, "defaults:\n  amount: -5\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		path := writeConfig(t, "defaults:\n  start_date: \"2026-01-01\"\n  end_date: \"2020-01-01\"\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "defaults: [not a map")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestLoadUnchecked(t *testing.T) {
	// A config that would fail validation still loads for inspection.
	path := writeConfig(t, "defaults:\n  start_date: \"not-a-date\"\n")
	c, err := LoadUnchecked(path)
	require.NoError(t, err)
	require.Equal(t, "not-a-date", c.Defaults.StartDate)
	require.Error(t, c.Validate())
}

func TestMerge(t *testing.T) {
	base := *Default()

	t.Run("zero override keeps base", func(t *testing.T) {
		out := Merge(base, Config{})
		require.Equal(t, base, out)
	})

	t.Run("non-zero fields win", func(t *testing.T) {
		out := Merge(base, Config{
			Defaults:    DefaultsConfig{Ticker: "AAPL", Amount: 1000},
			TickersFile: "./data/tickers.json",
		})
		require.Equal(t, "AAPL", out.Defaults.Ticker)
		require.Equal(t, 1000.0, out.Defaults.Amount)
		require.Equal(t, base.Defaults.StartDate, out.Defaults.StartDate)
		require.Equal(t, "./data/tickers.json", out.TickersFile)
	})
}
