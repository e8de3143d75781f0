package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"dca-backtest/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Report   ReportConfig   `yaml:"report"`
	// TickersFile points at a JSON ticker catalog; empty means the
	// built-in catalog.
	TickersFile string `yaml:"tickers_file"`
}

// DefaultsConfig fills parameters the user omits (form defaults, batch rows
// without dates).
type DefaultsConfig struct {
	Ticker    string  `yaml:"ticker"`
	StartDate string  `yaml:"start_date"` // YYYY-MM-DD
	EndDate   string  `yaml:"end_date"`   // YYYY-MM-DD
	Amount    float64 `yaml:"amount"`
}

type ReportConfig struct {
	// Dir is where plain-text reports are written.
	Dir string `yaml:"dir"`
	// EvolutionCSV enables writing the evolution ledger CSV next to the
	// report.
	EvolutionCSV bool `yaml:"evolution_csv"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Ticker:    "PETR4.SA",
			StartDate: "2010-01-01",
			EndDate:   "2025-01-01",
			Amount:    500.00,
		},
		Report: ReportConfig{
			Dir: "./reports",
		},
	}
}

// Load reads a YAML config, overlays it onto the defaults, and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	merged := Merge(*Default(), c)
	return &merged, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Defaults.Amount <= 0 {
		return errors.New("defaults.amount must be > 0")
	}
	start, err := model.ParseDay(c.Defaults.StartDate)
	if err != nil {
		return errors.New("defaults.start_date must be YYYY-MM-DD")
	}
	end, err := model.ParseDay(c.Defaults.EndDate)
	if err != nil {
		return errors.New("defaults.end_date must be YYYY-MM-DD")
	}
	if start.After(end) {
		return errors.New("defaults.start_date must not be after defaults.end_date")
	}
	if c.Report.Dir == "" {
		return errors.New("report.dir is required")
	}
	return nil
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override Config) Config {
	out := base
	if override.Defaults.Ticker != "" {
		out.Defaults.Ticker = override.Defaults.Ticker
	}
	if override.Defaults.StartDate != "" {
		out.Defaults.StartDate = override.Defaults.StartDate
	}
	if override.Defaults.EndDate != "" {
		out.Defaults.EndDate = override.Defaults.EndDate
	}
	if override.Defaults.Amount != 0 {
		out.Defaults.Amount = override.Defaults.Amount
	}
	if override.Report.Dir != "" {
		out.Report.Dir = override.Report.Dir
	}
	if override.Report.EvolutionCSV {
		out.Report.EvolutionCSV = true
	}
	if override.TickersFile != "" {
		out.TickersFile = override.TickersFile
	}
	return out
}
