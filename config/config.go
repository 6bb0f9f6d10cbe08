package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the defaults shared by the goldhist commands. Every field
// has a built-in default, so running without a config file always works.
type Config struct {
	Output   string         `json:"output" yaml:"output"`
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	FreeGold FreeGoldConfig `json:"freegold" yaml:"freegold"`
	Generate GenerateConfig `json:"generate" yaml:"generate"`
	Chart    ChartConfig    `json:"chart" yaml:"chart"`
}

// FetchConfig drives the Yahoo market-data fetcher.
type FetchConfig struct {
	Tickers  []string `json:"tickers" yaml:"tickers"`
	Interval string   `json:"interval" yaml:"interval"`
}

// FreeGoldConfig drives the remote-CSV fetcher. Zero bounds leave the year
// filter open on that side.
type FreeGoldConfig struct {
	StartYear int `json:"start_year,omitempty" yaml:"start_year,omitempty"`
	EndYear   int `json:"end_year,omitempty" yaml:"end_year,omitempty"`
}

// GenerateConfig drives the synthetic generator.
type GenerateConfig struct {
	Seed int64 `json:"seed" yaml:"seed"`
}

// ChartConfig drives the ASCII renderer.
type ChartConfig struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: "gold-data.json",
		Fetch: FetchConfig{
			Tickers:  []string{"XAUUSD=X", "GC=F"},
			Interval: "weekly",
		},
		Generate: GenerateConfig{Seed: 42},
		Chart:    ChartConfig{Width: 80, Height: 25},
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content) and validates it.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON when the extension says
// so, YAML otherwise).
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if len(c.Fetch.Tickers) == 0 {
		return fmt.Errorf("fetch.tickers must list at least one candidate")
	}
	switch c.Fetch.Interval {
	case "daily", "weekly", "1d", "1wk":
	default:
		return fmt.Errorf("fetch.interval %q is not daily or weekly", c.Fetch.Interval)
	}
	if c.FreeGold.StartYear != 0 && c.FreeGold.EndYear != 0 && c.FreeGold.StartYear > c.FreeGold.EndYear {
		return fmt.Errorf("freegold.start_year %d is after end_year %d", c.FreeGold.StartYear, c.FreeGold.EndYear)
	}
	if c.Chart.Width < 8 {
		return fmt.Errorf("chart.width must be at least 8")
	}
	if c.Chart.Height < 2 {
		return fmt.Errorf("chart.height must be at least 2")
	}
	return nil
}
