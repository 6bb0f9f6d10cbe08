package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/goldhist/config"
)

var rootCmd = &cobra.Command{
	Use:   "goldhist",
	Short: "Fetch, synthesize and chart historical gold price series",
	Long: `Goldhist is a small toolkit for building historical gold (XAU/USD)
OHLC price series as JSON files, and for inspecting them in the terminal.

It provides tools for:
  - Downloading real market data from Yahoo Finance
  - Downloading 750+ years of prices from the Free Gold API
  - Generating a plausible synthetic weekly series from 1971 to 2025
  - Rendering a series as an ASCII chart with summary statistics

Commands are independent and compose only through the JSON data file.`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional, built-in defaults apply)")
}

// loadConfig returns the file-backed config when --config was given, the
// defaults otherwise.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}
