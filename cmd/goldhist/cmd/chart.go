package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/goldhist/chart"
	"github.com/rustyeddy/goldhist/market"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a gold series as an ASCII chart with statistics",
	Long: `Read a JSON series produced by fetch, freegold or generate and print a
scaled ASCII line chart of closing prices plus summary statistics.

Example:
  goldhist chart -file gold-data.json -width 100 -height 30`,
	RunE: runChart,
}

var (
	chartFile   string
	chartWidth  int
	chartHeight int
	chartNoSum  bool
)

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVar(&chartFile, "file", "", "series JSON file (default from config output path)")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "chart width in columns (default from config)")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "chart height in rows (default from config)")
	chartCmd.Flags().BoolVar(&chartNoSum, "no-summary", false, "skip the statistics block")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	file := cfg.Output
	if chartFile != "" {
		file = chartFile
	}
	width, height := cfg.Chart.Width, cfg.Chart.Height
	if chartWidth != 0 {
		width = chartWidth
	}
	if chartHeight != 0 {
		height = chartHeight
	}

	series, err := market.Load(file)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("%s holds an empty series", file)
	}

	if !chartNoSum {
		summary, err := chart.Summary(series)
		if err != nil {
			return err
		}
		fmt.Print(summary)
	}

	rendered, err := chart.Render(series, width, height)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
