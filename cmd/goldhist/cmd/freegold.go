package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/goldhist/freegold"
	"github.com/rustyeddy/goldhist/market"
	"github.com/rustyeddy/goldhist/pkg/id"
)

var freegoldCmd = &cobra.Command{
	Use:   "freegold",
	Short: "Download gold prices from the Free Gold API via curl",
	Long: `Download the freegoldapi.com historical gold price CSV (coverage back
to 1258) with curl, expand each single observed price into a degenerate
OHLC bar, and write the result as a JSON series.

An inclusive year range can narrow the output:

  goldhist freegold -start-year 1800 -end-year 2025 -out gold-data.json`,
	RunE: runFreeGold,
}

var (
	fgStartYear int
	fgEndYear   int
	fgOut       string
)

func init() {
	rootCmd.AddCommand(freegoldCmd)

	freegoldCmd.Flags().IntVar(&fgStartYear, "start-year", 0, "drop rows before this year (0 = no minimum)")
	freegoldCmd.Flags().IntVar(&fgEndYear, "end-year", 0, "drop rows after this year (0 = no maximum)")
	freegoldCmd.Flags().StringVar(&fgOut, "out", "", "output JSON path (default from config)")
}

func runFreeGold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	startYear, endYear := cfg.FreeGold.StartYear, cfg.FreeGold.EndYear
	if cmd.Flags().Changed("start-year") {
		startYear = fgStartYear
	}
	if cmd.Flags().Changed("end-year") {
		endYear = fgEndYear
	}
	out := cfg.Output
	if fgOut != "" {
		out = fgOut
	}

	fmt.Printf("Downloading gold price data from %s...\n", freegold.FeedURL)

	series, err := freegold.Fetch(cmd.Context(), freegold.CurlRunner)
	if err != nil {
		return err
	}
	fmt.Printf("Downloaded %d data points\n", len(series))

	if startYear != 0 || endYear != 0 {
		series = series.FilterYears(startYear, endYear)
		fmt.Printf("Filtered to %d data points (years %d - %d)\n", len(series), startYear, endYear)
	}
	if len(series) == 0 {
		return fmt.Errorf("no data points left after filtering")
	}

	if err := series.Save(out); err != nil {
		return err
	}

	st := series.Stats()
	fmt.Printf("\nDate range: %s to %s\n",
		st.First.Time.Format(market.DateLayout), st.Last.Time.Format(market.DateLayout))
	fmt.Printf("Starting price: $%.2f\n", st.First.Close)
	fmt.Printf("Ending price: $%.2f\n", st.Last.Close)
	fmt.Printf("Total change: %+.1f%%\n", st.ReturnPct)
	fmt.Printf("run %s: wrote %d candles to %s\n", id.NewRun(), len(series), out)
	return nil
}
