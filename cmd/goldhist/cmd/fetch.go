package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/goldhist/market"
	"github.com/rustyeddy/goldhist/pkg/id"
	"github.com/rustyeddy/goldhist/yahoo"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download real gold price history from Yahoo Finance",
	Long: `Download the full available gold price history from the Yahoo Finance
chart API and write it as a JSON series.

Several ticker candidates are tried (spot XAUUSD=X, futures GC=F); the one
whose history starts earliest wins. The run fails only when every candidate
fails.

Example:
  goldhist fetch -interval weekly -out gold-data.json`,
	RunE: runFetch,
}

var (
	fetchTickers  []string
	fetchInterval string
	fetchOut      string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringSliceVar(&fetchTickers, "ticker", nil, "ticker candidates, best coverage wins (default from config)")
	fetchCmd.Flags().StringVar(&fetchInterval, "interval", "", "bar interval: daily or weekly (default from config)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "output JSON path (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tickers := cfg.Fetch.Tickers
	if len(fetchTickers) > 0 {
		tickers = fetchTickers
	}
	intervalName := cfg.Fetch.Interval
	if fetchInterval != "" {
		intervalName = fetchInterval
	}
	out := cfg.Output
	if fetchOut != "" {
		out = fetchOut
	}

	interval, err := yahoo.Interval(intervalName)
	if err != nil {
		return err
	}

	client := yahoo.NewClient()
	series, ticker, err := client.BestOf(cmd.Context(), tickers, interval)
	if err != nil {
		return fmt.Errorf("fetch gold history: %w", err)
	}
	if len(series) == 0 {
		return fmt.Errorf("no usable data for any of %v", tickers)
	}

	if err := series.Save(out); err != nil {
		return err
	}

	st := series.Stats()
	fmt.Printf("\nSelected: %s\n", ticker)
	fmt.Printf("Date range: %s to %s\n",
		st.First.Time.Format(market.DateLayout), st.Last.Time.Format(market.DateLayout))
	fmt.Printf("Starting price: $%.2f\n", st.First.Close)
	fmt.Printf("Ending price: $%.2f\n", st.Last.Close)
	fmt.Printf("run %s: wrote %d candles to %s\n", id.NewRun(), len(series), out)
	return nil
}
