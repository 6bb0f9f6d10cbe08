package yahoo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rustyeddy/goldhist/market"
)

// DefaultTickers are the gold candidates, spot before futures. The spot
// symbol usually carries the longer history.
var DefaultTickers = []string{"XAUUSD=X", "GC=F"}

// BestOf downloads each candidate ticker in turn and keeps the series whose
// first date is earliest. A failing candidate only fails the run when every
// candidate has failed. The chosen ticker is returned with the series.
func (c *Client) BestOf(ctx context.Context, tickers []string, interval string) (market.Series, string, error) {
	if len(tickers) == 0 {
		return nil, "", errors.New("no ticker candidates given")
	}

	var (
		best     market.Series
		bestTick string
		errs     []error
	)

	for _, ticker := range tickers {
		fmt.Printf("Trying %s...\n", ticker)

		s, err := c.History(ctx, ticker, interval)
		if err != nil {
			fmt.Printf("Failed to download %s: %v\n", ticker, err)
			errs = append(errs, fmt.Errorf("%s: %w", ticker, err))
			continue
		}
		fmt.Printf("Downloaded %d data points for %s (%s to %s)\n",
			len(s), ticker,
			s[0].Time.Format(market.DateLayout),
			s[len(s)-1].Time.Format(market.DateLayout))

		if best == nil || s[0].Time.Before(best[0].Time) {
			best = s
			bestTick = ticker
		}
	}

	if best == nil {
		return nil, "", fmt.Errorf("all tickers failed: %w", errors.Join(errs...))
	}
	return best, bestTick, nil
}
