// Package yahoo fetches historical gold bars from the Yahoo Finance public
// chart API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rustyeddy/goldhist/market"
)

// DefaultBaseURL is the public chart API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client queries the Yahoo Finance v8 chart endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client against the public API with a 30s timeout.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Interval maps the CLI vocabulary to Yahoo interval codes. Both the spoken
// form (daily, weekly) and the raw code (1d, 1wk) are accepted.
func Interval(name string) (string, error) {
	switch name {
	case "daily", "1d":
		return "1d", nil
	case "weekly", "1wk":
		return "1wk", nil
	default:
		return "", fmt.Errorf("unknown interval %q (use daily or weekly)", name)
	}
}

// chartResponse mirrors the v8 chart payload. OHLC arrays are nullable, one
// entry per timestamp.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History downloads the full available history for ticker at the given
// interval code (1d or 1wk). Bars with any missing OHLC field are dropped.
func (c *Client) History(ctx context.Context, ticker, interval string) (market.Series, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=max",
		c.BaseURL, url.PathEscape(ticker), interval)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// The chart API rejects requests without a browser-ish UA.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo %s: status %d: %s", ticker, resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode %s: %w", ticker, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error for %s: %s", ticker, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", ticker)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", ticker)
	}
	quote := result.Indicators.Quote[0]

	bars := make(market.Series, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		o, h, l, cl := quote.Open[i], quote.High[i], quote.Low[i], quote.Close[i]
		if o == nil || h == nil || l == nil || cl == nil {
			continue // null bar (holiday, missing quote)
		}
		t := time.Unix(ts, 0).UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		bars = append(bars, market.New(day, *o, *h, *l, *cl))
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: no usable bars for %s", ticker)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
