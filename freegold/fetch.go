// Package freegold retrieves the freegoldapi.com historical price feed. The
// feed is a CSV of single daily/monthly/annual observations going back to
// 1258; each row becomes a degenerate candle with open=high=low=close.
package freegold

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/goldhist/market"
)

// FeedURL serves the full dataset, updated daily.
const FeedURL = "https://freegoldapi.com/data/latest.csv"

// Runner retrieves the raw feed body for a URL. The production runner shells
// out to curl; tests substitute a fake.
type Runner func(ctx context.Context, url string) ([]byte, error)

// CurlRunner retrieves the feed with `curl -s`. A missing curl binary is a
// dependency error with an install hint; a non-zero exit is fatal and
// carries curl's stderr.
func CurlRunner(ctx context.Context, feedURL string) ([]byte, error) {
	if _, err := exec.LookPath("curl"); err != nil {
		return nil, fmt.Errorf("curl is not installed (install it with your package manager): %w", err)
	}

	cmd := exec.CommandContext(ctx, "curl", "-s", feedURL)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("curl %s: %w: %s", feedURL, err, msg)
		}
		return nil, fmt.Errorf("curl %s: %w", feedURL, err)
	}
	return stdout.Bytes(), nil
}

// Fetch retrieves and parses the feed.
func Fetch(ctx context.Context, run Runner) (market.Series, error) {
	body, err := run(ctx, FeedURL)
	if err != nil {
		return nil, fmt.Errorf("retrieve gold feed: %w", err)
	}
	return Parse(bytes.NewReader(body))
}

// Parse reads the date,price,source CSV. Any malformed row aborts the parse;
// the feed is curated and a bad row means a broken download, not noise.
func Parse(r io.Reader) (market.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) != 3 || header[0] != "date" || header[1] != "price" || header[2] != "source" {
		return nil, fmt.Errorf("unexpected csv header %v (want date,price,source)", header)
	}

	var out market.Series
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		t, err := time.ParseInLocation(market.DateLayout, row[0], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("bad date %q: %w", row[0], err)
		}
		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad price %q on %s: %w", row[1], row[0], err)
		}

		// A single observed price stands in for the whole bar.
		p := market.Round2(price)
		out = append(out, market.Candle{Time: t, Open: p, High: p, Low: p, Close: p})
	}

	return out, nil
}
