package chart

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rustyeddy/goldhist/market"
)

// histWindow is a hand-picked historical sub-range scanned for its local
// extreme.
type histWindow struct {
	name      string
	startYear int
	endYear   int
	trough    bool // scan for the minimum low instead of the maximum high
}

var histWindows = []histWindow{
	{name: "1980 Peak", startYear: 1979, endYear: 1981},
	{name: "~2000 Trough", startYear: 1998, endYear: 2002, trough: true},
	{name: "2011 Peak", startYear: 2010, endYear: 2012},
	{name: "2020 Peak", startYear: 2020, endYear: 2021},
}

// Summary formats the aggregate statistics block: point count, date range,
// global extremes, start/end close, total return, and the local peak or
// trough inside each historical window that has data.
func Summary(s market.Series) (string, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("empty series, nothing to summarize")
	}

	st := s.Stats()
	rule := axisStyle.Render(strings.Repeat("=", 80))

	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString(headerStyle.Render("KEY STATISTICS"))
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Data Points: %d\n", st.Points)
	fmt.Fprintf(&b, "Date Range: %s to %s\n\n",
		st.First.Time.Format(market.DateLayout),
		st.Last.Time.Format(market.DateLayout))

	b.WriteString("Price Range:\n")
	fmt.Fprintf(&b, "  All-time Low:  $%s\n", money(st.LowestLow))
	fmt.Fprintf(&b, "  All-time High: $%s\n", money(st.HighestHigh))
	fmt.Fprintf(&b, "  Starting Price: $%s\n", money(st.First.Close))
	fmt.Fprintf(&b, "  Ending Price: $%s\n", money(st.Last.Close))
	fmt.Fprintf(&b, "  Total Return: %.1f%%\n", st.ReturnPct)

	b.WriteString("\nKey Historical Peaks and Troughs:\n")
	for _, w := range histWindows {
		sub := s.FilterYears(w.startYear, w.endYear)

		var (
			c  market.Candle
			v  float64
			ok bool
		)
		if w.trough {
			c, ok = sub.MinLow()
			v = c.Low
		} else {
			c, ok = sub.MaxHigh()
			v = c.High
		}
		if !ok {
			continue // series does not cover this window
		}
		fmt.Fprintf(&b, "  %s: $%s on %s\n", w.name, money(v), c.Time.Format(market.DateLayout))
	}

	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteByte('\n')
	return b.String(), nil
}

func money(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
