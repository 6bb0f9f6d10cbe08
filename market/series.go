package market

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Series is a date-ordered sequence of candles. The scripts exchange it as a
// pretty-printed JSON array, fully overwritten on each run.
type Series []Candle

// Load reads a series from a JSON file.
func Load(path string) (Series, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read series file: %w", err)
	}

	var s Series
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse series file %s: %w", path, err)
	}
	return s, nil
}

// Save writes the series as a 2-space-indented JSON array, replacing any
// previous file at path.
func (s Series) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal series: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write series file: %w", err)
	}
	return nil
}

// Validate checks that every candle is well-formed and dates strictly
// increase.
func (s Series) Validate() error {
	for i, c := range s {
		if !c.WellFormed() {
			return fmt.Errorf("candle %d (%s): OHLC ordering violated (o=%.2f h=%.2f l=%.2f c=%.2f)",
				i, c.Time.Format(DateLayout), c.Open, c.High, c.Low, c.Close)
		}
		if i > 0 && !s[i-1].Time.Before(c.Time) {
			return fmt.Errorf("candle %d (%s): time not after previous (%s)",
				i, c.Time.Format(DateLayout), s[i-1].Time.Format(DateLayout))
		}
	}
	return nil
}

// FilterYears returns the candles whose year falls in [start, end],
// inclusive. A zero bound leaves that end open.
func (s Series) FilterYears(start, end int) Series {
	out := make(Series, 0, len(s))
	for _, c := range s {
		y := c.Time.Year()
		if start != 0 && y < start {
			continue
		}
		if end != 0 && y > end {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Window returns the candles with from <= time <= to.
func (s Series) Window(from, to time.Time) Series {
	out := make(Series, 0)
	for _, c := range s {
		if c.Time.Before(from) || c.Time.After(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// MaxHigh returns the candle with the highest high, false when empty.
func (s Series) MaxHigh() (Candle, bool) {
	if len(s) == 0 {
		return Candle{}, false
	}
	best := s[0]
	for _, c := range s[1:] {
		if c.High > best.High {
			best = c
		}
	}
	return best, true
}

// MinLow returns the candle with the lowest low, false when empty.
func (s Series) MinLow() (Candle, bool) {
	if len(s) == 0 {
		return Candle{}, false
	}
	best := s[0]
	for _, c := range s[1:] {
		if c.Low < best.Low {
			best = c
		}
	}
	return best, true
}

// Stats holds the aggregate figures printed by the chart and fetch commands.
type Stats struct {
	Points      int
	First       Candle
	Last        Candle
	LowestLow   float64
	HighestHigh float64
	ReturnPct   float64
}

// Stats computes aggregates over the whole series. Meaningless on an empty
// series; callers check len first.
func (s Series) Stats() Stats {
	st := Stats{Points: len(s)}
	if len(s) == 0 {
		return st
	}

	st.First = s[0]
	st.Last = s[len(s)-1]
	st.LowestLow = s[0].Low
	st.HighestHigh = s[0].High
	for _, c := range s[1:] {
		if c.Low < st.LowestLow {
			st.LowestLow = c.Low
		}
		if c.High > st.HighestHigh {
			st.HighestHigh = c.High
		}
	}
	if st.First.Close != 0 {
		st.ReturnPct = (st.Last.Close/st.First.Close - 1) * 100
	}
	return st
}
