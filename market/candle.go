package market

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-date form used in the JSON interchange file.
const DateLayout = "2006-01-02"

// Candle represents one OHLC (Open, High, Low, Close) bar of a gold price
// series. Time carries only the calendar date, midnight UTC.
type Candle struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// New builds a candle with all four prices rounded to two decimals.
func New(t time.Time, open, high, low, close float64) Candle {
	return Candle{
		Time:  t,
		Open:  Round2(open),
		High:  Round2(high),
		Low:   Round2(low),
		Close: Round2(close),
	}
}

// Round2 rounds a price to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WellFormed reports whether low <= {open, close} <= high and no price is
// negative.
func (c Candle) WellFormed() bool {
	if c.Low < 0 {
		return false
	}
	if c.Open < c.Low || c.Open > c.High {
		return false
	}
	if c.Close < c.Low || c.Close > c.High {
		return false
	}
	return c.Low <= c.High
}

// candleJSON fixes the wire shape: {"time":"YYYY-MM-DD","open":...,...}.
type candleJSON struct {
	Time  string  `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

func (c Candle) MarshalJSON() ([]byte, error) {
	return json.Marshal(candleJSON{
		Time:  c.Time.Format(DateLayout),
		Open:  c.Open,
		High:  c.High,
		Low:   c.Low,
		Close: c.Close,
	})
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var cj candleJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateLayout, cj.Time, time.UTC)
	if err != nil {
		return fmt.Errorf("bad candle time %q: %w", cj.Time, err)
	}
	*c = Candle{Time: t, Open: cj.Open, High: cj.High, Low: cj.Low, Close: cj.Close}
	return nil
}
