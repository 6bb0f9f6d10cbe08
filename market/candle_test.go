package market

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewRoundsToTwoDecimals(t *testing.T) {
	c := New(day("2020-01-01"), 1500.005, 1510.129, 1490.994, 1505.555)
	assert.Equal(t, 1500.01, c.Open)
	assert.Equal(t, 1510.13, c.High)
	assert.Equal(t, 1490.99, c.Low)
	assert.Equal(t, 1505.56, c.Close)
}

func TestCandleJSONShape(t *testing.T) {
	c := Candle{Time: day("2020-01-01"), Open: 1500, High: 1500, Low: 1500, Close: 1500}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"time":"2020-01-01","open":1500,"high":1500,"low":1500,"close":1500}`, string(data))
}

func TestCandleJSONRoundTrip(t *testing.T) {
	in := Candle{Time: day("1980-01-21"), Open: 820.5, High: 850, Low: 810.25, Close: 845.75}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Candle
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.Equal(t, time.UTC, out.Time.Location())
}

func TestCandleUnmarshalBadDate(t *testing.T) {
	var c Candle
	err := json.Unmarshal([]byte(`{"time":"21-01-1980","open":1,"high":1,"low":1,"close":1}`), &c)
	assert.Error(t, err)
}

func TestWellFormed(t *testing.T) {
	tests := []struct {
		name string
		c    Candle
		ok   bool
	}{
		{"valid", Candle{Open: 10, High: 12, Low: 9, Close: 11}, true},
		{"degenerate", Candle{Open: 10, High: 10, Low: 10, Close: 10}, true},
		{"open above high", Candle{Open: 13, High: 12, Low: 9, Close: 11}, false},
		{"close below low", Candle{Open: 10, High: 12, Low: 9, Close: 8}, false},
		{"negative low", Candle{Open: 1, High: 2, Low: -1, Close: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.c.WellFormed())
		})
	}
}
