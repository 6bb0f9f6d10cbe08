package market

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() Series {
	return Series{
		{Time: day("1900-06-01"), Open: 20, High: 21, Low: 19, Close: 20.5},
		{Time: day("1950-06-01"), Open: 35, High: 36, Low: 34, Close: 35},
		{Time: day("2000-06-01"), Open: 280, High: 290, Low: 275, Close: 285},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gold-data.json")
	s := sampleSeries()

	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gold-data.json")
	require.NoError(t, sampleSeries().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "[\n  {"), "expected 2-space-indented array, got %q", text[:20])
	assert.Contains(t, text, `"time": "1900-06-01"`)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gold-data.json")
	require.NoError(t, sampleSeries().Save(path))
	require.NoError(t, Series{sampleSeries()[0]}.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sampleSeries().Validate())

	misordered := Series{
		{Time: day("2000-01-01"), Open: 1, High: 2, Low: 0.5, Close: 1.5},
		{Time: day("1999-01-01"), Open: 1, High: 2, Low: 0.5, Close: 1.5},
	}
	assert.Error(t, misordered.Validate())

	duplicate := Series{
		{Time: day("2000-01-01"), Open: 1, High: 2, Low: 0.5, Close: 1.5},
		{Time: day("2000-01-01"), Open: 1, High: 2, Low: 0.5, Close: 1.5},
	}
	assert.Error(t, duplicate.Validate())

	broken := Series{{Time: day("2000-01-01"), Open: 3, High: 2, Low: 0.5, Close: 1.5}}
	assert.Error(t, broken.Validate())
}

func TestFilterYearsInclusive(t *testing.T) {
	filtered := sampleSeries().FilterYears(1950, 2000)

	require.Len(t, filtered, 2)
	assert.Equal(t, 1950, filtered[0].Time.Year())
	assert.Equal(t, 2000, filtered[1].Time.Year())
}

func TestFilterYearsOpenEnds(t *testing.T) {
	s := sampleSeries()

	assert.Len(t, s.FilterYears(0, 0), 3)
	assert.Len(t, s.FilterYears(1950, 0), 2)
	assert.Len(t, s.FilterYears(0, 1950), 2)
}

func TestWindowAndExtremes(t *testing.T) {
	s := sampleSeries()

	w := s.Window(day("1940-01-01"), day("1999-12-31"))
	require.Len(t, w, 1)
	assert.Equal(t, 1950, w[0].Time.Year())

	hi, ok := s.MaxHigh()
	require.True(t, ok)
	assert.Equal(t, 290.0, hi.High)

	lo, ok := s.MinLow()
	require.True(t, ok)
	assert.Equal(t, 19.0, lo.Low)

	_, ok = Series{}.MaxHigh()
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	st := sampleSeries().Stats()

	assert.Equal(t, 3, st.Points)
	assert.Equal(t, 19.0, st.LowestLow)
	assert.Equal(t, 290.0, st.HighestHigh)
	assert.Equal(t, 20.5, st.First.Close)
	assert.Equal(t, 285.0, st.Last.Close)
	assert.InDelta(t, (285.0/20.5-1)*100, st.ReturnPct, 0.0001)
}
