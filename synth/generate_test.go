package synth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothstepBoundaries(t *testing.T) {
	assert.Equal(t, 0.0, smoothstep(0))
	assert.Equal(t, 1.0, smoothstep(1))
	assert.Equal(t, 0.5, smoothstep(0.5))

	// Clamped outside [0,1].
	assert.Equal(t, 0.0, smoothstep(-3))
	assert.Equal(t, 1.0, smoothstep(2))
}

func TestInterpolateAtMilestones(t *testing.T) {
	for _, m := range Milestones {
		assert.InDelta(t, m.Price, interpolate(m.Date, Milestones), 1e-9,
			"milestone %s", m.Date.Format("2006-01-02"))
	}
}

func TestInterpolateBeforeFirstMilestone(t *testing.T) {
	early := Milestones[0].Date.AddDate(-1, 0, 0)
	assert.Equal(t, Milestones[0].Price, interpolate(early, Milestones))
}

func TestInterpolateDriftPastLastMilestone(t *testing.T) {
	last := Milestones[len(Milestones)-1]

	// Exactly one year out: 2700 * 1.02 = 2754, linear not compounded.
	oneYear := last.Date.AddDate(0, 0, 365)
	assert.InDelta(t, 2754.0, interpolate(oneYear, Milestones), 1e-9)

	twoYears := last.Date.AddDate(0, 0, 730)
	assert.InDelta(t, last.Price*1.04, interpolate(twoYears, Milestones), 1e-9)
}

func TestInterpolateMidpointEased(t *testing.T) {
	// Halfway through a bracket smoothstep(0.5)=0.5, so the midpoint value
	// equals the linear midpoint.
	d1, d2 := Milestones[0], Milestones[1]
	days := int(d2.Date.Sub(d1.Date).Hours() / 24)
	mid := d1.Date.AddDate(0, 0, days/2)
	if days%2 == 0 {
		want := d1.Price + (d2.Price-d1.Price)*0.5
		assert.InDelta(t, want, interpolate(mid, Milestones), 1e-9)
	}

	// A quarter of the way the eased value lags the linear one.
	quarter := d1.Date.AddDate(0, 0, days/4)
	linear := d1.Price + (d2.Price-d1.Price)*float64(days/4)/float64(days)
	assert.Less(t, interpolate(quarter, Milestones), linear)
}

func TestGenerateOHLCInvariant(t *testing.T) {
	series := Generate(DefaultSeed)
	require.NotEmpty(t, series)

	for i, c := range series {
		assert.True(t, c.WellFormed(),
			"record %d (%s): o=%v h=%v l=%v c=%v", i, c.Time, c.Open, c.High, c.Low, c.Close)
		assert.GreaterOrEqual(t, c.Low, 0.0)
	}
}

func TestGenerateWeeklySpacing(t *testing.T) {
	series := Generate(DefaultSeed)

	for i := 1; i < len(series); i++ {
		assert.Equal(t, 7*24*time.Hour, series[i].Time.Sub(series[i-1].Time),
			"records %d..%d", i-1, i)
	}
}

func TestGenerateDateRange(t *testing.T) {
	series := Generate(DefaultSeed)
	require.NotEmpty(t, series)

	first := Milestones[0].Date
	last := Milestones[len(Milestones)-1].Date

	assert.Equal(t, first, series[0].Time)
	assert.False(t, series[len(series)-1].Time.After(last))
	assert.Less(t, last.Sub(series[len(series)-1].Time), 7*24*time.Hour)
}

func TestGenerateDeterminism(t *testing.T) {
	a := Generate(DefaultSeed)
	b := Generate(DefaultSeed)
	assert.Equal(t, a, b)

	aj, err := json.MarshalIndent(a, "", "  ")
	require.NoError(t, err)
	bj, err := json.MarshalIndent(b, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, aj, bj)
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	assert.NotEqual(t, Generate(42), Generate(43))
}

func TestGenerateTracksMilestoneLevels(t *testing.T) {
	series := Generate(DefaultSeed)

	// Weekly volatility is at most 4.5% around the base curve, so the close
	// nearest a milestone date must sit near the milestone price.
	for _, m := range []Milestone{Milestones[2], Milestones[10]} { // 1980 and 2011 peaks
		var nearest = series[0]
		for _, c := range series {
			if absDays(c.Time, m.Date) < absDays(nearest.Time, m.Date) {
				nearest = c
			}
		}
		assert.InEpsilon(t, m.Price, nearest.Close, 0.10,
			"near milestone %s", m.Date.Format("2006-01-02"))
	}
}

func absDays(a, b time.Time) float64 {
	d := a.Sub(b).Hours() / 24
	if d < 0 {
		return -d
	}
	return d
}
