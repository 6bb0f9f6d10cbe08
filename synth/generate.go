// Package synth generates a plausible weekly gold price series by
// interpolating between historical milestones and layering bounded
// pseudo-random weekly volatility on top.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/rustyeddy/goldhist/market"
)

// DefaultSeed reproduces the canonical dataset.
const DefaultSeed = 42

// driftPerYear extends the curve past the last milestone: 2% per year,
// linear in elapsed days rather than compounded per period.
const driftPerYear = 0.02

// smoothstep applies the cubic ease-in/ease-out 3x^2-2x^3, clamped to [0,1].
func smoothstep(x float64) float64 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}
	return x * x * (3 - 2*x)
}

// interpolate returns the base (pre-volatility) price for t. Between two
// milestones the calendar-day fraction is eased through smoothstep; before
// the first milestone the first price holds; past the last milestone the
// linear drift applies.
func interpolate(t time.Time, ms []Milestone) float64 {
	for i := 0; i < len(ms)-1; i++ {
		d1, p1 := ms[i].Date, ms[i].Price
		d2, p2 := ms[i+1].Date, ms[i+1].Price
		if t.Before(d1) || t.After(d2) {
			continue
		}

		total := d2.Sub(d1).Hours() / 24
		if total == 0 {
			return p1
		}
		f := t.Sub(d1).Hours() / 24 / total
		return p1 + (p2-p1)*smoothstep(f)
	}

	if t.Before(ms[0].Date) {
		return ms[0].Price
	}

	last := ms[len(ms)-1]
	days := t.Sub(last.Date).Hours() / 24
	return last.Price * (1 + days/365*driftPerYear)
}

// Generate produces the weekly series from the first to the last milestone
// date, stepping exactly seven days. The same seed yields an identical
// series; the draw order per week is fixed (volatility, open, high, low,
// close) and must not change.
func Generate(seed int64) market.Series {
	rng := rand.New(rand.NewSource(seed))

	start := Milestones[0].Date
	end := Milestones[len(Milestones)-1].Date

	var out market.Series
	for t := start; !t.After(end); t = t.AddDate(0, 0, 7) {
		price := interpolate(t, Milestones)

		// Typical weekly volatility runs 1-3%.
		vol := uniform(rng, 0.01, 0.03)

		open := price * (1 + uniform(rng, -vol/2, vol/2))
		high := price * (1 + uniform(rng, 0, vol*1.5))
		low := price * (1 - uniform(rng, 0, vol*1.5))
		close := price * (1 + uniform(rng, -vol/2, vol/2))

		high = math.Max(high, math.Max(open, close))
		low = math.Min(low, math.Min(open, close))

		out = append(out, market.New(t, open, high, low, close))
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
