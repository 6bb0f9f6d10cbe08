package synth

import "time"

// Milestone anchors the synthetic curve to a real historical price level.
type Milestone struct {
	Date  time.Time
	Price float64
}

// Milestones traces gold from the end of the gold standard through 2025:
// the 1980 spike, the two-decade bear market bottoming in 1999, the
// 2001-2011 bull run, the 2013-2015 correction and the post-2019 climb.
var Milestones = []Milestone{
	{date("1971-01-04"), 35.0},
	{date("1974-12-30"), 195.0},
	{date("1980-01-21"), 850.0}, // January 1980 spike
	{date("1982-06-21"), 300.0},
	{date("1985-02-25"), 285.0},
	{date("1999-08-23"), 252.0}, // multi-decade bottom
	{date("2001-04-02"), 255.0},
	{date("2005-12-12"), 510.0},
	{date("2008-03-17"), 1000.0},
	{date("2008-10-27"), 720.0}, // financial crisis dip
	{date("2011-09-05"), 1895.0},
	{date("2013-04-15"), 1360.0},
	{date("2015-12-17"), 1050.0},
	{date("2016-07-06"), 1360.0},
	{date("2019-09-04"), 1550.0},
	{date("2020-08-06"), 2067.0}, // COVID peak
	{date("2021-03-08"), 1680.0},
	{date("2022-03-08"), 2050.0},
	{date("2022-09-28"), 1620.0},
	{date("2023-12-04"), 2050.0},
	{date("2024-04-12"), 2350.0},
	{date("2025-01-06"), 2650.0},
	{date("2025-11-28"), 2700.0},
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
