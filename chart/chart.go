// Package chart renders a gold price series as an ASCII line chart with a
// statistics block, in the terminal.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/goldhist/market"
)

// Default terminal geometry.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e8b923"))
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	plotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#26a641"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
)

// Render draws a close-price line chart: the series is downsampled to at
// most width columns, closes are scaled into height rows, and one '*' marks
// each sampled point. Price labels appear every five rows and eight year
// labels run along the x-axis.
func Render(s market.Series, width, height int) (string, error) {
	if len(s) == 0 {
		return "", fmt.Errorf("empty series, nothing to chart")
	}
	if width < 8 || height < 2 {
		return "", fmt.Errorf("chart geometry %dx%d too small", width, height)
	}

	closes := make([]float64, len(s))
	minClose, maxClose := s[0].Close, s[0].Close
	for i, c := range s {
		closes[i] = c.Close
		if c.Close < minClose {
			minClose = c.Close
		}
		if c.Close > maxClose {
			maxClose = c.Close
		}
	}
	priceRange := maxClose - minClose

	// Every Nth point so the line fits the terminal.
	step := len(closes) / width
	if step < 1 {
		step = 1
	}
	var (
		rows  []int
		years []string
	)
	for i := 0; i < len(closes); i += step {
		row := 0
		if priceRange > 0 {
			row = int((closes[i] - minClose) / priceRange * float64(height-1))
		}
		rows = append(rows, row)
		years = append(years, s[i].Time.Format("2006"))
	}

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", len(rows)))
	}
	for i, row := range rows {
		grid[height-1-row][i] = '*'
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Gold Price (XAU/USD) Historical Chart"))
	b.WriteByte('\n')
	b.WriteString(axisStyle.Render(strings.Repeat("=", len(rows)+10)))
	b.WriteByte('\n')

	for i := 0; i < height; i++ {
		if i%5 == 0 {
			priceAtRow := maxClose - float64(i)/float64(height-1)*priceRange
			b.WriteString(labelStyle.Render(fmt.Sprintf("$%7.0f ", priceAtRow)))
		} else {
			b.WriteString(strings.Repeat(" ", 9))
		}
		b.WriteString(axisStyle.Render("|"))
		b.WriteString(plotStyle.Render(string(grid[i])))
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", 9))
	b.WriteString(axisStyle.Render("+" + strings.Repeat("-", len(rows))))
	b.WriteByte('\n')
	b.WriteString(yearAxis(years))
	b.WriteByte('\n')

	return b.String(), nil
}

// yearAxis lays out up to eight evenly spaced year labels under the chart.
func yearAxis(years []string) string {
	const labels = 8

	interval := len(years) / labels
	if interval < 1 {
		interval = 1
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 10))
	for i := 0; i < labels; i++ {
		idx := i * interval
		if idx >= len(years) {
			break
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", interval, years[idx])))
	}
	return strings.TrimRight(b.String(), " ")
}
