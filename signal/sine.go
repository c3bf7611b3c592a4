// Package signal generates synthetic data series for charts.
package signal

import (
	"math"

	"github.com/lixenwraith/termchart/chart"
)

// Sine produces points along sin(x/period)*scale, advancing x by a
// fixed interval per point. State is just the cursor, so a fresh
// generator restarts the sequence from zero.
type Sine struct {
	x        float64
	interval float64
	period   float64
	scale    float64
}

// NewSine creates a generator positioned at x = 0
func NewSine(interval, period, scale float64) *Sine {
	return &Sine{interval: interval, period: period, scale: scale}
}

// Next produces the point at the cursor and advances
func (s *Sine) Next() chart.Point {
	p := chart.Point{X: s.x, Y: math.Sin(s.x/s.period) * s.scale}
	s.x += s.interval
	return p
}

// Take produces the next n points as a batch
func (s *Sine) Take(n int) []chart.Point {
	points := make([]chart.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, s.Next())
	}
	return points
}
