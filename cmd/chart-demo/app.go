package main

import (
	"github.com/lixenwraith/termchart/chart"
	"github.com/lixenwraith/termchart/signal"
)

// Config carries the demo's startup constants. A struct rather than
// package globals so tests can run the app at other rates.
type Config struct {
	Points     int     // Rolling window length per series
	Batch1     int     // Points recycled per tick for the first series
	Batch2     int     // Points recycled per tick for the second series
	WindowSpan float64 // Visible x extent of the animated chart
}

// DefaultConfig returns the standard demo parameters
func DefaultConfig() Config {
	return Config{Points: 200, Batch1: 5, Batch2: 10, WindowSpan: 20}
}

// App holds the demo state: two rolling sine windows plus the visible
// x range, advanced in lockstep once per tick
type App struct {
	cfg    Config
	sin1   *signal.Sine
	sin2   *signal.Sine
	data1  []chart.Point
	data2  []chart.Point
	window [2]float64
}

// NewApp seeds both series with a full window of points
func NewApp(cfg Config) *App {
	sin1 := signal.NewSine(0.2, 3.0, 18.0)
	sin2 := signal.NewSine(0.1, 2.0, 10.0)
	return &App{
		cfg:    cfg,
		sin1:   sin1,
		sin2:   sin2,
		data1:  sin1.Take(cfg.Points),
		data2:  sin2.Take(cfg.Points),
		window: [2]float64{0, cfg.WindowSpan},
	}
}

// OnTick recycles the oldest points of each series and slides the
// visible window one unit right
func (a *App) OnTick() {
	a.data1 = recycle(a.data1, a.cfg.Batch1, a.sin1)
	a.data2 = recycle(a.data2, a.cfg.Batch2, a.sin2)
	a.window[0] += 1.0
	a.window[1] += 1.0
}

// recycle drops the n oldest points and appends n fresh ones in place,
// keeping the slice length and backing array stable
func recycle(data []chart.Point, n int, src *signal.Sine) []chart.Point {
	if n > len(data) {
		n = len(data)
	}
	keep := copy(data, data[n:])
	data = data[:keep]
	for i := 0; i < n; i++ {
		data = append(data, src.Next())
	}
	return data
}
