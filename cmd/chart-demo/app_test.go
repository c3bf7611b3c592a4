package main

import (
	"math"
	"testing"
)

func TestWindowAdvancesWithTicks(t *testing.T) {
	app := NewApp(DefaultConfig())

	if app.window[0] != 0 || app.window[1] != 20 {
		t.Fatalf("Expected initial window [0,20], got [%g,%g]", app.window[0], app.window[1])
	}

	for i := 0; i < 20; i++ {
		app.OnTick()
	}

	if app.window[0] != 20 || app.window[1] != 40 {
		t.Errorf("Expected window [20,40] after 20 ticks, got [%g,%g]", app.window[0], app.window[1])
	}
}

func TestSeriesLengthStaysFixed(t *testing.T) {
	app := NewApp(DefaultConfig())

	for i := 0; i < 50; i++ {
		app.OnTick()
	}

	if len(app.data1) != 200 {
		t.Errorf("Expected data1 to stay at 200 points, got %d", len(app.data1))
	}
	if len(app.data2) != 200 {
		t.Errorf("Expected data2 to stay at 200 points, got %d", len(app.data2))
	}
}

func TestRecycleSlidesTheWindow(t *testing.T) {
	app := NewApp(DefaultConfig())
	app.OnTick()

	// data1 drops 5 points at interval 0.2 and appends 5 past the old end
	if math.Abs(app.data1[0].X-1.0) > 1e-9 {
		t.Errorf("Expected data1 to start at x=1.0 after one tick, got %g", app.data1[0].X)
	}
	if math.Abs(app.data1[199].X-40.8) > 1e-9 {
		t.Errorf("Expected data1 to end at x=40.8 after one tick, got %g", app.data1[199].X)
	}

	// data2 drops 10 points at interval 0.1
	if math.Abs(app.data2[0].X-1.0) > 1e-9 {
		t.Errorf("Expected data2 to start at x=1.0 after one tick, got %g", app.data2[0].X)
	}
	if math.Abs(app.data2[199].X-20.9) > 1e-9 {
		t.Errorf("Expected data2 to end at x=20.9 after one tick, got %g", app.data2[199].X)
	}
}

func TestRecycleBatchLargerThanSeries(t *testing.T) {
	cfg := Config{Points: 3, Batch1: 5, Batch2: 5, WindowSpan: 20}
	app := NewApp(cfg)
	app.OnTick()

	if len(app.data1) != 3 {
		t.Errorf("Expected oversized batch to keep length 3, got %d", len(app.data1))
	}
}
