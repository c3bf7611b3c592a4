// FILE: chart/doc.go
// Package chart renders Cartesian datasets into a cell buffer.
//
// Core abstraction is Chart, an immediate-mode widget drawn into a
// render.Region each frame. A chart owns no buffer and retains no
// state between draws; the app holds the data and the render loop.
//
// Design principles:
//   - Immediate mode: configure, validate once with New, Draw per frame
//   - Clip by omission: points outside the axis bounds vanish, they are
//     never clamped onto the edges
//   - Sub-cell resolution: Braille markers pack a 2x4 dot grid into
//     every cell, half blocks pack 1x2, merged with bitwise OR
//   - Fail fast: degenerate axis bounds are a configuration error
//     rejected by New, not a render-time panic
//
// Usage pattern:
//
//	c, err := chart.New(chart.Chart{
//	    Title: "Signal",
//	    Datasets: []chart.Dataset{{
//	        Name:   "sin",
//	        Type:   chart.Line,
//	        Marker: chart.MarkerBraille,
//	        Style:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
//	        Data:   points,
//	    }},
//	    XAxis: chart.Axis{Min: 0, Max: 20, Labels: []string{"0", "10", "20"}},
//	    YAxis: chart.Axis{Min: -20, Max: 20, Labels: []string{"-20", "0", "20"}},
//	})
//	if err != nil {
//	    return err
//	}
//	c.Draw(region)
package chart
