package main

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termchart/chart"
	"github.com/lixenwraith/termchart/layout"
	"github.com/lixenwraith/termchart/render"
)

var (
	styleAxis    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleCyan    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleYellow  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlue    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleMagenta = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

// draw renders the four demo panes: the animated sine chart with a
// fixed-width bar chart beside it on top, a line chart and a scatter
// chart below
func draw(app *App, root render.Region) error {
	full := layout.Rect{W: root.W, H: root.H}
	rows := layout.Split(full, layout.Vertical, layout.Fill(1), layout.Fill(1))
	top := layout.Split(rows[0], layout.Horizontal, layout.Fill(1), layout.Fixed(29))
	bottom := layout.Split(rows[1], layout.Horizontal, layout.Fill(1), layout.Fill(1))

	if err := drawAnimatedChart(app, regionFor(root, top[0])); err != nil {
		return err
	}
	if err := drawBarChart(regionFor(root, top[1])); err != nil {
		return err
	}
	if err := drawLineChart(regionFor(root, bottom[0])); err != nil {
		return err
	}
	return drawScatterChart(regionFor(root, bottom[1]))
}

func regionFor(root render.Region, rc layout.Rect) render.Region {
	return root.Sub(rc.X, rc.Y, rc.W, rc.H)
}

// formatLabel renders an axis value the shortest way, "20" not "20.000000"
func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func drawAnimatedChart(app *App, rg render.Region) error {
	mid := (app.window[0] + app.window[1]) / 2
	c, err := chart.New(chart.Chart{
		Datasets: []chart.Dataset{
			{Name: "data2", Type: chart.Scatter, Marker: chart.MarkerDot, Style: styleCyan, Data: app.data1},
			{Name: "data3", Type: chart.Scatter, Marker: chart.MarkerBraille, Style: styleYellow, Data: app.data2},
		},
		XAxis: chart.Axis{
			Title: "X Axis",
			Min:   app.window[0],
			Max:   app.window[1],
			Labels: []string{
				formatLabel(app.window[0]),
				formatLabel(mid),
				formatLabel(app.window[1]),
			},
		},
		YAxis: chart.Axis{
			Title:  "Y Axis",
			Min:    -20,
			Max:    20,
			Labels: []string{"-20", "0", "20"},
		},
		AxisStyle:  styleAxis,
		LabelStyle: styleAxis,
	})
	if err != nil {
		return err
	}
	c.Draw(rg)
	return nil
}

func drawBarChart(rg render.Region) error {
	c, err := chart.New(chart.Chart{
		Title: "Bar chart",
		Datasets: []chart.Dataset{{
			Type:   chart.Bar,
			Marker: chart.MarkerHalfBlock,
			Style:  styleBlue,
			Data:   barData,
		}},
		XAxis:      chart.Axis{Min: 0, Max: 100, Labels: []string{"0", "50", "100.0"}},
		YAxis:      chart.Axis{Min: 0, Max: 100, Labels: []string{"0", "50", "100.0"}},
		TitleStyle: styleTitle,
		AxisStyle:  styleAxis,
		LabelStyle: styleAxis,
	})
	if err != nil {
		return err
	}
	c.Draw(rg)
	return nil
}

func drawLineChart(rg render.Region) error {
	c, err := chart.New(chart.Chart{
		Title: "Line chart",
		Datasets: []chart.Dataset{{
			Name:   "Line from only 2 points",
			Type:   chart.Line,
			Marker: chart.MarkerBraille,
			Style:  styleYellow,
			Data:   []chart.Point{{X: 1, Y: 1}, {X: 4, Y: 4}},
		}},
		XAxis: chart.Axis{
			Title:  "X Axis",
			Min:    0,
			Max:    5,
			Labels: []string{"0", "2.5", "5.0"},
		},
		YAxis: chart.Axis{
			Title:  "Y Axis",
			Min:    0,
			Max:    5,
			Labels: []string{"0", "2.5", "5.0"},
		},
		Legend:     chart.LegendTopLeft,
		TitleStyle: styleTitle,
		AxisStyle:  styleAxis,
		LabelStyle: styleAxis,
	})
	if err != nil {
		return err
	}
	c.Draw(rg)
	return nil
}

func drawScatterChart(rg render.Region) error {
	c, err := chart.New(chart.Chart{
		Title: "Scatter chart",
		Datasets: []chart.Dataset{
			{Name: "Heavy", Type: chart.Scatter, Marker: chart.MarkerDot, Style: styleYellow, Data: heavyPayloadData},
			{Name: "Medium", Type: chart.Scatter, Marker: chart.MarkerBraille, Style: styleMagenta, Data: mediumPayloadData},
			{Name: "Small", Type: chart.Scatter, Marker: chart.MarkerDot, Style: styleCyan, Data: smallPayloadData},
		},
		XAxis: chart.Axis{
			Title:  "Year",
			Min:    1960,
			Max:    2020,
			Labels: []string{"1960", "1990", "2020"},
		},
		YAxis: chart.Axis{
			Title:  "Cost",
			Min:    0,
			Max:    75000,
			Labels: []string{"0", "37 500", "75 000"},
		},
		TitleStyle: styleTitle,
		AxisStyle:  styleAxis,
		LabelStyle: styleAxis,
	})
	if err != nil {
		return err
	}
	c.Draw(rg)
	return nil
}
