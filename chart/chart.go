package chart

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termchart/layout"
	"github.com/lixenwraith/termchart/render"
)

// LegendPosition places the legend box inside the plot area
type LegendPosition uint8

const (
	LegendTopRight LegendPosition = iota
	LegendTopLeft
	LegendBottomRight
	LegendBottomLeft
	LegendHidden
)

// Chart renders Cartesian datasets with a border, axis lines, tick
// labels and an optional legend. Construct with New so degenerate
// axis bounds are rejected up front.
type Chart struct {
	Title    string
	Datasets []Dataset
	XAxis    Axis
	YAxis    Axis

	Border      LineType
	BorderStyle tcell.Style
	TitleStyle  tcell.Style
	AxisStyle   tcell.Style
	LabelStyle  tcell.Style

	// Legend placement. The legend disappears entirely when its box
	// would exceed LegendMaxW or LegendMaxH resolved against the plot
	// area, so it never swallows a small chart.
	Legend     LegendPosition
	LegendMaxW layout.Constraint
	LegendMaxH layout.Constraint
}

// New validates the configuration and fills in defaults. Axis bounds
// with no extent are a configuration error caught here, not a render
// time failure.
func New(c Chart) (*Chart, error) {
	if err := c.XAxis.Validate(); err != nil {
		return nil, fmt.Errorf("chart %q: x %w", c.Title, err)
	}
	if err := c.YAxis.Validate(); err != nil {
		return nil, fmt.Errorf("chart %q: y %w", c.Title, err)
	}
	if c.LegendMaxW == (layout.Constraint{}) {
		c.LegendMaxW = layout.Ratio(1, 2)
	}
	if c.LegendMaxH == (layout.Constraint{}) {
		c.LegendMaxH = layout.Ratio(1, 2)
	}
	return &c, nil
}

// Draw renders the chart into the region. Points outside the axis
// bounds are omitted, never clamped onto the edges. A region too
// small for some part skips that part and draws the rest.
func (c *Chart) Draw(rg render.Region) {
	inner := drawFrame(rg, c.Title, c.Border, c.BorderStyle, c.TitleStyle)
	if inner.W < 1 || inner.H < 1 {
		return
	}

	plot, yArea, xArea := c.reserveLabels(inner)
	if plot.W < 1 || plot.H < 1 {
		return
	}

	c.drawYLabels(yArea, plot)
	c.drawXLabels(xArea, plot)
	c.drawAxisLines(plot)

	// Charts built as literals bypass New, so guard the division here
	if !(c.XAxis.Min < c.XAxis.Max) || !(c.YAxis.Min < c.YAxis.Max) {
		return
	}

	for i := range c.Datasets {
		c.drawDataset(&c.Datasets[i], plot)
	}

	c.drawLegend(plot)
}

// reserveLabels carves the label gutters out of the content area: one
// bottom row for x labels, a left column as wide as the widest y
// label. Absent labels reserve nothing.
func (c *Chart) reserveLabels(inner render.Region) (plot, yArea, xArea render.Region) {
	xLabelH := 0
	if len(c.XAxis.Labels) > 0 {
		xLabelH = 1
	}
	yLabelW := 0
	for _, label := range c.YAxis.Labels {
		if w := runewidth.StringWidth(label); w > yLabelW {
			yLabelW = w
		}
	}

	area := layout.Rect{W: inner.W, H: inner.H}
	rows := layout.Split(area, layout.Vertical, layout.Fill(1), layout.Fixed(xLabelH))
	cols := layout.Split(rows[0], layout.Horizontal, layout.Fixed(yLabelW), layout.Fill(1))
	bottom := layout.Split(rows[1], layout.Horizontal, layout.Fixed(yLabelW), layout.Fill(1))

	plot = inner.Sub(cols[1].X, cols[1].Y, cols[1].W, cols[1].H)
	yArea = inner.Sub(cols[0].X, cols[0].Y, cols[0].W, cols[0].H)
	xArea = inner.Sub(bottom[1].X, bottom[1].Y, bottom[1].W, bottom[1].H)
	return plot, yArea, xArea
}

// drawYLabels right-aligns tick labels in the left gutter, first label
// on the bottom plot row, last on the top. The axis title sits at the
// top of the gutter and loses to a label on collision.
func (c *Chart) drawYLabels(yArea, plot render.Region) {
	if yArea.W < 1 {
		return
	}
	if c.YAxis.Title != "" {
		yArea.Text(0, 0, c.YAxis.Title, c.AxisStyle)
	}
	labels := c.YAxis.Labels
	if len(labels) == 0 {
		return
	}
	if len(labels) == 1 {
		yArea.TextRight(plot.H-1, labels[0], c.LabelStyle)
		return
	}
	for i, label := range labels {
		row := (plot.H - 1) - i*(plot.H-1)/(len(labels)-1)
		yArea.TextRight(row, label, c.LabelStyle)
	}
}

// drawXLabels spreads tick labels along the bottom gutter row: first
// label left-aligned on the plot's left edge, last right-aligned on
// the right edge, the rest centered on their tick column.
func (c *Chart) drawXLabels(xArea, plot render.Region) {
	if xArea.H < 1 {
		return
	}
	if c.XAxis.Title != "" {
		xArea.TextRight(0, c.XAxis.Title, c.AxisStyle)
	}
	labels := c.XAxis.Labels
	if len(labels) == 0 {
		return
	}
	if len(labels) == 1 {
		xArea.TextCenter(0, labels[0], c.LabelStyle)
		return
	}
	for i, label := range labels {
		w := runewidth.StringWidth(label)
		anchor := i * (plot.W - 1) / (len(labels) - 1)
		var x int
		switch {
		case i == 0:
			x = anchor
		case i == len(labels)-1:
			x = anchor - w + 1
		default:
			x = anchor - w/2
		}
		xArea.Text(x, 0, label, c.LabelStyle)
	}
}

// drawAxisLines draws the y axis down the left plot edge and the x
// axis along the bottom, joined at the corner. Datasets draw after
// and may cover edge cells, the bounds mapping is endpoint inclusive.
func (c *Chart) drawAxisLines(plot render.Region) {
	for y := 0; y < plot.H-1; y++ {
		plot.SetCell(0, y, '│', c.AxisStyle)
	}
	for x := 1; x < plot.W; x++ {
		plot.SetCell(x, plot.H-1, '─', c.AxisStyle)
	}
	plot.SetCell(0, plot.H-1, '└', c.AxisStyle)
}

// mapX projects a data x value onto a dot column, endpoint inclusive:
// Min lands on column 0 and Max on the last column
func (c *Chart) mapX(v float64, dots int) int {
	return int((v-c.XAxis.Min)/c.XAxis.span()*float64(dots-1) + 0.5)
}

// mapY projects a data y value onto a dot row. Rows grow downward
// while data grows upward, so the projection inverts.
func (c *Chart) mapY(v float64, dots int) int {
	return (dots - 1) - int((v-c.YAxis.Min)/c.YAxis.span()*float64(dots-1)+0.5)
}

// drawDataset rasterizes one dataset into the plot area
func (c *Chart) drawDataset(ds *Dataset, plot render.Region) {
	if len(ds.Data) == 0 {
		return
	}
	if ds.Type == Bar {
		c.drawBars(ds, plot)
		return
	}

	grid := newMarkerGrid(ds.Marker, plot.W, plot.H)
	dotsW, dotsH := grid.dotSize()

	prevValid := false
	var prevX, prevY int
	for _, p := range ds.Data {
		if !c.XAxis.contains(p.X) || !c.YAxis.contains(p.Y) {
			prevValid = false // An omitted point breaks the stroke
			continue
		}
		dx := c.mapX(p.X, dotsW)
		dy := c.mapY(p.Y, dotsH)
		if ds.Type == Line && prevValid {
			grid.line(prevX, prevY, dx, dy)
		} else {
			grid.set(dx, dy)
		}
		prevX, prevY = dx, dy
		prevValid = true
	}

	grid.flush(plot, ds.Style)
}

// drawBars fills one column per point from the baseline up. The
// fractional cell at the top renders as a lower half block once at
// least half covered, so a bar at the axis maximum reaches the top
// exactly and a bar at the minimum draws nothing.
func (c *Chart) drawBars(ds *Dataset, plot render.Region) {
	for _, p := range ds.Data {
		if !c.XAxis.contains(p.X) || !c.YAxis.contains(p.Y) {
			continue
		}
		col := c.mapX(p.X, plot.W)
		height := (p.Y - c.YAxis.Min) / c.YAxis.span() * float64(plot.H)
		full := int(height)
		for i := 0; i < full; i++ {
			plot.SetCell(col, plot.H-1-i, '█', ds.Style)
		}
		if full < plot.H && height-float64(full) >= 0.5 {
			plot.SetCell(col, plot.H-1-full, '▄', ds.Style)
		}
	}
}

// drawLegend boxes the dataset names in a plot corner. Names render
// in their dataset style so the legend doubles as a color key. An
// oversized legend is dropped rather than clipped.
func (c *Chart) drawLegend(plot render.Region) {
	if c.Legend == LegendHidden {
		return
	}

	maxName := 0
	count := 0
	for i := range c.Datasets {
		name := c.Datasets[i].Name
		if name == "" {
			continue
		}
		count++
		if w := runewidth.StringWidth(name); w > maxName {
			maxName = w
		}
	}
	if count == 0 {
		return
	}

	legendW := maxName + 2
	legendH := count + 2
	if legendW > c.LegendMaxW.Apply(plot.W) || legendH > c.LegendMaxH.Apply(plot.H) {
		return
	}

	var x, y int
	switch c.Legend {
	case LegendTopLeft:
		x, y = 0, 0
	case LegendBottomRight:
		x, y = plot.W-legendW, plot.H-legendH
	case LegendBottomLeft:
		x, y = 0, plot.H-legendH
	default:
		x, y = plot.W-legendW, 0
	}

	box := plot.Sub(x, y, legendW, legendH)
	box.Fill(tcell.StyleDefault)
	content := drawFrame(box, "", LineSingle, c.BorderStyle, c.TitleStyle)

	row := 0
	for i := range c.Datasets {
		if c.Datasets[i].Name == "" {
			continue
		}
		content.Text(0, row, c.Datasets[i].Name, c.Datasets[i].Style)
		row++
	}
}
