package chart

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termchart/layout"
	"github.com/lixenwraith/termchart/render"
)

func mustChart(t *testing.T, cfg Chart) *Chart {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func drawInto(c *Chart, w, h int) *render.Buffer {
	buf := render.NewBuffer(w, h)
	c.Draw(buf.Full())
	return buf
}

// isDataGlyph reports whether a rune can only come from a dataset
func isDataGlyph(r rune) bool {
	if r >= '⠀' && r <= '⣿' {
		return true
	}
	return r == '█' || r == '▀' || r == '▄' || r == '•'
}

func countDataGlyphs(buf *render.Buffer) int {
	count := 0
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cell, _ := buf.GetCell(x, y); isDataGlyph(cell.Rune) {
				count++
			}
		}
	}
	return count
}

func countRune(buf *render.Buffer, r rune) int {
	count := 0
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cell, _ := buf.GetCell(x, y); cell.Rune == r {
				count++
			}
		}
	}
	return count
}

func TestNewRejectsDegenerateBounds(t *testing.T) {
	cases := []struct {
		name string
		cfg  Chart
	}{
		{"equal x bounds", Chart{XAxis: Axis{Min: 5, Max: 5}, YAxis: Axis{Min: 0, Max: 1}}},
		{"inverted x bounds", Chart{XAxis: Axis{Min: 3, Max: 1}, YAxis: Axis{Min: 0, Max: 1}}},
		{"equal y bounds", Chart{XAxis: Axis{Min: 0, Max: 1}, YAxis: Axis{Min: 2, Max: 2}}},
	}
	for _, tc := range cases {
		if _, err := New(tc.cfg); err == nil {
			t.Errorf("Expected error for %s", tc.name)
		}
	}

	if _, err := New(Chart{XAxis: Axis{Min: 0, Max: 1}, YAxis: Axis{Min: -1, Max: 1}}); err != nil {
		t.Errorf("Expected valid bounds to pass, got %v", err)
	}
}

func TestNewDefaultsLegendCaps(t *testing.T) {
	c := mustChart(t, Chart{XAxis: Axis{Min: 0, Max: 1}, YAxis: Axis{Min: 0, Max: 1}})
	if c.LegendMaxW != layout.Ratio(1, 2) || c.LegendMaxH != layout.Ratio(1, 2) {
		t.Error("Expected legend caps to default to half the plot")
	}

	c = mustChart(t, Chart{
		XAxis:      Axis{Min: 0, Max: 1},
		YAxis:      Axis{Min: 0, Max: 1},
		LegendMaxW: layout.Fixed(10),
	})
	if c.LegendMaxW != layout.Fixed(10) {
		t.Error("Expected explicit legend cap to survive New")
	}
}

func TestDrawEmptyDatasetsAxesOnly(t *testing.T) {
	c := mustChart(t, Chart{
		XAxis: Axis{Min: 0, Max: 10, Labels: []string{"0", "5", "10"}},
		YAxis: Axis{Min: 0, Max: 10, Labels: []string{"0", "5", "10"}},
	})
	buf := drawInto(c, 30, 12)

	// Border present
	if cell, _ := buf.GetCell(0, 0); cell.Rune != '┌' {
		t.Errorf("Expected border corner, got %q", cell.Rune)
	}
	if cell, _ := buf.GetCell(29, 11); cell.Rune != '┘' {
		t.Errorf("Expected border corner, got %q", cell.Rune)
	}

	// Axis skeleton present
	if countRune(buf, '└') < 2 {
		t.Error("Expected axis corner inside the border")
	}
	if countRune(buf, '─') == 0 || countRune(buf, '│') == 0 {
		t.Error("Expected axis lines")
	}

	// No dataset glyphs anywhere
	if n := countDataGlyphs(buf); n != 0 {
		t.Errorf("Expected no data glyphs, got %d", n)
	}
}

func TestMappingIsMonotonic(t *testing.T) {
	c := mustChart(t, Chart{XAxis: Axis{Min: 0, Max: 10}, YAxis: Axis{Min: 0, Max: 10}})

	prevCol := -1
	for x := 0.0; x <= 10.0; x += 0.25 {
		col := c.mapX(x, 40)
		if col < prevCol {
			t.Fatalf("Expected column for x=%g to not decrease, got %d after %d", x, col, prevCol)
		}
		prevCol = col
	}
	if c.mapX(0, 40) != 0 || c.mapX(10, 40) != 39 {
		t.Error("Expected Min on the first column and Max on the last")
	}

	prevRow := 1 << 30
	for y := 0.0; y <= 10.0; y += 0.25 {
		row := c.mapY(y, 40)
		if row > prevRow {
			t.Fatalf("Expected row for y=%g to not increase, got %d after %d", y, row, prevRow)
		}
		prevRow = row
	}
	if c.mapY(0, 40) != 39 || c.mapY(10, 40) != 0 {
		t.Error("Expected Min on the bottom row and Max on the top")
	}
}

func TestScatterCornerPoints(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{
			Type:   Scatter,
			Marker: MarkerDot,
			Data:   []Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
		}},
		XAxis: Axis{Min: 0, Max: 10},
		YAxis: Axis{Min: 0, Max: 10},
	})
	buf := drawInto(c, 12, 12)

	// Plot spans (1,1)..(10,10) inside the border
	if cell, _ := buf.GetCell(1, 10); cell.Rune != '•' {
		t.Errorf("Expected minimum corner point at plot bottom-left, got %q", cell.Rune)
	}
	if cell, _ := buf.GetCell(10, 1); cell.Rune != '•' {
		t.Errorf("Expected maximum corner point at plot top-right, got %q", cell.Rune)
	}
}

func TestPointsOutsideBoundsOmitted(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{
			Type:   Scatter,
			Marker: MarkerDot,
			Data: []Point{
				{X: -1, Y: 5}, {X: 11, Y: 5},
				{X: 5, Y: -0.1}, {X: 5, Y: 10.1},
			},
		}},
		XAxis: Axis{Min: 0, Max: 10},
		YAxis: Axis{Min: 0, Max: 10},
	})
	buf := drawInto(c, 12, 12)

	if n := countDataGlyphs(buf); n != 0 {
		t.Errorf("Expected out-of-bounds points to vanish, got %d glyphs", n)
	}
}

func TestTwoPointLineDrawsContinuousStroke(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{
			Type:   Line,
			Marker: MarkerBraille,
			Data:   []Point{{X: 1, Y: 1}, {X: 4, Y: 4}},
		}},
		XAxis: Axis{Min: 0, Max: 5},
		YAxis: Axis{Min: 0, Max: 5},
	})
	buf := drawInto(c, 12, 12)

	isBraille := func(x, y int) bool {
		cell, _ := buf.GetCell(x, y)
		return cell.Rune >= '⠀' && cell.Rune <= '⣿'
	}

	// Endpoint cells for (1,1) and (4,4) on the 10x10 plot
	if !isBraille(3, 8) {
		t.Error("Expected stroke at the (1,1) endpoint cell")
	}
	if !isBraille(8, 3) {
		t.Error("Expected stroke at the (4,4) endpoint cell")
	}

	// Every column between the endpoints carries part of the stroke
	for x := 3; x <= 8; x++ {
		found := false
		for y := 1; y <= 10; y++ {
			if isBraille(x, y) {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected column %d to contain part of the stroke", x)
		}
	}
}

func TestBarReachesTopAtAxisMax(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{
			Type: Bar,
			Data: []Point{{X: 50, Y: 100}},
		}},
		XAxis: Axis{Min: 0, Max: 100},
		YAxis: Axis{Min: 0, Max: 100},
	})
	buf := drawInto(c, 20, 12)

	// Plot is 18x10 at (1,1), x=50 maps to plot column 9
	for y := 1; y <= 10; y++ {
		cell, _ := buf.GetCell(10, y)
		if cell.Rune != '█' {
			t.Errorf("Expected full block at row %d, got %q", y, cell.Rune)
		}
	}
	if cell, _ := buf.GetCell(10, 0); cell.Rune == '█' {
		t.Error("Expected bar to stop at the plot top, not the border")
	}
}

func TestBarHalfCellRounding(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{
			Type: Bar,
			Data: []Point{{X: 25, Y: 95}, {X: 75, Y: 94}},
		}},
		XAxis: Axis{Min: 0, Max: 100},
		YAxis: Axis{Min: 0, Max: 100},
	})
	buf := drawInto(c, 20, 12)

	colA := 1 + c.mapX(25, 18)
	colB := 1 + c.mapX(75, 18)

	// 9.5 cells: nine full blocks topped with a half block
	if cell, _ := buf.GetCell(colA, 1); cell.Rune != '▄' {
		t.Errorf("Expected half block at the 9.5-cell bar top, got %q", cell.Rune)
	}
	if cell, _ := buf.GetCell(colA, 2); cell.Rune != '█' {
		t.Errorf("Expected full block below the half cell, got %q", cell.Rune)
	}

	// 9.4 cells rounds the fraction away
	if cell, _ := buf.GetCell(colB, 1); cell.Rune != ' ' {
		t.Errorf("Expected no glyph above the 9.4-cell bar, got %q", cell.Rune)
	}
	if cell, _ := buf.GetCell(colB, 2); cell.Rune != '█' {
		t.Errorf("Expected full block at the 9.4-cell bar top, got %q", cell.Rune)
	}
}

func TestBarAtMinimumDrawsNothing(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{
			Type: Bar,
			Data: []Point{{X: 50, Y: 0}},
		}},
		XAxis: Axis{Min: 0, Max: 100},
		YAxis: Axis{Min: 0, Max: 100},
	})
	buf := drawInto(c, 20, 12)

	if n := countDataGlyphs(buf); n != 0 {
		t.Errorf("Expected zero-height bar to draw nothing, got %d glyphs", n)
	}
}

func TestLegendPlacement(t *testing.T) {
	base := Chart{
		Datasets: []Dataset{
			{Name: "a", Marker: MarkerDot, Data: []Point{{X: 5, Y: 5}}},
			{Name: "b", Marker: MarkerDot, Data: []Point{{X: 6, Y: 6}}},
		},
		XAxis: Axis{Min: 0, Max: 10},
		YAxis: Axis{Min: 0, Max: 10},
	}

	// Plot is 18x10 at (1,1); the legend box is 3x4
	cases := []struct {
		pos        LegendPosition
		cornerX    int
		cornerY    int
		firstNameX int
		firstNameY int
	}{
		{LegendTopRight, 16, 1, 17, 2},
		{LegendTopLeft, 1, 1, 2, 2},
		{LegendBottomRight, 16, 7, 17, 8},
	}

	for _, tc := range cases {
		cfg := base
		cfg.Legend = tc.pos
		buf := drawInto(mustChart(t, cfg), 20, 12)

		if cell, _ := buf.GetCell(tc.cornerX, tc.cornerY); cell.Rune != '┌' {
			t.Errorf("Position %d: expected legend corner at (%d,%d), got %q",
				tc.pos, tc.cornerX, tc.cornerY, cell.Rune)
		}
		if cell, _ := buf.GetCell(tc.firstNameX, tc.firstNameY); cell.Rune != 'a' {
			t.Errorf("Position %d: expected first name at (%d,%d), got %q",
				tc.pos, tc.firstNameX, tc.firstNameY, cell.Rune)
		}
	}
}

func TestLegendHiddenWhenOversized(t *testing.T) {
	cfg := Chart{
		Datasets: []Dataset{{
			Name:   "absolutely enormous legend name",
			Marker: MarkerDot,
			Data:   []Point{{X: 5, Y: 5}},
		}},
		XAxis: Axis{Min: 0, Max: 10},
		YAxis: Axis{Min: 0, Max: 10},
	}
	buf := drawInto(mustChart(t, cfg), 20, 12)

	// Only the chart border corner remains
	if n := countRune(buf, '┌'); n != 1 {
		t.Errorf("Expected wide legend to be dropped, found %d box corners", n)
	}

	// Too many entries for half the plot height
	cfg.Datasets = []Dataset{
		{Name: "a", Data: []Point{{X: 1, Y: 1}}},
		{Name: "b", Data: []Point{{X: 2, Y: 2}}},
		{Name: "c", Data: []Point{{X: 3, Y: 3}}},
		{Name: "d", Data: []Point{{X: 4, Y: 4}}},
	}
	buf = drawInto(mustChart(t, cfg), 20, 12)
	if n := countRune(buf, '┌'); n != 1 {
		t.Errorf("Expected tall legend to be dropped, found %d box corners", n)
	}
}

func TestLegendIgnoresUnnamedDatasets(t *testing.T) {
	cfg := Chart{
		Datasets: []Dataset{{Marker: MarkerDot, Data: []Point{{X: 5, Y: 5}}}},
		XAxis:    Axis{Min: 0, Max: 10},
		YAxis:    Axis{Min: 0, Max: 10},
	}
	buf := drawInto(mustChart(t, cfg), 20, 12)

	if n := countRune(buf, '┌'); n != 1 {
		t.Errorf("Expected no legend for unnamed datasets, found %d box corners", n)
	}
}

func TestAxisLabelAlignment(t *testing.T) {
	c := mustChart(t, Chart{
		XAxis: Axis{Min: 0, Max: 100, Labels: []string{"0", "50", "100"}},
		YAxis: Axis{Min: -20, Max: 20, Labels: []string{"-20", "0", "20"}},
	})
	buf := drawInto(c, 30, 12)

	read := func(x, y int) rune {
		cell, _ := buf.GetCell(x, y)
		return cell.Rune
	}

	// Y labels right-aligned in a 3-wide gutter: "20" on the top plot
	// row, "-20" on the bottom
	if read(2, 1) != '2' || read(3, 1) != '0' {
		t.Error("Expected top y label '20' right-aligned against the plot")
	}
	if read(1, 9) != '-' || read(2, 9) != '2' || read(3, 9) != '0' {
		t.Error("Expected bottom y label '-20' on the lowest plot row")
	}

	// X labels on the gutter row below the plot: "0" flush left,
	// "100" ending flush right, "50" centered on its tick
	if read(4, 10) != '0' {
		t.Errorf("Expected first x label at the plot's left edge, got %q", read(4, 10))
	}
	if read(26, 10) != '1' || read(28, 10) != '0' {
		t.Error("Expected last x label to end at the plot's right edge")
	}
	if read(15, 10) != '5' || read(16, 10) != '0' {
		t.Error("Expected middle x label centered on its tick column")
	}
}

func TestTitleCenteredOnBorder(t *testing.T) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	c := mustChart(t, Chart{
		Title:      "Bar chart",
		TitleStyle: titleStyle,
		XAxis:      Axis{Min: 0, Max: 1},
		YAxis:      Axis{Min: 0, Max: 1},
	})
	buf := drawInto(c, 20, 5)

	cell, _ := buf.GetCell(5, 0)
	if cell.Rune != 'B' {
		t.Errorf("Expected centered title to start at column 5, got %q", cell.Rune)
	}
	if cell.Style != titleStyle {
		t.Error("Expected title to use the title style")
	}
}

func TestDrawTinyRegions(t *testing.T) {
	c := mustChart(t, Chart{
		Datasets: []Dataset{{Type: Line, Data: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}},
		XAxis:    Axis{Min: 0, Max: 1, Labels: []string{"0", "1"}},
		YAxis:    Axis{Min: 0, Max: 1, Labels: []string{"0", "1"}},
	})

	// None of these may panic
	for _, size := range [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {5, 4}} {
		drawInto(c, size[0], size[1])
	}
}

func TestLiteralChartDegenerateBoundsDrawFrameOnly(t *testing.T) {
	// Built without New, so the render path has to guard the mapping
	c := &Chart{
		Datasets: []Dataset{{Marker: MarkerDot, Data: []Point{{X: 0, Y: 0}}}},
		XAxis:    Axis{Min: 0, Max: 0},
		YAxis:    Axis{Min: 0, Max: 5},
	}
	buf := drawInto(c, 10, 6)

	if cell, _ := buf.GetCell(0, 0); cell.Rune != '┌' {
		t.Error("Expected frame to draw despite degenerate bounds")
	}
	if n := countDataGlyphs(buf); n != 0 {
		t.Errorf("Expected no data glyphs, got %d", n)
	}
}
