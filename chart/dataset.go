package chart

import "github.com/gdamore/tcell/v2"

// Point is one data sample in axis coordinates
type Point struct {
	X, Y float64
}

// GraphType selects how a dataset is rasterized
type GraphType uint8

const (
	// Scatter plots each point independently
	Scatter GraphType = iota
	// Line connects consecutive in-bounds points with strokes
	Line
	// Bar fills columns from the baseline up to each point
	Bar
)

// Marker selects the glyph resolution for Scatter and Line datasets.
// Bar datasets always render with block glyphs.
type Marker uint8

const (
	// MarkerBraille packs a 2x4 dot grid into every cell
	MarkerBraille Marker = iota
	// MarkerDot draws a bullet per touched cell
	MarkerDot
	// MarkerBlock draws a full block per touched cell
	MarkerBlock
	// MarkerHalfBlock splits every cell into an upper and lower half
	MarkerHalfBlock
)

// Dataset is one named series with its drawing configuration. Data is
// read during Draw and never retained, so callers may reuse slices
// between frames.
type Dataset struct {
	Name   string
	Type   GraphType
	Marker Marker
	Style  tcell.Style
	Data   []Point
}
