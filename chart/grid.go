package chart

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termchart/render"
)

// Braille dot bit per grid position, rows top to bottom, columns left
// to right. Unicode braille encodes the 2x4 grid in this order.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = '⠀'

// Half block bits, upper and lower
const (
	halfUpper uint8 = 1 << 0
	halfLower uint8 = 1 << 1
)

// markerGrid rasterizes one dataset at sub-cell resolution and then
// flushes accumulated glyphs. Dots landing in the same cell merge with
// bitwise OR, so a braille cell can hold up to eight distinct dots.
type markerGrid struct {
	marker  Marker
	cellsW  int
	cellsH  int
	dotsX   int // dots per cell horizontally
	dotsY   int // dots per cell vertically
	pattern []uint8
}

// newMarkerGrid creates an empty grid covering cellsW x cellsH cells
func newMarkerGrid(marker Marker, cellsW, cellsH int) *markerGrid {
	g := &markerGrid{marker: marker, cellsW: cellsW, cellsH: cellsH, dotsX: 1, dotsY: 1}
	switch marker {
	case MarkerBraille:
		g.dotsX, g.dotsY = 2, 4
	case MarkerHalfBlock:
		g.dotsY = 2
	}
	size := cellsW * cellsH
	if size < 0 {
		size = 0
	}
	g.pattern = make([]uint8, size)
	return g
}

// dotSize returns the grid resolution in dots
func (g *markerGrid) dotSize() (int, int) {
	return g.cellsW * g.dotsX, g.cellsH * g.dotsY
}

// set marks one dot, dropping out-of-range coordinates
func (g *markerGrid) set(dx, dy int) {
	if dx < 0 || dy < 0 {
		return
	}
	cx := dx / g.dotsX
	cy := dy / g.dotsY
	if cx >= g.cellsW || cy >= g.cellsH {
		return
	}
	idx := cy*g.cellsW + cx
	switch g.marker {
	case MarkerBraille:
		g.pattern[idx] |= brailleDots[dy%4][dx%2]
	case MarkerHalfBlock:
		if dy%2 == 0 {
			g.pattern[idx] |= halfUpper
		} else {
			g.pattern[idx] |= halfLower
		}
	default:
		g.pattern[idx] = 1
	}
}

// line marks every dot on the segment from (x0, y0) to (x1, y1) with
// Bresenham interpolation, endpoints included
func (g *markerGrid) line(x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y0 - y1
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// flush writes the accumulated glyphs into the region. Untouched cells
// stay transparent so datasets layer over axes and each other.
func (g *markerGrid) flush(rg render.Region, style tcell.Style) {
	for cy := 0; cy < g.cellsH; cy++ {
		for cx := 0; cx < g.cellsW; cx++ {
			p := g.pattern[cy*g.cellsW+cx]
			if p == 0 {
				continue
			}
			rg.SetCell(cx, cy, g.glyph(p), style)
		}
	}
}

// glyph maps an accumulated cell pattern to its rune
func (g *markerGrid) glyph(p uint8) rune {
	switch g.marker {
	case MarkerBraille:
		return brailleBase + rune(p)
	case MarkerHalfBlock:
		switch p {
		case halfUpper:
			return '▀'
		case halfLower:
			return '▄'
		default:
			return '█'
		}
	case MarkerDot:
		return '•'
	default:
		return '█'
	}
}
