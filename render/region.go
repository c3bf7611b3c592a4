package render

import "github.com/gdamore/tcell/v2"

// Region is a clipped rectangular view into a Buffer. Coordinates
// passed to drawing methods are relative to the region origin, and
// writes outside the region are dropped. Regions are values, cheap
// to pass and subdivide.
type Region struct {
	buf  *Buffer
	X, Y int
	W, H int
}

// Sub returns a sub-region clipped to this region's bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{buf: r.buf, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns the region shrunk by n cells on every side
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// SetCell writes a cell at region-relative coordinates
func (r Region) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.buf.SetCell(r.X+x, r.Y+y, ch, style)
}

// GetCell reads a cell at region-relative coordinates
func (r Region) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return Cell{}, false
	}
	return r.buf.GetCell(r.X+x, r.Y+y)
}

// Fill covers the region with spaces in the given style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.buf.SetCell(r.X+x, r.Y+y, ' ', style)
		}
	}
}
