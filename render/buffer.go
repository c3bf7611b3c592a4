package render

import "github.com/gdamore/tcell/v2"

// Cell is a single screen cell. The zero Style is the terminal default.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Patch is one changed cell reported by Diff
type Patch struct {
	X, Y int
	Cell Cell
}

var blank = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Buffer is a row-major cell grid sized to the terminal. Writes
// outside the grid are dropped silently so callers never bounds-check.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer. Negative dimensions clamp to zero.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts dimensions and clears content. Capacity is reused
// when the new size fits, so per-frame resizes to the same dimensions
// do not allocate.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds checks if coordinates are within the buffer
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetCell writes a cell, silently dropping out-of-bounds writes
func (b *Buffer) SetCell(x, y int, ch rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ch, Style: style}
}

// GetCell reads a cell, reporting whether the coordinates were in bounds
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Diff returns the cells that differ from prev, in row-major order.
// A nil or differently sized prev reports every cell, which forces a
// full repaint after a resize.
func (b *Buffer) Diff(prev *Buffer) []Patch {
	if prev == nil || prev.width != b.width || prev.height != b.height {
		patches := make([]Patch, 0, len(b.cells))
		for y := 0; y < b.height; y++ {
			row := y * b.width
			for x := 0; x < b.width; x++ {
				patches = append(patches, Patch{X: x, Y: y, Cell: b.cells[row+x]})
			}
		}
		return patches
	}

	var patches []Patch
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			if b.cells[row+x] != prev.cells[row+x] {
				patches = append(patches, Patch{X: x, Y: y, Cell: b.cells[row+x]})
			}
		}
	}
	return patches
}

// Full returns a region covering the whole buffer
func (b *Buffer) Full() Region {
	return Region{buf: b, W: b.width, H: b.height}
}
