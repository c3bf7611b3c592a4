package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Text draws s starting at (x, y), clipped to the region. Wide runes
// advance two columns so East Asian glyphs keep the grid aligned; a
// wide rune that would straddle the right edge is skipped.
func (r Region) Text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.H {
		return
	}
	col := x
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col >= r.W {
			break
		}
		if col >= 0 && col+cw <= r.W {
			r.SetCell(col, y, ch, style)
		}
		col += cw
	}
}

// TextCenter draws s centered horizontally on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	r.Text((r.W-runewidth.StringWidth(s))/2, y, s, style)
}

// TextRight draws s right-aligned on row y
func (r Region) TextRight(y int, s string, style tcell.Style) {
	r.Text(r.W-runewidth.StringWidth(s), y, s, style)
}

// Truncate shortens s to fit width display columns, appending an
// ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	w := 0
	out := make([]rune, 0, len(s))
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if w+cw > width-1 {
			break
		}
		out = append(out, ch)
		w += cw
	}
	return string(out) + "…"
}
