package chart

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termchart/render"
)

// LineType selects the box drawing character set for borders
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineRounded                 // ╭─╮│╰╯
	LineDouble                  // ╔═╗║╚╝
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars indexed by LineType: TL, H, TR, V, BL, BR
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0
	boxH  = 1
	boxTR = 2
	boxV  = 3
	boxBL = 4
	boxBR = 5
)

// drawFrame draws a border with an optional centered title on the top
// edge and returns the content region inside it. Regions too small for
// a border yield an empty content region.
func drawFrame(rg render.Region, title string, line LineType, borderStyle, titleStyle tcell.Style) render.Region {
	if rg.W < 2 || rg.H < 2 {
		return rg.Sub(0, 0, 0, 0)
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]

	rg.SetCell(0, 0, chars[boxTL], borderStyle)
	rg.SetCell(rg.W-1, 0, chars[boxTR], borderStyle)
	rg.SetCell(0, rg.H-1, chars[boxBL], borderStyle)
	rg.SetCell(rg.W-1, rg.H-1, chars[boxBR], borderStyle)

	for x := 1; x < rg.W-1; x++ {
		rg.SetCell(x, 0, chars[boxH], borderStyle)
		rg.SetCell(x, rg.H-1, chars[boxH], borderStyle)
	}
	for y := 1; y < rg.H-1; y++ {
		rg.SetCell(0, y, chars[boxV], borderStyle)
		rg.SetCell(rg.W-1, y, chars[boxV], borderStyle)
	}

	if title != "" && rg.W > 4 {
		t := render.Truncate(" "+title+" ", rg.W-2)
		rg.Text((rg.W-runewidth.StringWidth(t))/2, 0, t, titleStyle)
	}

	return rg.Inset(1)
}
