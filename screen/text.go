package screen

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termweave/terminal"
)

// PaintStep overrides the running colours for one character of a Paint
// call. A component of -1 keeps the current running value.
type PaintStep struct {
	Fg   int
	Attr int
	Bg   int
}

// Keep is the PaintStep that changes nothing.
var Keep = PaintStep{Fg: -1, Attr: -1, Bg: -1}

// PrintAt writes text into the pending buffer at (x, y) in buffer
// coordinates. Rows outside the backing buffer are dropped silently;
// negative x truncates the leading characters; text running off the
// right edge is cut to fit. With transparent set, space characters
// leave the existing cell untouched.
func (s *Screen) PrintAt(text string, x, y int, fg, attr, bg int, transparent bool) {
	if y < 0 || y >= s.bufferHeight {
		return
	}

	runes := []rune(text)
	if x < 0 {
		if -x >= len(runes) {
			return
		}
		runes = runes[-x:]
		x = 0
	}
	if x+len(runes) >= s.width {
		if s.width-x <= 0 {
			return
		}
		runes = runes[:s.width-x]
	}

	row := y * s.width
	for i, r := range runes {
		if r == ' ' && transparent {
			continue
		}
		s.pending[row+x+i] = Cell{Ch: r, Fg: fg, Attr: attr, Bg: bg}
	}
}

// Paint writes multi-colour text. colourMap entries apply per character
// and are sticky: an override stays in force for all following
// characters until overridden again. A nil map is plain PrintAt.
func (s *Screen) Paint(text string, x, y int, fg, attr, bg int, transparent bool, colourMap []PaintStep) {
	if colourMap == nil {
		s.PrintAt(text, x, y, fg, attr, bg, transparent)
		return
	}

	for i, r := range []rune(text) {
		if i < len(colourMap) {
			step := colourMap[i]
			if step.Fg >= 0 {
				fg = step.Fg
			}
			if step.Attr >= 0 {
				attr = step.Attr
			}
			if step.Bg >= 0 {
				bg = step.Bg
			}
		}
		s.PrintAt(string(r), x+i, y, fg, attr, bg, transparent)
	}
}

// Centre paints text horizontally centred on row y.
func (s *Screen) Centre(text string, y int, fg, attr int, colourMap []PaintStep) {
	x := (s.width - runewidth.StringWidth(text)) / 2
	s.Paint(text, x, y, fg, attr, terminal.ColourBlack, false, colourMap)
}
