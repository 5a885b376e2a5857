package screen

import (
	"math"

	"github.com/lixenwraith/termweave/terminal"
)

// Glyphs indexed by a 4-bit quadrant-coverage mask: bit 0 = top-left,
// bit 1 = top-right, bit 2 = bottom-left, bit 3 = bottom-right.
const lineChars = " ''^.|/7.\\|Ywbd#"

// snap converts a logical coordinate to a whole cell: rounded to one
// decimal place first, then truncated.
func snap(v float64) int {
	return int(math.Round(v*10) / 10)
}

// mod2 is the non-negative remainder mod 2.
func mod2(v int) int {
	return ((v % 2) + 2) % 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Move places the drawing cursor at a logical cell position. The cursor
// lives in sub-cell space at twice the grid resolution and persists
// across Draw calls for pen-style chained lines.
func (s *Screen) Move(x, y float64) {
	s.drawX = snap(x) * 2
	s.drawY = snap(y) * 2
}

// Draw rasterizes a line from the drawing cursor to (x, y) and leaves
// the cursor at the endpoint. With ch == 0 the line is rendered as
// anti-aliased quadrant glyphs; ch == ' ' erases along the line; any
// other ch is plotted verbatim. thin suppresses the second quadrant
// per step that widens the anti-aliased line.
func (s *Screen) Draw(x, y float64, ch rune, colour, bg int, thin bool) {
	x0, y0 := s.drawX, s.drawY
	x1 := snap(x) * 2
	y1 := snap(y) * 2

	s.drawX, s.drawY = x1, y1

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	if dx == 0 && dy == 0 {
		return
	}

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	xRange := [2]int{0, 1}
	if sx < 0 {
		xRange = [2]int{1, 0}
	}
	yRange := [2]int{0, 1}
	if sy < 0 {
		yRange = [2]int{1, 0}
	}

	cx, cy := x0, y0

	if dx > dy {
		err := dx
		for cx != x1+2*sx {
			var masks [2]int
			px := cx &^ 1
			py := cy &^ 1
			for _, ix := range xRange {
				if cy >= py && cy-py < 2 {
					masks[0] |= (1 << ix) << (2 * mod2(cy))
				} else {
					masks[1] |= (1 << ix) << (2 * mod2(cy))
				}
				if !thin {
					if cy+sy >= py && cy+sy-py < 2 {
						masks[0] |= (1 << ix) << (2 * mod2(cy+sy))
					} else {
						masks[1] |= (1 << ix) << (2 * mod2(cy+sy))
					}
				}
				err -= 2 * dy
				if err < 0 {
					cy += sy
					err += 2 * dx
				}
				cx += sx
			}

			switch {
			case ch == 0:
				s.PrintAt(lineChars[masks[0]:masks[0]+1], px/2, py/2, colour, 0, bg, false)
				if masks[1] != 0 {
					s.PrintAt(lineChars[masks[1]:masks[1]+1], px/2, py/2+sy, colour, 0, bg, false)
				}
			case ch == ' ':
				s.PrintAt(" ", px/2, py/2, terminal.ColourWhite, 0, bg, false)
				s.PrintAt(" ", px/2, py/2+sy, terminal.ColourWhite, 0, bg, false)
			default:
				s.PrintAt(string(ch), px/2, py/2, colour, 0, bg, false)
			}
		}
	} else {
		err := dy
		for cy != y1+2*sy {
			var masks [2]int
			px := cx &^ 1
			py := cy &^ 1
			for _, iy := range yRange {
				if cx >= px && cx-px < 2 {
					masks[0] |= (1 << mod2(cx)) << (2 * iy)
				} else {
					masks[1] |= (1 << mod2(cx)) << (2 * iy)
				}
				if !thin {
					if cx+sx >= px && cx+sx-px < 2 {
						masks[0] |= (1 << mod2(cx+sx)) << (2 * iy)
					} else {
						masks[1] |= (1 << mod2(cx+sx)) << (2 * iy)
					}
				}
				err -= 2 * dx
				if err < 0 {
					cx += sx
					err += 2 * dy
				}
				cy += sy
			}

			switch {
			case ch == 0:
				s.PrintAt(lineChars[masks[0]:masks[0]+1], px/2, py/2, colour, 0, bg, false)
				if masks[1] != 0 {
					s.PrintAt(lineChars[masks[1]:masks[1]+1], px/2+sx, py/2, colour, 0, bg, false)
				}
			case ch == ' ':
				s.PrintAt(" ", px/2, py/2, terminal.ColourWhite, 0, bg, false)
				s.PrintAt(" ", px/2+sx, py/2, terminal.ColourWhite, 0, bg, false)
			default:
				s.PrintAt(string(ch), px/2, py/2, colour, 0, bg, false)
			}
		}
	}
}

// IsVisible reports whether a buffer coordinate falls inside the
// current viewport. The right edge is inclusive on x.
func (s *Screen) IsVisible(x, y int) bool {
	return x >= 0 && x <= s.width &&
		y >= s.startLine && y < s.startLine+s.height
}
