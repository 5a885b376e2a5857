package screen

import "github.com/lixenwraith/termweave/terminal"

// Cell is the atomic display unit: one character plus its colours and
// attribute. Cells are values, replaced wholesale on write.
type Cell struct {
	Ch   rune
	Fg   int
	Attr int
	Bg   int
}

// blank is the cell both buffers reset to.
var blank = Cell{Ch: ' ', Fg: terminal.ColourWhite, Attr: 0, Bg: terminal.ColourBlack}
