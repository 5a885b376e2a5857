package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termweave/event"
)

// basicBackend renders through tcell's portable screen. It is the
// lowest-common-denominator variant: no mouse reporting, colour depth
// capped by whatever tcell negotiates with the terminal database.
type basicBackend struct {
	scr     tcell.Screen
	style   tcell.Style
	resized bool
}

func newBasicBackend() (Backend, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &basicBackend{scr: scr}, nil
}

func (b *basicBackend) Init() error {
	if err := b.scr.Init(); err != nil {
		return err
	}
	b.style = tcell.StyleDefault
	return nil
}

func (b *basicBackend) Fini() {
	b.scr.Fini()
}

func (b *basicBackend) Size() (int, int) {
	return b.scr.Size()
}

func (b *basicBackend) Colours() int {
	n := b.scr.Colors()
	if n >= 256 {
		return 256
	}
	return 8
}

func (b *basicBackend) SetColours(fg, attr, bg int) {
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(fg)).
		Background(tcell.PaletteColor(bg))
	switch attr {
	case AttrBold:
		st = st.Bold(true)
	case AttrReverse:
		st = st.Reverse(true)
	case AttrUnderline:
		st = st.Underline(true)
	}
	b.style = st
}

func (b *basicBackend) RawPrint(text string, x, y int) {
	col := x
	for _, r := range text {
		b.scr.SetContent(col, y, r, nil, b.style)
		col += runewidth.RuneWidth(r)
	}
}

func (b *basicBackend) Clear() {
	b.scr.Clear()
}

// ScrollUp shifts the whole screen content one row up in software.
// tcell owns the physical terminal, so hardware scroll regions are
// not available here.
func (b *basicBackend) ScrollUp() {
	w, h := b.scr.Size()
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, comb, st, _ := b.scr.GetContent(x, y)
			b.scr.SetContent(x, y-1, ch, comb, st)
		}
	}
	for x := 0; x < w; x++ {
		b.scr.SetContent(x, h-1, ' ', nil, tcell.StyleDefault)
	}
}

func (b *basicBackend) Flush() error {
	b.scr.Show()
	return nil
}

func (b *basicBackend) PollEvent() event.Event {
	for b.scr.HasPendingEvent() {
		ev := b.scr.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			b.resized = true
		case *tcell.EventKey:
			if code, ok := basicKeyCode(tev); ok {
				return event.KeyboardEvent{KeyCode: code}
			}
		}
	}
	return nil
}

func (b *basicBackend) HasResized() bool {
	r := b.resized
	b.resized = false
	return r
}

// basicKeyCode folds tcell's key enumeration onto the portable codes.
func basicKeyCode(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return int(ev.Rune()), true
	case tcell.KeyEnter:
		return 10, true
	case tcell.KeyEscape:
		return event.KeyEscape, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return event.KeyBack, true
	case tcell.KeyTab, tcell.KeyBacktab:
		return event.KeyTab, true
	case tcell.KeyUp:
		return event.KeyUp, true
	case tcell.KeyDown:
		return event.KeyDown, true
	case tcell.KeyLeft:
		return event.KeyLeft, true
	case tcell.KeyRight:
		return event.KeyRight, true
	case tcell.KeyHome:
		return event.KeyHome, true
	case tcell.KeyEnd:
		return event.KeyEnd, true
	case tcell.KeyPgUp:
		return event.KeyPageUp, true
	case tcell.KeyPgDn:
		return event.KeyPageDown, true
	case tcell.KeyInsert:
		return event.KeyInsert, true
	case tcell.KeyDelete:
		return event.KeyDelete, true
	case tcell.KeyPrint:
		return event.KeyPrintScreen, true
	default:
		if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF24 {
			return event.KeyF1 - int(k-tcell.KeyF1), true
		}
		if r := ev.Rune(); r != 0 {
			return int(r), true
		}
		return 0, false
	}
}
