package main

import (
	"fmt"
	"math"

	"github.com/lixenwraith/termweave/play"
	"github.com/lixenwraith/termweave/screen"
	"github.com/lixenwraith/termweave/terminal"
)

// baseEffect carries the delete countdown shared by every demo effect.
type baseEffect struct {
	deleteCount int
}

func (e *baseEffect) DeleteCount() int { return e.deleteCount }

func (e *baseEffect) SetDeleteCount(c int) { e.deleteCount = c }

// bannerEffect cycles a centred title through the palette.
type bannerEffect struct {
	baseEffect
	screen *screen.Screen
	text   string
	row    int
}

func (e *bannerEffect) Update(frame int) {
	colour := 1 + (frame/10)%7
	e.screen.Centre(e.text, e.row, colour, terminal.AttrBold, nil)
}

// clockEffect sweeps an anti-aliased line around a centre point,
// erasing the previous hand each tick.
type clockEffect struct {
	baseEffect
	screen *screen.Screen
	cx, cy float64
	radius float64
	last   float64
	hasArm bool
}

func (e *clockEffect) Update(frame int) {
	if e.hasArm {
		e.screen.Move(e.cx, e.cy)
		e.screen.Draw(e.cx+e.radius*math.Cos(e.last), e.cy+e.radius*math.Sin(e.last)/2,
			' ', terminal.ColourWhite, terminal.ColourBlack, false)
	}

	angle := float64(frame) * math.Pi / 30
	e.screen.Move(e.cx, e.cy)
	e.screen.Draw(e.cx+e.radius*math.Cos(angle), e.cy+e.radius*math.Sin(angle)/2,
		0, terminal.ColourCyan, terminal.ColourBlack, false)
	e.last = angle
	e.hasArm = true
}

// scrollerEffect prints numbered lines at the bottom of the viewport
// and scrolls, exercising the backing buffer.
type scrollerEffect struct {
	baseEffect
	screen *screen.Screen
	line   int
}

func (e *scrollerEffect) Update(frame int) {
	if frame%5 != 0 {
		return
	}
	s := e.screen
	row := s.StartLine() + s.Height() - 1
	if row >= s.BufferHeight()-1 {
		return
	}
	e.line++
	s.Paint(fmt.Sprintf("line %d of the scrolling buffer", e.line), 2, row,
		terminal.ColourGreen, 0, terminal.ColourBlack, false,
		[]screen.PaintStep{{Fg: terminal.ColourYellow, Attr: terminal.AttrBold, Bg: -1}})
	s.Scroll()
}

// boxEffect draws a plotted-character frame around the viewport once.
type boxEffect struct {
	baseEffect
	screen *screen.Screen
	drawn  bool
}

func (e *boxEffect) Update(frame int) {
	if e.drawn {
		return
	}
	s := e.screen
	w := float64(s.Width() - 1)
	h := float64(s.Height() - 1)
	s.Move(0, 0)
	s.Draw(w, 0, '#', terminal.ColourBlue, terminal.ColourBlack, false)
	s.Draw(w, h, '#', terminal.ColourBlue, terminal.ColourBlack, false)
	s.Draw(0, h, '#', terminal.ColourBlue, terminal.ColourBlack, false)
	s.Draw(0, 0, '#', terminal.ColourBlue, terminal.ColourBlack, false)
	e.drawn = true
}

func demoScenes(s *screen.Screen) []play.Scene {
	intro := play.NewSimpleScene([]play.Effect{
		&boxEffect{screen: s},
		&bannerEffect{screen: s, text: "termweave", row: 2},
		&bannerEffect{screen: s, text: "space skips, q quits", row: 4},
		&clockEffect{
			screen: s,
			cx:     float64(s.Width()) / 2,
			cy:     float64(s.Height()) / 2,
			radius: float64(s.Height()) / 2,
		},
	}, 200, true)

	scroller := play.NewSimpleScene([]play.Effect{
		&bannerEffect{screen: s, text: "scrolling buffer", row: 0},
		&scrollerEffect{screen: s},
	}, 300, true)

	return []play.Scene{intro, scroller}
}
