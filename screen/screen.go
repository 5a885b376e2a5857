// Package screen implements the double-buffered character grid and its
// drawing surface. All drawing calls mutate a pending buffer; Refresh
// diffs pending against committed and drives the backend with the
// minimum necessary device calls.
package screen

import (
	"fmt"

	"github.com/lixenwraith/termweave/event"
	"github.com/lixenwraith/termweave/terminal"
)

// Screen owns the committed/pending buffer pair and the viewport over
// the scrollable backing buffer. It is single-threaded: one goroutine
// draws, refreshes and polls.
type Screen struct {
	backend terminal.Backend

	width        int
	height       int
	bufferHeight int

	// Contiguous row-major grids, bufferHeight*width cells each.
	// committed mirrors the device; pending receives drawing calls.
	committed []Cell
	pending   []Cell

	startLine     int
	lastStartLine int

	// Drawing cursor in sub-cell coordinates (2x cell resolution).
	drawX int
	drawY int
}

// New wraps an initialised backend in a Screen. bufferHeight below the
// visible height is raised to it, so the viewport invariant holds.
func New(backend terminal.Backend, bufferHeight int) (*Screen, error) {
	w, h := backend.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("screen: backend reports %dx%d size", w, h)
	}
	if bufferHeight < h {
		bufferHeight = h
	}

	s := &Screen{
		backend:      backend,
		width:        w,
		height:       h,
		bufferHeight: bufferHeight,
		committed:    make([]Cell, bufferHeight*w),
		pending:      make([]Cell, bufferHeight*w),
	}
	s.resetBuffers()
	return s, nil
}

func (s *Screen) Width() int { return s.width }

func (s *Screen) Height() int { return s.height }

func (s *Screen) BufferHeight() int { return s.bufferHeight }

func (s *Screen) StartLine() int { return s.startLine }

func (s *Screen) Colours() int { return s.backend.Colours() }

func (s *Screen) resetBuffers() {
	for i := range s.committed {
		s.committed[i] = blank
		s.pending[i] = blank
	}
	s.startLine = 0
	s.lastStartLine = 0
}

// Scroll moves the viewport down one line in the backing buffer. No
// device I/O happens until the next Refresh.
func (s *Screen) Scroll() {
	if s.startLine < s.bufferHeight-s.height {
		s.startLine++
	}
}

// Clear blanks both buffers in place, resets the viewport and issues a
// single physical clear.
func (s *Screen) Clear() {
	s.backend.SetColours(terminal.ColourWhite, 0, terminal.ColourBlack)
	s.backend.Clear()
	s.resetBuffers()
}

// Refresh reconciles pending against committed. Accumulated Scroll calls
// become physical one-line scrolls first, then every viewport cell that
// differs is re-emitted. Cells outside the viewport are never diffed.
func (s *Screen) Refresh() error {
	for i := s.lastStartLine; i < s.startLine; i++ {
		s.backend.ScrollUp()
	}
	s.lastStartLine = s.startLine

	for y := 0; y < s.height; y++ {
		row := (y + s.startLine) * s.width
		for x := 0; x < s.width; x++ {
			cell := s.pending[row+x]
			if s.committed[row+x] == cell {
				continue
			}
			s.backend.SetColours(cell.Fg, cell.Attr, cell.Bg)
			s.backend.RawPrint(string(cell.Ch), x, y)
			s.committed[row+x] = cell
		}
	}
	return s.backend.Flush()
}

// GetFrom returns the committed cell at a buffer coordinate: only what
// has actually been rendered, not pending writes. Out-of-buffer
// coordinates return a char code of -1.
func (s *Screen) GetFrom(x, y int) (ch int, fg, attr, bg int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.bufferHeight {
		return -1, 0, 0, 0
	}
	c := s.committed[y*s.width+x]
	return int(c.Ch), c.Fg, c.Attr, c.Bg
}

// GetEvent polls the backend for the next input event without waiting.
func (s *Screen) GetEvent() event.Event {
	return s.backend.PollEvent()
}

// HasResized reports an edge-triggered resize check: true at most once
// per underlying resize.
func (s *Screen) HasResized() bool {
	return s.backend.HasResized()
}
