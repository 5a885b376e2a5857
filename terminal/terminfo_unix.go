//go:build unix

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base" // common terminal definitions
	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/termweave/event"
)

// terminfoBackend drives POSIX terminals through capability-resolved
// escape sequences. Output is buffered and flushed once per refresh.
type terminfoBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
	ti      *terminfo.Terminfo
	w       *bufio.Writer
	colours int

	// Cached device state; avoids redundant escape traffic.
	lastFg, lastAttr, lastBg int
	stateValid               bool
	cur                      cursorCache

	parser  *inputParser
	readBuf []byte

	// resized is set by the signal watcher and consumed edge-triggered
	// by HasResized. The watcher must only set this flag; it may run
	// concurrently with an in-flight flush.
	resized atomic.Bool
	sigCh   chan os.Signal
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newTerminfoBackend() (Backend, error) {
	return &terminfoBackend{
		in:      os.Stdin,
		out:     os.Stdout,
		inFd:    int(os.Stdin.Fd()),
		outFd:   int(os.Stdout.Fd()),
		parser:  newInputParser(),
		readBuf: make([]byte, 256),
	}, nil
}

func (b *terminfoBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("terminal: stdin is not a terminal")
	}

	name := os.Getenv("TERM")
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		// Unknown TERM; assume an xterm descendant rather than failing
		ti, err = terminfo.LookupTerminfo("xterm-256color")
		if err != nil {
			return fmt.Errorf("terminal: no capability entry for %q: %w", name, err)
		}
	}
	b.ti = ti
	b.colours = 8
	if ti.Colors >= 256 {
		b.colours = 256
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old

	b.w = bufio.NewWriterSize(b.out, 65536)
	b.w.WriteString(ti.EnterCA)
	b.w.WriteString(ti.HideCursor)
	b.w.WriteString(ti.EnterKeypad)
	b.w.WriteString(mouseOn)
	if err := b.Flush(); err != nil {
		term.Restore(b.inFd, b.oldTerm)
		return err
	}

	b.sigCh = make(chan os.Signal, 1)
	b.stopCh = make(chan struct{})
	b.doneCh = make(chan struct{})
	signal.Notify(b.sigCh, syscall.SIGWINCH)
	go b.watchResize()

	return nil
}

func (b *terminfoBackend) Fini() {
	if b.oldTerm == nil {
		return
	}

	signal.Stop(b.sigCh)
	close(b.stopCh)
	<-b.doneCh

	b.w.WriteString(mouseOff)
	b.w.WriteString(b.ti.ExitKeypad)
	b.w.WriteString(b.ti.AttrOff)
	b.w.WriteString(b.ti.ShowCursor)
	b.w.WriteString(b.ti.ExitCA)
	b.Flush()

	term.Restore(b.inFd, b.oldTerm)
	b.oldTerm = nil
}

// watchResize forwards SIGWINCH into the edge-triggered flag. It performs
// no I/O and no allocation beyond channel receives.
func (b *terminfoBackend) watchResize() {
	defer close(b.doneCh)
	for {
		select {
		case <-b.stopCh:
			return
		case <-b.sigCh:
			b.resized.Store(true)
		}
	}
}

func (b *terminfoBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

func (b *terminfoBackend) Colours() int {
	if b.colours == 0 {
		return 8
	}
	return b.colours
}

func (b *terminfoBackend) RawPrint(text string, x, y int) {
	if b.cur.needsMove(x, y) {
		b.w.WriteString(b.ti.TGoto(x, y))
	}
	b.w.WriteString(text)
	b.cur.advance(x, y, runewidth.StringWidth(text))
}

func (b *terminfoBackend) SetColours(fg, attr, bg int) {
	if b.stateValid && fg == b.lastFg && attr == b.lastAttr && bg == b.lastBg {
		return
	}

	// Attribute first; attribute changes reset colours on some devices
	if !b.stateValid || attr != b.lastAttr {
		b.w.WriteString(b.ti.AttrOff)
		switch attr {
		case AttrBold:
			b.w.WriteString(b.ti.Bold)
		case AttrReverse:
			b.w.WriteString(b.ti.Reverse)
		case AttrUnderline:
			b.w.WriteString(b.ti.Underline)
		}
		b.lastAttr = attr
		b.lastFg = -1
		b.lastBg = -1
	}

	if fg != b.lastFg {
		b.w.WriteString(b.ti.TParm(b.ti.SetFg, fg))
		b.lastFg = fg
	}
	if bg != b.lastBg {
		b.w.WriteString(b.ti.TParm(b.ti.SetBg, bg))
		b.lastBg = bg
	}
	b.stateValid = true
}

func (b *terminfoBackend) Clear() {
	b.w.WriteString(b.ti.Clear)
	b.stateValid = false
	b.cur.invalidate()
	b.Flush()
}

func (b *terminfoBackend) ScrollUp() {
	_, h := b.Size()
	b.w.WriteString(b.ti.TGoto(0, h-1))
	b.w.WriteByte('\n')
	b.cur.invalidate()
}

// Flush pushes buffered output. SIGWINCH may land mid-write; the
// interrupted flush is benign and the next refresh re-attempts output.
func (b *terminfoBackend) Flush() error {
	if err := b.w.Flush(); err != nil {
		if errors.Is(err, unix.EINTR) {
			return nil
		}
		return err
	}
	return nil
}

func (b *terminfoBackend) PollEvent() event.Event {
	if ev := b.parser.next(); ev != nil {
		return ev
	}

	for {
		fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil
		}
		if n == 0 {
			// Nothing pending; may still release an expired lone ESC
			return b.parser.next()
		}

		rn, err := unix.Read(b.inFd, b.readBuf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil
		}
		if rn == 0 {
			return nil
		}
		b.parser.feed(b.readBuf[:rn])
		if ev := b.parser.next(); ev != nil {
			return ev
		}
	}
}

func (b *terminfoBackend) HasResized() bool {
	return b.resized.Swap(false)
}
