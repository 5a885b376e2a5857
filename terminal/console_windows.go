//go:build windows

package terminal

import (
	"fmt"
	"unicode/utf16"
	"unsafe"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/windows"

	"github.com/lixenwraith/termweave/event"
)

// Console APIs absent from x/sys/windows.
var (
	kernel32                       = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTextAttribute    = kernel32.NewProc("SetConsoleTextAttribute")
	procReadConsoleInput           = kernel32.NewProc("ReadConsoleInputW")
	procGetNumberOfConsoleInputEvt = kernel32.NewProc("GetNumberOfConsoleInputEvents")
	procFillConsoleOutputCharacter = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute = kernel32.NewProc("FillConsoleOutputAttribute")
	procScrollConsoleScreenBuffer  = kernel32.NewProc("ScrollConsoleScreenBufferW")
	procSetConsoleCursorInfo       = kernel32.NewProc("SetConsoleCursorInfo")
	procGetConsoleCursorInfo       = kernel32.NewProc("GetConsoleCursorInfo")
)

const (
	keyEvent              = 0x0001
	mouseEvent            = 0x0002
	windowBufferSizeEvent = 0x0004

	fromLeft1stButton = 0x0001
	rightmostButton   = 0x0002
	doubleClickFlag   = 0x0002
	mouseMovedFlag    = 0x0001
	mouseWheeledFlag  = 0x0004
)

type inputRecord struct {
	eventType uint16
	_         uint16
	data      [16]byte
}

type keyEventRecord struct {
	keyDown         int32
	repeatCount     uint16
	virtualKeyCode  uint16
	virtualScanCode uint16
	unicodeChar     uint16
	controlKeyState uint32
}

type mouseEventRecord struct {
	mousePosition   windows.Coord
	buttonState     uint32
	controlKeyState uint32
	eventFlags      uint32
}

type consoleCursorInfo struct {
	size    uint32
	visible int32
}

type charInfo struct {
	char uint16
	attr uint16
}

// ANSI colour number to console nibble. The console swaps the red and
// blue bits relative to the ANSI ordering.
var consoleColours = [8]uint16{0, 4, 2, 6, 1, 5, 3, 7}

// consoleBackend drives the legacy Windows console through the Win32
// screen-buffer API. No escape sequences are emitted at all.
type consoleBackend struct {
	in  windows.Handle
	out windows.Handle

	oldInMode  uint32
	oldOutMode uint32
	oldCursor  consoleCursorInfo
	oldAttr    uint16

	attr      uint16
	attrValid bool
	cur       cursorCache

	lastW, lastH int
	resized      bool
	mapAll       bool

	queue []event.Event
}

func newConsoleBackend() (Backend, error) {
	return &consoleBackend{}, nil
}

func (b *consoleBackend) Init() error {
	in, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return err
	}
	b.in, b.out = in, out

	if err := windows.GetConsoleMode(in, &b.oldInMode); err != nil {
		return fmt.Errorf("terminal: stdin is not a console: %w", err)
	}
	if err := windows.GetConsoleMode(out, &b.oldOutMode); err != nil {
		return fmt.Errorf("terminal: stdout is not a console: %w", err)
	}

	inMode := uint32(windows.ENABLE_MOUSE_INPUT | windows.ENABLE_WINDOW_INPUT | windows.ENABLE_EXTENDED_FLAGS)
	if err := windows.SetConsoleMode(in, inMode); err != nil {
		return err
	}
	if err := windows.SetConsoleMode(out, windows.ENABLE_PROCESSED_OUTPUT); err != nil {
		windows.SetConsoleMode(in, b.oldInMode)
		return err
	}

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(out, &info); err != nil {
		return err
	}
	b.oldAttr = info.Attributes
	b.lastW = int(info.Window.Right-info.Window.Left) + 1
	b.lastH = int(info.Window.Bottom-info.Window.Top) + 1

	procGetConsoleCursorInfo.Call(uintptr(out), uintptr(unsafe.Pointer(&b.oldCursor)))
	hidden := consoleCursorInfo{size: b.oldCursor.size, visible: 0}
	if hidden.size == 0 {
		hidden.size = 25
	}
	procSetConsoleCursorInfo.Call(uintptr(out), uintptr(unsafe.Pointer(&hidden)))

	return nil
}

func (b *consoleBackend) Fini() {
	procSetConsoleTextAttribute.Call(uintptr(b.out), uintptr(b.oldAttr))
	procSetConsoleCursorInfo.Call(uintptr(b.out), uintptr(unsafe.Pointer(&b.oldCursor)))
	windows.SetConsoleMode(b.in, b.oldInMode)
	windows.SetConsoleMode(b.out, b.oldOutMode)
}

func (b *consoleBackend) Size() (int, int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return 80, 24
	}
	return int(info.Window.Right-info.Window.Left) + 1,
		int(info.Window.Bottom-info.Window.Top) + 1
}

// Colours reports 8: the legacy console exposes 16 attribute colours,
// of which the upper half is reached through the bold attribute.
func (b *consoleBackend) Colours() int {
	return 8
}

func (b *consoleBackend) SetColours(fg, attr, bg int) {
	a := consoleColours[fg&7] | consoleColours[bg&7]<<4
	switch attr {
	case AttrBold:
		a |= 8
	case AttrReverse:
		a = a>>4&0x0f | a<<4&0xf0
	case AttrUnderline:
		a |= 0x8000 // COMMON_LVB_UNDERSCORE
	}
	if b.attrValid && a == b.attr {
		return
	}
	b.attr = a
	b.attrValid = true
	procSetConsoleTextAttribute.Call(uintptr(b.out), uintptr(a))
}

func (b *consoleBackend) RawPrint(text string, x, y int) {
	buf := utf16.Encode([]rune(text))
	if len(buf) == 0 {
		return
	}
	if b.cur.needsMove(x, y) {
		windows.SetConsoleCursorPosition(b.out, windows.Coord{X: int16(x), Y: int16(y)})
	}
	var written uint32
	windows.WriteConsole(b.out, &buf[0], uint32(len(buf)), &written, nil)
	b.cur.advance(x, y, runewidth.StringWidth(text))
}

func (b *consoleBackend) Clear() {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return
	}
	length := uintptr(info.Size.X) * uintptr(info.Size.Y)
	origin := windows.Coord{}
	var written uint32
	procFillConsoleOutputCharacter.Call(uintptr(b.out), uintptr(' '), length,
		coordArg(origin), uintptr(unsafe.Pointer(&written)))
	procFillConsoleOutputAttribute.Call(uintptr(b.out), uintptr(b.attr), length,
		coordArg(origin), uintptr(unsafe.Pointer(&written)))
	windows.SetConsoleCursorPosition(b.out, origin)
	b.cur.invalidate()
}

// ScrollUp shifts the visible window content one row up.
func (b *consoleBackend) ScrollUp() {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return
	}
	src := windows.SmallRect{
		Left:   info.Window.Left,
		Top:    info.Window.Top + 1,
		Right:  info.Window.Right,
		Bottom: info.Window.Bottom,
	}
	dst := windows.Coord{X: info.Window.Left, Y: info.Window.Top}
	fill := charInfo{char: ' ', attr: b.attr}
	procScrollConsoleScreenBuffer.Call(uintptr(b.out),
		uintptr(unsafe.Pointer(&src)), 0, coordArg(dst),
		uintptr(unsafe.Pointer(&fill)))
	b.cur.invalidate()
}

func (b *consoleBackend) Flush() error {
	// Writes hit the screen buffer directly; nothing is batched.
	return nil
}

func (b *consoleBackend) PollEvent() event.Event {
	if len(b.queue) > 0 {
		ev := b.queue[0]
		b.queue = b.queue[1:]
		return ev
	}

	b.checkResize()

	var pending uint32
	procGetNumberOfConsoleInputEvt.Call(uintptr(b.in), uintptr(unsafe.Pointer(&pending)))
	if pending == 0 {
		return nil
	}

	records := make([]inputRecord, pending)
	var read uint32
	ret, _, _ := procReadConsoleInput.Call(uintptr(b.in),
		uintptr(unsafe.Pointer(&records[0])), uintptr(pending),
		uintptr(unsafe.Pointer(&read)))
	if ret == 0 {
		return nil
	}

	for _, rec := range records[:read] {
		switch rec.eventType {
		case keyEvent:
			ke := (*keyEventRecord)(unsafe.Pointer(&rec.data[0]))
			if ke.keyDown == 0 {
				continue
			}
			code, ok := vkKeys[ke.virtualKeyCode]
			if !ok && b.mapAll {
				code, ok = vkExtraKeys[ke.virtualKeyCode]
			}
			if !ok {
				if ke.unicodeChar == 0 {
					continue
				}
				code = int(ke.unicodeChar)
				if code == 13 {
					code = 10
				}
			}
			b.queue = append(b.queue, event.KeyboardEvent{KeyCode: code})
		case mouseEvent:
			me := (*mouseEventRecord)(unsafe.Pointer(&rec.data[0]))
			if ev := b.decodeMouse(me); ev != nil {
				b.queue = append(b.queue, ev)
			}
		case windowBufferSizeEvent:
			b.resized = true
		}
	}

	if len(b.queue) > 0 {
		ev := b.queue[0]
		b.queue = b.queue[1:]
		return ev
	}
	return nil
}

func (b *consoleBackend) decodeMouse(me *mouseEventRecord) event.Event {
	if me.eventFlags&(mouseMovedFlag|mouseWheeledFlag) != 0 {
		return nil
	}
	buttons := 0
	if me.buttonState&fromLeft1stButton != 0 {
		buttons |= event.LeftClick
	}
	if me.buttonState&rightmostButton != 0 {
		buttons |= event.RightClick
	}
	if me.eventFlags&doubleClickFlag != 0 {
		buttons |= event.DoubleClick
	}
	return event.MouseEvent{
		X:       int(me.mousePosition.X),
		Y:       int(me.mousePosition.Y),
		Buttons: buttons,
	}
}

// checkResize catches window size changes that never raise a buffer
// size event, such as a user shrinking the window.
func (b *consoleBackend) checkResize() {
	w, h := b.Size()
	if w != b.lastW || h != b.lastH {
		b.lastW, b.lastH = w, h
		b.resized = true
	}
}

func (b *consoleBackend) HasResized() bool {
	b.checkResize()
	r := b.resized
	b.resized = false
	return r
}

// MapAllKeys toggles reporting of modifier, lock and numpad keys.
func (b *consoleBackend) MapAllKeys(enabled bool) {
	b.mapAll = enabled
}

// coordArg packs a Coord into the single uintptr the console APIs take
// it as (the struct is passed by value in a register).
func coordArg(c windows.Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}
