package terminal

import (
	"fmt"
	"runtime"

	"github.com/lixenwraith/termweave/event"
)

// Backend abstracts platform-specific terminal operations. All drawing
// methods address the visible window; scrolling state is owned by the
// caller's buffer layer.
type Backend interface {
	// Init acquires the device: raw/uncooked input, hidden cursor,
	// alternate screen where the platform has one.
	Init() error

	// Fini restores the device. Safe to call more than once.
	Fini()

	// Size returns the visible window dimensions.
	Size() (width, height int)

	// Colours returns the colour depth of the device (8 or 256).
	Colours() int

	// RawPrint emits text at a position. The device cursor is
	// repositioned only if the last-emitted position differs.
	RawPrint(text string, x, y int)

	// SetColours changes the device colour/attribute state. No-op if
	// identical to the last state actually sent. Attributes are applied
	// before colours because some devices reset colour on attribute
	// change.
	SetColours(fg, attr, bg int)

	// Clear blanks the physical display and invalidates the cached
	// cursor and colour state.
	Clear()

	// ScrollUp scrolls the visible window up by exactly one line.
	ScrollUp()

	// Flush pushes buffered output to the device. An interruption by
	// signal delivery is benign and swallowed; any other failure is
	// returned.
	Flush() error

	// PollEvent returns the next pending input event, or nil immediately
	// if none is pending. It never blocks.
	PollEvent() event.Event

	// HasResized reports whether the window has been resized since the
	// last call. Edge-triggered: true at most once per resize.
	HasResized() bool
}

// ExtendedKeyMapper is implemented by backends that can report numpad and
// meta keys (shift, control, menu) as distinct events. The extended map is
// off by default for cross-platform behavioural parity.
type ExtendedKeyMapper interface {
	MapAllKeys(enabled bool)
}

// Kind selects a backend implementation.
type Kind int

const (
	KindAuto Kind = iota // platform default via Detect
	KindTerminfo
	KindConsole
	KindBasic
)

// String returns the config name of the backend kind.
func (k Kind) String() string {
	switch k {
	case KindTerminfo:
		return "terminfo"
	case KindConsole:
		return "console"
	case KindBasic:
		return "basic"
	default:
		return "auto"
	}
}

// KindByName resolves a config string to a backend kind.
func KindByName(name string) (Kind, bool) {
	switch name {
	case "", "auto":
		return KindAuto, true
	case "terminfo":
		return KindTerminfo, true
	case "console":
		return KindConsole, true
	case "basic":
		return KindBasic, true
	}
	return KindAuto, false
}

// Detect returns the preferred backend kind for the current platform.
// This is a one-time startup decision, never part of the rendering path.
func Detect() Kind {
	if runtime.GOOS == "windows" {
		return KindConsole
	}
	return KindTerminfo
}

// New constructs a backend of the requested kind. The returned backend is
// not yet initialized; call Init before use.
func New(kind Kind) (Backend, error) {
	switch kind {
	case KindAuto:
		return New(Detect())
	case KindTerminfo:
		return newTerminfoBackend()
	case KindConsole:
		return newConsoleBackend()
	case KindBasic:
		return newBasicBackend()
	default:
		return nil, fmt.Errorf("terminal: unknown backend kind %d", int(kind))
	}
}
