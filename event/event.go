// Package event defines the input event model shared by every backend:
// keyboard presses, mouse actions and the logical key-code space that
// consumers branch on.
package event

// Event is a single input occurrence reported by a backend. The concrete
// types are KeyboardEvent and MouseEvent.
type Event interface {
	event()
}

// KeyboardEvent reports one key press. Non-negative codes are the rune
// ordinal of the printed character; negative codes are the Key* constants.
type KeyboardEvent struct {
	KeyCode int
}

// MouseEvent reports a mouse action at a cell position. Buttons is a
// bitmask of the *Click constants; zero means a position report with no
// button activity (e.g. a release or bare motion).
type MouseEvent struct {
	X, Y    int
	Buttons int
}

func (KeyboardEvent) event() {}

func (MouseEvent) event() {}

// Mouse button flags. The encoding is internal to this module; no wire
// format depends on it.
const (
	LeftClick   = 1 << 0
	RightClick  = 1 << 1
	DoubleClick = 1 << 2
)
