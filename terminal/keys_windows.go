//go:build windows

package terminal

import "github.com/lixenwraith/termweave/event"

// Virtual-key codes from the Win32 input model.
const (
	vkBack     = 0x08
	vkTab      = 0x09
	vkShift    = 0x10
	vkControl  = 0x11
	vkMenu     = 0x12
	vkCapital  = 0x14
	vkEscape   = 0x1b
	vkPrior    = 0x21
	vkNext     = 0x22
	vkEnd      = 0x23
	vkHome     = 0x24
	vkLeft     = 0x25
	vkUp       = 0x26
	vkRight    = 0x27
	vkDown     = 0x28
	vkSnapshot = 0x2c
	vkInsert   = 0x2d
	vkDelete   = 0x2e
	vkNumpad0  = 0x60
	vkMultiply = 0x6a
	vkAdd      = 0x6b
	vkSubtract = 0x6d
	vkDecimal  = 0x6e
	vkDivide   = 0x6f
	vkF1       = 0x70
	vkNumLock  = 0x90
	vkScroll   = 0x91
)

// vkKeys holds the keys every application wants translated.
var vkKeys = map[uint16]int{
	vkEscape:   event.KeyEscape,
	vkSnapshot: event.KeyPrintScreen,
	vkInsert:   event.KeyInsert,
	vkDelete:   event.KeyDelete,
	vkHome:     event.KeyHome,
	vkEnd:      event.KeyEnd,
	vkLeft:     event.KeyLeft,
	vkUp:       event.KeyUp,
	vkRight:    event.KeyRight,
	vkDown:     event.KeyDown,
	vkPrior:    event.KeyPageUp,
	vkNext:     event.KeyPageDown,
	vkBack:     event.KeyBack,
	vkTab:      event.KeyTab,
}

// vkExtraKeys holds keys that are usually noise (modifiers, locks,
// numpad operators). Reported only when MapAllKeys is enabled.
var vkExtraKeys = map[uint16]int{
	vkMultiply: event.KeyMultiply,
	vkAdd:      event.KeyAdd,
	vkSubtract: event.KeySubtract,
	vkDecimal:  event.KeyDecimal,
	vkDivide:   event.KeyDivide,
	vkCapital:  event.KeyCapsLock,
	vkNumLock:  event.KeyNumLock,
	vkScroll:   event.KeyScrollLock,
	vkShift:    event.KeyShift,
	vkControl:  event.KeyControl,
	vkMenu:     event.KeyMenu,
}

func init() {
	for i := uint16(0); i < 24; i++ {
		vkKeys[vkF1+i] = event.KeyF1 - int(i)
	}
	for i := uint16(0); i < 10; i++ {
		vkExtraKeys[vkNumpad0+i] = event.KeyNumpad0 - int(i)
	}
}
