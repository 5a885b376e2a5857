package event

// Named key codes. All are negative so they can never collide with rune
// ordinals. The exact values are part of the public contract: downstream
// consumers branch on them, so they must not be renumbered.
const (
	KeyEscape = -1
	KeyF1     = -2
	KeyF2     = -3
	KeyF3     = -4
	KeyF4     = -5
	KeyF5     = -6
	KeyF6     = -7
	KeyF7     = -8
	KeyF8     = -9
	KeyF9     = -10
	KeyF10    = -11
	KeyF11    = -12
	KeyF12    = -13
	KeyF13    = -14
	KeyF14    = -15
	KeyF15    = -16
	KeyF16    = -17
	KeyF17    = -18
	KeyF18    = -19
	KeyF19    = -20
	KeyF20    = -21
	KeyF21    = -22
	KeyF22    = -23
	KeyF23    = -24
	KeyF24    = -25

	KeyPrintScreen = -100
	KeyInsert      = -101
	KeyDelete      = -102

	KeyHome     = -200
	KeyEnd      = -201
	KeyLeft     = -203
	KeyUp       = -204
	KeyRight    = -205
	KeyDown     = -206
	KeyPageUp   = -207
	KeyPageDown = -208

	KeyBack = -300
	KeyTab  = -301

	KeyNumpad0  = -400
	KeyNumpad1  = -401
	KeyNumpad2  = -402
	KeyNumpad3  = -403
	KeyNumpad4  = -404
	KeyNumpad5  = -405
	KeyNumpad6  = -406
	KeyNumpad7  = -407
	KeyNumpad8  = -408
	KeyNumpad9  = -409
	KeyMultiply = -410
	KeyAdd      = -411
	KeySubtract = -412
	KeyDecimal  = -413
	KeyDivide   = -414

	KeyCapsLock   = -500
	KeyNumLock    = -501
	KeyScrollLock = -502

	KeyShift   = -600
	KeyControl = -601
	KeyMenu    = -602
)

// keyNames maps named key codes to canonical display names
var keyNames = map[int]string{
	KeyEscape:      "escape",
	KeyPrintScreen: "print_screen",
	KeyInsert:      "insert",
	KeyDelete:      "delete",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyLeft:        "left",
	KeyUp:          "up",
	KeyRight:       "right",
	KeyDown:        "down",
	KeyPageUp:      "page_up",
	KeyPageDown:    "page_down",
	KeyBack:        "backspace",
	KeyTab:         "tab",
	KeyMultiply:    "numpad_multiply",
	KeyAdd:         "numpad_add",
	KeySubtract:    "numpad_subtract",
	KeyDecimal:     "numpad_decimal",
	KeyDivide:      "numpad_divide",
	KeyCapsLock:    "caps_lock",
	KeyNumLock:     "num_lock",
	KeyScrollLock:  "scroll_lock",
	KeyShift:       "shift",
	KeyControl:     "control",
	KeyMenu:        "menu",
}

func init() {
	for i := 0; i < 24; i++ {
		keyNames[KeyF1-i] = "f" + itoa(i+1)
	}
	for i := 0; i < 10; i++ {
		keyNames[KeyNumpad0-i] = "numpad_" + itoa(i)
	}
}

func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

// KeyName returns the canonical name for a named key code, or an empty
// string for rune ordinals and unknown codes.
func KeyName(code int) string {
	return keyNames[code]
}
