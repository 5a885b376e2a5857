package terminal

import "github.com/lixenwraith/termweave/event"

// Known CSI sequences (bytes following ESC [), mapped to logical key
// codes. Static tables built once at process start; terminals vary, so
// both the xterm and vt variants of the function keys are listed.
var csiKeys = map[string]int{
	"A": event.KeyUp,
	"B": event.KeyDown,
	"C": event.KeyRight,
	"D": event.KeyLeft,
	"H": event.KeyHome,
	"F": event.KeyEnd,
	"Z": event.KeyTab, // Shift+Tab folds to Tab

	"1~": event.KeyHome,
	"2~": event.KeyInsert,
	"3~": event.KeyDelete,
	"4~": event.KeyEnd,
	"5~": event.KeyPageUp,
	"6~": event.KeyPageDown,

	"11~": event.KeyF1,
	"12~": event.KeyF2,
	"13~": event.KeyF3,
	"14~": event.KeyF4,
	"15~": event.KeyF5,
	"17~": event.KeyF6,
	"18~": event.KeyF7,
	"19~": event.KeyF8,
	"20~": event.KeyF9,
	"21~": event.KeyF10,
	"23~": event.KeyF11,
	"24~": event.KeyF12,
	"25~": event.KeyF13,
	"26~": event.KeyF14,
	"28~": event.KeyF15,
	"29~": event.KeyF16,
	"31~": event.KeyF17,
	"32~": event.KeyF18,
	"33~": event.KeyF19,
	"34~": event.KeyF20,

	// vt-style function keys
	"[A": event.KeyF1,
	"[B": event.KeyF2,
	"[C": event.KeyF3,
	"[D": event.KeyF4,
	"[E": event.KeyF5,
}

// SS3 sequences (bytes following ESC O). Includes the application-keypad
// encodings so numpad keys surface with their own codes.
var ss3Keys = map[string]int{
	"A": event.KeyUp,
	"B": event.KeyDown,
	"C": event.KeyRight,
	"D": event.KeyLeft,
	"H": event.KeyHome,
	"F": event.KeyEnd,
	"P": event.KeyF1,
	"Q": event.KeyF2,
	"R": event.KeyF3,
	"S": event.KeyF4,

	"j": event.KeyMultiply,
	"k": event.KeyAdd,
	"m": event.KeySubtract,
	"n": event.KeyDecimal,
	"o": event.KeyDivide,
	"p": event.KeyNumpad0,
	"q": event.KeyNumpad1,
	"r": event.KeyNumpad2,
	"s": event.KeyNumpad3,
	"t": event.KeyNumpad4,
	"u": event.KeyNumpad5,
	"v": event.KeyNumpad6,
	"w": event.KeyNumpad7,
	"x": event.KeyNumpad8,
	"y": event.KeyNumpad9,
	"M": '\n',
}

// lookupCSI is a zero-alloc map lookup; the inline string conversion does
// not allocate.
func lookupCSI(seq []byte) (int, bool) {
	code, ok := csiKeys[string(seq)]
	return code, ok
}

func lookupSS3(seq []byte) (int, bool) {
	code, ok := ss3Keys[string(seq)]
	return code, ok
}
