package terminal

// Mouse reporting controls. These are xterm private modes rather than
// terminfo capabilities; tcell hardcodes them the same way. Click and
// drag tracking with SGR encoding so coordinates survive large windows.
var (
	mouseOn  = "\x1b[?1000h\x1b[?1002h\x1b[?1006h"
	mouseOff = "\x1b[?1006l\x1b[?1002l\x1b[?1000l"
)
