package terminal

import (
	"io"
	"os"
)

// EmergencyReset writes an unconditional terminal recovery sequence.
// It is meant for panic paths where backend state is unknown: it does
// not consult terminfo and assumes an ANSI-compatible device.
func EmergencyReset(w io.Writer) {
	// Disable mouse reporting, show cursor, leave the alternate screen,
	// clear attributes, re-enable wrap, then full reset.
	io.WriteString(w, mouseOff)
	io.WriteString(w, "\x1b[?25h")
	io.WriteString(w, "\x1b[?1049l")
	io.WriteString(w, "\x1b[0m")
	io.WriteString(w, "\x1b[?7h")
	io.WriteString(w, "\x1bc")

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	restoreTerminalMode()
}
