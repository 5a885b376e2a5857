//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// restoreTerminalMode forces the controlling terminal back to cooked
// mode. Opening /dev/tty sidesteps whatever state stdin is in.
func restoreTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL | unix.IXON
	termios.Oflag |= unix.OPOST
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
