//go:build linux || darwin

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode re-enables the cooked-mode flags raw mode clears
// Goes through /dev/tty so it works even if stdin is redirected
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	t, err := unix.IoctlGetTermios(fd, ioctlGetAttr)
	if err != nil {
		return
	}
	a := attrsFromTermios(t)
	a.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	a.Iflag |= unix.ICRNL | unix.IXON | unix.BRKINT
	a.Oflag |= unix.OPOST
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	unix.IoctlSetTermios(fd, ioctlSetAttrNow, a.termios())
}
