//go:build linux || darwin

package terminal

import (
	"time"

	"golang.org/x/sys/unix"
)

// MakeRaw derives the raw-mode attribute set from a saved one
// The receiver is not modified
//
// Reads return after 1 byte or after timeout with 0 bytes (VMIN=0, VTIME=timeout)
func (a Attrs) MakeRaw(timeout time.Duration) Attrs {
	raw := a

	// No CR->NL, no XON/XOFF, no SIGINT on break, no parity check, keep bit 8
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON

	// Bytes written are sent verbatim
	raw.Oflag &^= unix.OPOST

	raw.Cflag |= unix.CS8

	// No echo, byte-at-a-time input, no ^C/^Z signals, no ^V literal-next
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = deciseconds(timeout)

	return raw
}

// IsRaw reports whether the set has the flags MakeRaw clears and sets
func (a Attrs) IsRaw() bool {
	const (
		iflags = unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
		lflags = unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	)
	return a.Iflag&iflags == 0 &&
		a.Oflag&unix.OPOST == 0 &&
		a.Cflag&unix.CS8 == unix.CS8 &&
		a.Lflag&lflags == 0 &&
		a.Cc[unix.VMIN] == 0 &&
		a.Cc[unix.VTIME] > 0
}

// ReadTimeout returns the VTIME idle bound encoded in the set
func (a Attrs) ReadTimeout() time.Duration {
	return time.Duration(a.Cc[unix.VTIME]) * 100 * time.Millisecond
}

// CookedAttrs returns a typical line-buffered, echoing attribute set
func CookedAttrs() Attrs {
	var a Attrs
	a.Iflag = unix.BRKINT | unix.ICRNL | unix.IXON
	a.Oflag = unix.OPOST | unix.ONLCR
	a.Cflag = unix.CS8 | unix.CREAD
	a.Lflag = unix.ECHO | unix.ECHOE | unix.ECHOK | unix.ICANON | unix.IEXTEN | unix.ISIG
	a.Cc[unix.VINTR] = 0x03
	a.Cc[unix.VQUIT] = 0x1c
	a.Cc[unix.VERASE] = 0x7f
	a.Cc[unix.VKILL] = 0x15
	a.Cc[unix.VEOF] = 0x04
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	a.Ispeed = unix.B38400
	a.Ospeed = unix.B38400
	return a
}
