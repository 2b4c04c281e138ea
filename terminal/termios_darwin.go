//go:build darwin

package terminal

import "golang.org/x/sys/unix"

// ioctl requests for tcgetattr and tcsetattr(TCSAFLUSH)
const (
	ioctlGetAttr      = unix.TIOCGETA
	ioctlSetAttrFlush = unix.TIOCSETAF
	ioctlSetAttrNow   = unix.TIOCSETA
)

func attrsFromTermios(t *unix.Termios) Attrs {
	a := Attrs{
		Iflag:  t.Iflag,
		Oflag:  t.Oflag,
		Cflag:  t.Cflag,
		Lflag:  t.Lflag,
		Ispeed: t.Ispeed,
		Ospeed: t.Ospeed,
	}
	copy(a.Cc[:], t.Cc[:])
	return a
}

func (a Attrs) termios() *unix.Termios {
	t := &unix.Termios{
		Iflag:  a.Iflag,
		Oflag:  a.Oflag,
		Cflag:  a.Cflag,
		Lflag:  a.Lflag,
		Ispeed: a.Ispeed,
		Ospeed: a.Ospeed,
	}
	copy(t.Cc[:], a.Cc[:])
	return t
}
