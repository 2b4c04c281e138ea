//go:build linux

package terminal

import "golang.org/x/sys/unix"

// ioctl requests for tcgetattr and tcsetattr(TCSAFLUSH)
const (
	ioctlGetAttr      = unix.TCGETS
	ioctlSetAttrFlush = unix.TCSETSF
	ioctlSetAttrNow   = unix.TCSETS
)

func attrsFromTermios(t *unix.Termios) Attrs {
	a := Attrs{
		Iflag:  uint64(t.Iflag),
		Oflag:  uint64(t.Oflag),
		Cflag:  uint64(t.Cflag),
		Lflag:  uint64(t.Lflag),
		Line:   t.Line,
		Ispeed: uint64(t.Ispeed),
		Ospeed: uint64(t.Ospeed),
	}
	copy(a.Cc[:], t.Cc[:])
	return a
}

func (a Attrs) termios() *unix.Termios {
	t := &unix.Termios{
		Iflag:  uint32(a.Iflag),
		Oflag:  uint32(a.Oflag),
		Cflag:  uint32(a.Cflag),
		Lflag:  uint32(a.Lflag),
		Line:   a.Line,
		Ispeed: uint32(a.Ispeed),
		Ospeed: uint32(a.Ospeed),
	}
	copy(t.Cc[:], a.Cc[:])
	return t
}
