package terminal

import "time"

// ccSlots covers the control character array of every supported platform
// Linux uses 19 (or 32 on some arches), Darwin uses 20
const ccSlots = 32

// Attrs is a platform-neutral copy of the terminal attribute set (struct termios)
// Conversion to and from the native struct is exact, so two Attrs compare equal with ==
// if and only if the native attribute sets are byte-for-byte identical
type Attrs struct {
	Iflag uint64 // input modes
	Oflag uint64 // output modes
	Cflag uint64 // control modes
	Lflag uint64 // local modes
	Line  uint8  // line discipline (Linux only)

	Cc [ccSlots]uint8 // control characters, indexed by unix.V* constants

	Ispeed uint64
	Ospeed uint64
}

// DefaultReadTimeout is the idle bound for a single raw-mode read
const DefaultReadTimeout = 100 * time.Millisecond

// MaxReadTimeout is the largest idle bound VTIME can express (255 deciseconds)
const MaxReadTimeout = 255 * 100 * time.Millisecond

// deciseconds converts a read timeout to a VTIME value
// Rounds up so a non-zero timeout never becomes a non-blocking poll
func deciseconds(d time.Duration) uint8 {
	if d <= 0 {
		d = DefaultReadTimeout
	}
	ds := (d + 100*time.Millisecond - 1) / (100 * time.Millisecond)
	if ds < 1 {
		ds = 1
	}
	if ds > 255 {
		ds = 255
	}
	return uint8(ds)
}
