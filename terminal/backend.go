package terminal

// Backend abstracts the platform terminal driver a Session controls
// The Unix implementation talks to file descriptors through termios ioctls;
// MemBackend substitutes an in-memory terminal for tests
type Backend interface {
	// GetAttr reads the current attribute set (tcgetattr)
	GetAttr() (Attrs, error)

	// SetAttr applies an attribute set after draining pending output
	// and discarding unread input (tcsetattr with TCSAFLUSH)
	SetAttr(a Attrs) error

	// Read reads input honoring the VMIN/VTIME policy in effect
	// A timeout or an interrupted/would-block read returns 0, nil
	Read(p []byte) (int, error)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// WindowSize queries the driver for the output surface dimensions
	WindowSize() (rows, cols int, err error)
}
