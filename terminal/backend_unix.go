//go:build linux || darwin

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
}

// NewBackend returns a Backend driving the terminal behind in and out
// Attributes are read and written on in, the window size is queried on out
func NewBackend(in, out *os.File) Backend {
	return &unixBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// StdBackend returns a Backend for the process's stdin and stdout
func StdBackend() Backend {
	return NewBackend(os.Stdin, os.Stdout)
}

func (b *unixBackend) GetAttr() (Attrs, error) {
	if !term.IsTerminal(b.inFd) {
		return Attrs{}, fmt.Errorf("%s: %w", b.in.Name(), unix.ENOTTY)
	}
	t, err := unix.IoctlGetTermios(b.inFd, ioctlGetAttr)
	if err != nil {
		return Attrs{}, err
	}
	return attrsFromTermios(t), nil
}

func (b *unixBackend) SetAttr(a Attrs) error {
	return unix.IoctlSetTermios(b.inFd, ioctlSetAttrFlush, a.termios())
}

// Read bypasses os.File so a VTIME expiry surfaces as 0 bytes instead of io.EOF
func (b *unixBackend) Read(p []byte) (int, error) {
	n, err := unix.Read(b.inFd, p)
	if err != nil {
		// Interrupted reads are reported as timeouts so the caller can check for cancellation
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *unixBackend) WindowSize() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	if ws.Col == 0 {
		return 0, 0, fmt.Errorf("driver reported zero columns")
	}
	return int(ws.Row), int(ws.Col), nil
}
