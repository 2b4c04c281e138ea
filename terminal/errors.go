package terminal

import (
	"errors"
	"fmt"
)

// Kind classifies terminal failures
type Kind uint8

const (
	KindQuery     Kind = iota + 1 // reading the attribute set failed
	KindConfigure                 // applying the raw attribute set failed
	KindRestore                   // reapplying the saved attribute set failed
	KindIO                        // reading or writing the terminal failed
	KindGeometry                  // window size could not be determined
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "terminal query"
	case KindConfigure:
		return "terminal configure"
	case KindRestore:
		return "terminal restore"
	case KindIO:
		return "terminal i/o"
	case KindGeometry:
		return "geometry probe"
	default:
		return "terminal"
	}
}

// Kind sentinels, matched by errors.Is against any *Error of the same kind
var (
	ErrTerminalQuery     = &Error{Kind: KindQuery}
	ErrTerminalConfigure = &Error{Kind: KindConfigure}
	ErrTerminalRestore   = &Error{Kind: KindRestore}
	ErrIO                = &Error{Kind: KindIO}
	ErrGeometryProbe     = &Error{Kind: KindGeometry}
)

// ErrNoInput reports a read that timed out with zero bytes
// It is not a failure; the caller retries
var ErrNoInput = errors.New("no input")

// ErrProbeUnimplemented is wrapped by the geometry fallback, which moves the cursor
// to the far corner but does not yet parse a cursor position report
var ErrProbeUnimplemented = errors.New("cursor position report not implemented")

// Error is a fatal terminal failure
// Op names the failing system call the way perror would (tcgetattr, tcsetattr, read)
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches kind sentinels: a target with no Op and no Err matches any *Error of its Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	if t.Op == "" && t.Err == nil {
		return e.Kind == t.Kind
	}
	return e == t
}

// KindOf returns the Kind of the first *Error in err's chain, or 0
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}
