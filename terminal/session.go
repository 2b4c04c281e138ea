package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Session owns the controlling terminal between Acquire and Release
// It holds the attribute set captured at acquisition and is the only writer of
// terminal attributes for its lifetime. Not safe for concurrent use
type Session struct {
	backend Backend
	timeout time.Duration
	log     zerolog.Logger

	saved  Attrs
	raw    Attrs
	active bool
}

// Option configures a Session
type Option func(*Session)

// WithReadTimeout sets the idle bound of a single read (VTIME)
func WithReadTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger attaches a logger; the default discards
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l.With().Str("component", "terminal").Logger()
	}
}

// Acquire saves the terminal's attribute set and switches it to raw mode
//
// Restoration is armed as soon as the saved set is captured. If applying the raw
// set fails the saved set is reapplied before returning, so a nil Session never
// leaves the terminal modified. Callers should defer Release on success
func Acquire(b Backend, opts ...Option) (*Session, error) {
	s := &Session{
		backend: b,
		timeout: DefaultReadTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	saved, err := b.GetAttr()
	if err != nil {
		return nil, &Error{Kind: KindQuery, Op: "tcgetattr", Err: err}
	}
	s.saved = saved
	s.active = true

	s.raw = saved.MakeRaw(s.timeout)
	if err := b.SetAttr(s.raw); err != nil {
		cerr := &Error{Kind: KindConfigure, Op: "tcsetattr", Err: err}
		if rerr := s.Release(); rerr != nil {
			return nil, errors.Join(cerr, rerr)
		}
		return nil, cerr
	}

	s.log.Debug().
		Dur("read_timeout", s.raw.ReadTimeout()).
		Msg("raw mode entered")
	return s, nil
}

// Release reapplies the saved attribute set, flushing output and discarding unread input
// Only the first call after a successful Acquire does anything; later calls return nil
func (s *Session) Release() error {
	if s == nil || !s.active {
		return nil
	}
	s.active = false

	if err := s.backend.SetAttr(s.saved); err != nil {
		s.log.Error().Err(err).Msg("terminal restore failed")
		return &Error{Kind: KindRestore, Op: "tcsetattr", Err: err}
	}
	s.log.Debug().Msg("terminal restored")
	return nil
}

// Active reports whether the saved set still has to be restored
func (s *Session) Active() bool {
	return s.active
}

// Saved returns the attribute set captured by Acquire
func (s *Session) Saved() Attrs {
	return s.saved
}

// Raw returns the attribute set applied by Acquire
func (s *Session) Raw() Attrs {
	return s.raw
}

// ReadByte reads one byte
// A read that times out with nothing returns ErrNoInput, which callers retry
func (s *Session) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := s.backend.Read(buf[:])
	if err != nil {
		return 0, &Error{Kind: KindIO, Op: "read", Err: err}
	}
	if n == 0 {
		return 0, ErrNoInput
	}
	return buf[0], nil
}

// ReadKey blocks until a byte arrives, retrying through read timeouts
// ctx is checked between timeouts, so cancellation is noticed within one read timeout
func (s *Session) ReadKey(ctx context.Context) (byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		c, err := s.ReadByte()
		if errors.Is(err, ErrNoInput) {
			continue
		}
		return c, err
	}
}

// Write writes p to the terminal
func (s *Session) Write(p []byte) (int, error) {
	n, err := s.backend.Write(p)
	if err != nil {
		return n, &Error{Kind: KindIO, Op: "write", Err: err}
	}
	return n, nil
}

// WriteString writes str to the terminal
func (s *Session) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}
