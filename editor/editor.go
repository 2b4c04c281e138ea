package editor

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/shellscribe/terminal"
)

// ErrQuit signals that the user asked to exit
var ErrQuit = errors.New("quit requested")

// DefaultQuitKey is Ctrl-Q
var DefaultQuitKey = terminal.CtrlKey('q')

// DefaultPlaceholder is drawn at the start of every row
const DefaultPlaceholder = "~"

// Options configures the editor and its session
type Options struct {
	QuitKey     byte
	Placeholder string
	ReadTimeout time.Duration
	Logger      zerolog.Logger
}

// DefaultOptions returns Ctrl-Q to quit, tilde rows and a 100ms read timeout
func DefaultOptions() Options {
	return Options{
		QuitKey:     DefaultQuitKey,
		Placeholder: DefaultPlaceholder,
		ReadTimeout: terminal.DefaultReadTimeout,
		Logger:      zerolog.Nop(),
	}
}

// Editor draws the screen and dispatches keys
type Editor struct {
	sess *terminal.Session
	size terminal.Size
	opts Options
	log  zerolog.Logger

	frame bytes.Buffer
}

// New creates an editor drawing a size-sized screen through sess
// opts is used as given; start from DefaultOptions
func New(sess *terminal.Session, size terminal.Size, opts Options) *Editor {
	return &Editor{
		sess: sess,
		size: size,
		opts: opts,
		log:  opts.Logger.With().Str("component", "editor").Logger(),
	}
}

// Size returns the screen geometry the editor draws
func (e *Editor) Size() terminal.Size {
	return e.size
}

// Refresh clears the display and redraws one placeholder line per row
// The frame is assembled in memory and written with a single write
func (e *Editor) Refresh() error {
	e.frame.Reset()
	e.frame.WriteString(terminal.SeqClearScreen)
	e.frame.WriteString(terminal.SeqCursorHome)
	e.drawRows(&e.frame)
	e.frame.WriteString(terminal.SeqCursorHome)

	_, err := e.sess.Write(e.frame.Bytes())
	return err
}

// drawRows writes the placeholder column; the last row gets no line break so the
// terminal does not scroll
func (e *Editor) drawRows(buf *bytes.Buffer) {
	for y := 0; y < e.size.Rows; y++ {
		buf.WriteString(e.opts.Placeholder)
		if y < e.size.Rows-1 {
			buf.WriteString("\r\n")
		}
	}
}

// ProcessKey waits for one key and acts on it
// The quit key clears the screen and returns ErrQuit; anything else is ignored
func (e *Editor) ProcessKey(ctx context.Context) error {
	c, err := e.sess.ReadKey(ctx)
	if err != nil {
		return err
	}

	switch c {
	case e.opts.QuitKey:
		if _, err := e.sess.WriteString(terminal.SeqClearHome); err != nil {
			return err
		}
		e.log.Debug().Str("key", terminal.KeyName(c)).Msg("quit")
		return ErrQuit
	default:
		e.log.Debug().Str("key", terminal.KeyName(c)).Msg("key ignored")
	}
	return nil
}

// Run refreshes and processes keys until quit or failure
// Returns ErrQuit when the quit key was pressed
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := e.Refresh(); err != nil {
			return err
		}
		if err := e.ProcessKey(ctx); err != nil {
			return err
		}
	}
}
