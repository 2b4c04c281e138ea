package editor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/shellscribe/terminal"
)

// Exit codes
const (
	ExitOK    = 0
	ExitFatal = 1
)

// ErrInterrupted reports that the loop was stopped by cancellation, e.g. a signal
var ErrInterrupted = errors.New("interrupted")

// Run acquires the terminal behind b, probes its size and runs the editor loop
// It returns the process exit code; diagnostics go to diag
//
// The session is released on every path: explicitly on quit and on failure, and by a
// deferred Release if something panics in between
func Run(ctx context.Context, b terminal.Backend, diag io.Writer, opts Options) int {
	log := opts.Logger

	sess, err := terminal.Acquire(b,
		terminal.WithReadTimeout(opts.ReadTimeout),
		terminal.WithLogger(log),
	)
	if err != nil {
		return fatal(b, nil, diag, err)
	}
	defer sess.Release()

	size, err := sess.WindowSize(ctx)
	if err != nil {
		return fatal(b, sess, diag, err)
	}
	log.Info().Int("rows", size.Rows).Int("cols", size.Cols).Msg("editor started")

	err = New(sess, size, opts).Run(ctx)
	if !errors.Is(err, ErrQuit) {
		return fatal(b, sess, diag, err)
	}

	if err := sess.Release(); err != nil {
		report(diag, err)
		return ExitFatal
	}
	log.Info().Msg("editor exited")
	return ExitOK
}

// fatal is the single failure path: clean the display, give the terminal back,
// then report the error with its cause
func fatal(b terminal.Backend, sess *terminal.Session, diag io.Writer, err error) int {
	// Best-effort; the session may be the thing that failed
	b.Write([]byte(terminal.SeqClearHome))

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if rerr := sess.Release(); rerr != nil {
		err = errors.Join(err, rerr)
	}

	report(diag, err)
	return ExitFatal
}

func report(diag io.Writer, err error) {
	fmt.Fprintf(diag, "shellscribe: %v\n", err)
}
