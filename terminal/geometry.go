package terminal

import (
	"context"
	"io"
)

// Size is the output surface in character cells
type Size struct {
	Rows int
	Cols int
}

// WindowSize reports the terminal dimensions
//
// The driver is asked first (TIOCGWINSZ). If it cannot answer, the cursor is pushed
// to the bottom-right corner and a key is awaited; computing the size from a cursor
// position report is not implemented, so that path always fails with
// ErrProbeUnimplemented
func (s *Session) WindowSize(ctx context.Context) (Size, error) {
	rows, cols, err := s.backend.WindowSize()
	if err == nil && cols > 0 {
		return Size{Rows: rows, Cols: cols}, nil
	}

	s.log.Debug().Err(err).Msg("window size query failed, trying cursor fallback")
	return s.probeByCursor(ctx)
}

// probeByCursor is the unfinished cursor-position fallback
// TODO: send ESC[6n and parse the ESC[rows;colsR reply instead of failing
func (s *Session) probeByCursor(ctx context.Context) (Size, error) {
	n, err := s.backend.Write([]byte(SeqCursorFarCorner))
	if err != nil {
		return Size{}, &Error{Kind: KindGeometry, Op: "getWindowSize", Err: err}
	}
	if n != len(SeqCursorFarCorner) {
		return Size{}, &Error{Kind: KindGeometry, Op: "getWindowSize", Err: io.ErrShortWrite}
	}

	if _, err := s.ReadKey(ctx); err != nil {
		return Size{}, err
	}
	return Size{}, &Error{Kind: KindGeometry, Op: "getWindowSize", Err: ErrProbeUnimplemented}
}
