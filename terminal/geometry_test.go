package terminal

import (
	"context"
	"errors"
	"io"
	"syscall"
	"testing"
	"time"
)

func TestWindowSize_Primary(t *testing.T) {
	b := NewMemBackend(24, 80)
	s, err := Acquire(b)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer s.Release()

	size, err := s.WindowSize(context.Background())
	if err != nil {
		t.Fatalf("WindowSize failed: %v", err)
	}
	if size != (Size{Rows: 24, Cols: 80}) {
		t.Errorf("Expected 24x80, got %+v", size)
	}
	if b.Output.Len() != 0 {
		t.Errorf("Expected no output on primary path, got %q", b.Output.String())
	}
	if b.Reads != 0 {
		t.Error("Expected no key wait on primary path")
	}
}

// The fallback currently moves the cursor, waits for a key and then gives up
func TestWindowSize_FallbackAlwaysFails(t *testing.T) {
	tests := []struct {
		name string
		prep func(b *MemBackend)
	}{
		{"ioctl error", func(b *MemBackend) { b.SizeErr = syscall.ENOTTY }},
		{"zero columns", func(b *MemBackend) { b.Cols = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMemBackend(24, 80)
			tt.prep(b)
			s, err := Acquire(b)
			if err != nil {
				t.Fatalf("Acquire failed: %v", err)
			}
			defer s.Release()

			b.FeedTimeouts(2)
			b.FeedBytes('k')

			size, err := s.WindowSize(context.Background())
			if size != (Size{}) {
				t.Errorf("Expected zero size, got %+v", size)
			}
			if !errors.Is(err, ErrGeometryProbe) {
				t.Fatalf("Expected geometry probe error, got %v", err)
			}
			if !errors.Is(err, ErrProbeUnimplemented) {
				t.Errorf("Expected ErrProbeUnimplemented cause, got %v", err)
			}
			if got := b.Output.String(); got != "\x1b[999C\x1b[999B" {
				t.Errorf("Expected far-corner sequence, got %q", got)
			}
			if len(b.Input) != 0 {
				t.Error("Expected the fallback to consume the keypress")
			}
		})
	}
}

func TestWindowSize_FallbackWriteFailure(t *testing.T) {
	b := NewMemBackend(24, 80)
	b.SizeErr = syscall.ENOTTY
	s, err := Acquire(b)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer s.Release()

	b.WriteErr = syscall.EIO
	_, err = s.WindowSize(context.Background())
	if !errors.Is(err, ErrGeometryProbe) || !errors.Is(err, syscall.EIO) {
		t.Errorf("Expected geometry error wrapping EIO, got %v", err)
	}
}

type shortWriter struct{ *MemBackend }

func (w shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

func TestWindowSize_FallbackShortWrite(t *testing.T) {
	b := NewMemBackend(24, 80)
	b.SizeErr = syscall.ENOTTY
	s, err := Acquire(shortWriter{b})
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer s.Release()

	_, err = s.WindowSize(context.Background())
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("Expected short write, got %v", err)
	}
}

func TestWindowSize_FallbackCancelled(t *testing.T) {
	b := NewMemBackend(24, 80)
	b.SizeErr = syscall.ENOTTY
	s, err := Acquire(b)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	defer s.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.WindowSize(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}
