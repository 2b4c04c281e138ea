package terminal

import (
	"bytes"
	"errors"
)

// ErrNotTerminal is what MemBackend reports when NotTerminal is set
var ErrNotTerminal = errors.New("inappropriate ioctl for device")

// MemBackend is an in-memory Backend for tests
// Input is consumed chunk by chunk; an empty chunk yields one read timeout
// Once Input is exhausted every read times out, or fails with Exhausted if set
type MemBackend struct {
	Attrs      Attrs // current attribute set
	Rows, Cols int

	Input     [][]byte
	Exhausted error

	Output bytes.Buffer

	// Applied records every attribute set passed to SetAttr, including failed ones
	Applied []Attrs

	NotTerminal bool
	GetAttrErr  error
	// SetAttrErrs[i] is returned by the i-th SetAttr call, nil entries succeed
	SetAttrErrs []error
	ReadErr     error
	WriteErr    error
	SizeErr     error

	Reads    int // Read calls
	Timeouts int // Read calls that returned 0 bytes
}

// NewMemBackend returns a backend whose attributes resemble a cooked-mode tty
func NewMemBackend(rows, cols int) *MemBackend {
	return &MemBackend{
		Attrs: CookedAttrs(),
		Rows:  rows,
		Cols:  cols,
	}
}

// Feed queues input chunks
func (m *MemBackend) Feed(chunks ...[]byte) {
	m.Input = append(m.Input, chunks...)
}

// FeedBytes queues one chunk per byte with no timeouts in between
func (m *MemBackend) FeedBytes(bs ...byte) {
	for _, b := range bs {
		m.Input = append(m.Input, []byte{b})
	}
}

// FeedTimeouts queues n read timeouts
func (m *MemBackend) FeedTimeouts(n int) {
	for i := 0; i < n; i++ {
		m.Input = append(m.Input, nil)
	}
}

func (m *MemBackend) GetAttr() (Attrs, error) {
	if m.NotTerminal {
		return Attrs{}, ErrNotTerminal
	}
	if m.GetAttrErr != nil {
		return Attrs{}, m.GetAttrErr
	}
	return m.Attrs, nil
}

func (m *MemBackend) SetAttr(a Attrs) error {
	call := len(m.Applied)
	m.Applied = append(m.Applied, a)
	if call < len(m.SetAttrErrs) && m.SetAttrErrs[call] != nil {
		return m.SetAttrErrs[call]
	}
	m.Attrs = a
	return nil
}

func (m *MemBackend) Read(p []byte) (int, error) {
	m.Reads++
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(p) == 0 {
		return 0, nil
	}
	if len(m.Input) == 0 {
		if m.Exhausted != nil {
			return 0, m.Exhausted
		}
		m.Timeouts++
		return 0, nil
	}

	chunk := m.Input[0]
	if len(chunk) == 0 {
		m.Input = m.Input[1:]
		m.Timeouts++
		return 0, nil
	}

	n := copy(p, chunk)
	if n == len(chunk) {
		m.Input = m.Input[1:]
	} else {
		m.Input[0] = chunk[n:]
	}
	return n, nil
}

func (m *MemBackend) Write(p []byte) (int, error) {
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	return m.Output.Write(p)
}

func (m *MemBackend) WindowSize() (int, int, error) {
	if m.SizeErr != nil {
		return 0, 0, m.SizeErr
	}
	return m.Rows, m.Cols, nil
}
