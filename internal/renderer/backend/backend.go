// Package backend provides the terminal driver used by the editor.
//
// A Backend switches the terminal between its original mode and raw mode,
// reports the window size, and moves raw bytes in both directions. Frames
// are composed elsewhere and handed to Write in one piece.
package backend

import (
	"bytes"
	"errors"
	"io"
)

// Errors returned by backends.
var (
	ErrNotTerminal    = errors.New("not a terminal")
	ErrWindowSize     = errors.New("unable to determine window size")
	ErrCursorResponse = errors.New("malformed cursor position response")
)

// Backend defines the interface for terminal backends.
type Backend interface {
	// EnterRawMode saves the current terminal mode and switches to raw
	// mode with a short read timeout.
	EnterRawMode() error

	// RestoreMode puts the terminal back into the mode saved by
	// EnterRawMode. Calling it when raw mode is not active is a no-op.
	RestoreMode() error

	// WindowSize returns the terminal size in character cells.
	WindowSize() (rows, cols int, err error)

	// Read reads raw input bytes. It returns (0, nil) when the read
	// timeout expires before a byte arrives.
	io.Reader

	// Write writes raw output bytes.
	io.Writer
}

// NullBackend is an in-memory backend for testing.
// Input is served from a script; output is captured.
type NullBackend struct {
	rows, cols int
	raw        bool
	input      [][]byte
	out        bytes.Buffer
	sizeErr    error
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int) *NullBackend {
	return &NullBackend{rows: rows, cols: cols}
}

func (b *NullBackend) EnterRawMode() error {
	b.raw = true
	return nil
}

func (b *NullBackend) RestoreMode() error {
	b.raw = false
	return nil
}

func (b *NullBackend) WindowSize() (int, int, error) {
	if b.sizeErr != nil {
		return 0, 0, b.sizeErr
	}
	return b.rows, b.cols, nil
}

// Read serves the next scripted byte. A nil chunk produces one timeout.
// io.EOF is returned once the script is exhausted.
func (b *NullBackend) Read(p []byte) (int, error) {
	for len(b.input) > 0 {
		head := b.input[0]
		if head == nil {
			b.input = b.input[1:]
			return 0, nil
		}
		if len(head) == 0 {
			b.input = b.input[1:]
			continue
		}
		n := copy(p[:1], head)
		b.input[0] = head[n:]
		return n, nil
	}
	return 0, io.EOF
}

func (b *NullBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// Type queues input bytes.
func (b *NullBackend) Type(s string) {
	b.input = append(b.input, []byte(s))
}

// Timeout queues one read timeout.
func (b *NullBackend) Timeout() {
	b.input = append(b.input, nil)
}

// IsRaw reports whether raw mode is active.
func (b *NullBackend) IsRaw() bool {
	return b.raw
}

// Output returns everything written so far.
func (b *NullBackend) Output() []byte {
	return b.out.Bytes()
}

// ResetOutput discards captured output.
func (b *NullBackend) ResetOutput() {
	b.out.Reset()
}

// Resize changes the reported window size.
func (b *NullBackend) Resize(rows, cols int) {
	b.rows = rows
	b.cols = cols
}

// FailWindowSize makes WindowSize return err.
func (b *NullBackend) FailWindowSize(err error) {
	b.sizeErr = err
}
