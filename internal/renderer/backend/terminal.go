//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal implements Backend on a POSIX tty.
type Terminal struct {
	in  *os.File
	out *os.File

	original *unix.Termios
	readWait uint8
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithReadTimeout sets the raw-mode read timeout in tenths of a second.
// Zero is replaced by the default of one tenth.
func WithReadTimeout(deciseconds uint8) TerminalOption {
	return func(t *Terminal) {
		if deciseconds > 0 {
			t.readWait = deciseconds
		}
	}
}

// NewTerminal creates a terminal backend on stdin and stdout.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	return NewTerminalFiles(os.Stdin, os.Stdout, opts...)
}

// NewTerminalFiles creates a terminal backend on the given files. in must
// be a terminal.
func NewTerminalFiles(in, out *os.File, opts ...TerminalOption) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("%s: %w", in.Name(), ErrNotTerminal)
	}
	t := &Terminal{in: in, out: out, readWait: 1}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func (t *Terminal) EnterRawMode() error {
	fd := int(t.in.Fd())
	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	raw := *original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = t.readWait

	if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.original = original
	return nil
}

func (t *Terminal) RestoreMode() error {
	if t.original == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlSetTermiosFlush, t.original); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.original = nil
	return nil
}

// WindowSize asks the kernel for the window size and falls back to moving
// the cursor to the bottom-right corner and querying its position.
func (t *Terminal) WindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	if _, err := io.WriteString(t.out, CursorFarEdges); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWindowSize, err)
	}
	rows, cols, err = t.cursorPosition()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWindowSize, err)
	}
	return rows, cols, nil
}

// cursorPosition sends a cursor position query and reads the report.
// Raw mode must be active so the reply is not echoed.
func (t *Terminal) cursorPosition() (int, int, error) {
	if _, err := io.WriteString(t.out, QueryCursor); err != nil {
		return 0, 0, err
	}

	var reply []byte
	var b [1]byte
	for len(reply) < 31 {
		n, err := t.Read(b[:])
		if err != nil {
			return 0, 0, err
		}
		if n == 0 {
			break
		}
		if b[0] == 'R' {
			break
		}
		reply = append(reply, b[0])
	}
	return ParseCursorReport(reply)
}

// Read reads from the terminal. A raw-mode read timeout surfaces from the
// kernel as a zero-length read and is reported as (0, nil).
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := t.in.Read(p)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
		return n, nil
	}
	return n, err
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
