// Package statusline renders the two rows below the text area: the
// reverse-video status bar and the transient message row.
package statusline

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/dshills/charlie/internal/renderer/backend"
)

// DefaultTimeout is how long a message stays visible.
const DefaultTimeout = 5 * time.Second

// maxNameWidth limits how much of the filename the bar shows.
const maxNameWidth = 20

// StatusLine holds the state shown in the status rows.
type StatusLine struct {
	// Display state
	filename   string // Current filename (empty for a new buffer)
	modified   bool   // Buffer has unsaved changes
	line       int    // Current line (1-indexed for display)
	col        int    // Current column (1-indexed for display)
	totalLines int    // Total lines in buffer

	// Message display
	message     string
	messageTime time.Time
	timeout     time.Duration

	now func() time.Time
}

// Option configures a StatusLine.
type Option func(*StatusLine)

// WithTimeout sets how long messages stay visible.
func WithTimeout(d time.Duration) Option {
	return func(s *StatusLine) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *StatusLine) {
		s.now = now
	}
}

// New creates a new status line.
func New(opts ...Option) *StatusLine {
	s := &StatusLine{
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage formats and displays a transient message.
func (s *StatusLine) SetMessage(format string, args ...any) {
	if len(args) > 0 {
		s.message = fmt.Sprintf(format, args...)
	} else {
		s.message = format
	}
	s.messageTime = s.now()
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageTime = time.Time{}
}

// Message returns the message if it has not expired yet.
func (s *StatusLine) Message() string {
	if s.message == "" || s.now().Sub(s.messageTime) >= s.timeout {
		return ""
	}
	return s.message
}

// RenderBar appends the status bar, padded to width, in reverse video.
func (s *StatusLine) RenderBar(buf *bytes.Buffer, width int) {
	left := s.formatName()
	right := s.formatPosition()

	buf.WriteString(backend.ReverseVideo)
	if len(left) > width {
		left = left[:width]
	}
	buf.WriteString(left)
	n := len(left)
	for n < width {
		if width-n == len(right) {
			buf.WriteString(right)
			break
		}
		buf.WriteByte(' ')
		n++
	}
	buf.WriteString(backend.ResetStyle)
}

// RenderMessage appends the message row, clipped to width.
func (s *StatusLine) RenderMessage(buf *bytes.Buffer, width int) {
	buf.WriteString(backend.ClearLine)
	msg := s.Message()
	if len(msg) > width {
		msg = msg[:width]
	}
	buf.WriteString(msg)
}

// formatName formats the left side of the bar.
func (s *StatusLine) formatName() string {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > maxNameWidth {
		name = name[:maxNameWidth]
	}
	if s.modified {
		name += " [+]"
	}
	return name
}

// formatPosition formats the right side of the bar.
// Format: "42% 10/24:3"
func (s *StatusLine) formatPosition() string {
	pct := 0
	if s.totalLines > 0 {
		pct = min(s.line*100/s.totalLines, 100)
	}
	return strconv.Itoa(pct) + "% " +
		strconv.Itoa(s.line) + "/" + strconv.Itoa(s.totalLines) + ":" + strconv.Itoa(s.col)
}
