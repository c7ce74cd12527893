package backend

import (
	"bytes"
	"fmt"
	"strconv"
)

// VT100 control sequences used by the editor.
const (
	ClearScreen    = "\x1b[2J"
	CursorHome     = "\x1b[H"
	ClearLine      = "\x1b[K"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	ReverseVideo   = "\x1b[7m"
	ResetStyle     = "\x1b[m"
	QueryCursor    = "\x1b[6n"
	CursorFarEdges = "\x1b[999C\x1b[999B"
)

// MoveCursor returns the sequence placing the cursor at the 0-based
// screen position (row, col).
func MoveCursor(row, col int) string {
	return "\x1b[" + strconv.Itoa(row+1) + ";" + strconv.Itoa(col+1) + "H"
}

// ParseCursorReport parses a cursor position report of the form
// ESC [ rows ; cols R. The trailing R is optional.
func ParseCursorReport(b []byte) (rows, cols int, err error) {
	b = bytes.TrimSuffix(b, []byte("R"))
	if len(b) < 2 || b[0] != 0x1b || b[1] != '[' {
		return 0, 0, ErrCursorResponse
	}
	if _, err := fmt.Sscanf(string(b[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrCursorResponse, err)
	}
	return rows, cols, nil
}
