package app

import (
	"bytes"

	"github.com/dshills/charlie/internal/input/key"
)

// search is the incremental search state for one prompt session.
type search struct {
	lastMatch int
	direction int

	// Position before the search started, restored on cancel.
	savedX, savedY     int
	savedRow, savedCol int
}

func newSearch(e *Editor) *search {
	return &search{
		lastMatch: -1,
		direction: 1,
		savedX:    e.cx,
		savedY:    e.cy,
		savedRow:  e.view.RowOffset(),
		savedCol:  e.view.ColOffset(),
	}
}

// PromptKey re-runs the search after every keystroke. Down and Right
// search forward from the last match, Up and Left backward; any other
// key restarts from the top.
func (s *search) PromptKey(e *Editor, query string, ev key.Event) {
	switch {
	case ev.IsEnter(), ev.IsEscape():
		s.lastMatch = -1
		s.direction = 1
		return
	case ev.Key == key.KeyDown, ev.Key == key.KeyRight:
		s.direction = 1
	case ev.Key == key.KeyUp, ev.Key == key.KeyLeft:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if query == "" {
		return
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}

	n := e.doc.Len()
	needle := []byte(query)
	current := s.lastMatch
	for i := 0; i < n; i++ {
		current += s.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := e.doc.Row(current)
		rx := bytes.Index(row.Render(), needle)
		if rx < 0 {
			continue
		}
		s.lastMatch = current
		e.cy = current
		e.cx = row.RenderToChar(rx)
		// Pull the match to the top of the screen on the next scroll.
		e.view.SetOffsets(n, e.view.ColOffset())
		return
	}
}

// restore puts the cursor and viewport back where the search started.
func (s *search) restore(e *Editor) {
	e.cx, e.cy = s.savedX, s.savedY
	e.view.SetOffsets(s.savedRow, s.savedCol)
}
