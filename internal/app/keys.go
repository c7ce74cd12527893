package app

import (
	"github.com/dshills/charlie/internal/input/key"
)

// processNormalKey handles a key in normal mode.
func (e *Editor) processNormalKey(ev key.Event) error {
	e.keepPending = false
	defer func() {
		if !e.keepPending {
			e.pending = cmdNone
		}
	}()

	switch {
	case ev.IsEnter():
		e.insertNewline()

	case ev.IsEscape(), ev.IsCtrl('q'):
		if e.confirmDiscard(cmdQuit) {
			return ErrQuit
		}

	case ev.IsCtrl('s'):
		e.saveCommand()
	case ev.IsCtrl('w'):
		e.findCommand()
	case ev.IsCtrl('g'):
		e.gotoCommand()
	case ev.IsCtrl('o'):
		e.openCommand()
	case ev.IsCtrl('x'):
		e.shellCommand()
	case ev.IsCtrl('l'):
		// The next frame redraws everything anyway.

	case ev.IsBackspace():
		e.deleteChar()
	case ev.Key == key.KeyDelete:
		e.deleteForward()
	case ev.Key == key.KeyTab:
		e.insertChar('\t')

	case ev.Key.IsArrowKey():
		e.moveCursor(ev.Key)
	case ev.Key == key.KeyHome:
		e.cx = 0
	case ev.Key == key.KeyEnd:
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = row.Size()
		}
	case ev.Key == key.KeyPageUp, ev.Key == key.KeyPageDown:
		e.page(ev.Key)

	case ev.IsChar():
		e.insertChar(byte(ev.Rune))
	}
	return nil
}

// moveCursor moves one step. Left and Right wrap across row boundaries.
func (e *Editor) moveCursor(k key.Key) {
	row := e.doc.Row(e.cy)

	switch k {
	case key.KeyLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.Row(e.cy).Size()
		}
	case key.KeyRight:
		if row != nil && e.cx < row.Size() {
			e.cx++
		} else if row != nil && e.cx == row.Size() {
			e.cy++
			e.cx = 0
		}
	case key.KeyUp:
		if e.cy > 0 {
			e.cy--
		}
	case key.KeyDown:
		if e.cy < e.doc.Len() {
			e.cy++
		}
	}

	e.clampCursor()
}

// page moves the cursor a full screen up or down, starting from the top
// or bottom edge of the screen.
func (e *Editor) page(k key.Key) {
	rows := e.view.Rows()
	dir := key.KeyUp
	if k == key.KeyPageUp {
		e.cy = e.view.RowOffset()
	} else {
		dir = key.KeyDown
		e.cy = min(e.view.RowOffset()+rows-1, e.doc.Len())
	}
	for i := 0; i < rows; i++ {
		e.moveCursor(dir)
	}
}

// clampCursor keeps cx within the current row.
func (e *Editor) clampCursor() {
	size := 0
	if row := e.doc.Row(e.cy); row != nil {
		size = row.Size()
	}
	e.cx = min(e.cx, size)
}

// insertChar inserts c at the cursor. On the virtual row past the end a
// new row is appended first.
func (e *Editor) insertChar(c byte) {
	store := e.doc.Store()
	if e.cy == store.Len() {
		if err := store.InsertRow(store.Len(), nil); err != nil {
			e.logger.Error("insert row: %v", err)
			return
		}
	}
	if err := store.InsertChar(e.cy, e.cx, c); err != nil {
		e.logger.Error("insert char: %v", err)
		return
	}
	e.cx++
}

// insertNewline splits the current row at the cursor.
func (e *Editor) insertNewline() {
	store := e.doc.Store()
	var err error
	if e.cx == 0 {
		err = store.InsertRow(e.cy, nil)
	} else {
		err = store.SplitRowAt(e.cy, e.cx)
	}
	if err != nil {
		e.logger.Error("newline: %v", err)
		return
	}
	e.cy++
	e.cx = 0
}

// deleteChar removes the char left of the cursor. At column 0 the row is
// joined onto the previous one.
func (e *Editor) deleteChar() {
	store := e.doc.Store()
	if e.cy == store.Len() || (e.cx == 0 && e.cy == 0) {
		return
	}

	if e.cx > 0 {
		if err := store.DeleteChar(e.cy, e.cx-1); err != nil {
			e.logger.Error("delete char: %v", err)
			return
		}
		e.cx--
		return
	}

	prevSize, err := store.JoinWithPrevious(e.cy)
	if err != nil {
		e.logger.Error("join rows: %v", err)
		return
	}
	e.cy--
	e.cx = prevSize
}

// deleteForward removes the char under the cursor. At the end of a row
// the next row is joined onto it.
func (e *Editor) deleteForward() {
	store := e.doc.Store()
	row := store.Row(e.cy)
	if row == nil {
		return
	}

	if e.cx < row.Size() {
		if err := store.DeleteChar(e.cy, e.cx); err != nil {
			e.logger.Error("delete char: %v", err)
		}
		return
	}
	if e.cy+1 < store.Len() {
		if _, err := store.JoinWithPrevious(e.cy + 1); err != nil {
			e.logger.Error("join rows: %v", err)
		}
	}
}
