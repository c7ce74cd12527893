package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Errors returned by store operations.
var (
	ErrRowOutOfRange = errors.New("row out of range")
)

// Store is an ordered sequence of rows plus a dirty counter.
type Store struct {
	rows    []*Row
	tabStop int
	dirty   int
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{tabStop: DefaultTabStop}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.rows)
}

// TabStop returns the tab stop used for rendering.
func (s *Store) TabStop() int {
	return s.tabStop
}

// Row returns the row at index i, or nil if i is out of range.
func (s *Store) Row(i int) *Row {
	if i < 0 || i >= len(s.rows) {
		return nil
	}
	return s.rows[i]
}

// Dirty returns the number of mutations since the last load or save.
func (s *Store) Dirty() int {
	return s.dirty
}

// IsDirty reports whether the store has unsaved changes.
func (s *Store) IsDirty() bool {
	return s.dirty > 0
}

// MarkClean resets the dirty counter. Call it after a successful save.
func (s *Store) MarkClean() {
	s.dirty = 0
}

// InsertRow inserts a new row containing a copy of b at position at.
// at must be in [0, Len].
func (s *Store) InsertRow(at int, b []byte) error {
	if at < 0 || at > len(s.rows) {
		return ErrRowOutOfRange
	}
	s.rows = append(s.rows, nil)
	copy(s.rows[at+1:], s.rows[at:])
	s.rows[at] = newRow(b, s.tabStop)
	s.dirty++
	return nil
}

// DeleteRow removes the row at position at.
func (s *Store) DeleteRow(at int) error {
	if at < 0 || at >= len(s.rows) {
		return ErrRowOutOfRange
	}
	copy(s.rows[at:], s.rows[at+1:])
	s.rows[len(s.rows)-1] = nil
	s.rows = s.rows[:len(s.rows)-1]
	s.dirty++
	return nil
}

// InsertChar inserts c into row at offset at. Offsets outside [0, size]
// append to the end of the row.
func (s *Store) InsertChar(row, at int, c byte) error {
	r := s.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}
	r.insertChar(at, c)
	s.dirty++
	return nil
}

// DeleteChar removes the byte at offset at from row. Offsets outside
// [0, size) are ignored.
func (s *Store) DeleteChar(row, at int) error {
	r := s.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}
	if r.deleteChar(at) {
		s.dirty++
	}
	return nil
}

// AppendBytes appends b to the end of row.
func (s *Store) AppendBytes(row int, b []byte) error {
	r := s.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}
	r.appendBytes(b)
	s.dirty++
	return nil
}

// SplitRowAt breaks row at offset at, moving the remainder into a new row
// directly below. Splitting at 0 inserts an empty row above instead and
// leaves the content where it is.
func (s *Store) SplitRowAt(row, at int) error {
	r := s.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}
	if at <= 0 {
		return s.InsertRow(row, nil)
	}
	if at > r.Size() {
		at = r.Size()
	}
	tail := r.truncate(at)
	return s.InsertRow(row+1, tail)
}

// JoinWithPrevious appends row to the row above it and removes row.
// It returns the size the previous row had before the join.
func (s *Store) JoinWithPrevious(row int) (int, error) {
	if row <= 0 || row >= len(s.rows) {
		return 0, ErrRowOutOfRange
	}
	prev := s.rows[row-1]
	size := prev.Size()
	if err := s.AppendBytes(row-1, s.rows[row].chars); err != nil {
		return 0, err
	}
	if err := s.DeleteRow(row); err != nil {
		return 0, err
	}
	return size, nil
}

// Serialize returns every row followed by a single '\n'.
func (s *Store) Serialize() []byte {
	total := 0
	for _, r := range s.rows {
		total += r.Size() + 1
	}
	buf := make([]byte, 0, total)
	for _, r := range s.rows {
		buf = append(buf, r.chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// Load replaces the store content with the lines read from rd. Trailing
// '\r' and '\n' bytes are stripped from every line. The dirty counter is
// reset.
func (s *Store) Load(rd io.Reader) error {
	var rows []*Row
	br := bufio.NewReader(rd)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			rows = append(rows, newRow(trimEOL(line), s.tabStop))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	s.Reset()
	s.rows = rows
	return nil
}

// LoadBytes is Load over an in-memory byte slice.
func (s *Store) LoadBytes(b []byte) error {
	return s.Load(bytes.NewReader(b))
}

// Reset drops every row and clears the dirty counter.
func (s *Store) Reset() {
	clear(s.rows)
	s.rows = nil
	s.dirty = 0
}

// Lines returns a copy of every row's content, mostly useful for tests
// and diagnostics.
func (s *Store) Lines() []string {
	lines := make([]string, len(s.rows))
	for i, r := range s.rows {
		lines[i] = r.String()
	}
	return lines
}

func trimEOL(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
