package buffer

// DefaultTabStop is the tab stop used when none is configured.
const DefaultTabStop = 8

// Row is one line of text.
type Row struct {
	chars   []byte
	render  []byte
	tabStop int
}

func newRow(b []byte, tabStop int) *Row {
	r := &Row{
		chars:   append(make([]byte, 0, len(b)), b...),
		tabStop: tabStop,
	}
	r.update()
	return r
}

// Size returns the number of bytes in the row.
func (r *Row) Size() int {
	return len(r.chars)
}

// Chars returns the row content. The slice must not be modified.
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the tab-expanded row. The slice must not be modified.
func (r *Row) Render() []byte {
	return r.render
}

// RenderSize returns the display width of the row.
func (r *Row) RenderSize() int {
	return len(r.render)
}

// String returns the row content as a string.
func (r *Row) String() string {
	return string(r.chars)
}

// advance returns the render column that follows column col when the byte
// c is drawn there.
func (r *Row) advance(col int, c byte) int {
	if c == '\t' {
		col += (r.tabStop - 1) - (col % r.tabStop)
	}
	return col + 1
}

// CharToRender converts a char index into a render column.
// Indexes past the end of the row are clamped to Size.
func (r *Row) CharToRender(cx int) int {
	if cx > len(r.chars) {
		cx = len(r.chars)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		rx = r.advance(rx, r.chars[i])
	}
	return rx
}

// RenderToChar converts a render column into a char index. A column that
// falls inside an expanded tab maps to the tab itself. Columns past the
// rendered width map to Size.
func (r *Row) RenderToChar(rx int) int {
	cur := 0
	for cx, c := range r.chars {
		cur = r.advance(cur, c)
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

// update rebuilds render from chars.
func (r *Row) update() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	need := len(r.chars) + tabs*(r.tabStop-1)
	if cap(r.render) < need {
		r.render = make([]byte, 0, need)
	}
	r.render = r.render[:0]

	for _, c := range r.chars {
		if c != '\t' {
			r.render = append(r.render, c)
			continue
		}
		r.render = append(r.render, ' ')
		for len(r.render)%r.tabStop != 0 {
			r.render = append(r.render, ' ')
		}
	}
}

// insertChar inserts c at offset at, clamping at to [0, Size].
func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.update()
}

// deleteChar removes the byte at offset at. It reports whether a byte was
// removed.
func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	copy(r.chars[at:], r.chars[at+1:])
	r.chars = r.chars[:len(r.chars)-1]
	r.update()
	return true
}

func (r *Row) appendBytes(b []byte) {
	r.chars = append(r.chars, b...)
	r.update()
}

// truncate cuts the row at offset at and returns a copy of the remainder.
func (r *Row) truncate(at int) []byte {
	tail := append([]byte(nil), r.chars[at:]...)
	r.chars = r.chars[:at]
	r.update()
	return tail
}
