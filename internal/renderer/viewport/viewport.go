// Package viewport tracks which part of the document is visible.
//
// Horizontal scrolling follows the cursor's char index, not its render
// column. The same basis is used everywhere in the editor. On rows with
// tabs the render column can run past colOffset+cols; the compositor then
// clamps the cursor to the last screen column and the character under it
// is not drawn.
package viewport

// Viewport represents the visible rectangle of the document.
type Viewport struct {
	// First visible row and column
	rowOffset int
	colOffset int

	// Size of the text area in screen cells
	rows int
	cols int
}

// New creates a viewport with the given text area size.
// Sizes are clamped to a minimum of 1.
func New(rows, cols int) *Viewport {
	v := &Viewport{}
	v.Resize(rows, cols)
	return v
}

// Rows returns the number of visible text rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the number of visible text columns.
func (v *Viewport) Cols() int {
	return v.cols
}

// RowOffset returns the first visible document row.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible column.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// Resize updates the text area size.
// Sizes are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v.rows = rows
	v.cols = cols
}

// Reset scrolls back to the top-left corner.
func (v *Viewport) Reset() {
	v.rowOffset = 0
	v.colOffset = 0
}

// SetOffsets places the viewport directly. Negative offsets become 0.
// The next Scroll still pulls the cursor back into view.
func (v *Viewport) SetOffsets(rowOffset, colOffset int) {
	v.rowOffset = max(rowOffset, 0)
	v.colOffset = max(colOffset, 0)
}

// Scroll moves the offsets by the smallest amount that keeps the cursor
// row cy and cursor column cx inside the visible area.
func (v *Viewport) Scroll(cy, cx int) {
	v.rowOffset, v.colOffset = Recompute(cy, cx, v.rows, v.cols, v.rowOffset, v.colOffset)
}

// IsRowVisible returns true if document row y is on screen.
func (v *Viewport) IsRowVisible(y int) bool {
	return y >= v.rowOffset && y < v.rowOffset+v.rows
}

// ScreenPosition converts a document row and a column into a screen
// position relative to the text area.
func (v *Viewport) ScreenPosition(y, col int) (row, column int) {
	return y - v.rowOffset, col - v.colOffset
}

// Recompute returns the scroll offsets that keep (cy, cx) visible in a
// rows x cols area, starting from the current offsets.
func Recompute(cy, cx, rows, cols, rowOffset, colOffset int) (int, int) {
	if cy < rowOffset {
		rowOffset = cy
	}
	if cy >= rowOffset+rows {
		rowOffset = cy - rows + 1
	}
	if cx < colOffset {
		colOffset = cx
	}
	if cx >= colOffset+cols {
		colOffset = cx - cols + 1
	}
	return rowOffset, colOffset
}
