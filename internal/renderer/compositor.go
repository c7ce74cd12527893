package renderer

import (
	"bytes"

	"github.com/dshills/charlie/internal/engine/buffer"
	"github.com/dshills/charlie/internal/renderer/backend"
	"github.com/dshills/charlie/internal/renderer/statusline"
	"github.com/dshills/charlie/internal/renderer/viewport"
)

// DefaultEmptyLineSymbol marks screen rows past the end of the document.
const DefaultEmptyLineSymbol = "."

// Document is the row source drawn by the compositor.
type Document interface {
	Len() int
	Row(i int) *buffer.Row
}

// View bundles everything one frame depends on.
type View struct {
	Document Document
	Viewport *viewport.Viewport
	Status   *statusline.StatusLine

	// CursorY is the cursor's document row.
	CursorY int
	// RenderX is the cursor's render column within that row.
	RenderX int
}

// Compositor builds frames. The internal buffer is reused between frames.
type Compositor struct {
	buf         bytes.Buffer
	emptySymbol string
	banner      string
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithEmptyLineSymbol sets the marker drawn on rows past the end of the
// document.
func WithEmptyLineSymbol(sym string) Option {
	return func(c *Compositor) {
		c.emptySymbol = sym
	}
}

// WithBanner sets the welcome text shown when the document is empty.
func WithBanner(banner string) Option {
	return func(c *Compositor) {
		c.banner = banner
	}
}

// NewCompositor creates a compositor.
func NewCompositor(opts ...Option) *Compositor {
	c := &Compositor{emptySymbol: DefaultEmptyLineSymbol}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds one frame. The returned slice is only valid until the
// next call.
func (c *Compositor) Compose(v View) []byte {
	c.buf.Reset()
	c.buf.WriteString(backend.HideCursor)
	c.buf.WriteString(backend.CursorHome)

	c.drawRows(v)

	width := v.Viewport.Cols()
	v.Status.RenderBar(&c.buf, width)
	c.buf.WriteString("\r\n")
	v.Status.RenderMessage(&c.buf, width)

	row, col := v.Viewport.ScreenPosition(v.CursorY, v.RenderX)
	row = clamp(row, 0, v.Viewport.Rows()-1)
	col = clamp(col, 0, width-1)
	c.buf.WriteString(backend.MoveCursor(row, col))
	c.buf.WriteString(backend.ShowCursor)

	return c.buf.Bytes()
}

// drawRows draws the text area.
func (c *Compositor) drawRows(v View) {
	rows, cols := v.Viewport.Rows(), v.Viewport.Cols()
	numRows := v.Document.Len()

	for y := 0; y < rows; y++ {
		fileRow := y + v.Viewport.RowOffset()
		switch {
		case fileRow >= numRows && numRows == 0 && y == rows/2 && c.banner != "":
			c.drawBanner(cols)
		case fileRow >= numRows:
			c.buf.WriteString(c.emptySymbol)
		default:
			render := v.Document.Row(fileRow).Render()
			start := min(v.Viewport.ColOffset(), len(render))
			end := min(start+cols, len(render))
			c.buf.Write(render[start:end])
		}
		c.buf.WriteString(backend.ClearLine)
		c.buf.WriteString("\r\n")
	}
}

// drawBanner draws the centered welcome text. The first column keeps the
// empty-line symbol when there is room for padding.
func (c *Compositor) drawBanner(cols int) {
	banner := c.banner
	if len(banner) > cols {
		banner = banner[:cols]
	}
	padding := (cols - len(banner)) / 2
	if padding > 0 {
		c.buf.WriteString(c.emptySymbol)
		padding--
	}
	for ; padding > 0; padding-- {
		c.buf.WriteByte(' ')
	}
	c.buf.WriteString(banner)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
