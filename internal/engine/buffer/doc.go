// Package buffer provides the row-based text store used by the editor.
//
// A Store owns an ordered sequence of Rows. Each Row keeps two byte
// slices:
//
//   - chars: the exact user content of the line, without a newline
//   - render: chars with every tab expanded to spaces up to the next tab stop
//
// render is rebuilt before any mutating call returns, so readers never see
// a stale rendering.
//
// Columns come in two flavours:
//
//   - char index: an offset into chars (what edits use)
//   - render column: the on-screen column after tab expansion
//
// Row.CharToRender and Row.RenderToChar convert between the two.
//
// Basic usage:
//
//	s := buffer.New(buffer.WithTabStop(4))
//	_ = s.InsertRow(0, []byte("a\tb"))
//	s.Row(0).Render()          // "a   b"
//	s.Row(0).CharToRender(2)   // 4
//
// Store is not safe for concurrent use. The editor mutates it from a
// single goroutine between frames.
package buffer
