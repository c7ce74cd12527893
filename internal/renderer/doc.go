// Package renderer composes a complete terminal frame from the document,
// the viewport and the status line.
//
// A frame is built in one reusable in-memory buffer and written with a
// single Write, wrapped in hide-cursor / show-cursor sequences, so a half
// drawn frame never reaches the screen:
//
//	ESC[?25l ESC[H
//	<text rows, each followed by ESC[K CR LF>
//	<status bar in reverse video> CR LF
//	<message row>
//	ESC[<row>;<col>H ESC[?25h
//
// Usage:
//
//	c := renderer.NewCompositor(renderer.WithBanner("Charlie Text Editor -- version 1.0"))
//	frame := c.Compose(renderer.View{Document: store, Viewport: vp, Status: sl, CursorY: cy, RenderX: rx})
//	term.Write(frame)
package renderer
