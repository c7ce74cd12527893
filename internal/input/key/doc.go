// Package key provides the logical key events produced by the input
// decoder and consumed by the editor.
//
// An Event is one of:
//
//   - a literal byte: Key == KeyRune, Rune holds the byte value
//   - a control chord: Key == KeyRune, Rune holds the lowercase letter and
//     Modifiers has ModCtrl (Ctrl+S arrives as 0x13 and becomes C-s)
//   - a named key: Enter, Escape, Backspace, arrows, Home/End, paging, Delete
//
// Text is treated as single bytes. Rune never holds a multi-byte code point.
package key
