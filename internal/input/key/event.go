package key

import "fmt"

// Event represents a single logical key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the byte value for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a literal byte.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k}
}

// Ctrl creates the event for the control chord Ctrl+<letter>.
func Ctrl(letter rune) Event {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return Event{Key: KeyRune, Rune: letter, Modifiers: ModCtrl}
}

// CtrlByte returns the raw byte a terminal sends for Ctrl+<letter>.
func CtrlByte(letter rune) byte {
	return byte(letter) & 0x1f
}

// IsRune returns true if this is a literal or chord event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsCtrl reports whether e is the chord Ctrl+<letter>.
func (e Event) IsCtrl(letter rune) bool {
	return e == Ctrl(letter)
}

// IsChar returns true if this is an unmodified byte that can be inserted
// into a row as text. Control bytes and DEL are excluded.
func (e Event) IsChar() bool {
	return e.Key == KeyRune && e.Modifiers == ModNone && e.Rune >= 0x20 && e.Rune != 0x7f && e.Rune <= 0xff
}

// IsPrintable returns true for printable 7-bit ASCII, the set accepted by
// single-line prompts.
func (e Event) IsPrintable() bool {
	return e.Key == KeyRune && e.Modifiers == ModNone && e.Rune >= 0x20 && e.Rune < 0x7f
}

// IsEscape returns true if this is the Escape key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape
}

// IsEnter returns true if this is the Enter key.
func (e Event) IsEnter() bool {
	return e.Key == KeyEnter
}

// IsBackspace returns true if this is Backspace.
func (e Event) IsBackspace() bool {
	return e.Key == KeyBackspace
}

// String returns a canonical string representation.
// Examples: "a", "C-s", "Enter", "Space", "0x01"
func (e Event) String() string {
	if e.Key != KeyRune {
		return e.Key.String()
	}
	switch {
	case e.Modifiers.HasCtrl():
		return "C-" + string(e.Rune)
	case e.Rune == ' ':
		return "Space"
	case e.Rune < 0x20 || e.Rune >= 0x7f:
		return fmt.Sprintf("0x%02x", e.Rune)
	default:
		return string(e.Rune)
	}
}
