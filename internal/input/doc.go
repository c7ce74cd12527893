// Package input turns the raw byte stream coming from a terminal in raw
// mode into logical key events.
//
// # Decoder states
//
// The Decoder is a small automaton:
//
//	Start   --ESC-->  Escape
//	Escape  --'['-->  Bracket     --A/B/C/D/H/F--> key
//	                  Bracket     --digit-->       Numeric --'~'--> key
//	Escape  --'O'-->  O           --H/F-->         key
//
// Any unexpected byte, or a read that returns nothing before the terminal's
// read timeout, yields a bare Escape key. A lone ESC press therefore arrives
// as Escape after one timeout instead of blocking the editor.
//
// Non-escape control bytes are mapped to named keys first (Enter,
// Backspace, Tab, and the Emacs movement chords ^F ^B ^N ^P ^A ^E ^V).
// Remaining control bytes become Ctrl chords; everything else is a literal.
//
// # Usage
//
//	dec := input.NewDecoder(os.Stdin)
//	for {
//	    ev, err := dec.ReadKey()
//	    if err != nil {
//	        return err
//	    }
//	    handle(ev)
//	}
package input
