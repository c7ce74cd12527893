package input

import (
	"errors"
	"io"

	"github.com/dshills/charlie/internal/input/key"
)

const esc = 0x1b

// State is a decoder automaton state.
type State uint8

const (
	// StateStart waits for the first byte of a key.
	StateStart State = iota
	// StateEscape has consumed ESC.
	StateEscape
	// StateBracket has consumed ESC [.
	StateBracket
	// StateNumeric has consumed ESC [ <digit>.
	StateNumeric
	// StateO has consumed ESC O.
	StateO
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateEscape:
		return "escape"
	case StateBracket:
		return "bracket"
	case StateNumeric:
		return "numeric"
	case StateO:
		return "o"
	default:
		return "unknown"
	}
}

// Decoder reads bytes from a terminal and produces key events.
//
// The reader is expected to behave like a raw-mode terminal with a read
// timeout: a Read that returns (0, nil) means no byte arrived in time.
type Decoder struct {
	r     io.Reader
	buf   [1]byte
	state State
	digit byte

	onFallback func(from State, b []byte)
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithFallbackHook registers fn to be called whenever an escape sequence
// degrades to a bare Escape. from is the state the decoder was in and b
// holds the unexpected byte, or is empty when the read timed out.
func WithFallbackHook(fn func(from State, b []byte)) DecoderOption {
	return func(d *Decoder) {
		d.onFallback = fn
	}
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current automaton state. It is StateStart between
// calls to ReadKey.
func (d *Decoder) State() State {
	return d.state
}

// ReadKey blocks until one key event is decoded.
//
// While waiting for the first byte, timeouts are retried. An error is
// returned only when the first byte cannot be read; errors inside an
// escape sequence degrade to a bare Escape.
func (d *Decoder) ReadKey() (key.Event, error) {
	d.state = StateStart
	for {
		switch d.state {
		case StateStart:
			c, ok, err := d.readByte()
			if err != nil {
				return key.Event{}, err
			}
			if !ok {
				continue
			}
			if c == esc {
				d.state = StateEscape
				continue
			}
			return decodeByte(c), nil

		case StateEscape:
			c, ok := d.nextInSequence()
			if !ok {
				return d.fallback(nil), nil
			}
			switch c {
			case '[':
				d.state = StateBracket
			case 'O':
				d.state = StateO
			default:
				return d.fallback([]byte{c}), nil
			}

		case StateBracket:
			c, ok := d.nextInSequence()
			if !ok {
				return d.fallback(nil), nil
			}
			if c >= '0' && c <= '9' {
				d.digit = c
				d.state = StateNumeric
				continue
			}
			if k, found := bracketKeys[c]; found {
				return d.emit(k), nil
			}
			return d.fallback([]byte{c}), nil

		case StateNumeric:
			c, ok := d.nextInSequence()
			if !ok {
				return d.fallback(nil), nil
			}
			if c == '~' {
				if k, found := tildeKeys[d.digit]; found {
					return d.emit(k), nil
				}
			}
			return d.fallback([]byte{c}), nil

		case StateO:
			c, ok := d.nextInSequence()
			if !ok {
				return d.fallback(nil), nil
			}
			if k, found := oKeys[c]; found {
				return d.emit(k), nil
			}
			return d.fallback([]byte{c}), nil

		default:
			return d.fallback(nil), nil
		}
	}
}

// readByte performs a single read. ok is false when the read timed out.
func (d *Decoder) readByte() (c byte, ok bool, err error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err != nil && !errors.Is(err, ErrTimeout) {
		return 0, false, err
	}
	return 0, false, nil
}

// nextInSequence reads the next byte of an escape sequence. Any failure,
// including end of input, is reported as !ok.
func (d *Decoder) nextInSequence() (byte, bool) {
	c, ok, err := d.readByte()
	if err != nil || !ok {
		return 0, false
	}
	return c, true
}

func (d *Decoder) emit(k key.Key) key.Event {
	d.state = StateStart
	return key.NewSpecialEvent(k)
}

func (d *Decoder) fallback(b []byte) key.Event {
	from := d.state
	d.state = StateStart
	if d.onFallback != nil {
		d.onFallback(from, b)
	}
	return key.NewSpecialEvent(key.KeyEscape)
}

// ErrTimeout may be returned by readers that prefer an explicit error over
// (0, nil) when no byte arrived before the read deadline.
var ErrTimeout = errors.New("input: read timeout")

var bracketKeys = map[byte]key.Key{
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
	'H': key.KeyHome,
	'F': key.KeyEnd,
}

var tildeKeys = map[byte]key.Key{
	'1': key.KeyHome,
	'7': key.KeyHome,
	'4': key.KeyEnd,
	'8': key.KeyEnd,
	'5': key.KeyPageUp,
	'6': key.KeyPageDown,
	'3': key.KeyDelete,
}

var oKeys = map[byte]key.Key{
	'H': key.KeyHome,
	'F': key.KeyEnd,
}

// decodeByte maps a single non-escape byte to an event.
func decodeByte(c byte) key.Event {
	switch c {
	case '\r':
		return key.NewSpecialEvent(key.KeyEnter)
	case '\t':
		return key.NewSpecialEvent(key.KeyTab)
	case 0x7f, key.CtrlByte('h'):
		return key.NewSpecialEvent(key.KeyBackspace)
	}
	if k, found := chordKeys[c]; found {
		return key.NewSpecialEvent(k)
	}
	if c < 0x20 {
		return key.Ctrl(rune(c | 0x60))
	}
	return key.NewRuneEvent(rune(c))
}

// chordKeys holds the Emacs-style movement chords.
var chordKeys = map[byte]key.Key{
	key.CtrlByte('f'): key.KeyRight,
	key.CtrlByte('b'): key.KeyLeft,
	key.CtrlByte('n'): key.KeyDown,
	key.CtrlByte('p'): key.KeyUp,
	key.CtrlByte('a'): key.KeyHome,
	key.CtrlByte('e'): key.KeyEnd,
	key.CtrlByte('v'): key.KeyPageDown,
}
