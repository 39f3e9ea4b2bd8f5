package key

import (
	"errors"
	"fmt"
	"io"
)

// ErrRead wraps unrecoverable errors from the input device.
var ErrRead = errors.New("read input")

const escByte = 0x1b

// decodeState is the position of the Decoder inside an escape sequence.
type decodeState uint8

const (
	stateIdle    decodeState = iota // no pending input
	stateEscape                     // saw ESC
	stateBracket                    // saw ESC [
	stateDigit                      // saw ESC [ <digit>
	stateSS3                        // saw ESC O
)

// Decoder turns a raw terminal byte stream into key Events.
//
// The source is read one byte at a time. A read that returns zero bytes with
// a nil error means "no data yet" (the raw-mode read timeout expired). While
// idle, Decoder.ReadKey keeps waiting; inside an escape sequence the missing
// byte ends the sequence and a bare Escape event is produced. io.EOF inside a
// sequence is treated the same way, so finite sources such as test fixtures
// behave like a terminal that stopped sending.
type Decoder struct {
	r     io.Reader
	buf   [1]byte
	state decodeState
	digit byte

	// pending holds an ESC that ended the previous sequence and starts
	// the next one.
	pending    byte
	hasPending bool
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one complete key event is available.
func (d *Decoder) ReadKey() (Event, error) {
	for {
		ev, ok, err := d.Poll()
		if err != nil {
			return Event{}, err
		}
		if ok {
			return ev, nil
		}
	}
}

// Poll decodes at most one key event. It returns ok == false when no input
// arrived within the source's read timeout.
func (d *Decoder) Poll() (ev Event, ok bool, err error) {
	b, ok, err := d.next()
	if err != nil {
		return Event{}, false, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !ok {
		return Event{}, false, nil
	}
	if b != escByte {
		return decodeByte(b), true, nil
	}

	ev, err = d.decodeEscape()
	if err != nil {
		return Event{}, false, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return ev, true, nil
}

// decodeEscape runs the escape-sequence state machine after an ESC byte.
func (d *Decoder) decodeEscape() (Event, error) {
	escape := NewSpecialEvent(KeyEscape, ModNone)
	d.state = stateEscape
	defer func() { d.state = stateIdle }()

	for {
		b, ok, err := d.next()
		if err != nil && !errors.Is(err, io.EOF) {
			return Event{}, err
		}
		if !ok {
			return escape, nil
		}

		switch d.state {
		case stateEscape:
			switch b {
			case '[':
				d.state = stateBracket
			case 'O':
				d.state = stateSS3
			case escByte:
				d.unread(b)
				return escape, nil
			default:
				return escape, nil
			}

		case stateBracket:
			if b >= '0' && b <= '9' {
				d.digit = b
				d.state = stateDigit
				continue
			}
			switch b {
			case 'A':
				return NewSpecialEvent(KeyUp, ModNone), nil
			case 'B':
				return NewSpecialEvent(KeyDown, ModNone), nil
			case 'C':
				return NewSpecialEvent(KeyRight, ModNone), nil
			case 'D':
				return NewSpecialEvent(KeyLeft, ModNone), nil
			case 'H':
				return NewSpecialEvent(KeyHome, ModNone), nil
			case 'F':
				return NewSpecialEvent(KeyEnd, ModNone), nil
			}
			return escape, nil

		case stateDigit:
			if b != '~' {
				return escape, nil
			}
			switch d.digit {
			case '1', '7':
				return NewSpecialEvent(KeyHome, ModNone), nil
			case '3':
				return NewSpecialEvent(KeyDelete, ModNone), nil
			case '4', '8':
				return NewSpecialEvent(KeyEnd, ModNone), nil
			case '5':
				return NewSpecialEvent(KeyPageUp, ModNone), nil
			case '6':
				return NewSpecialEvent(KeyPageDown, ModNone), nil
			}
			return escape, nil

		case stateSS3:
			switch b {
			case 'H':
				return NewSpecialEvent(KeyHome, ModNone), nil
			case 'F':
				return NewSpecialEvent(KeyEnd, ModNone), nil
			}
			return escape, nil

		default:
			return escape, nil
		}
	}
}

// next reads a single byte. ok is false when no byte was available.
func (d *Decoder) next() (b byte, ok bool, err error) {
	if d.hasPending {
		d.hasPending = false
		return d.pending, true, nil
	}
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	return 0, false, err
}

// decodeByte maps a single non-escape byte to its event.
func decodeByte(b byte) Event {
	switch {
	case b == 0x7f:
		return NewSpecialEvent(KeyBackspace, ModNone)
	case b == '\r':
		return NewSpecialEvent(KeyEnter, ModNone)
	case b == '\t':
		return NewSpecialEvent(KeyTab, ModNone)
	case b >= 1 && b <= 26:
		return NewCtrlEvent(rune('a' + b - 1))
	case b < 0x20:
		// Ctrl+@ and Ctrl+[\]^_
		return NewRuneEvent(rune(b|0x40), ModCtrl)
	default:
		return NewRuneEvent(rune(b), ModNone)
	}
}

// unread pushes b back so the next call to next returns it.
func (d *Decoder) unread(b byte) {
	d.pending = b
	d.hasPending = true
}
