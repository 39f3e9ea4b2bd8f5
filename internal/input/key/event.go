package key

import (
	"fmt"
	"strings"
)

// Event represents a single logical key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	// Control characters are reported as their letter with ModCtrl set,
	// so byte 0x11 arrives as Rune 'q' + ModCtrl.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// NewCtrlEvent creates the event a terminal produces for Ctrl plus the
// given letter. The letter is stored in lower case.
func NewCtrlEvent(r rune) Event {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return NewRuneEvent(r, ModCtrl)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is an unmodified byte that belongs in the
// buffer: printable ASCII or a byte of a multi-byte sequence.
func (e Event) IsChar() bool {
	if !e.IsRune() || e.IsModified() {
		return false
	}
	return e.Rune >= 0x20 && e.Rune != 0x7f && e.Rune <= 0xff
}

// IsModified returns true if Ctrl or Alt is pressed.
// Shift alone is not considered modified since it changes the character itself.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt) != 0
}

// IsCtrl returns true if this is Ctrl plus the given letter.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.HasCtrl() && e.Rune == NewCtrlEvent(r).Rune
}

// Byte returns the byte to insert into the buffer for this event.
// The second result is false when the event does not insert anything.
func (e Event) Byte() (byte, bool) {
	if e.Key == KeyTab && e.Modifiers == ModNone {
		return '\t', true
	}
	if e.IsChar() {
		return byte(e.Rune), true
	}
	return 0, false
}

// String returns a canonical string representation.
// Examples: "a", "C-q", "Enter", "PgDn"
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	// Only show Shift for non-character keys
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeyPageUp:
		keyName = "PgUp"
	case KeyPageDown:
		keyName = "PgDn"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)

	// Join with hyphen for consistency with Vim notation
	return strings.Join(parts, "-")
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// IsEscape returns true if this is the Escape key (with no modifiers).
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
