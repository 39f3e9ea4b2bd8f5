package cursor

import (
	"fmt"
)

// Lines is the read-only view of a line buffer that movement needs.
type Lines interface {
	LineCount() int
	LineLen(row int) int
}

// Direction is a single-step movement direction.
type Direction uint8

// Movement directions.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Cursor is the editing position. The zero value is the top-left corner.
type Cursor struct {
	X  int
	Y  int
	RX int
}

// New creates a cursor at the given buffer row and column.
func New(row, col int) Cursor {
	return Cursor{X: max(col, 0), Y: max(row, 0)}
}

// OnLine reports whether the cursor is on an existing line rather than the
// virtual row past the end.
func (c *Cursor) OnLine(lines Lines) bool {
	return c.Y >= 0 && c.Y < lines.LineCount()
}

// Move moves the cursor one step in dir and clamps X to the new line.
func (c *Cursor) Move(lines Lines, dir Direction) {
	switch dir {
	case DirLeft:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = lines.LineLen(c.Y)
		}
	case DirRight:
		if c.OnLine(lines) {
			if c.X < lines.LineLen(c.Y) {
				c.X++
			} else {
				c.Y++
				c.X = 0
			}
		}
	case DirUp:
		if c.Y > 0 {
			c.Y--
		}
	case DirDown:
		if c.Y < lines.LineCount() {
			c.Y++
		}
	}
	c.Clamp(lines)
}

// MoveToLineStart moves the cursor to column 0.
func (c *Cursor) MoveToLineStart() {
	c.X = 0
}

// MoveToLineEnd moves the cursor past the last byte of the current line.
// On the virtual row it stays at column 0.
func (c *Cursor) MoveToLineEnd(lines Lines) {
	if c.OnLine(lines) {
		c.X = lines.LineLen(c.Y)
	}
}

// Clamp restores the cursor invariants: Y within [0, LineCount()] and
// X within [0, LineLen(Y)].
func (c *Cursor) Clamp(lines Lines) {
	if c.Y < 0 {
		c.Y = 0
	}
	if n := lines.LineCount(); c.Y > n {
		c.Y = n
	}
	rowLen := 0
	if c.OnLine(lines) {
		rowLen = lines.LineLen(c.Y)
	}
	if c.X > rowLen {
		c.X = rowLen
	}
	if c.X < 0 {
		c.X = 0
	}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d rx=%d)", c.Y, c.X, c.RX)
}
