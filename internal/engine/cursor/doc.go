// Package cursor tracks the editing position within a line buffer.
//
// A Cursor holds three coordinates:
//
//   - X: buffer column, a byte index into the current line
//   - Y: buffer row, which may equal the line count (the virtual row past
//     the last line, where typing appends a new line)
//   - RX: render column, derived from X by the viewport after tab expansion
//
// Movement follows the usual terminal editor rules: moving left from
// column 0 wraps to the end of the previous line, moving right from the end
// of a line wraps to the start of the next one, and X is clamped to the
// length of the line after every move so the cursor never floats past
// the end of a shorter line.
//
// Basic usage:
//
//	var c cursor.Cursor
//	c.Move(buf, cursor.DirDown)
//	c.MoveToLineEnd(buf)
package cursor
