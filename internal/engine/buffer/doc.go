// Package buffer provides the line buffer that holds the file being edited.
//
// A Buffer is an ordered sequence of lines. Each Line stores its bytes
// without a terminator together with a render form: the same bytes with
// every tab expanded to spaces up to the next tab stop. The render form is
// what the screen shows; the stored bytes are what the cursor indexes and
// what is written back to disk.
//
// The render form is derived state. Every mutation of a line's bytes
// rebuilds it before returning, so callers can never observe a stale render.
//
// Basic usage:
//
//	buf := buffer.New(buffer.WithTabWidth(8))
//	buf.AppendLine([]byte("a\tb"))
//	buf.Render(0)          // "a       b"
//	buf.RenderColumn(0, 2) // 8
//	buf.InsertChar(1, 0, 'x') // row 1 == LineCount(): appends a line
//	buf.Serialize()        // "a\tb\nx\n"
//
// Coordinate Systems:
//
//   - Buffer column: byte index into a line's stored bytes
//   - Render column: visual column after tab expansion
//
// Buffer is not safe for concurrent use; the editor has a single actor.
package buffer
