// Package viewport maps buffer coordinates to screen coordinates.
//
// The viewport is the window of the buffer visible on screen. Its top-left
// cell is (RowOffset, ColOffset) in buffer-row and render-column
// coordinates, and its extent is Rows by Cols screen cells. Scroll moves
// the window the minimum distance needed to keep the cursor inside it.
package viewport

import (
	"fmt"

	"github.com/dshills/scribe/internal/engine/cursor"
)

// Geometry is the part of a line buffer the viewport needs to compute
// render columns.
type Geometry interface {
	LineCount() int
	RenderColumn(row, col int) int
}

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Position in buffer (first visible row and render column)
	rowOffset int
	colOffset int

	// Size in screen cells
	cols int
	rows int
}

// New creates a viewport with the given size.
// Cols and rows are clamped to a minimum of 1.
func New(cols, rows int) *Viewport {
	v := &Viewport{}
	v.Resize(cols, rows)
	return v
}

// Rows returns the number of text rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// Cols returns the number of screen columns.
func (v *Viewport) Cols() int {
	return v.cols
}

// RowOffset returns the first visible buffer row.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// TopRow returns the first visible buffer row.
func (v *Viewport) TopRow() int {
	return v.rowOffset
}

// BottomRow returns the last visible buffer row. It may lie past the end of
// the buffer.
func (v *Viewport) BottomRow() int {
	return v.rowOffset + v.rows - 1
}

// Resize updates the viewport size.
// Cols and rows are clamped to a minimum of 1.
func (v *Viewport) Resize(cols, rows int) {
	v.cols = max(cols, 1)
	v.rows = max(rows, 1)
}

// Scroll computes the cursor's render column and adjusts the offsets so the
// cursor lies within [offset, offset+extent) on both axes.
//
// On the virtual row past the last line the render column is 0.
func (v *Viewport) Scroll(c *cursor.Cursor, buf Geometry) {
	c.RX = 0
	if c.Y < buf.LineCount() {
		c.RX = buf.RenderColumn(c.Y, c.X)
	}

	if c.Y < v.rowOffset {
		v.rowOffset = c.Y
	}
	if c.Y >= v.rowOffset+v.rows {
		v.rowOffset = c.Y - v.rows + 1
	}
	if c.RX < v.colOffset {
		v.colOffset = c.RX
	}
	if c.RX >= v.colOffset+v.cols {
		v.colOffset = c.RX - v.cols + 1
	}

	v.rowOffset = max(v.rowOffset, 0)
	v.colOffset = max(v.colOffset, 0)
}

// Contains reports whether a buffer row and render column are visible.
func (v *Viewport) Contains(row, rx int) bool {
	return row >= v.rowOffset && row < v.rowOffset+v.rows &&
		rx >= v.colOffset && rx < v.colOffset+v.cols
}

// ToScreen converts a buffer row and render column to 0-based screen
// coordinates.
func (v *Viewport) ToScreen(row, rx int) (screenRow, screenCol int) {
	return row - v.rowOffset, rx - v.colOffset
}

// ToBuffer converts a 0-based screen row to the buffer row displayed there.
func (v *Viewport) ToBuffer(screenRow int) int {
	return v.rowOffset + screenRow
}

// String returns a string representation of the viewport.
func (v *Viewport) String() string {
	return fmt.Sprintf("Viewport(%d,%d %dx%d)", v.rowOffset, v.colOffset, v.cols, v.rows)
}
