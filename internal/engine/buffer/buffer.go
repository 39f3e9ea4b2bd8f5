package buffer

import (
	"errors"
)

// Errors returned by buffer operations.
var (
	ErrRowOutOfRange = errors.New("row out of range")
)

// Buffer is an ordered sequence of lines.
// The zero value is not usable; create buffers with New.
type Buffer struct {
	lines    []*Line
	tabWidth int
}

// New creates a new empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		tabWidth: DefaultTabWidth,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromLines creates a buffer holding copies of the given lines.
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	for _, l := range lines {
		b.AppendLine([]byte(l))
	}
	return b
}

// TabWidth returns the tab stop width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// SetTabWidth changes the tab stop width and re-renders every line.
// Values below 1 are ignored.
func (b *Buffer) SetTabWidth(width int) {
	if width < 1 || width == b.tabWidth {
		return
	}
	b.tabWidth = width
	for _, l := range b.lines {
		l.updateRender(width)
	}
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// AppendLine adds a new line holding a copy of s at the end of the buffer.
func (b *Buffer) AppendLine(s []byte) {
	b.lines = append(b.lines, newLine(s, b.tabWidth))
}

// InsertChar inserts c into line row at column col.
//
// When row equals LineCount() an empty line is appended first, so editing
// on the virtual row past the end extends the file. col is clamped to the
// line length. The caller is responsible for advancing the cursor.
func (b *Buffer) InsertChar(row, col int, c byte) error {
	if row < 0 || row > len(b.lines) {
		return ErrRowOutOfRange
	}
	if row == len(b.lines) {
		b.AppendLine(nil)
	}
	b.lines[row].insertByte(col, c, b.tabWidth)
	return nil
}

// Line returns a copy of the stored bytes of a line.
// Returns nil for rows outside the buffer.
func (b *Buffer) Line(row int) []byte {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]byte(nil), b.lines[row].chars...)
}

// LineLen returns the number of stored bytes in a line, 0 outside the buffer.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].Len()
}

// Render returns the render form of a line. The returned slice is shared
// with the buffer and must not be modified.
// Returns nil for rows outside the buffer.
func (b *Buffer) Render(row int) []byte {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row].render
}

// RenderColumn maps buffer column col of line row to a render column.
// Every byte advances the column by one except a tab, which advances it to
// the next multiple of the tab width. Rows outside the buffer map to 0.
func (b *Buffer) RenderColumn(row, col int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].renderColumn(col, b.tabWidth)
}
