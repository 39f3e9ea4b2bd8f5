package renderer

import (
	"bytes"
	"time"

	"github.com/dshills/scribe/internal/engine/cursor"
	"github.com/dshills/scribe/internal/renderer/backend"
	"github.com/dshills/scribe/internal/renderer/statusline"
	"github.com/dshills/scribe/internal/renderer/viewport"
)

// BufferReader provides read access to the render form of buffer lines.
type BufferReader interface {
	// LineCount returns the total number of lines in the buffer.
	LineCount() int

	// Render returns the tab-expanded form of a line (0-indexed).
	Render(row int) []byte
}

// Frame is the editor state drawn by one call to Compose.
// The cursor's RX must already be computed by viewport.Scroll.
type Frame struct {
	Buffer   BufferReader
	Viewport *viewport.Viewport
	Cursor   cursor.Cursor
	Status   *statusline.StatusLine
	Now      time.Time
}

// Composer turns a Frame into the complete byte sequence for one screen
// refresh. The output is meant to be written to the terminal at once so
// the user never sees a half drawn frame.
type Composer struct {
	caps    backend.Capabilities
	welcome string
	out     bytes.Buffer
}

// NewComposer creates a composer emitting the given control sequences.
// welcome is shown a third of the way down an empty buffer; an empty
// string disables it.
func NewComposer(caps backend.Capabilities, welcome string) *Composer {
	return &Composer{
		caps:    caps,
		welcome: welcome,
	}
}

// Compose renders a full frame: the text rows, the status bar, the message
// line and the cursor. The returned slice is valid until the next call.
func (c *Composer) Compose(f Frame) []byte {
	c.out.Reset()

	c.out.WriteString(c.caps.HideCursor)
	c.out.WriteString(c.caps.Home())

	c.drawRows(f)
	c.drawStatusBar(f)
	c.drawMessageBar(f)

	row, col := f.Viewport.ToScreen(f.Cursor.Y, f.Cursor.RX)
	c.out.WriteString(c.caps.MoveCursor(row, col))
	c.out.WriteString(c.caps.ShowCursor)

	return c.out.Bytes()
}

// ClearScreen returns the sequence that clears the screen and homes the
// cursor, used when the editor exits.
func (c *Composer) ClearScreen() []byte {
	return []byte(c.caps.ClearScreen + c.caps.Home())
}

func (c *Composer) drawRows(f Frame) {
	rows := f.Viewport.Rows()
	cols := f.Viewport.Cols()
	colOff := f.Viewport.ColOffset()
	count := f.Buffer.LineCount()

	for y := range rows {
		fileRow := f.Viewport.ToBuffer(y)
		if fileRow >= count {
			if count == 0 && c.welcome != "" && y == rows/3 {
				c.drawWelcome(cols)
			} else {
				c.out.WriteByte('~')
			}
		} else {
			render := f.Buffer.Render(fileRow)
			n := min(max(len(render)-colOff, 0), cols)
			if n > 0 {
				c.out.Write(render[colOff : colOff+n])
			}
		}

		c.out.WriteString(c.caps.ClearEOL)
		c.out.WriteString("\r\n")
	}
}

func (c *Composer) drawWelcome(cols int) {
	welcome := c.welcome
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		c.out.WriteByte('~')
		padding--
	}
	for range padding {
		c.out.WriteByte(' ')
	}
	c.out.WriteString(welcome)
}

func (c *Composer) drawStatusBar(f Frame) {
	c.out.WriteString(c.caps.EnterReverse)
	c.out.WriteString(f.Status.Bar(f.Viewport.Cols()))
	c.out.WriteString(c.caps.ExitAttributes)
	c.out.WriteString("\r\n")
}

func (c *Composer) drawMessageBar(f Frame) {
	c.out.WriteString(c.caps.ClearEOL)
	c.out.WriteString(f.Status.Message(f.Now, f.Viewport.Cols()))
}
