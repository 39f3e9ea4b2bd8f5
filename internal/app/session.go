package app

import (
	"time"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/cursor"
	"github.com/dshills/scribe/internal/renderer"
	"github.com/dshills/scribe/internal/renderer/statusline"
	"github.com/dshills/scribe/internal/renderer/viewport"
)

// Session is the editing state of one file: the text, the cursor, the
// visible window and the status line. It is owned by the input loop.
type Session struct {
	buf      *buffer.Buffer
	cur      cursor.Cursor
	view     *viewport.Viewport
	status   *statusline.StatusLine
	filename string
	dirty    bool
}

// NewSession creates a session editing buf. filename may be empty for a
// buffer that has never been saved.
func NewSession(buf *buffer.Buffer, filename string, messageTimeout time.Duration) *Session {
	status := statusline.New()
	status.SetFilename(filename)
	status.SetMessageTimeout(messageTimeout)

	return &Session{
		buf:      buf,
		view:     viewport.New(1, 1),
		status:   status,
		filename: filename,
	}
}

// Buffer returns the text being edited.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Cursor returns the cursor position.
func (s *Session) Cursor() cursor.Cursor {
	return s.cur
}

// Viewport returns the visible window.
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Filename returns the file the buffer is saved to.
func (s *Session) Filename() string {
	return s.filename
}

// Dirty reports whether the buffer changed since it was loaded or saved.
func (s *Session) Dirty() bool {
	return s.dirty
}

// SetMessage shows a message in the message bar.
func (s *Session) SetMessage(now time.Time, format string, args ...any) {
	s.status.SetMessage(now, format, args...)
}

// Resize sets the size of the text area.
func (s *Session) Resize(cols, rows int) {
	s.view.Resize(cols, rows)
}

// InsertChar inserts c at the cursor and advances it. Typing on the virtual
// row past the end appends a new line first.
func (s *Session) InsertChar(c byte) error {
	if err := s.buf.InsertChar(s.cur.Y, s.cur.X, c); err != nil {
		return err
	}
	s.cur.X++
	s.dirty = true
	return nil
}

// Move moves the cursor one step.
func (s *Session) Move(dir cursor.Direction) {
	s.cur.Move(s.buf, dir)
}

// MoveToLineStart moves the cursor to the start of its line.
func (s *Session) MoveToLineStart() {
	s.cur.MoveToLineStart()
}

// MoveToLineEnd moves the cursor past the end of its line.
func (s *Session) MoveToLineEnd() {
	s.cur.MoveToLineEnd(s.buf)
}

// Page moves the cursor a screen up (DirUp) or down (DirDown). The cursor
// first jumps to the top or bottom edge of the window, then takes one step
// per screen row so it lands a full page away.
func (s *Session) Page(dir cursor.Direction) {
	switch dir {
	case cursor.DirUp:
		s.cur.Y = s.view.TopRow()
	case cursor.DirDown:
		s.cur.Y = min(s.view.BottomRow(), s.buf.LineCount())
	default:
		return
	}
	s.cur.Clamp(s.buf)

	for range s.view.Rows() {
		s.cur.Move(s.buf, dir)
	}
}

// Scroll recomputes the render column and keeps the cursor in view.
func (s *Session) Scroll() {
	s.view.Scroll(&s.cur, s.buf)
}

// Frame returns the state to draw at now. Scroll must be called first.
func (s *Session) Frame(now time.Time) renderer.Frame {
	s.status.SetFilename(s.filename)
	s.status.SetModified(s.dirty)
	s.status.SetPosition(s.cur.Y, s.buf.LineCount())

	return renderer.Frame{
		Buffer:   s.buf,
		Viewport: s.view,
		Cursor:   s.cur,
		Status:   s.status,
		Now:      now,
	}
}
