// Package statusline formats the status bar and the message line shown
// below the text area.
package statusline

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// StatusLine holds the state shown in the two bottom rows of the screen.
type StatusLine struct {
	// Display state
	filename   string // Current filename (empty for a new file)
	modified   bool   // Buffer has unsaved changes
	line       int    // Current line (0-indexed)
	totalLines int    // Total lines in buffer

	// Message display
	message     string
	messageTime time.Time
	timeout     time.Duration
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		timeout: DefaultMessageTimeout,
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// Filename returns the displayed filename.
func (s *StatusLine) Filename() string {
	return s.filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor row (0-indexed) and the total line count.
func (s *StatusLine) SetPosition(line, total int) {
	s.line = line
	s.totalLines = total
}

// SetMessageTimeout sets how long messages stay visible.
// Non-positive values are ignored.
func (s *StatusLine) SetMessageTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// SetMessage displays a status message, stamped with the given time.
func (s *StatusLine) SetMessage(now time.Time, format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageTime = now
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageTime = time.Time{}
}

// Message returns the message if it is younger than the timeout at now,
// truncated to width bytes.
func (s *StatusLine) Message(now time.Time, width int) string {
	if s.message == "" || now.Sub(s.messageTime) >= s.timeout {
		return ""
	}
	return truncate(s.message, width)
}

// Bar returns the status bar text exactly width bytes wide: the filename and
// line count on the left, the cursor position on the right.
func (s *StatusLine) Bar(width int) string {
	if width <= 0 {
		return ""
	}

	filename := s.filename
	if filename == "" {
		filename = "[No Name]"
	}
	left := fmt.Sprintf("%.20s - %d lines", filename, s.totalLines)
	if s.modified {
		left += " (modified)"
	}
	right := fmt.Sprintf("%d/%d", s.line+1, s.totalLines)

	left = truncate(left, width)
	var sb strings.Builder
	sb.Grow(width)
	sb.WriteString(left)

	for n := len(left); n < width; n++ {
		if width-n == len(right) {
			sb.WriteString(right)
			break
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		return s[:width]
	}
	return s
}
