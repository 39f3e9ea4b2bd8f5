// Package renderer draws the editor screen.
//
// Every refresh is a full redraw composed into one byte slice and written
// to the terminal in a single write:
//
//	hide cursor, home
//	text rows (buffer lines clipped to the viewport, "~" past the end)
//	status bar (reverse video)
//	message line
//	position cursor, show cursor
//
// Subpackages:
//
//   - viewport: the visible window and the scroll rule
//   - statusline: status bar and message line text
//   - backend: the terminal device and its control sequences
//
// Usage:
//
//	r := renderer.New(term, renderer.DefaultOptions())
//	vp.Scroll(&cur, buf)
//	err := r.Render(renderer.Frame{Buffer: buf, Viewport: vp, Cursor: cur, Status: sl, Now: time.Now()})
package renderer
