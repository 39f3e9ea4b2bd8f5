package buffer

// Line is one logical line of the file.
type Line struct {
	chars  []byte
	render []byte
}

// newLine creates a line owning a copy of s.
func newLine(s []byte, tabWidth int) *Line {
	l := &Line{chars: append([]byte(nil), s...)}
	l.updateRender(tabWidth)
	return l
}

// Len returns the number of stored bytes.
func (l *Line) Len() int {
	return len(l.chars)
}

// insertByte inserts c at col, clamped to [0, Len()].
func (l *Line) insertByte(col int, c byte, tabWidth int) {
	if col < 0 || col > len(l.chars) {
		col = len(l.chars)
	}
	l.chars = append(l.chars, 0)
	copy(l.chars[col+1:], l.chars[col:])
	l.chars[col] = c
	l.updateRender(tabWidth)
}

// updateRender rebuilds the render form from chars, expanding every tab to
// spaces up to the next multiple of tabWidth.
func (l *Line) updateRender(tabWidth int) {
	tabs := 0
	for _, c := range l.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(l.chars)+tabs*(tabWidth-1))
	for _, c := range l.chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%tabWidth != 0 {
			render = append(render, ' ')
		}
	}
	l.render = render
}

// renderColumn maps a buffer column to a render column.
func (l *Line) renderColumn(col, tabWidth int) int {
	if col > len(l.chars) {
		col = len(l.chars)
	}
	rx := 0
	for _, c := range l.chars[:max(col, 0)] {
		if c == '\t' {
			rx += (tabWidth - 1) - (rx % tabWidth)
		}
		rx++
	}
	return rx
}
