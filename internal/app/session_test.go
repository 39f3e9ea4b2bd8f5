package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/cursor"
)

func numberedBuffer(n int) *buffer.Buffer {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return buffer.NewFromLines(lines)
}

func TestSessionInsertOnVirtualRow(t *testing.T) {
	s := NewSession(buffer.New(), "", time.Second)

	if err := s.InsertChar('a'); err != nil {
		t.Fatalf("InsertChar() error = %v", err)
	}
	if s.Buffer().LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", s.Buffer().LineCount())
	}
	if got := string(s.Buffer().Line(0)); got != "a" {
		t.Errorf("line 0 = %q, want %q", got, "a")
	}
	if c := s.Cursor(); c.X != 1 || c.Y != 0 {
		t.Errorf("cursor = %v, want 0:1", c)
	}
	if !s.Dirty() {
		t.Error("insert should mark the session dirty")
	}
}

func TestSessionPage(t *testing.T) {
	s := NewSession(numberedBuffer(100), "", time.Second)
	s.Resize(80, 10)

	s.Page(cursor.DirDown)
	s.Scroll()
	if got := s.Cursor().Y; got != 19 {
		t.Errorf("after PageDown Y = %d, want 19", got)
	}
	if got := s.Viewport().RowOffset(); got != 10 {
		t.Errorf("after PageDown RowOffset = %d, want 10", got)
	}

	s.Page(cursor.DirUp)
	s.Scroll()
	if got := s.Cursor().Y; got != 0 {
		t.Errorf("after PageUp Y = %d, want 0", got)
	}
	if got := s.Viewport().RowOffset(); got != 0 {
		t.Errorf("after PageUp RowOffset = %d, want 0", got)
	}
}

func TestSessionPageDownStopsAtVirtualRow(t *testing.T) {
	s := NewSession(numberedBuffer(5), "", time.Second)
	s.Resize(80, 10)

	s.Page(cursor.DirDown)
	s.Scroll()
	if got := s.Cursor().Y; got != 5 {
		t.Errorf("Y = %d, want 5", got)
	}
	if got := s.Viewport().RowOffset(); got != 0 {
		t.Errorf("RowOffset = %d, want 0", got)
	}
}

func TestSessionLineStartEnd(t *testing.T) {
	s := NewSession(buffer.NewFromLines([]string{"hello"}), "", time.Second)

	s.MoveToLineEnd()
	if got := s.Cursor().X; got != 5 {
		t.Errorf("after MoveToLineEnd X = %d, want 5", got)
	}
	s.MoveToLineStart()
	if got := s.Cursor().X; got != 0 {
		t.Errorf("after MoveToLineStart X = %d, want 0", got)
	}
}

func TestSessionScrollKeepsCursorVisible(t *testing.T) {
	s := NewSession(buffer.NewFromLines([]string{"0123456789abcdefghij"}), "", time.Second)
	s.Resize(8, 4)

	s.MoveToLineEnd()
	s.Scroll()
	v := s.Viewport()
	c := s.Cursor()
	if !v.Contains(c.Y, c.RX) {
		t.Errorf("cursor %v outside viewport %v", c, v)
	}
	if got := v.ColOffset(); got != 13 {
		t.Errorf("ColOffset = %d, want 13", got)
	}
}

func TestSessionFrame(t *testing.T) {
	s := NewSession(numberedBuffer(3), "notes.txt", time.Second)
	s.Resize(80, 10)
	s.Move(cursor.DirDown)
	s.Scroll()

	f := s.Frame(testNow)
	if f.Cursor.Y != 1 {
		t.Errorf("frame cursor Y = %d, want 1", f.Cursor.Y)
	}
	if f.Buffer.LineCount() != 3 {
		t.Errorf("frame buffer has %d lines, want 3", f.Buffer.LineCount())
	}

	bar := f.Status.Bar(40)
	if want := "notes.txt - 3 lines"; bar[:len(want)] != want {
		t.Errorf("status bar = %q, want prefix %q", bar, want)
	}
	if want := "2/3"; bar[len(bar)-len(want):] != want {
		t.Errorf("status bar = %q, want suffix %q", bar, want)
	}
}
