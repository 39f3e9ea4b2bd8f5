package statusline

import (
	"testing"
	"time"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		modified bool
		line     int
		total    int
		width    int
		want     string
	}{
		{"no name", "", false, 0, 0, 30, "[No Name] - 0 lines        1/0"},
		{"filename", "main.go", false, 4, 12, 30, "main.go - 12 lines        5/12"},
		{"modified", "a.txt", true, 0, 1, 32, "a.txt - 1 lines (modified)   1/1"},
		{"long filename truncated to 20", "a-very-long-file-name-indeed.txt", false, 0, 3, 40, "a-very-long-file-nam - 3 lines       1/3"},
		{"narrow drops right side", "x", false, 0, 3, 8, "x - 3 li"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetFilename(tt.filename)
			s.SetModified(tt.modified)
			s.SetPosition(tt.line, tt.total)

			got := s.Bar(tt.width)
			if got != tt.want {
				t.Errorf("Bar(%d) = %q, want %q", tt.width, got, tt.want)
			}
			if len(got) != tt.width {
				t.Errorf("Bar(%d) has length %d", tt.width, len(got))
			}
		})
	}
}

func TestBarZeroWidth(t *testing.T) {
	if got := New().Bar(0); got != "" {
		t.Errorf("expected empty bar, got %q", got)
	}
}

func TestMessageTimeout(t *testing.T) {
	s := New()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	s.SetMessage(start, "%d bytes written to disk", 42)

	if got := s.Message(start.Add(time.Second), 80); got != "42 bytes written to disk" {
		t.Errorf("unexpected message %q", got)
	}
	if got := s.Message(start.Add(DefaultMessageTimeout), 80); got != "" {
		t.Errorf("message should expire after timeout, got %q", got)
	}

	s.SetMessageTimeout(10 * time.Second)
	if got := s.Message(start.Add(7*time.Second), 80); got == "" {
		t.Error("message should still show with a longer timeout")
	}

	s.ClearMessage()
	if got := s.Message(start, 80); got != "" {
		t.Errorf("cleared message should be empty, got %q", got)
	}
}

func TestMessageTruncated(t *testing.T) {
	s := New()
	now := time.Now()
	s.SetMessage(now, "HELP: Ctrl-S = save | Ctrl-Q = quit")

	if got := s.Message(now, 4); got != "HELP" {
		t.Errorf("expected truncated message, got %q", got)
	}
}
