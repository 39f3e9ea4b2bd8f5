package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 890e6, time.UTC) }
	return l, &buf
}

func TestLogger_Format(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.WithFields(map[string]any{"b": 2, "a": "x"}).Info("saved %d bytes", 42)

	want := "2026-03-04T05:06:07.890 [INFO] test: saved 42 bytes {a=x, b=2}\n"
	if buf.String() != want {
		t.Errorf("log line = %q, want %q", buf.String(), want)
	}
}

func TestLogger_NoPrefixNoFields(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)
	l.prefix = ""

	l.Warn("plain")

	want := "2026-03-04T05:06:07.890 [WARN] plain\n"
	if buf.String() != want {
		t.Errorf("log line = %q, want %q", buf.String(), want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	out := buf.String()
	if strings.Contains(out, "debug") || strings.Contains(out, "[INFO]") {
		t.Errorf("messages below WARN were written: %q", out)
	}
	if !strings.Contains(out, "[WARN] test: warn") || !strings.Contains(out, "[ERROR] test: error") {
		t.Errorf("missing WARN or ERROR line: %q", out)
	}

	l.SetLevel(LogLevelDebug)
	if l.Level() != LogLevelDebug {
		t.Errorf("Level() = %v, want DEBUG", l.Level())
	}
}

func TestLogger_WithFieldDoesNotModifyParent(t *testing.T) {
	l, buf := newBufferLogger(LogLevelInfo)

	child := l.WithComponent("renderer")
	l.Info("parent")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if strings.Contains(lines[0], "component=") {
		t.Errorf("parent line has child field: %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "{component=renderer}") {
		t.Errorf("child line = %q", lines[1])
	}
}

func TestLogger_SetOutput(t *testing.T) {
	l, first := newBufferLogger(LogLevelInfo)
	var second bytes.Buffer
	l.SetOutput(&second)

	l.Info("moved")
	if first.Len() != 0 || !strings.Contains(second.String(), "moved") {
		t.Error("SetOutput did not redirect output")
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic, with or without fields.
	NullLogger.Info("ignored")
	NullLogger.WithField("session", "x").Error("ignored")

	var nilLogger *Logger
	nilLogger.Debug("ignored")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.log")

	l, closer, err := OpenLogFile(path, LogLevelInfo)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	l.WithField("session", "abc").Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] scribe: hello {session=abc}") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenLogFileEmptyPath(t *testing.T) {
	l, closer, err := OpenLogFile("", LogLevelDebug)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	l.Info("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenLogFileError(t *testing.T) {
	_, _, err := OpenLogFile(filepath.Join(t.TempDir(), "missing", "x.log"), LogLevelInfo)
	var opErr *OperationError
	if err == nil || !errors.As(err, &opErr) {
		t.Fatalf("OpenLogFile() error = %v, want OperationError", err)
	}
}
