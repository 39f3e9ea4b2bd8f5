package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "open", Target: "/path/file.txt"},
			expected: "open /path/file.txt",
		},
		{
			name:     "op, target, and context",
			err:      &OperationError{Op: "open", Target: "/path/file.txt", Context: "startup"},
			expected: "open /path/file.txt (startup)",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "save", Target: "/path/file.txt", Context: "rename", Err: errors.New("io error")},
			expected: "save /path/file.txt (rename): io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_WithContext(t *testing.T) {
	err := NewOperationError("save", "/path/file.txt", nil).WithContext("disk full")
	if err.Context != "disk full" {
		t.Errorf("expected context 'disk full', got '%s'", err.Context)
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("WithContext on nil receiver should return nil")
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("open", "x", fs.ErrPermission)

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should match the wrapped error")
	}
	if !errors.Is(err, err) {
		t.Error("errors.Is should match the same instance")
	}
	if errors.Is(err, NewOperationError("open", "x", fs.ErrPermission)) {
		t.Error("errors.Is should not match a different instance")
	}
	if errors.Unwrap(err) != fs.ErrPermission {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestComponentError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ComponentError
		expected string
	}{
		{"nil", nil, ""},
		{"component only", &ComponentError{Component: "terminal"}, "terminal"},
		{"with action", &ComponentError{Component: "terminal", Action: "restore"}, "terminal: restore"},
		{"with error", &ComponentError{Component: "input", Err: errors.New("eof")}, "input: eof"},
		{"full", NewComponentError("input", "read key", errors.New("eof")), "input: read key: eof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", got, tt.expected)
			}
		})
	}
}

func TestComponentError_Is(t *testing.T) {
	err := NewComponentError("terminal", "get window size", ErrQuit)
	wrapped := fmt.Errorf("outer: %w", err)

	if !errors.Is(wrapped, ErrQuit) {
		t.Error("errors.Is should see through the wrapper")
	}
	var target *ComponentError
	if !errors.As(wrapped, &target) || target.Action != "get window size" {
		t.Error("errors.As should find the ComponentError")
	}

	var nilErr *ComponentError
	if nilErr.Is(ErrQuit) || nilErr.Unwrap() != nil {
		t.Error("nil ComponentError should match nothing")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := NewRecoveredPanicError("boom", "")
	if err.Error() != "panic: boom" {
		t.Errorf("Error() = %q", err.Error())
	}

	withStack := NewRecoveredPanicError(42, "goroutine 1 [running]:")
	if !strings.HasPrefix(withStack.Error(), "panic: 42\ngoroutine 1") {
		t.Errorf("Error() = %q", withStack.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ignored") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	err := WrapError(fs.ErrNotExist, "open %s", "a.txt")
	if err.Error() != "open a.txt: file does not exist" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("WrapError should preserve the chain")
	}
}
