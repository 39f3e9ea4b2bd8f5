// Package backend provides the terminal device the editor draws on.
//
// A Backend is a byte pipe with a size: the renderer composes complete
// frames and hands them to Write, and the key decoder pulls raw input
// through Read. Read may return zero bytes with a nil error when no input
// arrived within the device's read timeout.
package backend

import (
	"bytes"
	"errors"
	"io"
)

// Errors returned by backends.
var (
	ErrNotTerminal  = errors.New("not a terminal")
	ErrWindowSize   = errors.New("cannot determine window size")
	ErrCursorReport = errors.New("malformed cursor position report")
)

// Backend defines the interface for terminal devices.
type Backend interface {
	// Init switches the device into raw mode.
	// Must be called before Read, Write or Size.
	Init() error

	// Shutdown restores the device to the state captured by Init.
	// Calling Shutdown without a successful Init is a no-op.
	Shutdown() error

	// Size returns the current terminal dimensions in cells.
	Size() (cols, rows int, err error)

	// Read reads raw input bytes. A zero count with a nil error means no
	// data arrived before the read timeout.
	Read(p []byte) (int, error)

	// Write writes a composed frame to the device.
	Write(p []byte) (int, error)

	// Capabilities returns the control sequences for this device.
	Capabilities() Capabilities
}

// NullBackend is an in-memory backend for testing.
// Input is served from a fixed script; output is recorded.
type NullBackend struct {
	cols, rows int
	caps       Capabilities
	input      []byte
	idle       int
	out        bytes.Buffer
	writes     int
	active     bool
	inits      int
	shutdowns  int
}

// NewNullBackend creates a null backend with the given dimensions and
// scripted input. When the script is exhausted Read returns io.EOF.
func NewNullBackend(cols, rows int, input []byte) *NullBackend {
	return &NullBackend{
		cols:  cols,
		rows:  rows,
		caps:  VT100(),
		input: append([]byte(nil), input...),
	}
}

func (b *NullBackend) Init() error {
	b.active = true
	b.inits++
	return nil
}

func (b *NullBackend) Shutdown() error {
	if b.active {
		b.active = false
		b.shutdowns++
	}
	return nil
}

func (b *NullBackend) Size() (int, int, error) {
	if b.cols <= 0 || b.rows <= 0 {
		return 0, 0, ErrWindowSize
	}
	return b.cols, b.rows, nil
}

func (b *NullBackend) Read(p []byte) (int, error) {
	if b.idle > 0 {
		b.idle--
		return 0, nil
	}
	if len(b.input) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.input)
	b.input = b.input[n:]
	return n, nil
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.writes++
	return b.out.Write(p)
}

func (b *NullBackend) Capabilities() Capabilities {
	return b.caps
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(cols, rows int) {
	b.cols = cols
	b.rows = rows
}

// Idle makes the next n reads report that no data is available.
func (b *NullBackend) Idle(n int) {
	b.idle = n
}

// Output returns everything written so far.
func (b *NullBackend) Output() []byte {
	return b.out.Bytes()
}

// Writes returns the number of Write calls.
func (b *NullBackend) Writes() int {
	return b.writes
}

// Active reports whether the backend is between Init and Shutdown.
func (b *NullBackend) Active() bool {
	return b.active
}

// Shutdowns returns how many times the backend was restored.
func (b *NullBackend) Shutdowns() int {
	return b.shutdowns
}
