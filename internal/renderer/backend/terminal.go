package backend

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// cursorReportTimeout bounds how long Size waits for the terminal to answer
// a cursor position query.
const cursorReportTimeout = time.Second

// Terminal implements Backend on a POSIX terminal device.
//
// Init puts the device in raw mode with a 100ms read timeout (VMIN=0,
// VTIME=1), so Read returns no data instead of blocking forever.
type Terminal struct {
	in    *os.File
	out   *os.File
	fd    int
	state *term.State
	caps  Capabilities
}

// NewTerminal creates a terminal backend reading from in and writing to out.
func NewTerminal(in, out *os.File, caps Capabilities) *Terminal {
	return &Terminal{
		in:   in,
		out:  out,
		fd:   int(in.Fd()),
		caps: caps,
	}
}

// Init captures the current terminal state and switches to raw mode.
func (t *Terminal) Init() error {
	if !term.IsTerminal(t.fd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.state = state

	if err := setReadTimeout(t.fd); err != nil {
		_ = term.Restore(t.fd, state)
		t.state = nil
		return fmt.Errorf("set read timeout: %w", err)
	}
	return nil
}

// Shutdown restores the terminal state captured by Init.
func (t *Terminal) Shutdown() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil
	if err := term.Restore(t.fd, state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Size returns the window size. When the ioctl fails or reports zero
// columns, the size is measured by moving the cursor to the bottom-right
// corner and asking the terminal where it ended up.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 && rows > 0 {
		return cols, rows, nil
	}
	if t.state == nil {
		return 0, 0, ErrWindowSize
	}
	return t.sizeFromCursor()
}

func (t *Terminal) sizeFromCursor() (int, int, error) {
	if _, err := t.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrWindowSize, err)
	}

	var report []byte
	var b [1]byte
	deadline := time.Now().Add(cursorReportTimeout)
	for len(report) < 32 && time.Now().Before(deadline) {
		n, err := t.Read(b[:])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrWindowSize, err)
		}
		if n == 0 {
			continue
		}
		if b[0] == 'R' {
			break
		}
		report = append(report, b[0])
	}

	rows, cols, err := parseCursorReport(report)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrWindowSize, err)
	}
	return cols, rows, nil
}

// Read reads raw input. EAGAIN and EINTR are reported as no data.
func (t *Terminal) Read(p []byte) (int, error) {
	n, err := unix.Read(t.fd, p)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}

// Write writes p to the terminal in full.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Capabilities returns the control sequences for this terminal.
func (t *Terminal) Capabilities() Capabilities {
	return t.caps
}

// setReadTimeout makes reads return after 100ms even with no input.
func setReadTimeout(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}

// parseCursorReport parses a cursor position report of the form
// "ESC [ rows ; cols" (the terminating 'R' already consumed).
func parseCursorReport(b []byte) (rows, cols int, err error) {
	if len(b) < 2 || b[0] != '\x1b' || b[1] != '[' {
		return 0, 0, ErrCursorReport
	}
	body := b[2:]

	sep := -1
	for i, c := range body {
		if c == ';' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return 0, 0, ErrCursorReport
	}

	rows, err = strconv.Atoi(string(body[:sep]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrCursorReport, err)
	}
	cols, err = strconv.Atoi(string(body[sep+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrCursorReport, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrCursorReport
	}
	return rows, cols, nil
}
