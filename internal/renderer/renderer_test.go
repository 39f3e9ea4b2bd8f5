package renderer

import (
	"errors"
	"testing"

	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/engine/cursor"
	"github.com/dshills/scribe/internal/renderer/backend"
)

func TestRendererSingleWritePerFrame(t *testing.T) {
	nb := backend.NewNullBackend(20, 5, nil)
	r := New(nb, DefaultOptions())

	buf := buffer.NewFromLines([]string{"one", "two"})
	f := newFrame(buf, 20, 3, cursor.Cursor{})

	for range 3 {
		if err := r.Render(f); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}

	if nb.Writes() != 3 {
		t.Errorf("expected one write per frame, got %d writes", nb.Writes())
	}
	if r.FrameCount() != 3 {
		t.Errorf("expected frame count 3, got %d", r.FrameCount())
	}
}

func TestRendererClear(t *testing.T) {
	nb := backend.NewNullBackend(20, 5, nil)
	r := New(nb, DefaultOptions())

	if err := r.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if string(nb.Output()) != "\x1b[2J\x1b[1;1H" {
		t.Errorf("unexpected output %q", nb.Output())
	}
}

type failingBackend struct {
	*backend.NullBackend
}

func (failingBackend) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRendererWriteError(t *testing.T) {
	r := New(failingBackend{backend.NewNullBackend(20, 5, nil)}, DefaultOptions())

	err := r.Clear()
	if !errors.Is(err, ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.Welcome != "" {
		t.Errorf("default welcome should be empty, got %q", opts.Welcome)
	}
}
