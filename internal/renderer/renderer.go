package renderer

import (
	"errors"
	"fmt"

	"github.com/dshills/scribe/internal/renderer/backend"
)

// ErrWrite is returned when a frame cannot be written to the terminal.
var ErrWrite = errors.New("write frame")

// Options configures the renderer.
type Options struct {
	// Welcome is the caption drawn on an empty buffer ("" disables it).
	Welcome string
}

// DefaultOptions returns the default options: no welcome caption.
func DefaultOptions() Options {
	return Options{}
}

// Renderer composes frames and writes each one to the backend in a single
// write.
type Renderer struct {
	opts     Options
	backend  backend.Backend
	composer *Composer

	frameCount uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:     opts,
		backend:  b,
		composer: NewComposer(b.Capabilities(), opts.Welcome),
	}
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render composes the frame and writes it.
func (r *Renderer) Render(f Frame) error {
	if err := r.write(r.composer.Compose(f)); err != nil {
		return err
	}
	r.frameCount++
	return nil
}

// Clear clears the screen and homes the cursor.
func (r *Renderer) Clear() error {
	return r.write(r.composer.ClearScreen())
}

// FrameCount returns the number of frames written.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

func (r *Renderer) write(p []byte) error {
	n, err := r.backend.Write(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: short write (%d of %d bytes)", ErrWrite, n, len(p))
	}
	return nil
}
