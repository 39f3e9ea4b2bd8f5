// Package app wires the editor together: it owns the editing session, the
// terminal backend, the renderer and the key decoder, and runs the input
// loop with terminal restoration on every exit path.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/scribe/internal/config"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/renderer"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// reservedRows is the number of screen rows used by the status and message
// bars.
const reservedRows = 2

// DefaultVersion is shown in the welcome caption when Options.Version is empty.
const DefaultVersion = "0.1.0"

// Application runs one editing session on a terminal.
type Application struct {
	config   *config.Config
	backend  backend.Backend
	renderer *renderer.Renderer
	decoder  *key.Decoder
	keymap   *keymap.Keymap
	session  *Session
	logger   *Logger
	metrics  *Metrics

	signals    chan os.Signal
	ownSignals bool
	running    atomic.Bool
	now        func() time.Time
	sessionID  string
}

// Options configures the application.
type Options struct {
	// Filename is the file to edit. It need not exist, but its directory
	// must.
	Filename string

	// Config supplies editor settings. Defaults are used when nil.
	Config *config.Config

	// Backend is the terminal. Required.
	Backend backend.Backend

	// Logger receives diagnostics. Logging is disabled when nil.
	Logger *Logger

	// Version is shown in the welcome caption.
	Version string

	// Signals, when set, replaces the channel registered with
	// signal.Notify. Tests use it to deliver SIGWINCH and SIGTERM.
	Signals chan os.Signal

	// Now is the clock used for status messages. Defaults to time.Now.
	Now func() time.Time
}

// New creates an application and loads Options.Filename into the buffer.
// Nothing is written to the terminal until Run.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}

	app := &Application{
		config:    opts.Config,
		backend:   opts.Backend,
		logger:    opts.Logger,
		now:       opts.Now,
		signals:   opts.Signals,
		sessionID: uuid.NewString(),
	}
	if app.config == nil {
		app.config = config.New()
	}
	if app.logger == nil {
		app.logger = NullLogger
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.signals == nil {
		app.signals = make(chan os.Signal, 4)
		app.ownSignals = true
	}
	app.logger = app.logger.WithField("session", app.sessionID)
	app.metrics = NewMetrics(app.now())

	editor := app.config.Editor()

	app.keymap = keymap.Default()
	if err := app.keymap.Apply(app.config.Keymap()); err != nil {
		return nil, NewComponentError("keymap", "apply overrides", err)
	}

	buf := buffer.New(buffer.WithTabWidth(editor.TabStop))
	if opts.Filename != "" {
		var err error
		buf, err = LoadBuffer(opts.Filename, buffer.WithTabWidth(editor.TabStop))
		if err != nil {
			return nil, err
		}
	}
	app.session = NewSession(buf, opts.Filename, editor.MessageTimeout)

	var welcome string
	if editor.Welcome {
		version := opts.Version
		if version == "" {
			version = DefaultVersion
		}
		welcome = fmt.Sprintf("Scribe editor -- version %s", version)
	}
	app.renderer = renderer.New(app.backend, renderer.Options{Welcome: welcome})
	app.decoder = key.NewDecoder(app.backend)

	app.logger.Info("opened %q (%d lines, tab stop %d)", opts.Filename, buf.LineCount(), editor.TabStop)
	return app, nil
}

// Run puts the terminal in raw mode and processes keys until the user quits.
// The terminal is restored on every exit path, including panics, which are
// returned as *RecoveredPanicError. A normal quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("terminal", "enable raw mode", err)
	}
	app.logger.Info("session started")

	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("recovered panic: %v", r)
		}
		if restoreErr := app.backend.Shutdown(); restoreErr != nil && (err == nil || errors.Is(err, ErrQuit)) {
			err = NewComponentError("terminal", "restore", restoreErr)
		}
		app.logger.Debug("session metrics: %s", app.metrics.Snapshot(app.now()))
		app.logger.Info("session ended: %v", err)
	}()

	if app.ownSignals {
		signal.Notify(app.signals, syscall.SIGWINCH, syscall.SIGTERM, syscall.SIGHUP)
		defer signal.Stop(app.signals)
	}

	if err := app.resize(); err != nil {
		return err
	}
	if help := app.keymap.HelpText(); help != "" {
		app.session.SetMessage(app.now(), "HELP: %s", help)
	}

	return app.eventLoop(ctx)
}

// resize queries the terminal size and fits the text area into it, leaving
// room for the status and message bars. A terminal with no room for text is
// an error.
func (app *Application) resize() error {
	cols, rows, err := app.backend.Size()
	if err != nil {
		return NewComponentError("terminal", "get window size", err)
	}
	if rows <= reservedRows {
		err = fmt.Errorf("%w: %d rows leave no text area", backend.ErrWindowSize, rows)
		return NewComponentError("terminal", "get window size", err)
	}
	app.session.Resize(cols, rows-reservedRows)
	app.logger.Debug("window size %dx%d", cols, rows)
	return nil
}

// refresh scrolls the cursor into view and draws one frame.
func (app *Application) refresh() error {
	timer := StartTimer(app.now)
	app.session.Scroll()
	if err := app.renderer.Render(app.session.Frame(app.now())); err != nil {
		return NewComponentError("renderer", "draw frame", err)
	}
	app.metrics.RecordFrame(timer.Elapsed())
	return nil
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Session returns the editing session.
func (app *Application) Session() *Session {
	return app.session
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Keymap returns the effective key bindings.
func (app *Application) Keymap() *keymap.Keymap {
	return app.keymap
}

// Metrics returns the session counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// SessionID returns the identifier attached to every log record.
func (app *Application) SessionID() string {
	return app.sessionID
}
