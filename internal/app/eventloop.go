package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/dshills/scribe/internal/engine/cursor"
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/input/keymap"
)

// eventLoop refreshes the screen and processes one key at a time until the
// user quits, a signal ends the session or a fatal error occurs.
func (app *Application) eventLoop(ctx context.Context) error {
	for {
		if err := app.refresh(); err != nil {
			return err
		}

		ev, err := app.waitKey(ctx)
		if err != nil {
			return err
		}
		if err := app.handleKey(ev); err != nil {
			return err
		}
	}
}

// waitKey polls the decoder until a key arrives. Pending signals are
// handled between polls; the decoder returns after the terminal read
// timeout even when no key is pressed.
func (app *Application) waitKey(ctx context.Context) (key.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return key.Event{}, err
		}

		select {
		case sig := <-app.signals:
			if err := app.handleSignal(sig); err != nil {
				return key.Event{}, err
			}
			continue
		default:
		}

		ev, ok, err := app.decoder.Poll()
		if err != nil {
			return key.Event{}, NewComponentError("input", "read key", err)
		}
		if ok {
			return ev, nil
		}
	}
}

// handleSignal reacts to a signal delivered between keys.
func (app *Application) handleSignal(sig os.Signal) error {
	switch sig {
	case syscall.SIGWINCH:
		if err := app.resize(); err != nil {
			return err
		}
		app.metrics.RecordResize()
		return app.refresh()
	case syscall.SIGTERM, syscall.SIGHUP:
		app.logger.Info("received %v", sig)
		return fmt.Errorf("%w: %v", ErrTerminated, sig)
	default:
		return nil
	}
}

// handleKey runs the action bound to ev. Unbound keys that produce a byte
// are inserted at the cursor; other unbound keys are ignored.
func (app *Application) handleKey(ev key.Event) error {
	app.metrics.RecordKey()

	action, bound := app.keymap.Lookup(ev)
	if !bound {
		c, ok := ev.Byte()
		if !ok {
			app.metrics.RecordUnbound()
			app.logger.Debug("ignoring unbound key %s", ev)
			return nil
		}
		if err := app.session.InsertChar(c); err != nil {
			return NewOperationError("insert", app.session.Filename(), err)
		}
		app.metrics.RecordInsert()
		return nil
	}

	return app.dispatch(action)
}

// dispatch executes a keymap action.
func (app *Application) dispatch(action string) error {
	s := app.session

	switch action {
	case keymap.ActionQuit:
		if err := app.renderer.Clear(); err != nil {
			return NewComponentError("renderer", "clear screen", err)
		}
		return ErrQuit

	case keymap.ActionSave:
		app.save()

	case keymap.ActionMoveUp:
		s.Move(cursor.DirUp)
	case keymap.ActionMoveDown:
		s.Move(cursor.DirDown)
	case keymap.ActionMoveLeft:
		s.Move(cursor.DirLeft)
	case keymap.ActionMoveRight:
		s.Move(cursor.DirRight)
	case keymap.ActionLineStart:
		s.MoveToLineStart()
	case keymap.ActionLineEnd:
		s.MoveToLineEnd()
	case keymap.ActionPageUp:
		s.Page(cursor.DirUp)
	case keymap.ActionPageDown:
		s.Page(cursor.DirDown)

	case keymap.ActionNewline, keymap.ActionDeleteBack, keymap.ActionDeleteForward:
		// Line splitting and deletion are not supported; the keys are
		// decoded so they are never inserted as text.
		app.logger.Debug("%s is not supported", action)

	case keymap.ActionRedraw, keymap.ActionNone:
		// The next loop iteration redraws anyway.

	default:
		app.logger.Warn("no handler for action %q", action)
	}
	return nil
}

// save writes the buffer and reports the result in the message bar.
// Failures are not fatal; the buffer is left untouched.
func (app *Application) save() {
	now := app.now()
	n, err := app.session.Save()
	app.metrics.RecordSave(n, err)

	switch {
	case err == nil:
		app.session.SetMessage(now, "%d bytes written to disk", n)
		app.logger.Info("saved %s (%d bytes)", app.session.Filename(), n)
	case errors.Is(err, ErrNoFilename):
		app.session.SetMessage(now, "No filename; nothing saved")
	default:
		cause := err
		var opErr *OperationError
		if errors.As(err, &opErr) && opErr.Err != nil {
			cause = opErr.Err
		}
		app.session.SetMessage(now, "Can't save! I/O error: %v", cause)
		app.logger.Error("%v", err)
	}
}
