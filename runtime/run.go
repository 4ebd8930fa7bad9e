package runtime

import (
	"fmt"

	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/screen"
)

// Run drives the application until a handler calls Stop or a fatal error
// occurs. Each iteration, in order: apply a pending view swap, draw the
// active view, block for one input event, dispatch it, re-check the running
// flag. The surface is released exactly once on every exit path, including
// errors.
//
// Run panics if Initialize has not been called. It returns nil when the
// loop exited because Stop was called, and the first fatal error otherwise.
func (r *Runtime) Run() (err error) {
	// Panics on uninitialized use before any resource is acquired.
	r.IsRunning()

	surface := r.surface
	if surface == nil {
		t, aerr := screen.Acquire()
		if aerr != nil {
			return fmt.Errorf("failed to acquire terminal: %w", aerr)
		}
		surface = t
	}
	defer func() {
		if rerr := surface.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to release surface: %w", rerr)
		}
	}()

	source := r.source
	if source == nil {
		source = input.NewReader(nil)
	}

	r.logger.Info("run loop started")
	for r.IsRunning() {
		r.applyPendingSwap()

		if derr := surface.Draw(r.renderActive); derr != nil {
			return fmt.Errorf("failed to draw frame: %w", derr)
		}

		ev, rerr := source.ReadEvent()
		if rerr != nil {
			return fmt.Errorf("failed to read event: %w", rerr)
		}

		if herr := r.dispatch(ev); herr != nil {
			return fmt.Errorf("event handler failed: %w", herr)
		}
	}
	r.logger.Info("run loop stopped")
	return nil
}
