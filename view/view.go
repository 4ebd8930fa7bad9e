// Package view defines the capability contract every viewloop screen
// satisfies. A view knows how to paint itself into a region of the frame
// buffer; optionally it also reacts to input events. The run loop holds
// exactly one view at a time and talks to it only through these interfaces.
package view

import (
	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/screen"
)

// View renders content into a region of the frame buffer.
//
// Render must be a pure function of the view's own state and the region
// size: no blocking, no I/O, no mutation of shared state. It is called under
// a read lock, so several renders of the same view may run concurrently.
type View interface {
	Render(region screen.Region, buf *screen.Buffer)
}

// EventHandler is the optional event-reacting capability of a view. A view
// that does not implement it simply ignores all input.
//
// HandleEvent is called under a write lock on the active view, so it may
// freely mutate the view's own state. It may also reach back into the
// runtime that dispatched it (to stop the application or request a view
// change); those calls never touch the view lock. A returned error is fatal
// to the run loop.
type EventHandler interface {
	HandleEvent(ev input.Event) error
}

// ViewFunc adapts a plain render function into a View with no event
// handling.
type ViewFunc func(region screen.Region, buf *screen.Buffer)

// Render implements View.
func (f ViewFunc) Render(region screen.Region, buf *screen.Buffer) {
	f(region, buf)
}
