package runtime

import (
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/viewloop/input"
	"github.com/muurk/viewloop/screen"
	"github.com/muurk/viewloop/view"
)

// Surface is the drawing target the run loop renders frames into. The real
// implementation is screen.Terminal; tests substitute an in-memory surface.
type Surface interface {
	// Draw builds one frame: it calls render with the drawable region and a
	// frame buffer, then flushes the result.
	Draw(render func(screen.Region, *screen.Buffer)) error

	// Release restores whatever Draw was writing to. It must be safe to
	// call more than once.
	Release() error
}

// EventSource delivers input events to the run loop, one blocking read per
// event. The real implementation is input.Reader.
type EventSource interface {
	ReadEvent() (input.Event, error)
}

// Runtime is the shared application context: the running flag, the active
// view, and the pending view-swap slot, each behind its own reader/writer
// lock. A single Runtime drives one run loop; views receive a reference so
// their handlers can stop the application or request navigation.
type Runtime struct {
	stateMu     sync.RWMutex
	initialized bool
	running     bool

	viewMu sync.RWMutex
	active view.View

	swapMu      sync.Mutex
	pending     view.View
	swapPending bool

	surface Surface
	source  EventSource
	logger  *zap.Logger
}

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithSurface sets the drawing surface. When unset, Run acquires the
// process's terminal via screen.Acquire.
func WithSurface(s Surface) Option {
	return func(r *Runtime) { r.surface = s }
}

// WithEventSource sets the input event source. When unset, Run reads from
// stdin via input.NewReader.
func WithEventSource(src EventSource) Option {
	return func(r *Runtime) { r.source = src }
}

// WithLogger sets the structured logger for lifecycle events. The default
// is a nop logger, since the runtime usually owns the terminal.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns an uninitialized Runtime. Initialize must be called before
// any other method.
func New(opts ...Option) *Runtime {
	r := &Runtime{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize establishes the application state (running) and the initial
// active view. It is idempotent: once established, later calls change
// nothing, so the first view and running flag always win.
func (r *Runtime) Initialize(v view.View) {
	if v == nil {
		panic("viewloop: Initialize called with a nil view")
	}

	r.viewMu.Lock()
	if r.active == nil {
		r.active = v
	}
	r.viewMu.Unlock()

	r.stateMu.Lock()
	if !r.initialized {
		r.initialized = true
		r.running = true
		r.logger.Info("runtime initialized")
	}
	r.stateMu.Unlock()
}

// IsRunning reports whether the run loop should continue. Calling it before
// Initialize is an integration bug and panics.
func (r *Runtime) IsRunning() bool {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	r.mustBeInitializedLocked()
	return r.running
}

// Stop requests loop termination. The loop notices at the end of the
// current iteration; there is no asynchronous cancellation. Callable from a
// view's event handler.
func (r *Runtime) Stop() {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.mustBeInitializedLocked()
	if r.running {
		r.running = false
		r.logger.Info("stop requested")
	}
}

// RequestView queues v to become the active view at the top of the next
// loop iteration. While a request is pending, further requests are silently
// dropped: the first requested view wins. Safe to call from the active
// view's own event handler; it never touches the active-view lock.
func (r *Runtime) RequestView(v view.View) {
	if v == nil {
		panic("viewloop: RequestView called with a nil view")
	}
	r.stateMu.RLock()
	r.mustBeInitializedLocked()
	r.stateMu.RUnlock()

	r.swapMu.Lock()
	defer r.swapMu.Unlock()
	if r.swapPending {
		r.logger.Debug("view change dropped, swap already pending")
		return
	}
	r.pending = v
	r.swapPending = true
	r.logger.Debug("view change queued")
}

// applyPendingSwap installs the queued view, if any. Called only from the
// loop top, when no render or dispatch holds the active view.
func (r *Runtime) applyPendingSwap() {
	r.swapMu.Lock()
	if !r.swapPending {
		r.swapMu.Unlock()
		return
	}
	next := r.pending
	r.pending = nil
	r.swapPending = false
	r.swapMu.Unlock()

	r.viewMu.Lock()
	r.active = next
	r.viewMu.Unlock()
	r.logger.Debug("active view swapped")
}

// renderActive paints the active view. Read lock: rendering never mutates
// the view.
func (r *Runtime) renderActive(region screen.Region, buf *screen.Buffer) {
	r.viewMu.RLock()
	defer r.viewMu.RUnlock()
	r.active.Render(region, buf)
}

// dispatch delivers one event to the active view under the write lock.
// Views without the EventHandler capability ignore input.
func (r *Runtime) dispatch(ev input.Event) error {
	r.viewMu.Lock()
	defer r.viewMu.Unlock()
	h, ok := r.active.(view.EventHandler)
	if !ok {
		return nil
	}
	return h.HandleEvent(ev)
}

func (r *Runtime) mustBeInitializedLocked() {
	if !r.initialized {
		panic("viewloop: runtime not initialized; call Initialize first")
	}
}
