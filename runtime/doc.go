// Package runtime is the application lifecycle core of viewloop: it owns
// the shared application state, drives the render/handle-event loop, and
// implements the deferred protocol for swapping the active view.
//
// # Shared state
//
// A Runtime holds three independently guarded cells: the application state
// (initialized and running flags), the active view, and the pending-swap
// slot. Each cell uses reader/writer mutual exclusion, so a view's own event
// handler, or code outside the loop entirely, can safely read or mutate the
// state that controls its lifecycle.
//
// # Deferred view swaps
//
// A view's event handler is the natural place to decide "switch to another
// view", but at that moment the handler is running under the write lock on
// the very slot it would replace. Swapping in place would re-enter a held
// lock. RequestView therefore only queues the new view; the swap is applied
// at the top of the next loop iteration, when nothing holds the active view.
// At most one request can be queued: while a swap is pending, further
// requests are dropped (first-requested-wins).
//
// # Lifecycle
//
//	rt := runtime.New()
//	rt.Initialize(myView)
//	if err := rt.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Initialize is idempotent: a second call leaves the established state
// untouched. Calling IsRunning, Stop, RequestView or Run before Initialize
// is an integration bug and panics. Run exits when some handler calls Stop,
// or with the first fatal error (draw failure, event source failure, or a
// handler error); the terminal surface is released on every exit path.
package runtime
