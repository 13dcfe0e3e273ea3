// Package errwatch provides a unified facade over a process's disparate
// error channels: errors observed in flight, errors that would otherwise
// terminate the process, failures of fire-and-forget asynchronous work that
// nobody waited on, and errors crossing the native boundary from foreign
// code.
//
// # Core Components
//
// The library is organized around these concepts:
//
//   - Event: the normalized, immutable record of one captured error
//   - Consumer: the host callback every listener republishes through
//   - Hook / Source: an attachable error source; Source is the in-process
//     default and the unit tests simulate deliveries with
//   - FirstChanceListener, UnhandledListener, UnobservedListener,
//     NativeBoundaryListener: one listener per underlying source, each
//     owning exactly one subscription for its lifetime
//
// # Quick Start
//
//	unhandled := errwatch.NewSource[any]()
//	l := errwatch.NewUnhandledListener(unhandled, func(source any, e errwatch.Event) {
//	    log.Printf("captured: %v", e.Err)
//	})
//	defer l.Close()
//
//	go func() {
//	    defer errwatch.Recover(unhandled)
//	    // code that might panic
//	}()
//
// # Design Principles
//
//   - Capture and republish only: no classification, retry, suppression
//     policy, or sink routing; what happens to an Event is the host's call
//   - Listener internals never throw out of a signal handler; a panic in the
//     host's consumer is the host's last chance to see it and propagates
//   - Subscription lifetime equals listener lifetime: the constructor
//     attaches, Close detaches, and Close is idempotent
package errwatch
