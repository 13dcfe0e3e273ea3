// crash.go provides a ready-made native boundary hook backed by the
// process's fatal OS signals. Which signals are registered is decided per
// platform in the platform_*.go files.

package errwatch

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
)

// OSCrashHook turns fatal OS signals into CrossingHostOS native signals
// carrying an all-goroutine stack dump. It captures signals delivered
// asynchronously (e.g. raised by native code or sent to the process);
// synchronous faults inside Go code still crash the runtime as usual.
type OSCrashHook struct {
	src  *Source[*NativeSignal]
	ch   chan os.Signal
	done chan struct{}
	stop sync.Once
}

// NewOSCrashHook registers the platform's fatal-signal set and starts
// forwarding. Detach unregisters and stops the forwarding goroutine.
func NewOSCrashHook() *OSCrashHook {
	h := &OSCrashHook{
		src:  NewSource[*NativeSignal](),
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	notifyCrashSignals(h.ch)
	go h.loop()
	return h
}

func (h *OSCrashHook) loop() {
	for {
		select {
		case sig := <-h.ch:
			// Capture all goroutines while the process is still coherent.
			buf := make([]byte, 1<<16)
			n := runtime.Stack(buf, true)
			trace := string(buf[:n])

			h.src.Raise(&NativeSignal{
				Kind: CrossingHostOS,
				Err:  fmt.Errorf("fatal signal: %v", sig),
				Describe: func() (string, error) {
					return trace, nil
				},
			})
		case <-h.done:
			return
		}
	}
}

// Attach registers the handler invoked for every forwarded signal.
func (h *OSCrashHook) Attach(handler func(*NativeSignal)) {
	h.src.Attach(handler)
}

// Detach drops the handler, unregisters the OS signals, and stops the
// forwarding goroutine. Safe to call more than once.
func (h *OSCrashHook) Detach() {
	h.src.Detach()
	h.stop.Do(func() {
		signal.Stop(h.ch)
		close(h.done)
	})
}
