// unhandled.go captures errors for which no handler matched, on their way to
// terminating the process.

package errwatch

import (
	"fmt"
	"runtime/debug"
)

// UnhandledListener observes errors the runtime is about to die on. It
// cannot prevent termination when the runtime has already decided to
// terminate; it exists to get the error recorded before the process dies.
//
// The signal payload is arbitrary: runtimes permit raising values that are
// not errors (a Go panic value is any). A structured error passes through
// unchanged; anything else is wrapped so the consumer always receives an
// error whose message carries the payload's string form.
type UnhandledListener struct {
	core
	hook Hook[any]
}

// NewUnhandledListener subscribes to hook and republishes every unhandled
// payload to consumer, normalized to an error.
func NewUnhandledListener(hook Hook[any], consumer Consumer) *UnhandledListener {
	l := &UnhandledListener{hook: hook}
	l.init(OriginUnhandled, consumer)
	l.detach = hook.Detach
	hook.Attach(l.onSignal)
	return l
}

func (l *UnhandledListener) onSignal(payload any) {
	err, ok := payload.(error)
	if !ok {
		err = fmt.Errorf("unhandled error with non-error payload: %v", payload)
	}
	_ = l.publish(l, err, string(debug.Stack()))
}

// Recover feeds a recovered panic into an unhandled source and returns the
// recovered value. Use it in defer, directly:
//
//	go func() {
//	    defer errwatch.Recover(src)
//	    // code that might panic
//	}()
//
// Recover does not re-panic: the goroutine survives. A host that wants the
// process to die anyway can re-panic with the returned value.
func Recover(src *Source[any]) any {
	r := recover()
	if r != nil {
		src.Raise(r)
	}
	return r
}
