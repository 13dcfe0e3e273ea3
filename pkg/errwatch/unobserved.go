// unobserved.go captures failures of asynchronous work whose result nobody
// ever waited on or inspected.

package errwatch

import "errors"

// FailedWork is one failed unit of asynchronous work surfacing through the
// unobserved channel. Err reports the failure, possibly inside a generic
// task-failed wrapper; MarkObserved tells the owning runtime the failure has
// been dealt with and must not trigger its deferred secondary crash.
type FailedWork interface {
	Err() error
	MarkObserved()
}

// UnobservedListener observes async failures that would otherwise be dropped
// or, on some runtimes, re-raised later and crash the process.
//
// Constructing this listener changes behavior: every failure it sees is
// marked observed, unconditionally and before the consumer runs, so a
// panicking consumer cannot skip the mark. A host that wants the original
// crash-later behavior must simply not construct this listener.
type UnobservedListener struct {
	core
	hook Hook[FailedWork]
}

// NewUnobservedListener subscribes to hook and republishes each failure's
// root cause to consumer.
func NewUnobservedListener(hook Hook[FailedWork], consumer Consumer) *UnobservedListener {
	l := &UnobservedListener{hook: hook}
	l.init(OriginUnobserved, consumer)
	l.detach = hook.Detach
	hook.Attach(l.onSignal)
	return l
}

func (l *UnobservedListener) onSignal(failure FailedWork) {
	// Mark first. This must happen even when publish is skipped or the
	// consumer panics.
	failure.MarkObserved()

	err := failure.Err()
	if err == nil {
		return
	}
	// Strip one level of generic task-failed wrapping so the consumer gets
	// the underlying error, not the wrapper.
	if cause := errors.Unwrap(err); cause != nil {
		err = cause
	}
	_ = l.publish(l, err, "")
}
