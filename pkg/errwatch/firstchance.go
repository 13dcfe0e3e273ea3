// firstchance.go captures errors at the moment they are raised, before any
// handler has run.

package errwatch

// FirstChanceListener observes errors in flight. It is purely an observer:
// the error it republishes continues its normal propagation elsewhere, and
// the listener has no power to suppress it.
//
// This is the highest-frequency source, so the handler does the minimum: no
// stack capture, no filtering, a 1:1 mapping from signal to Event. Batching,
// sampling, and throttling are the host consumer's call.
type FirstChanceListener struct {
	core
	hook Hook[error]
}

// NewFirstChanceListener subscribes to hook and republishes every observed
// error to consumer. The subscription lives until Close.
func NewFirstChanceListener(hook Hook[error], consumer Consumer) *FirstChanceListener {
	l := &FirstChanceListener{hook: hook}
	l.init(OriginFirstChance, consumer)
	l.detach = hook.Detach
	hook.Attach(l.onSignal)
	return l
}

func (l *FirstChanceListener) onSignal(err error) {
	// Errors from publish are swallowed: an in-flight first-chance signal is
	// not a place anything can be raised back into.
	_ = l.publish(l, err, "")
}
