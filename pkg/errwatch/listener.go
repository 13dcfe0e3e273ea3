// listener.go implements the shared listener mechanics: the consumer slot,
// publish, and idempotent Close. Concrete listeners embed core and only add
// their subscribe/unsubscribe wiring and signal mapping.

package errwatch

import (
	"io"
	"sync/atomic"
)

// Consumer receives captured events. source is the listener (or underlying
// sender) that captured the error and may be nil; event.Err is never nil.
//
// Consumers run synchronously on whatever goroutine the source used to
// deliver the signal. If a consumer panics, the panic propagates unmodified:
// it is the host's error, and this is the host's last chance to see it.
type Consumer func(source any, event Event)

// Listener is the surface every concrete listener satisfies. Closing a
// listener detaches it from its source and drops the consumer reference;
// Close is idempotent and safe to call concurrently with an in-flight
// delivery.
type Listener interface {
	io.Closer
}

// Fanout combines consumers into one. The returned Consumer invokes each
// non-nil consumer in order, preserving the single-slot registration
// contract of the listeners.
func Fanout(consumers ...Consumer) Consumer {
	list := make([]Consumer, 0, len(consumers))
	for _, fn := range consumers {
		if fn != nil {
			list = append(list, fn)
		}
	}
	return func(source any, event Event) {
		for _, fn := range list {
			fn(source, event)
		}
	}
}

// core holds the state shared by all listeners: the consumer slot and the
// closed flag. Concrete listeners embed it by pointer-receiver use and must
// call init before attaching to their source.
//
// Concurrency policy: publish loads the consumer pointer once per delivery
// and Close swaps it to nil atomically. A handler already past the load
// completes against the old consumer even if Close returns first; any load
// after the swap sees nil. No lock is held across the consumer invocation.
type core struct {
	origin   Origin
	consumer atomic.Pointer[Consumer]
	closed   atomic.Bool
	detach   func()
}

// init seeds the consumer slot. The concrete constructor sets detach before
// attaching its handler so that Close can always unsubscribe.
func (c *core) init(origin Origin, consumer Consumer) {
	c.origin = origin
	if consumer != nil {
		c.consumer.Store(&consumer)
	}
}

// publish builds one Event and hands it to the consumer, synchronously on
// the calling goroutine. A nil err returns ErrNilError; a cleared or absent
// consumer is a silent no-op. publish never recovers a consumer panic.
func (c *core) publish(source any, err error, stack string) error {
	event, eventErr := NewEvent(c.origin, err)
	if eventErr != nil {
		return eventErr
	}
	event.Stack = stack

	fn := c.consumer.Load()
	if fn == nil {
		return nil
	}
	(*fn)(source, event)
	return nil
}

// Close detaches the listener from its source and drops the consumer
// reference. Only the first call does anything; later calls are no-ops.
func (c *core) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.detach != nil {
		c.detach()
	}
	c.consumer.Store(nil)
	return nil
}
