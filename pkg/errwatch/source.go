// source.go defines the attachable error-source abstraction listeners
// subscribe to, and the in-process default implementation.

package errwatch

import "sync"

// Hook is one attachable error source. Attach and Detach are the only two
// operations a source supports; everything else about the source is opaque
// to this library.
//
// A Hook carries a single handler slot: one listener owns one subscription
// at a time. Hosts bridging a real runtime hook implement this interface;
// tests and in-process wiring use Source.
type Hook[T any] interface {
	// Attach registers the handler invoked for every signal the source
	// delivers, replacing any previous handler.
	Attach(handler func(T))

	// Detach removes the current handler. Signals delivered afterwards are
	// dropped.
	Detach()
}

// Source is an in-process Hook whose signals are delivered with Raise. It is
// the default way to feed a listener when no platform hook applies, and the
// unit tests simulate native deliveries with it.
//
// Raise invokes the handler synchronously on the calling goroutine, which is
// exactly the delivery model of the runtime hooks this library fronts: the
// handler runs on whatever goroutine raised the signal.
type Source[T any] struct {
	mu      sync.Mutex
	handler func(T)
}

// NewSource creates an empty Source.
func NewSource[T any]() *Source[T] {
	return &Source[T]{}
}

// Attach registers the handler, replacing any previous one.
func (s *Source[T]) Attach(handler func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// Detach clears the handler.
func (s *Source[T]) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = nil
}

// Raise delivers one signal to the attached handler, synchronously. With no
// handler attached the signal is dropped.
func (s *Source[T]) Raise(v T) {
	s.mu.Lock()
	handler := s.handler
	s.mu.Unlock()

	if handler != nil {
		handler(v)
	}
}
