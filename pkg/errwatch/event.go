// event.go defines the canonical captured-error record.

package errwatch

import (
	"time"

	"github.com/google/uuid"
)

// Origin identifies which listener kind produced an Event.
type Origin string

const (
	// OriginFirstChance marks errors observed as they are raised, before any
	// handler has run.
	OriginFirstChance Origin = "first-chance"

	// OriginUnhandled marks errors for which no handler matched.
	OriginUnhandled Origin = "unhandled"

	// OriginUnobserved marks failures of asynchronous work nobody waited on.
	OriginUnobserved Origin = "unobserved"

	// OriginNativeBoundary marks errors crossing between managed and foreign
	// code.
	OriginNativeBoundary Origin = "native-boundary"
)

// Event is the normalized record of one captured error. Events are created
// once inside a listener's signal handler and are immutable thereafter; the
// consumer that receives an Event owns it.
type Event struct {
	// EventID is a unique identifier for this event (UUID).
	EventID string

	// Timestamp is when the error was captured.
	Timestamp time.Time

	// Origin identifies the listener kind that captured the error.
	Origin Origin

	// Err is the captured error. Never nil.
	Err error

	// Stack is an optional stack trace captured at delivery time.
	Stack string
}

// NewEvent builds an Event for the given origin. A nil err is an
// invalid-argument error: ErrNilError is returned and the Event is zero.
func NewEvent(origin Origin, err error) (Event, error) {
	if err == nil {
		return Event{}, ErrNilError
	}
	return Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now(),
		Origin:    origin,
		Err:       err,
	}, nil
}
