package errwatch

import (
	"errors"
	"testing"
)

func TestSource_Raise_DeliversToHandler(t *testing.T) {
	src := NewSource[error]()

	var got error
	src.Attach(func(err error) { got = err })

	want := errors.New("boom")
	src.Raise(want)

	if got != want {
		t.Errorf("handler received %v, want %v", got, want)
	}
}

func TestSource_Raise_WithoutHandlerDropsSignal(t *testing.T) {
	src := NewSource[error]()

	// Must not panic.
	src.Raise(errors.New("nobody home"))
}

func TestSource_Detach_StopsDelivery(t *testing.T) {
	src := NewSource[error]()

	calls := 0
	src.Attach(func(err error) { calls++ })
	src.Detach()
	src.Raise(errors.New("late"))

	if calls != 0 {
		t.Errorf("handler invoked %d times after Detach, want 0", calls)
	}
}

func TestSource_Attach_ReplacesHandler(t *testing.T) {
	src := NewSource[error]()

	var first, second int
	src.Attach(func(err error) { first++ })
	src.Attach(func(err error) { second++ })
	src.Raise(errors.New("boom"))

	if first != 0 {
		t.Errorf("replaced handler invoked %d times, want 0", first)
	}
	if second != 1 {
		t.Errorf("current handler invoked %d times, want 1", second)
	}
}
