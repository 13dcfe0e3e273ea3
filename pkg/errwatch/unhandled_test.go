package errwatch

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestUnhandledListener_StructuredErrorPassesThrough(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	cause := errors.New("disk full")
	src.Raise(cause)

	events := rec.getEvents()
	if len(events) != 1 {
		t.Fatalf("consumer invoked %d times, want 1", len(events))
	}
	if events[0].Err != cause {
		t.Errorf("published %v, want the structured error itself", events[0].Err)
	}
	if events[0].Err.Error() != "disk full" {
		t.Errorf("message = %q, want %q", events[0].Err.Error(), "disk full")
	}
}

func TestUnhandledListener_NonErrorPayloadIsWrapped(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	src.Raise(42)

	events := rec.getEvents()
	if len(events) != 1 {
		t.Fatalf("consumer invoked %d times, want 1", len(events))
	}
	if events[0].Err == nil {
		t.Fatal("published event carries no error")
	}
	if !strings.Contains(events[0].Err.Error(), "42") {
		t.Errorf("message %q does not contain the payload's string form", events[0].Err.Error())
	}
}

func TestUnhandledListener_StringPayloadIsWrapped(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	src.Raise("boom")

	events := rec.getEvents()
	if len(events) != 1 {
		t.Fatalf("consumer invoked %d times, want 1", len(events))
	}
	if !strings.Contains(events[0].Err.Error(), "boom") {
		t.Errorf("message %q does not contain %q", events[0].Err.Error(), "boom")
	}
}

func TestUnhandledListener_CapturesStack(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	src.Raise(errors.New("boom"))

	events := rec.getEvents()
	if len(events) != 1 {
		t.Fatalf("consumer invoked %d times, want 1", len(events))
	}
	if events[0].Stack == "" {
		t.Error("unhandled event carries no stack trace")
	}
	if !strings.Contains(events[0].Stack, "goroutine") {
		t.Errorf("stack %q does not look like a goroutine dump", events[0].Stack[:min(len(events[0].Stack), 80)])
	}
}

func TestUnhandledListener_ClosedBeforeDelivery(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)

	if err := l.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	src.Raise(errors.New("late"))

	if got := rec.count(); got != 0 {
		t.Errorf("consumer invoked %d times after Close, want 0", got)
	}
}

func TestRecover_FeedsUnhandledSource(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer Recover(src)
		panic(errors.New("goroutine died"))
	}()
	wg.Wait()

	events := rec.getEvents()
	if len(events) != 1 {
		t.Fatalf("consumer invoked %d times, want 1", len(events))
	}
	if events[0].Err.Error() != "goroutine died" {
		t.Errorf("message = %q, want the panic error's message", events[0].Err.Error())
	}
}

func TestRecover_NonErrorPanicIsNormalized(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer Recover(src)
		panic("not an error")
	}()
	wg.Wait()

	events := rec.getEvents()
	if len(events) != 1 {
		t.Fatalf("consumer invoked %d times, want 1", len(events))
	}
	if !strings.Contains(events[0].Err.Error(), "not an error") {
		t.Errorf("message %q does not carry the panic value", events[0].Err.Error())
	}
}

func TestRecover_NoPanicIsNoop(t *testing.T) {
	src := NewSource[any]()
	rec := &recordingConsumer{}
	l := NewUnhandledListener(src, rec.consume)
	defer l.Close()

	func() {
		defer Recover(src)
	}()

	if got := rec.count(); got != 0 {
		t.Errorf("consumer invoked %d times without a panic, want 0", got)
	}
}
