// task.go provides a fire-and-forget task whose failure, if never waited on,
// is reported through an unobserved-failure source when the task is
// collected. This is the in-process analog of runtimes that re-surface
// unawaited async failures during garbage collection.

package errwatch

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Task is one unit of background work started with Spawn.
type Task struct {
	done     chan struct{}
	err      error
	observed atomic.Bool
}

// Spawn runs fn on its own goroutine. If fn returns an error and nothing
// ever calls Wait, the failure is raised on src once the Task becomes
// unreachable and the garbage collector finalizes it. Delivery is therefore
// at-most-once and its timing is the collector's; hosts that need prompt,
// deterministic failure handling should Wait.
func Spawn(src *Source[FailedWork], fn func() error) *Task {
	t := &Task{done: make(chan struct{})}
	runtime.SetFinalizer(t, func(t *Task) {
		t.reportUnobserved(src)
	})
	go func() {
		defer close(t.done)
		t.err = fn()
	}()
	return t
}

// Wait blocks until the task completes, marks its outcome observed, and
// returns the task's error.
func (t *Task) Wait() error {
	<-t.done
	t.observed.Store(true)
	return t.err
}

// Done returns a channel closed when the task completes. Receiving from it
// does not mark the outcome observed; only Wait (or the unobserved channel)
// does.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// reportUnobserved runs as the Task's finalizer. The spawned goroutine keeps
// the Task reachable until fn returns, so by the time the finalizer runs the
// task has completed.
func (t *Task) reportUnobserved(src *Source[FailedWork]) {
	if t.err == nil || t.observed.Load() {
		return
	}
	src.Raise(&unobservedFailure{task: t})
}

// unobservedFailure adapts a finished Task to FailedWork. Err wraps the task
// error in the generic wrapper the UnobservedListener strips back off.
type unobservedFailure struct {
	task *Task
}

func (f *unobservedFailure) Err() error {
	return fmt.Errorf("unobserved task failure: %w", f.task.err)
}

func (f *unobservedFailure) MarkObserved() {
	f.task.observed.Store(true)
}
