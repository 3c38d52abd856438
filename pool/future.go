package pool

import (
	"github.com/secutil/secutil/internal/future"
)

// Task is the handle of a submitted task that does not return a value. It is
// written exactly once by the worker that ran the task and can be read any
// number of times.
type Task interface {

	// Done returns a channel that is closed when the task has completed or
	// failed.
	Done() <-chan struct{}

	// Wait blocks until the task completes and returns any error that
	// occurred, including panics wrapped in ErrPanic.
	Wait() error
}

// Result is the handle of a submitted task that returns a value of type R.
type Result[R any] interface {

	// Done returns a channel that is closed when the task has completed or
	// failed.
	Done() <-chan struct{}

	// Wait blocks until the task completes and returns its result and any
	// error that occurred.
	Wait() (R, error)
}

// taskHandle adapts a value-less future to the Task interface.
type taskHandle struct {
	fut *future.Future[struct{}]
}

func (t taskHandle) Done() <-chan struct{} {
	return t.fut.Done()
}

func (t taskHandle) Wait() error {
	_, err := t.fut.Wait()
	return err
}
