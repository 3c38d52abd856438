package pool

import (
	"errors"
	"fmt"
)

// ErrPoolStopped is the panic value raised when submitting a task to a pool
// that has been stopped. Submitting to a stopped pool is a usage error, not a
// recoverable runtime condition.
var ErrPoolStopped = errors.New("worker pool has been stopped and is no longer accepting tasks")

// ErrPanic wraps the recovered value of a task that panicked. The panic is
// confined to the task's own handle and never reaches the worker loop.
var ErrPanic = errors.New("task panicked")

// invokeTask runs a type-erased task function and returns its output and
// error. A panic inside the task body is captured and returned as an error
// wrapping ErrPanic.
func invokeTask[R any](task any) (output R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()

	switch t := task.(type) {
	case func():
		t()
	case func() error:
		err = t()
	case func() R:
		output = t()
	case func() (R, error):
		output, err = t()
	default:
		panic(fmt.Sprintf("unsupported task type: %#v", task))
	}

	return
}
