package pool

import (
	"context"

	"github.com/secutil/secutil/internal/future"
)

// ResultPool is a typed view of a worker pool for tasks that return a value
// of type R.
type ResultPool[R any] interface {
	basePool

	// Submit submits a task and returns a handle for its result. It panics
	// with ErrPoolStopped if the pool has been stopped.
	Submit(task func() R) Result[R]

	// SubmitErr is like Submit for tasks that can fail.
	SubmitErr(task func() (R, error)) Result[R]

	// TrySubmit attempts to submit a task, returning false instead of
	// panicking if the pool has been stopped.
	TrySubmit(task func() R) (Result[R], bool)

	// Group creates a new task group bound to this pool.
	Group() *ResultTaskGroup[R]
}

type resultPool[R any] struct {
	*pool
}

// NewResultPool creates a pool with the given number of worker goroutines for
// tasks returning values of type R. All workers are started immediately and
// wait for tasks. A thread count lower than 1 is coerced to 1.
func NewResultPool[R any](threads int, options ...Option) ResultPool[R] {
	return &resultPool[R]{
		pool: newPool(threads, options...),
	}
}

func (p *resultPool[R]) Submit(task func() R) Result[R] {
	handle, _ := p.submitResult(task, true)
	return handle
}

func (p *resultPool[R]) SubmitErr(task func() (R, error)) Result[R] {
	handle, _ := p.submitResult(task, true)
	return handle
}

func (p *resultPool[R]) TrySubmit(task func() R) (Result[R], bool) {
	return p.submitResult(task, false)
}

func (p *resultPool[R]) Group() *ResultTaskGroup[R] {
	return &ResultTaskGroup[R]{
		pool: p.pool,
	}
}

func (p *resultPool[R]) submitResult(task any, must bool) (Result[R], bool) {
	if task == nil {
		panic("task cannot be nil")
	}

	fut, resolve := future.New[R](context.Background())

	wrapped := func() {
		output, err := invokeTask[R](task)
		p.record(err)
		resolve(output, err)
	}

	if err := p.submit(wrapped); err != nil {
		if must {
			panic(err)
		}
		return nil, false
	}

	return fut, true
}
