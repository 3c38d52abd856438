package future

import (
	"context"
)

// Resolver completes a future with a value and an error. Only the first
// invocation has any effect; later calls are ignored.
type Resolver[V any] func(value V, err error)

// Future is a one-shot container for a value that will be produced later.
// It is written at most once through its Resolver and can be read any number
// of times after completion. The write happens-before any successful read.
//
// The implementation piggybacks on context cancellation: resolving the future
// cancels an internal context with the resolution as the cancellation cause.
type Future[V any] struct {
	ctx context.Context
}

// New creates an unresolved future derived from the given parent context.
// If the parent context is cancelled before the future is resolved, readers
// observe the parent's cancellation cause as the error.
func New[V any](ctx context.Context) (*Future[V], Resolver[V]) {
	childCtx, cancel := context.WithCancelCause(ctx)

	f := &Future[V]{
		ctx: childCtx,
	}

	resolve := func(value V, err error) {
		cancel(&resolution[V]{
			value: value,
			err:   err,
		})
	}

	return f, resolve
}

// Done returns a channel that is closed once the future has been resolved.
func (f *Future[V]) Done() <-chan struct{} {
	return f.ctx.Done()
}

// Wait blocks until the future is resolved and returns its value and error.
// It can be called multiple times and always returns the same outcome.
func (f *Future[V]) Wait() (V, error) {
	<-f.ctx.Done()

	cause := context.Cause(f.ctx)
	if res, ok := cause.(*resolution[V]); ok {
		return res.value, res.err
	}

	// Parent context was cancelled before the future was resolved
	var zero V
	return zero, cause
}

// resolution carries the outcome of a future as a context cancellation cause.
type resolution[V any] struct {
	value V
	err   error
}

func (r *resolution[V]) Error() string {
	if r.err != nil {
		return r.err.Error()
	}
	return "future resolved"
}
