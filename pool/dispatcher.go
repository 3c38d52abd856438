package pool

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/secutil/secutil/internal/ringbuffer"
)

var errDispatcherClosed = errors.New("dispatcher has been closed")

// dispatcher receives values from any number of goroutines without blocking
// and forwards them serially, in FIFO order, to the dispatch function.
type dispatcher[T any] struct {
	buffer            *ringbuffer.Buffer[T]
	bufferHasElements chan struct{}
	dispatchFunc      func([]T)
	waitGroup         sync.WaitGroup
	batchSize         int
	closed            atomic.Bool
}

func newDispatcher[T any](dispatchFunc func([]T), batchSize int) *dispatcher[T] {
	d := &dispatcher[T]{
		buffer:            ringbuffer.New[T](),
		bufferHasElements: make(chan struct{}, 1),
		dispatchFunc:      dispatchFunc,
		batchSize:         batchSize,
	}

	d.waitGroup.Add(1)
	go d.run()

	return d
}

// Write appends values to the buffer. It never blocks on the dispatch
// function and fails only if the dispatcher has been closed.
func (d *dispatcher[T]) Write(values ...T) error {
	if d.closed.Load() {
		return errDispatcherClosed
	}

	d.buffer.Write(values...)

	// Wake the dispatcher goroutine if it is idle
	select {
	case d.bufferHasElements <- struct{}{}:
	default:
	}

	return nil
}

// WriteCount returns the number of values accepted by the dispatcher.
func (d *dispatcher[T]) WriteCount() uint64 {
	return d.buffer.WriteCount()
}

// Len returns the number of values waiting in the buffer.
func (d *dispatcher[T]) Len() uint64 {
	return d.buffer.Len()
}

// CloseAndWait stops accepting values, then blocks until every buffered value
// has been handed to the dispatch function.
func (d *dispatcher[T]) CloseAndWait() {
	d.closed.Store(true)
	close(d.bufferHasElements)
	d.waitGroup.Wait()
}

func (d *dispatcher[T]) run() {
	defer d.waitGroup.Done()

	batch := make([]T, d.batchSize)

	for {
		_, ok := <-d.bufferHasElements

		// Drain the buffer before reacting to a close
		for {
			n := d.buffer.Read(batch)
			if n == 0 {
				break
			}
			d.dispatchFunc(batch[:n])
		}

		if !ok {
			return
		}
	}
}
