// Package ringbuffer provides an unbounded FIFO buffer safe for concurrent
// use. Writers never block; readers drain elements in batches.
package ringbuffer

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

// Buffer is an unbounded FIFO buffer backed by a growable ring buffer.
// All operations are safe for concurrent use.
type Buffer[T any] struct {
	mutex      sync.Mutex
	queue      *queue.Queue
	writeCount atomic.Uint64
	readCount  atomic.Uint64
}

func New[T any]() *Buffer[T] {
	return &Buffer[T]{
		queue: queue.New(),
	}
}

// Write appends the given values to the tail of the buffer.
func (b *Buffer[T]) Write(values ...T) {
	b.mutex.Lock()
	for _, value := range values {
		b.queue.Add(value)
	}
	b.mutex.Unlock()

	b.writeCount.Add(uint64(len(values)))
}

// Read removes up to len(into) values from the head of the buffer and copies
// them into the given slice, returning the number of values read.
func (b *Buffer[T]) Read(into []T) int {
	b.mutex.Lock()

	n := b.queue.Length()
	if n > len(into) {
		n = len(into)
	}
	for i := 0; i < n; i++ {
		into[i] = b.queue.Remove().(T)
	}

	b.mutex.Unlock()

	b.readCount.Add(uint64(n))
	return n
}

// Len returns the number of values currently in the buffer.
func (b *Buffer[T]) Len() uint64 {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return uint64(b.queue.Length())
}

// WriteCount returns the total number of values written to the buffer.
func (b *Buffer[T]) WriteCount() uint64 {
	return b.writeCount.Load()
}

// ReadCount returns the total number of values read from the buffer.
func (b *Buffer[T]) ReadCount() uint64 {
	return b.readCount.Load()
}
