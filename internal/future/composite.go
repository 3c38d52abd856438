package future

import (
	"context"
	"fmt"
	"sync"
)

// CompositeResolver records the outcome of the element at the given index.
type CompositeResolver[V any] func(index int, value V, err error)

type elementResolution[V any] struct {
	index int
	value V
	err   error
}

// Composite is a future over a fixed number of elements. It resolves with the
// element values in index order once every element has been resolved, or with
// the first error as soon as any element fails.
type Composite[V any] struct {
	*Future[[]V]
	resolver    Resolver[[]V]
	resolutions []elementResolution[V]
	count       int
	mutex       sync.Mutex
}

// NewComposite creates a composite future expecting count element resolutions.
func NewComposite[V any](ctx context.Context, count int) (*Composite[V], CompositeResolver[V]) {
	child, resolver := New[[]V](ctx)

	c := &Composite[V]{
		Future:   child,
		resolver: resolver,
		count:    count,
	}

	if count == 0 {
		resolver([]V{}, nil)
	}

	return c, c.resolve
}

func (c *Composite[V]) resolve(index int, value V, err error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if index < 0 || index >= c.count {
		panic(fmt.Errorf("future: element index %d out of range [0,%d)", index, c.count))
	}

	c.resolutions = append(c.resolutions, elementResolution[V]{
		index: index,
		value: value,
		err:   err,
	})

	if err != nil {
		c.resolver(nil, err)
		return
	}

	if len(c.resolutions) == c.count {
		values := make([]V, c.count)
		for _, res := range c.resolutions {
			values[res.index] = res.value
		}
		c.resolver(values, nil)
	}
}
