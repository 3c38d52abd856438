package ringbuffer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadPreserveOrder(t *testing.T) {
	buffer := New[int]()

	buffer.Write(1, 2, 3, 4, 5)

	into := make([]int, 3)
	n := buffer.Read(into)
	require.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, into)

	n = buffer.Read(into)
	require.Equal(t, 2, n)
	assert.Equal(t, []int{4, 5}, into[:n])
}

func TestReadFromEmptyBuffer(t *testing.T) {
	buffer := New[string]()

	into := make([]string, 4)
	assert.Equal(t, 0, buffer.Read(into))
}

func TestCounters(t *testing.T) {
	buffer := New[int]()

	buffer.Write(1, 2, 3)
	assert.Equal(t, uint64(3), buffer.WriteCount())
	assert.Equal(t, uint64(3), buffer.Len())

	into := make([]int, 2)
	buffer.Read(into)
	assert.Equal(t, uint64(2), buffer.ReadCount())
	assert.Equal(t, uint64(1), buffer.Len())
}

func TestConcurrentWrites(t *testing.T) {
	buffer := New[int]()

	var waitGroup sync.WaitGroup
	for w := 0; w < 10; w++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for i := 0; i < 100; i++ {
				buffer.Write(i)
			}
		}()
	}
	waitGroup.Wait()

	assert.Equal(t, uint64(1000), buffer.WriteCount())
	assert.Equal(t, uint64(1000), buffer.Len())

	into := make([]int, 1000)
	assert.Equal(t, 1000, buffer.Read(into))
}
