package pool_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secutil/secutil/pool"
)

func TestGroupWait(t *testing.T) {
	p := pool.New(4)
	defer p.StopAndWait()

	var doneCount atomic.Int32
	group := p.Group()
	for i := 0; i < 10; i++ {
		group.Submit(func() {
			doneCount.Add(1)
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(10), doneCount.Load())
}

func TestGroupWaitReturnsFirstError(t *testing.T) {
	p := pool.New(2)
	defer p.StopAndWait()

	taskErr := errors.New("group task failed")
	group := p.Group()
	group.Submit(func() {})
	group.SubmitErr(func() error {
		return taskErr
	})

	assert.ErrorIs(t, group.Wait(), taskErr)
}

func TestGroupWaitAllCollectsErrorsInOrder(t *testing.T) {
	p := pool.New(4)
	defer p.StopAndWait()

	group := p.Group()
	for i := 0; i < 6; i++ {
		i := i
		group.SubmitErr(func() error {
			if i%2 == 0 {
				return errors.New("even task failed")
			}
			return nil
		})
	}

	errs, err := group.WaitAll()
	require.Error(t, err)
	require.Len(t, errs, 6)
	for i, taskErr := range errs {
		if i%2 == 0 {
			assert.Error(t, taskErr)
		} else {
			assert.NoError(t, taskErr)
		}
	}
}

func TestResultGroupPreservesSubmissionOrder(t *testing.T) {
	p := pool.NewResultPool[int](4)
	defer p.StopAndWait()

	group := p.Group()
	for i := 0; i < 10; i++ {
		i := i
		group.Submit(func() int {
			return i
		})
	}

	outputs, err := group.Wait()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, outputs)
}

func TestResultGroupWaitAllMixedOutcomes(t *testing.T) {
	p := pool.NewResultPool[int](2)
	defer p.StopAndWait()

	group := p.Group()
	for i := 0; i < 10; i++ {
		i := i
		group.SubmitErr(func() (int, error) {
			if i%2 == 0 {
				return 0, errors.New("even task failed")
			}
			return i, nil
		})
	}

	results, err := group.WaitAll()
	require.Error(t, err)
	require.Len(t, results, 10)

	failures := 0
	for i, result := range results {
		if result.Err != nil {
			failures++
		} else {
			assert.Equal(t, i, result.Output)
		}
	}
	assert.Equal(t, 5, failures)
}

func TestEmptyGroupWaitReturnsImmediately(t *testing.T) {
	p := pool.New(1)
	defer p.StopAndWait()

	assert.NoError(t, p.Group().Wait())
}

func TestGroupWaitOnStoppedPool(t *testing.T) {
	p := pool.New(1)
	p.StopAndWait()

	group := p.Group()
	group.Submit(func() {})

	assert.ErrorIs(t, group.Wait(), pool.ErrPoolStopped)
}
