package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFutureResolvedBeforeWait(t *testing.T) {
	fut, resolve := New[int](context.Background())

	resolve(5, nil)

	value, err := fut.Wait()
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestFutureWaitBlocksUntilResolved(t *testing.T) {
	fut, resolve := New[string](context.Background())

	go func() {
		time.Sleep(5 * time.Millisecond)
		resolve("done", nil)
	}()

	value, err := fut.Wait()
	require.NoError(t, err)
	assert.Equal(t, "done", value)
}

func TestFutureResolvedWithError(t *testing.T) {
	fut, resolve := New[int](context.Background())

	expected := errors.New("failed")
	resolve(0, expected)

	_, err := fut.Wait()
	assert.ErrorIs(t, err, expected)
}

func TestFutureFirstResolutionWins(t *testing.T) {
	fut, resolve := New[int](context.Background())

	resolve(1, nil)
	resolve(2, nil)
	resolve(0, errors.New("late failure"))

	for i := 0; i < 2; i++ {
		value, err := fut.Wait()
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	}
}

func TestFutureDoneChannel(t *testing.T) {
	fut, resolve := New[int](context.Background())

	select {
	case <-fut.Done():
		t.Fatal("future resolved prematurely")
	default:
	}

	resolve(3, nil)

	<-fut.Done()
}

func TestFutureParentContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fut, _ := New[int](ctx)

	cancel()

	value, err := fut.Wait()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, value)
}
