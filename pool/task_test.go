package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeTaskVariants(t *testing.T) {
	executed := false
	_, err := invokeTask[struct{}](func() {
		executed = true
	})
	require.NoError(t, err)
	assert.True(t, executed)

	taskErr := errors.New("failed")
	_, err = invokeTask[struct{}](func() error {
		return taskErr
	})
	assert.ErrorIs(t, err, taskErr)

	output, err := invokeTask[int](func() int {
		return 7
	})
	require.NoError(t, err)
	assert.Equal(t, 7, output)

	output, err = invokeTask[int](func() (int, error) {
		return 9, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 9, output)
}

func TestInvokeTaskCapturesPanic(t *testing.T) {
	output, err := invokeTask[int](func() int {
		panic("boom")
	})

	assert.True(t, errors.Is(err, ErrPanic))
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 0, output)
}

func TestInvokeTaskRejectsUnsupportedType(t *testing.T) {
	assert.Panics(t, func() {
		invokeTask[int]("not a function")
	})
}
