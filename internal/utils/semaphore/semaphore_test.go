package semaphore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

func TestSemaphore_AcquireWithTimeout(t *testing.T) {
	const timeout = 50 * time.Millisecond
	s := New(2)
	ctx := context.Background()

	require.NoError(t, s.AcquireWithTimeout(ctx, timeout))
	require.NoError(t, s.AcquireWithTimeout(ctx, timeout))
	assert.Equal(t, 2, s.InUse())

	err := s.AcquireWithTimeout(ctx, timeout)
	assert.ErrorIs(t, err, serviceerrs.ErrSemaphoreTimeoutExceeded)

	s.Release()
	assert.Equal(t, 1, s.InUse())
	require.NoError(t, s.AcquireWithTimeout(ctx, timeout))
}

func TestSemaphore_cancelledContext(t *testing.T) {
	s := New(1)
	require.NoError(t, s.AcquireWithTimeout(context.Background(), time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.AcquireWithTimeout(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSemaphore_zeroCapacity(t *testing.T) {
	s := New(0)
	require.NoError(t, s.AcquireWithTimeout(context.Background(), time.Millisecond))
	assert.Equal(t, 1, s.InUse())
}
