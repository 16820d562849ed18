package sandbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortPool_AcquireRelease(t *testing.T) {
	pool := NewPortPool(9123, 9125)
	assert.Equal(t, 3, pool.Available())

	ctx := context.Background()
	p1, err := pool.Acquire(ctx)
	require.NoError(t, err)
	p2, err := pool.Acquire(ctx)
	require.NoError(t, err)
	p3, err := pool.Acquire(ctx)
	require.NoError(t, err)
	assert.Zero(t, pool.Available())

	ports := map[int]bool{p1: true, p2: true, p3: true}
	assert.Len(t, ports, 3, "leased ports must be distinct")
	for p := range ports {
		assert.GreaterOrEqual(t, p, 9123)
		assert.LessOrEqual(t, p, 9125)
	}

	pool.Release(p2)
	assert.Equal(t, 1, pool.Available())

	p4, err := pool.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, p2, p4)
}

func TestPortPool_AcquireBlocksUntilRelease(t *testing.T) {
	pool := NewPortPool(9200, 9200)
	ctx := context.Background()

	p, err := pool.Acquire(ctx)
	require.NoError(t, err)

	acquired := make(chan int)
	go func() {
		got, err := pool.Acquire(ctx)
		require.NoError(t, err)
		acquired <- got
	}()

	select {
	case <-acquired:
		t.Fatal("acquire succeeded while the pool was empty")
	case <-time.After(50 * time.Millisecond):
	}

	pool.Release(p)
	select {
	case got := <-acquired:
		assert.Equal(t, p, got)
	case <-time.After(time.Second):
		t.Fatal("acquire did not observe the release")
	}
}

func TestPortPool_AcquireHonorsContext(t *testing.T) {
	pool := NewPortPool(9200, 9200)
	ctx := context.Background()

	_, err := pool.Acquire(ctx)
	require.NoError(t, err)

	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = pool.Acquire(timeoutCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPortPool_ReleaseUnleasedPortDropped(t *testing.T) {
	pool := NewPortPool(9123, 9124)
	pool.Release(9999)
	pool.Release(9998)
	assert.Equal(t, 2, pool.Available(), "pool must not grow past its range")
}

func TestNewPortPool_InvalidRange(t *testing.T) {
	assert.Panics(t, func() { NewPortPool(9200, 9100) })
	assert.Panics(t, func() { NewPortPool(0, 100) })
}
