package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", "v", time.Hour))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	now = now.Add(time.Minute + time.Second)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss, "lapsed entry reads as a miss")
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, c.Set(ctx, "k", "v", time.Hour))
	_, err := c.Get(ctx, "k")
	assert.Error(t, err)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Set(ctx, "shared", "v", time.Hour))
			_, _ = c.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	got, err := c.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
