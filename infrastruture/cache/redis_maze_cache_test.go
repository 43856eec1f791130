package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisMazeCache(t *testing.T) {
	t.Run("Requires a client", func(t *testing.T) {
		c, err := NewRedisMazeCache(nil, time.Minute)
		assert.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("Keeps the TTL", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
		defer client.Close()

		c, err := NewRedisMazeCache(client, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, time.Minute, c.(*RedisMazeCache).ttl)
	})
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "maze:5x5:0,0:4,4:true:1:0.15:auto:build_lock", lockKey("maze:5x5:0,0:4,4:true:1:0.15:auto"))
}

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisMazeCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisMazeCache(client, ttl)
	require.NoError(t, err)
	return mr, c.(*RedisMazeCache)
}

func TestRedisMazeCacheFetch(t *testing.T) {
	const key = "maze:12x8:0,0:11,7:true:42:0.15:auto"
	ctx := context.Background()

	t.Run("Hit skips the build", func(t *testing.T) {
		mr, c := newTestCache(t, time.Minute)
		require.NoError(t, mr.Set(key, "cached"))

		value, err := c.Fetch(ctx, key, func() ([]byte, error) {
			t.Fatal("build called on a hit")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "cached", string(value))
	})

	t.Run("Miss builds and stores with the TTL", func(t *testing.T) {
		mr, c := newTestCache(t, time.Minute)
		builds := 0

		value, err := c.Fetch(ctx, key, func() ([]byte, error) {
			builds++
			return []byte("built"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "built", string(value))
		assert.Equal(t, 1, builds)

		stored, err := mr.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "built", stored)
		assert.Equal(t, time.Minute, mr.TTL(key))
		assert.False(t, mr.Exists(lockKey(key)))

		value, err = c.Fetch(ctx, key, func() ([]byte, error) {
			builds++
			return []byte("rebuilt"), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "built", string(value))
		assert.Equal(t, 1, builds)
	})

	t.Run("Concurrent misses build once", func(t *testing.T) {
		_, c := newTestCache(t, time.Minute)
		var builds atomic.Int32

		const callers = 8
		var wg sync.WaitGroup
		values := make([]string, callers)
		errs := make([]error, callers)
		for n := 0; n < callers; n++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				value, err := c.Fetch(ctx, key, func() ([]byte, error) {
					builds.Add(1)
					time.Sleep(20 * time.Millisecond)
					return []byte("built"), nil
				})
				values[n], errs[n] = string(value), err
			}(n)
		}
		wg.Wait()

		assert.Equal(t, int32(1), builds.Load())
		for n := 0; n < callers; n++ {
			require.NoError(t, errs[n])
			assert.Equal(t, "built", values[n])
		}
	})

	t.Run("Build error leaves the key unset", func(t *testing.T) {
		mr, c := newTestCache(t, time.Minute)
		errBuild := errors.New("build failed")

		value, err := c.Fetch(ctx, key, func() ([]byte, error) {
			return nil, errBuild
		})
		assert.ErrorIs(t, err, errBuild)
		assert.Nil(t, value)
		assert.False(t, mr.Exists(key))
		assert.False(t, mr.Exists(lockKey(key)))
	})
}
