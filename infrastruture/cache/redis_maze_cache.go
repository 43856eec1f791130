package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisMazeCache stores encoded mazes in Redis with TTL support.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttl time.Duration) (i.MazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	cache := &RedisMazeCache{
		client: client,
		ttl:    ttl,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Fetch returns the value stored under key. On a miss it takes a lock on the key so that
// only one caller builds the value, then stores it with the cache TTL.
func (rmc *RedisMazeCache) Fetch(ctx context.Context, key string, build func() ([]byte, error)) ([]byte, error) {
	value, err := rmc.client.Get(ctx, key).Bytes()
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	mutex := rmc.locker.NewMutex(lockKey(key), redsync.WithExpiry(10*time.Second))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another caller may have built it while we waited for the lock.
	value, err = rmc.client.Get(ctx, key).Bytes()
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	value, err = build()
	if err != nil {
		return nil, err
	}
	if err := rmc.client.Set(ctx, key, value, rmc.ttl).Err(); err != nil {
		return nil, err
	}
	return value, nil
}

func lockKey(key string) string {
	return key + ":build_lock"
}
