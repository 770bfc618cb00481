package redisstate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisRateLimiter counts hits per key in fixed windows.
type RedisRateLimiter struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisRateLimiter(client *redis.Client, keyPrefix string) *RedisRateLimiter {
	if client == nil {
		panic("redis client cannot be nil for RedisRateLimiter")
	}
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisRateLimiter{client: client, keyPrefix: keyPrefix}
}

// Allow increments the counter for key and reports whether it is still within
// limit. The window starts with the first hit: only the SET NX that creates the
// counter sets a TTL, and INCR keeps it, so rejected hits never extend it.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := l.keyPrefix + "ratelimit:" + key
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, fullKey, 0, window)
		incr = pipe.Incr(ctx, fullKey)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis: rate limit pipeline failed on key %s: %w", fullKey, err)
	}
	return incr.Val() <= int64(limit), nil
}
