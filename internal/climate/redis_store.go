package climate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces climate entries in a shared Redis instance.
const redisKeyPrefix = "loadcalc:climate:"

// RedisStore is a Redis-backed Store for deployments that share a climate
// cache across processes. It satisfies the same transparency contract as
// FileStore: any connectivity failure surfaces as an error the provider
// falls back from.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore wraps an existing Redis client. A zero ttl selects
// DefaultTTL; out-of-range TTLs fail.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if ttl < MinTTL || ttl > MaxTTL {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTTL, ttl)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get retrieves a cache entry's payload by key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return data, nil
}

// Set stores data under key with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	if err := s.client.Set(ctx, redisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes a cache entry by key. Idempotent.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
