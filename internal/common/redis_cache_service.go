package common

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"flight-search/skyport/internal/logging"
)

// RedisCacheService implements CacheInterface using Redis, for deployments
// where multiple instances should share the flight cache. Values are stored
// as JSON.
type RedisCacheService struct {
	client *redis.Client
	ctx    context.Context
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

// NewRedisCacheService creates a new Redis-based cache service.
func NewRedisCacheService(addr, password string) (*RedisCacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCacheService{client: client, ctx: ctx}, nil
}

// Set stores a value in Redis with the given key and duration.
func (r *RedisCacheService) Set(key string, value interface{}, duration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Error("Redis cache: marshal failed", "key", key, "error", err.Error())
		return
	}

	if err := r.client.Set(r.ctx, key, data, duration).Err(); err != nil {
		logging.Error("Redis cache: set failed", "key", key, "error", err.Error())
	}
}

// Get retrieves a value from Redis by key. The value comes back as the raw
// JSON bytes it was stored as.
func (r *RedisCacheService) Get(key string) (interface{}, bool) {
	data, err := r.client.Get(r.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logging.Error("Redis cache: get failed", "key", key, "error", err.Error())
		return nil, false
	}
	return data, true
}

// Delete removes a value from Redis by key.
func (r *RedisCacheService) Delete(key string) {
	if err := r.client.Del(r.ctx, key).Err(); err != nil {
		logging.Error("Redis cache: delete failed", "key", key, "error", err.Error())
	}
}

// Close closes the Redis connection.
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
