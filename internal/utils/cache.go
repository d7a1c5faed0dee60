package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error matching
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// JSONCache stores JSON encoded values in Redis under a common TTL
type JSONCache struct {
	rdb redis.Cmdable // Redis client or pipeline
	ttl time.Duration // Expiration applied by Set
}

// NewJSONCache creates a cache writing entries that live for ttl
func NewJSONCache(rdb redis.Cmdable, ttl time.Duration) *JSONCache {
	return &JSONCache{rdb: rdb, ttl: ttl}
}

// TTL returns the expiration applied to new entries
func (c *JSONCache) TTL() time.Duration {
	return c.ttl
}

// Get loads key into dest; found is false when the key does not exist
func (c *JSONCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest)
}

// Set stores value under key
func (c *JSONCache) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// Delete removes the given keys; missing keys are ignored
func (c *JSONCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
