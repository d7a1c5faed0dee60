package session

import (
	"context" // Context for Redis operations
	"time"    // Session lifetime

	"product_catalog/internal/utils" // Redis JSON cache

	"github.com/redis/go-redis/v9" // Redis client
)

const keyPrefix = "session:" // Redis key prefix for session records

// Store binds session ids to user ids
type Store interface {
	Save(ctx context.Context, sessionID string, userID uint) error
	Lookup(ctx context.Context, sessionID string) (userID uint, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

type record struct {
	UserID    uint  `json:"user_id"`    // Authenticated user
	CreatedAt int64 `json:"created_at"` // Login time, unix seconds
}

// RedisStore keeps sessions in Redis; entries expire together with the session token
type RedisStore struct {
	cache *utils.JSONCache // JSON records with the session TTL
}

// NewRedisStore creates a RedisStore whose entries live for ttl
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: utils.NewJSONCache(rdb, ttl)}
}

// Save stores the binding, replacing any previous one for sessionID
func (s *RedisStore) Save(ctx context.Context, sessionID string, userID uint) error {
	return s.cache.Set(ctx, keyPrefix+sessionID, record{UserID: userID, CreatedAt: time.Now().Unix()})
}

// Lookup reports the user bound to sessionID
func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (uint, bool, error) {
	var rec record
	found, err := s.cache.Get(ctx, keyPrefix+sessionID, &rec)
	if err != nil || !found {
		return 0, false, err
	}
	return rec.UserID, true, nil
}

// Delete removes the binding; deleting an unknown session is not an error
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, keyPrefix+sessionID)
}
