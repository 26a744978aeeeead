package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"visitorbook/internal/cache"
)

// ErrNotFound is returned by Store.Load for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Store persists session records by id.
type Store interface {
	Load(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, id string, rec *Record) error
}

// RedisStore keeps records as JSON documents in Redis.
type RedisStore struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store whose records expire ttl after their last save.
func NewRedisStore(cache *cache.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: cache, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, id string) (*Record, error) {
	data, err := s.cache.Get(ctx, id)
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, id, payload, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
