package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key does not exist.
var ErrMiss = errors.New("cache: miss")

// Client wraps redis.Client and namespaces every key with a prefix.
// Unlike a best-effort cache, connectivity errors are returned to the caller.
type Client struct {
	client *redis.Client
	prefix string
}

// New creates a new Redis client.
func New(addr, password string, db int, prefix string) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return NewFromRedis(redis.NewClient(opts), prefix)
}

// NewFromRedis wraps an existing redis client.
func NewFromRedis(client *redis.Client, prefix string) *Client {
	return &Client{client: client, prefix: prefix}
}

// Ping checks the connection.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Get returns the value stored under key, or ErrMiss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return res, nil
}

// Set stores value with TTL. A zero TTL keeps the key forever.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.client.Close()
}
