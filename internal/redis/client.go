package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"enhancives/internal/config"
)

// New returns nil when no redis address is configured; callers treat a nil
// client as "no cache".
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

// JSONCache stores values of one type under a shared key prefix. All methods
// are safe on a nil cache or nil client so the server degrades to uncached
// operation when redis is absent.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache[T]) key(id string) string {
	return c.prefix + ":" + id
}

func (c *JSONCache[T]) Get(ctx context.Context, id string) (*T, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	value, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("unmarshal cached %s: %w", c.prefix, err)
	}
	return &out, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, id string, value *T) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached %s: %w", c.prefix, err)
	}
	return c.client.Set(ctx, c.key(id), data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, id string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(id)).Err()
}

// TotalsCache caches the per-user aggregate totals map keyed by username.
func TotalsCache(client *redis.Client) *JSONCache[map[string]int] {
	return NewJSONCache[map[string]int](client, "totals", 5*time.Minute)
}
