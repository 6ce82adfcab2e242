package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTranslationTTL = 24 * time.Hour

// TranslationCache stores finished translations keyed by the caller-built key.
type TranslationCache struct {
	client *redis.Client
}

func NewTranslationCache(client *redis.Client) *TranslationCache {
	return &TranslationCache{client: client}
}

// Get reports whether key holds a cached translation.
func (c *TranslationCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("translation cache get: %w", err)
	}
	return v, true, nil
}

// Set stores value under key. A non-positive ttl falls back to defaultTranslationTTL.
func (c *TranslationCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultTranslationTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("translation cache set: %w", err)
	}
	return nil
}
