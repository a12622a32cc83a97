package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pokeforge/src/models"
)

// RedisCache stores generation responses keyed by prompt hash with a TTL.
// Caching is opt-in: identical inputs may legitimately produce different
// images, so the cache trades that variety for upstream load.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives the cache key for a prompt.
func Key(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "generation:" + hex.EncodeToString(sum[:])
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.GenerateResponse, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var response models.GenerateResponse
	if err := json.Unmarshal([]byte(val), &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, response *models.GenerateResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
