package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokeforge/src/models"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cache := NewRedisCache(client, ttl)
	t.Cleanup(func() { cache.Close() })

	return cache, mr
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t, time.Hour)
	ctx := context.Background()

	response := &models.GenerateResponse{
		Success:  true,
		ImageURL: "data:image/png;base64,abc",
		Prompt:   "a prompt",
	}

	key := Key("a prompt")
	err := cache.Set(ctx, key, response)
	assert.NoError(t, err)

	retrieved, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, response.ImageURL, retrieved.ImageURL)
	assert.Equal(t, response.Prompt, retrieved.Prompt)
}

func TestRedisCache_GetNonExistent(t *testing.T) {
	cache, _ := setupTestCache(t, time.Hour)

	retrieved, err := cache.Get(context.Background(), Key("never stored"))
	assert.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, _ := setupTestCache(t, time.Hour)
	ctx := context.Background()

	key := Key("a prompt")
	cache.Set(ctx, key, &models.GenerateResponse{Success: true, ImageURL: "x"})

	err := cache.Delete(ctx, key)
	assert.NoError(t, err)

	retrieved, _ := cache.Get(ctx, key)
	assert.Nil(t, retrieved)
}

func TestRedisCache_Expiration(t *testing.T) {
	cache, mr := setupTestCache(t, time.Second)
	ctx := context.Background()

	key := Key("a prompt")
	cache.Set(ctx, key, &models.GenerateResponse{Success: true, ImageURL: "x"})

	mr.FastForward(2 * time.Second)

	retrieved, _ := cache.Get(ctx, key)
	assert.Nil(t, retrieved, "key should be expired")
}

func TestKey_Deterministic(t *testing.T) {
	assert.Equal(t, Key("same prompt"), Key("same prompt"))
	assert.NotEqual(t, Key("prompt a"), Key("prompt b"))
}
