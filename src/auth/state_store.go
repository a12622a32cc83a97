package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StateStore keeps OAuth CSRF state nonces in Redis with a short TTL. A state
// is single-use: Consume removes it whether or not it was still valid.
type StateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStateStore(client *redis.Client, ttl time.Duration) *StateStore {
	return &StateStore{
		client: client,
		ttl:    ttl,
	}
}

// Issue generates a random state value and stores it with the configured TTL.
func (s *StateStore) Issue(ctx context.Context) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random state: %w", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	oauthState := OAuthState{
		State:     state,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	data, err := json.Marshal(oauthState)
	if err != nil {
		return "", fmt.Errorf("failed to marshal state: %w", err)
	}

	key := stateKey(state)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to save state: %w", err)
	}

	return state, nil
}

// Consume checks that the state was previously issued and is unexpired, then
// deletes it so it cannot be replayed.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	key := stateKey(state)

	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get state: %w", err)
	}

	s.client.Del(ctx, key)

	var oauthState OAuthState
	if err := json.Unmarshal([]byte(data), &oauthState); err != nil {
		return false, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	if time.Now().After(oauthState.ExpiresAt) {
		return false, nil
	}

	return true, nil
}

func stateKey(state string) string {
	return fmt.Sprintf("oauth_state:%s", state)
}
