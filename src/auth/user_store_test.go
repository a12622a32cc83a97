package auth

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleProfile(id string) *GoogleUserInfo {
	return &GoogleUserInfo{
		ID:         id,
		Email:      id + "@example.com",
		Name:       "Test User",
		GivenName:  "Test",
		FamilyName: "User",
		Picture:    "https://example.com/avatar.png",
	}
}

func TestUserStore_GetOrCreate(t *testing.T) {
	store := NewUserStore()

	user := store.GetOrCreate(googleProfile("g-1"))
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "g-1", user.GoogleID)
	assert.Equal(t, "Test User", user.DisplayName)
	assert.Equal(t, "Test", user.FirstName)
	assert.Equal(t, "User", user.LastName)
	assert.Equal(t, "g-1@example.com", user.Email)
}

func TestUserStore_GetOrCreate_SameGoogleIDResolvesToOneRecord(t *testing.T) {
	store := NewUserStore()

	first := store.GetOrCreate(googleProfile("g-1"))
	second := store.GetOrCreate(googleProfile("g-1"))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, store.Count())
}

func TestUserStore_SequentialIDs(t *testing.T) {
	store := NewUserStore()

	for i := 1; i <= 5; i++ {
		user := store.GetOrCreate(googleProfile(fmt.Sprintf("g-%d", i)))
		assert.Equal(t, i, user.ID)
	}
}

func TestUserStore_FindByID(t *testing.T) {
	store := NewUserStore()
	created := store.GetOrCreate(googleProfile("g-1"))

	found, err := store.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = store.FindByID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_FindByGoogleID(t *testing.T) {
	store := NewUserStore()
	created := store.GetOrCreate(googleProfile("g-1"))

	found, err := store.FindByGoogleID("g-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = store.FindByGoogleID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserStore_ConcurrentCreatesNeverDuplicateIDs(t *testing.T) {
	store := NewUserStore()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := store.GetOrCreate(googleProfile(fmt.Sprintf("g-%d", i)))
			ids <- user.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Equal(t, n, store.Count())
}
