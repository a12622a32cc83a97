package auth

import (
	"errors"
	"sync"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore keeps user records in process memory. Records are append-only for
// the lifetime of the process and lost on restart. The RWMutex serializes the
// single mutation path so concurrent callbacks can never hand out duplicate
// ids.
type UserStore struct {
	mu         sync.RWMutex
	nextID     int
	byID       map[int]*User
	byGoogleID map[string]*User
}

func NewUserStore() *UserStore {
	return &UserStore{
		nextID:     1,
		byID:       make(map[int]*User),
		byGoogleID: make(map[string]*User),
	}
}

func (s *UserStore) FindByID(id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) FindByGoogleID(googleID string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byGoogleID[googleID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetOrCreate resolves the user for a Google profile, creating a record with
// the next sequential id on first sight. Lookup and creation run under one
// lock, so two callbacks for the same Google id always resolve to one record.
func (s *UserStore) GetOrCreate(info *GoogleUserInfo) *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.byGoogleID[info.ID]; ok {
		return user
	}

	user := &User{
		ID:          s.nextID,
		GoogleID:    info.ID,
		DisplayName: info.Name,
		FirstName:   info.GivenName,
		LastName:    info.FamilyName,
		Image:       info.Picture,
		Email:       info.Email,
		CreatedAt:   time.Now(),
	}
	s.nextID++

	s.byID[user.ID] = user
	s.byGoogleID[user.GoogleID] = user

	return user
}

// Count reports the number of registered users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
