package client

import (
	"sync"
	"time"
)

// Entry is one created creature and its generated image. Entries exist only in
// memory; there is no persistence layer.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	AnimalTypes []string  `json:"animalTypes"`
	Abilities   []string  `json:"abilities"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Gallery holds completed entries most-recent-first. An entry without an image
// reference is not a completed card and is never added.
type Gallery struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewGallery() *Gallery {
	return &Gallery{}
}

// Prepend inserts a completed entry at index 0. Entries missing an image
// reference are dropped.
func (g *Gallery) Prepend(e Entry) bool {
	if e.ImageURL == "" {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = append([]Entry{e}, g.entries...)
	return true
}

// Entries returns a snapshot of the gallery, newest first.
func (g *Gallery) Entries() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

func (g *Gallery) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}
