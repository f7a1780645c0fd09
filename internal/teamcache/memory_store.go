package teamcache

import (
	"context"
	"sync"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// MemoryStore keeps the team list in process memory
type MemoryStore struct {
	teams     []models.Team
	expiresAt time.Time // zero means no expiry
	present   bool
	now       func() time.Time
	mu        sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Get returns the stored list unless it is missing or expired
func (s *MemoryStore) Get(ctx context.Context) ([]models.Team, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present {
		return nil, false, nil
	}
	if !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt) {
		return nil, false, nil
	}
	return s.teams, true, nil
}

// Set replaces the stored list
func (s *MemoryStore) Set(ctx context.Context, teams []models.Team, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = append([]models.Team(nil), teams...)
	s.present = true
	s.expiresAt = time.Time{}
	if ttl > 0 {
		s.expiresAt = s.now().Add(ttl)
	}
	return nil
}

// Delete empties the store
func (s *MemoryStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = nil
	s.present = false
	s.expiresAt = time.Time{}
	return nil
}
