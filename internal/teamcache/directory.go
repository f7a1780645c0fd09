// Package teamcache provides a read-through cache of NHL team metadata with
// an explicit expiry policy and a pluggable backing store.
package teamcache

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// Loader fetches the authoritative team list
type Loader interface {
	FetchTeams(ctx context.Context) ([]models.Team, error)
}

// Store holds a cached team list. Get reports false on a miss or after expiry.
type Store interface {
	Get(ctx context.Context) ([]models.Team, bool, error)
	Set(ctx context.Context, teams []models.Team, ttl time.Duration) error
	Delete(ctx context.Context) error
}

// Directory resolves teams through a Store, reloading from the Loader on a miss.
// A ttl <= 0 keeps the list until Invalidate or Refresh is called.
type Directory struct {
	loader Loader
	store  Store
	ttl    time.Duration
	mu     sync.Mutex
}

// NewDirectory creates a team directory
func NewDirectory(loader Loader, store Store, ttl time.Duration) *Directory {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Directory{
		loader: loader,
		store:  store,
		ttl:    ttl,
	}
}

// Teams returns the cached team list, loading it on a miss
func (d *Directory) Teams(ctx context.Context) ([]models.Team, error) {
	teams, ok, err := d.store.Get(ctx)
	if err != nil {
		// Fall through to the loader
		log.Printf("[teamcache] store read failed: %v", err)
	} else if ok {
		return teams, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Another caller may have filled the store while we waited
	if err == nil {
		if teams, ok, err := d.store.Get(ctx); err == nil && ok {
			return teams, nil
		}
	}

	return d.load(ctx)
}

// Refresh reloads the team list regardless of its age
func (d *Directory) Refresh(ctx context.Context) ([]models.Team, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.load(ctx)
}

// Invalidate drops the cached list so the next lookup reloads it
func (d *Directory) Invalidate(ctx context.Context) error {
	if err := d.store.Delete(ctx); err != nil {
		return fmt.Errorf("invalidate teams: %w", err)
	}
	return nil
}

// FindTeamID resolves a team by full name (case and dots ignored),
// abbreviation or tri-code. ok is false when nothing matches.
func (d *Directory) FindTeamID(ctx context.Context, name string) (int, bool, error) {
	teams, err := d.Teams(ctx)
	if err != nil {
		return 0, false, err
	}

	team, ok := MatchTeam(teams, name)
	if !ok {
		return 0, false, nil
	}
	return team.ID, true, nil
}

// MatchTeam returns the first team matching name
func MatchTeam(teams []models.Team, name string) (models.Team, bool) {
	n := NormalizeName(name)
	for _, t := range teams {
		if NormalizeName(t.Name) == n ||
			(t.Abbreviation != "" && strings.ToLower(t.Abbreviation) == n) ||
			(t.TriCode != "" && strings.ToLower(t.TriCode) == n) {
			return t, true
		}
	}
	return models.Team{}, false
}

// NormalizeName lowercases a team name and strips dots ("St. Louis" -> "st louis")
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), ".", "")
}

// load must be called with d.mu held
func (d *Directory) load(ctx context.Context) ([]models.Team, error) {
	teams, err := d.loader.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}

	if err := d.store.Set(ctx, teams, d.ttl); err != nil {
		log.Printf("[teamcache] store write failed: %v", err)
	}
	return teams, nil
}
