package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Slim0909/nhl-bets/pkg/contracts"
)

// ErrUnknownSport is returned by Resolve for keys nobody registered
var ErrUnknownSport = errors.New("unknown sport")

// SportRegistry holds the sport modules the odds routes can serve.
// The first module registered becomes the default for requests without ?sport=.
type SportRegistry struct {
	sports     map[string]contracts.SportModule
	defaultKey string
	mu         sync.RWMutex
}

// NewSportRegistry creates an empty registry
func NewSportRegistry() *SportRegistry {
	return &SportRegistry{
		sports: make(map[string]contracts.SportModule),
	}
}

// Register adds a sport module. Keys must be unique.
func (r *SportRegistry) Register(sport contracts.SportModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sport.GetSportKey()
	if key == "" {
		return errors.New("sport module has an empty key")
	}
	if _, exists := r.sports[key]; exists {
		return fmt.Errorf("sport %s is already registered", key)
	}

	r.sports[key] = sport
	if r.defaultKey == "" {
		r.defaultKey = key
	}
	return nil
}

// Resolve returns the module for key, or the default module when key is empty
func (r *SportRegistry) Resolve(key string) (contracts.SportModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key == "" {
		key = r.defaultKey
	}
	sport, ok := r.sports[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSport, key)
	}
	return sport, nil
}

// GetAll returns the registered modules ordered by key
func (r *SportRegistry) GetAll() []contracts.SportModule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sports := make([]contracts.SportModule, 0, len(r.sports))
	for _, sport := range r.sports {
		sports = append(sports, sport)
	}
	sort.Slice(sports, func(i, j int) bool {
		return sports[i].GetSportKey() < sports[j].GetSportKey()
	})
	return sports
}

// Count returns the number of registered modules
func (r *SportRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sports)
}
