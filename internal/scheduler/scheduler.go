package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// Refreshable is anything that can reload its cached state on demand
type Refreshable interface {
	Refresh(ctx context.Context) ([]models.Team, error)
}

// Refresher reloads the team directory on a fixed interval
type Refresher struct {
	target   Refreshable
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRefresher creates a refresher. An interval <= 0 disables it.
func NewRefresher(target Refreshable, interval time.Duration) *Refresher {
	return &Refresher{
		target:   target,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Enabled reports whether Start will launch a refresh loop
func (r *Refresher) Enabled() bool {
	return r.interval > 0
}

// Start begins refreshing in the background
func (r *Refresher) Start(ctx context.Context) {
	if !r.Enabled() {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop gracefully shuts down the refresher
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
	r.wg.Wait()
}

func (r *Refresher) run(ctx context.Context) {
	// Initial refresh immediately
	r.refreshOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.refreshOnce(ctx)
		case <-r.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()

	teams, err := r.target.Refresh(ctx)
	if err != nil {
		log.Printf("[refresher] team refresh error: %v", err)
		return
	}

	log.Printf("[refresher] refreshed %d teams in %v", len(teams), time.Since(start))
}
