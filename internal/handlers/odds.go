package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Slim0909/nhl-bets/internal/summary"
	"github.com/Slim0909/nhl-bets/pkg/contracts"
	"github.com/Slim0909/nhl-bets/pkg/models"
)

// GetOddsWindow summarizes the games starting within the next N hours
// Query params: hours (default 24, clamped to 1..72), sport
func (h *Handler) GetOddsWindow(w http.ResponseWriter, r *http.Request) {
	sport, err := h.resolveSport(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	hours := summary.ClampHours(parseIntParam(r, "hours", sport.GetDefaultWindowHours()))
	if maxHours := sport.GetMaxWindowHours(); maxHours > 0 && hours > maxHours {
		hours = maxHours
	}

	games, ok := h.fetchOdds(w, r, sport)
	if !ok {
		return
	}

	summaries := summary.SummarizeWindow(games, hours, h.now())

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"hours": hours,
		"count": len(summaries),
		"games": summaries,
	})
}

// GetOddsToday returns the raw odds feed
// Query params: sport
func (h *Handler) GetOddsToday(w http.ResponseWriter, r *http.Request) {
	sport, err := h.resolveSport(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	games, ok := h.fetchOdds(w, r, sport)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"games": games,
	})
}

// fetchOdds loads the feed for sport, writing the failure envelope on error
func (h *Handler) fetchOdds(w http.ResponseWriter, r *http.Request, sport contracts.SportModule) ([]models.Game, bool) {
	if !h.odds.HasKey() {
		respondError(w, http.StatusInternalServerError, "missing odds API key", nil)
		return nil, false
	}

	games, err := h.loadOdds(r.Context(), sport)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch odds", err)
		return nil, false
	}

	return games, true
}

func (h *Handler) loadOdds(ctx context.Context, sport contracts.SportModule) ([]models.Game, error) {
	start := time.Now()

	games, err := h.odds.FetchOdds(ctx, &models.FetchOddsOptions{
		Sport:   sport.GetSportKey(),
		Regions: sport.GetRegions(),
		Markets: sport.GetFeaturedMarkets(),
	})
	if err != nil {
		return nil, err
	}

	if games == nil {
		games = []models.Game{}
	}

	limits := h.odds.GetRateLimits()
	fmt.Printf("[%s] fetched %d games in %v (quota: %d remaining, %d used)\n",
		sport.GetDisplayName(), len(games), time.Since(start), limits.RequestsRemaining, limits.RequestsUsed)
	return games, nil
}
