package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Slim0909/nhl-bets/internal/nhl"
	"github.com/go-chi/chi/v5"
)

// GetSchedule returns today's NHL games (UTC date)
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	date, games, err := nhl.TodaySchedule(r.Context(), h.stats, h.now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch schedule", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"date":  date,
		"games": games,
	})
}

// GetTeamOverview returns goals per game, recent results and leaders of a team
func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad team id", nil)
		return
	}

	overview, err := nhl.TeamOverview(r.Context(), h.stats, teamID, h.now())
	if errors.Is(err, nhl.ErrTeamNotFound) {
		respondError(w, http.StatusNotFound, "team not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build team overview", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":             true,
		"teamId":         overview.TeamID,
		"teamName":       overview.TeamName,
		"goalsPerGame":   overview.GoalsPerGame,
		"last3":          overview.Last3,
		"leaders":        overview.Leaders,
		"spans":          overview.Spans,
		"perPlayerTable": overview.PerPlayerTable,
	})
}

// LookupTeam resolves a team name, abbreviation or tri-code to its id
// Query params: name
func (h *Handler) LookupTeam(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	teamID, ok, err := h.teams.FindTeamID(r.Context(), name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load teams", err)
		return
	}
	if !ok {
		respondError(w, http.StatusNotFound, "team not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"teamId": teamID,
	})
}

// InvalidateTeams drops the cached team directory
func (h *Handler) InvalidateTeams(w http.ResponseWriter, r *http.Request) {
	if err := h.teams.Invalidate(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to invalidate teams", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
