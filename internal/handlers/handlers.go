package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Slim0909/nhl-bets/internal/registry"
	"github.com/Slim0909/nhl-bets/internal/teamcache"
	"github.com/Slim0909/nhl-bets/pkg/contracts"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	odds   contracts.OddsProvider
	stats  contracts.StatsProvider
	teams  *teamcache.Directory
	sports *registry.SportRegistry
	now    func() time.Time
}

// NewHandler creates a new handler with dependencies
func NewHandler(
	odds contracts.OddsProvider,
	stats contracts.StatsProvider,
	teams *teamcache.Directory,
	sports *registry.SportRegistry,
) *Handler {
	return &Handler{
		odds:   odds,
		stats:  stats,
		teams:  teams,
		sports: sports,
		now:    time.Now,
	}
}

// SetClock overrides the time source (tests)
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	limits := h.odds.GetRateLimits()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.now().UTC(),
		"service":   "nhl-bets",
		"odds": map[string]interface{}{
			"configured":        h.odds.HasKey(),
			"requestsRemaining": limits.RequestsRemaining,
			"requestsUsed":      limits.RequestsUsed,
		},
	})
}

// resolveSport returns the module named by ?sport=, or the registry default
func (h *Handler) resolveSport(r *http.Request) (contracts.SportModule, error) {
	return h.sports.Resolve(r.URL.Query().Get("sport"))
}

// errorResponse is the failure envelope shared by every API route
type errorResponse struct {
	OK     bool   `json:"ok"`
	Status int    `json:"status,omitempty"`
	Error  string `json:"error"`
}

// statusCoder is implemented by upstream HTTP errors
type statusCoder interface {
	HTTPStatus() int
}

// upstreamStatus returns the status of a wrapped upstream HTTP error, or 0
func upstreamStatus(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return 0
}

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	// Fractional values truncate toward zero ("2.5" -> 2)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return defaultValue
	}

	return int(math.Max(math.Min(value, math.MaxInt32), math.MinInt32))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

// respondError writes the failure envelope. Upstream HTTP errors keep their
// status; anything else maps to status.
func respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Error: message}

	if err != nil {
		fmt.Printf("error: %s - %v\n", message, err)

		if upstream := upstreamStatus(err); upstream != 0 {
			status = upstream
			resp.Status = upstream
			resp.Error = fmt.Sprintf("%s: %v", message, err)
		}
	}

	respondJSON(w, status, resp)
}
