package contracts

import (
	"context"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// OddsProvider fetches the raw multi-bookmaker odds feed for a sport
type OddsProvider interface {
	// FetchOdds returns the games of the feed as delivered by the vendor
	FetchOdds(ctx context.Context, opts *models.FetchOddsOptions) ([]models.Game, error)

	// HasKey reports whether the provider is configured with credentials
	HasKey() bool

	// GetRateLimits returns the quota reported by the last response
	GetRateLimits() models.RateLimits
}

// StatsProvider fetches NHL team and schedule data
type StatsProvider interface {
	FetchTeams(ctx context.Context) ([]models.Team, error)
	FetchTeam(ctx context.Context, teamID int) (*models.Team, error)
	FetchTeamStats(ctx context.Context, teamID int, season string) (*float64, error)
	FetchSchedule(ctx context.Context, date time.Time) ([]ScheduleGame, error)
	FetchTeamSchedule(ctx context.Context, teamID int, from, to time.Time) ([]ScheduleGame, error)
	FetchTeamLeaders(ctx context.Context, teamID int) ([]LeaderCategory, error)
}

// ScheduleGame is a game of the stats provider's schedule
type ScheduleGame struct {
	GamePk        int64
	GameDate      string
	DetailedState string
	HomeTeam      string
	AwayTeam      string
	HomeScore     int
	AwayScore     int
}

// LeaderCategory is one leader board of a team (goals, assists, points...)
type LeaderCategory struct {
	Name    string
	Leaders []models.Leader
}
