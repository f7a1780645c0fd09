package nhl

import (
	"context"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/contracts"
	"github.com/Slim0909/nhl-bets/pkg/models"
)

// DateLayout is the UTC calendar date format used in responses
const DateLayout = "2006-01-02"

// TodaySchedule returns the UTC date of now and the games scheduled on it
func TodaySchedule(ctx context.Context, stats contracts.StatsProvider, now time.Time) (string, []models.ScheduledGame, error) {
	today := now.UTC()

	raw, err := stats.FetchSchedule(ctx, today)
	if err != nil {
		return "", nil, err
	}

	games := make([]models.ScheduledGame, 0, len(raw))
	for _, g := range raw {
		games = append(games, models.ScheduledGame{
			GamePk:       g.GamePk,
			Status:       g.DetailedState,
			StartTimeUTC: g.GameDate,
			Home:         g.HomeTeam,
			Away:         g.AwayTeam,
		})
	}

	return today.Format(DateLayout), games, nil
}
