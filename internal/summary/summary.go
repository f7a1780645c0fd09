package summary

import (
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// SummarizeGame runs both summarizers over one game
func SummarizeGame(game models.Game) models.GameSummary {
	return models.GameSummary{
		ID:           game.ID,
		CommenceTime: game.CommenceTime,
		HomeTeam:     game.HomeTeam,
		AwayTeam:     game.AwayTeam,
		H2H:          SummarizeH2H(game),
		Totals:       SummarizeTotals(game),
	}
}

// SummarizeWindow filters the feed to the horizon and summarizes what is left
func SummarizeWindow(games []models.Game, hours int, now time.Time) []models.GameSummary {
	upcoming := FilterWindow(games, hours, now)

	summaries := make([]models.GameSummary, 0, len(upcoming))
	for _, g := range upcoming {
		summaries = append(summaries, SummarizeGame(g))
	}
	return summaries
}
