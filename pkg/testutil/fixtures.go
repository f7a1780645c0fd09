package testutil

import (
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// NewTestGame creates a test game starting hoursUntilStart after now
func NewTestGame(id, homeTeam, awayTeam string, now time.Time, hoursUntilStart float64, books ...models.Bookmaker) models.Game {
	return models.Game{
		ID:           id,
		SportKey:     "icehockey_nhl",
		CommenceTime: now.Add(time.Duration(hoursUntilStart * float64(time.Hour))).UTC().Format(time.RFC3339),
		HomeTeam:     homeTeam,
		AwayTeam:     awayTeam,
		Bookmakers:   books,
	}
}

// NewTestBook creates a bookmaker listing with the given markets
func NewTestBook(title string, markets ...models.Market) models.Bookmaker {
	return models.Bookmaker{
		Key:     title,
		Title:   title,
		Markets: markets,
	}
}

// H2H creates a moneyline market
func H2H(home string, homePrice float64, away string, awayPrice float64) models.Market {
	return models.Market{
		Key: models.MarketH2H,
		Outcomes: []models.Outcome{
			{Name: home, Price: homePrice},
			{Name: away, Price: awayPrice},
		},
	}
}

// Totals creates a totals market with both sides on the same line
func Totals(overPrice, underPrice, point float64) models.Market {
	return models.Market{
		Key: models.MarketTotals,
		Outcomes: []models.Outcome{
			{Name: models.OutcomeOver, Price: overPrice, Point: PtrFloat64(point)},
			{Name: models.OutcomeUnder, Price: underPrice, Point: PtrFloat64(point)},
		},
	}
}

// PtrFloat64 creates a pointer to float64
func PtrFloat64(val float64) *float64 {
	return &val
}

// Teams returns a small fixed team directory
func Teams() []models.Team {
	return []models.Team{
		{ID: 10, Name: "Toronto Maple Leafs", TriCode: "TOR", Abbreviation: "TOR"},
		{ID: 8, Name: "Montréal Canadiens", TriCode: "MTL", Abbreviation: "MTL"},
		{ID: 19, Name: "St. Louis Blues", TriCode: "STL", Abbreviation: "STL"},
	}
}
