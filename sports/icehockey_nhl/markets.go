package icehockey_nhl

import "github.com/Slim0909/nhl-bets/pkg/models"

// FeaturedMarkets returns the markets requested for NHL games
func FeaturedMarkets() []string {
	return []string{models.MarketH2H, models.MarketTotals}
}
