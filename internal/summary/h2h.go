// Package summary reduces a multi-bookmaker odds feed into best prices,
// averages and implied probabilities, and filters games by start window.
package summary

import (
	"github.com/Slim0909/nhl-bets/pkg/models"
)

// SummarizeH2H computes the best and average moneyline price per side.
// Only the first h2h market of each bookmaker is considered. Team names are
// matched exactly against the outcome names.
func SummarizeH2H(game models.Game) models.H2HSummary {
	bestHome := models.BestPrice{Price: models.NoOffer}
	bestAway := models.BestPrice{Price: models.NoOffer}
	var sumHome, sumAway float64
	var nHome, nAway int

	for _, b := range game.Bookmakers {
		m, ok := firstMarket(b, models.MarketH2H)
		if !ok {
			continue
		}

		for _, o := range m.Outcomes {
			if o.Name == game.HomeTeam {
				sumHome += o.Price
				nHome++
				if o.Price > bestHome.Price {
					bestHome = models.BestPrice{Price: o.Price, Book: b.Title}
				}
			}
			if o.Name == game.AwayTeam {
				sumAway += o.Price
				nAway++
				if o.Price > bestAway.Price {
					bestAway = models.BestPrice{Price: o.Price, Book: b.Title}
				}
			}
		}
	}

	return models.H2HSummary{
		BestHome:    bestHome,
		BestAway:    bestAway,
		AvgHome:     mean(sumHome, nHome),
		AvgAway:     mean(sumAway, nAway),
		ImpliedHome: ImpliedProbability(bestHome.Price),
		ImpliedAway: ImpliedProbability(bestAway.Price),
	}
}

// ImpliedProbability returns 100/price as a percentage, or nil when the price
// is not positive. The result is not normalized across sides.
func ImpliedProbability(price float64) *float64 {
	if !(price > 0) {
		return nil
	}
	p := 100 / price
	return &p
}

// firstMarket returns the first market of b with the given key
func firstMarket(b models.Bookmaker, key string) (models.Market, bool) {
	for _, m := range b.Markets {
		if m.Key == key {
			return m, true
		}
	}
	return models.Market{}, false
}

func mean(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
