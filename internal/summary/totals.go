package summary

import (
	"github.com/Slim0909/nhl-bets/pkg/models"
)

// SummarizeTotals finds the best Over and Under prices across bookmakers and
// resolves the line. When the best sides disagree on the point, the Over's
// point wins, then the Under's.
func SummarizeTotals(game models.Game) models.TotalsSummary {
	bestOver := models.BestTotalsSide{Price: models.NoOffer}
	bestUnder := models.BestTotalsSide{Price: models.NoOffer}

	for _, b := range game.Bookmakers {
		m, ok := firstMarket(b, models.MarketTotals)
		if !ok {
			continue
		}

		for _, o := range m.Outcomes {
			switch o.Name {
			case models.OutcomeOver:
				if o.Price > bestOver.Price {
					bestOver = models.BestTotalsSide{Price: o.Price, Point: copyPoint(o.Point), Book: b.Title}
				}
			case models.OutcomeUnder:
				if o.Price > bestUnder.Price {
					bestUnder = models.BestTotalsSide{Price: o.Price, Point: copyPoint(o.Point), Book: b.Title}
				}
			}
		}
	}

	return models.TotalsSummary{
		Line:      resolveLine(bestOver.Point, bestUnder.Point),
		BestOver:  bestOver,
		BestUnder: bestUnder,
	}
}

func resolveLine(over, under *float64) *float64 {
	switch {
	case over != nil && under != nil && *over == *under:
		return copyPoint(over)
	case over != nil:
		return copyPoint(over)
	case under != nil:
		return copyPoint(under)
	default:
		return nil
	}
}

func copyPoint(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
