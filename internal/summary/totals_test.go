package summary

import (
	"testing"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
	"github.com/Slim0909/nhl-bets/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func totalsBook(title string, outcomes ...models.Outcome) models.Bookmaker {
	return testutil.NewTestBook(title, models.Market{Key: models.MarketTotals, Outcomes: outcomes})
}

func TestSummarizeTotals_SharedLine(t *testing.T) {
	game := testutil.NewTestGame("G1", "Home", "Away", time.Now(), 2,
		testutil.NewTestBook("A", testutil.Totals(1.90, 1.95, 5.5)),
	)

	s := SummarizeTotals(game)

	if assert.NotNil(t, s.Line) {
		assert.Equal(t, 5.5, *s.Line)
	}
	assert.Equal(t, 1.90, s.BestOver.Price)
	assert.Equal(t, 1.95, s.BestUnder.Price)
	assert.Equal(t, "A", s.BestOver.Book)
}

func TestSummarizeTotals_LineResolution(t *testing.T) {
	tests := []struct {
		name  string
		books []models.Bookmaker
		want  *float64
	}{
		{
			name: "diverging points use over",
			books: []models.Bookmaker{
				totalsBook("A", models.Outcome{Name: "Over", Price: 2.00, Point: testutil.PtrFloat64(6.5)}),
				totalsBook("B", models.Outcome{Name: "Under", Price: 1.90, Point: testutil.PtrFloat64(5.5)}),
			},
			want: testutil.PtrFloat64(6.5),
		},
		{
			name: "missing over point uses under",
			books: []models.Bookmaker{
				totalsBook("A",
					models.Outcome{Name: "Over", Price: 2.00},
					models.Outcome{Name: "Under", Price: 1.80, Point: testutil.PtrFloat64(5.5)},
				),
			},
			want: testutil.PtrFloat64(5.5),
		},
		{
			name: "no points",
			books: []models.Bookmaker{
				totalsBook("A", models.Outcome{Name: "Over", Price: 2.00}, models.Outcome{Name: "Under", Price: 1.80}),
			},
			want: nil,
		},
		{
			name:  "no bookmakers",
			books: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.NewTestGame("G", "Home", "Away", time.Now(), 2, tt.books...)
			s := SummarizeTotals(game)
			if tt.want == nil {
				assert.Nil(t, s.Line)
				return
			}
			if assert.NotNil(t, s.Line) {
				assert.Equal(t, *tt.want, *s.Line)
			}
		})
	}
}

func TestSummarizeTotals_BestPerSideAcrossBooks(t *testing.T) {
	game := testutil.NewTestGame("G2", "Home", "Away", time.Now(), 2,
		testutil.NewTestBook("A", testutil.Totals(1.85, 2.00, 6.0)),
		testutil.NewTestBook("B", testutil.Totals(1.95, 1.88, 6.0)),
	)

	s := SummarizeTotals(game)

	assert.Equal(t, "B", s.BestOver.Book)
	assert.Equal(t, "A", s.BestUnder.Book)
	if assert.NotNil(t, s.Line) {
		assert.Equal(t, 6.0, *s.Line)
	}
}

func TestSummarizeTotals_IgnoresOtherNamesAndMarkets(t *testing.T) {
	game := testutil.NewTestGame("G3", "Home", "Away", time.Now(), 2,
		testutil.NewTestBook("A",
			testutil.H2H("Home", 1.80, "Away", 2.10),
			models.Market{Key: models.MarketTotals, Outcomes: []models.Outcome{
				{Name: "over", Price: 3.00, Point: testutil.PtrFloat64(5.5)},
			}},
		),
	)

	s := SummarizeTotals(game)

	assert.False(t, s.BestOver.Available())
	assert.False(t, s.BestUnder.Available())
	assert.Nil(t, s.Line)
}

func TestSummarizeTotals_OnlyFirstTotalsMarketCounts(t *testing.T) {
	game := testutil.NewTestGame("G1", "Home", "Away", time.Now(), 2,
		testutil.NewTestBook("A",
			models.Market{Key: models.MarketTotals, Outcomes: []models.Outcome{
				{Name: models.OutcomeOver, Price: 1.90, Point: testutil.PtrFloat64(5.5)},
			}},
			models.Market{Key: models.MarketTotals, Outcomes: []models.Outcome{
				{Name: models.OutcomeOver, Price: 3.00, Point: testutil.PtrFloat64(9.5)},
				{Name: models.OutcomeUnder, Price: 2.80, Point: testutil.PtrFloat64(9.5)},
			}},
		),
	)

	s := SummarizeTotals(game)

	assert.Equal(t, 1.90, s.BestOver.Price)
	if assert.NotNil(t, s.Line) {
		assert.Equal(t, 5.5, *s.Line)
	}
	assert.False(t, s.BestUnder.Available(), "under only appears in the second totals market")
}
