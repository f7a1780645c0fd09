package summary

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
	"github.com/Slim0909/nhl-bets/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeWindow(t *testing.T) {
	now := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	games := []struct {
		id    string
		hours float64
	}{
		{id: "late", hours: 6},
		{id: "early", hours: 2},
		{id: "gone", hours: -3},
	}

	feed := make([]models.Game, 0, len(games))
	for _, g := range games {
		feed = append(feed, testutil.NewTestGame(g.id, "Home", "Away", now, g.hours,
			testutil.NewTestBook("A", testutil.H2H("Home", 1.80, "Away", 2.10), testutil.Totals(1.90, 1.95, 5.5)),
		))
	}

	summaries := SummarizeWindow(feed, 24, now)

	require.Len(t, summaries, 2)
	assert.Equal(t, "early", summaries[0].ID)
	assert.Equal(t, "late", summaries[1].ID)
	assert.Equal(t, "Home", summaries[0].HomeTeam)
	assert.Equal(t, 1.80, summaries[0].H2H.BestHome.Price)
	if assert.NotNil(t, summaries[0].Totals.Line) {
		assert.Equal(t, 5.5, *summaries[0].Totals.Line)
	}
}

func TestGameSummary_JSONShape(t *testing.T) {
	now := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	game := testutil.NewTestGame("G1", "Home", "Away", now, 2,
		testutil.NewTestBook("A", testutil.H2H("Home", 1.80, "Away", 2.10)),
	)

	data, err := json.Marshal(SummarizeGame(game))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	h2h := decoded["h2h"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"price": 1.8, "book": "A"}, h2h["bestHome"])
	assert.Contains(t, h2h, "impliedHome")

	totals := decoded["totals"].(map[string]interface{})
	assert.Nil(t, totals["line"])
	assert.Equal(t, map[string]interface{}{"price": nil, "point": nil, "book": ""}, totals["bestOver"])
	assert.Equal(t, "G1", decoded["id"])
	assert.Equal(t, game.CommenceTime, decoded["commence_time"])
}
