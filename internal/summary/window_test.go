package summary

import (
	"testing"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
	"github.com/Slim0909/nhl-bets/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestClampHours(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{24, 24},
		{72, 72},
		{500, 72},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampHours(tt.in), "ClampHours(%d)", tt.in)
	}
}

func TestFilterWindow(t *testing.T) {
	now := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)

	games := []models.Game{
		testutil.NewTestGame("later", "H", "A", now, 10),
		testutil.NewTestGame("past", "H", "A", now, -1),
		testutil.NewTestGame("soon", "H", "A", now, 1),
		testutil.NewTestGame("too-far", "H", "A", now, 30),
		testutil.NewTestGame("edge", "H", "A", now, 24),
		{ID: "garbage", CommenceTime: "not a time"},
		{ID: "empty"},
		testutil.NewTestGame("now", "H", "A", now, 0),
	}

	got := FilterWindow(games, 24, now)

	ids := make([]string, len(got))
	for i, g := range got {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"now", "soon", "later", "edge"}, ids)
}

func TestFilterWindow_ClampsHorizon(t *testing.T) {
	now := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	games := []models.Game{
		testutil.NewTestGame("half-hour", "H", "A", now, 0.5),
		testutil.NewTestGame("two-hours", "H", "A", now, 2),
		testutil.NewTestGame("three-days", "H", "A", now, 71),
		testutil.NewTestGame("four-days", "H", "A", now, 96),
	}

	assert.Len(t, FilterWindow(games, 0, now), 1)
	assert.Len(t, FilterWindow(games, 1000, now), 3)
}

func TestFilterWindow_AscendingOrder(t *testing.T) {
	now := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	games := []models.Game{
		testutil.NewTestGame("c", "H", "A", now, 5),
		testutil.NewTestGame("a", "H", "A", now, 1),
		testutil.NewTestGame("b", "H", "A", now, 3),
	}

	got := FilterWindow(games, 24, now)

	for i := 1; i < len(got); i++ {
		prev, _ := time.Parse(time.RFC3339, got[i-1].CommenceTime)
		cur, _ := time.Parse(time.RFC3339, got[i].CommenceTime)
		assert.True(t, prev.Before(cur))
	}
}

func TestFilterWindow_Empty(t *testing.T) {
	assert.Empty(t, FilterWindow(nil, 24, time.Now()))
}

func TestParseCommenceTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2025-11-03T19:00:00Z", time.Date(2025, 11, 3, 19, 0, 0, 0, time.UTC), true},
		{"2025-11-03T19:00:00.000Z", time.Date(2025, 11, 3, 19, 0, 0, 0, time.UTC), true},
		{"2025-11-03T15:00:00-04:00", time.Date(2025, 11, 3, 19, 0, 0, 0, time.UTC), true},
		{"2025-11-03T20:00:00", time.Date(2025, 11, 3, 20, 0, 0, 0, time.UTC), true},
		{"2025-11-03T20:00", time.Date(2025, 11, 3, 20, 0, 0, 0, time.UTC), true},
		{"2025-11-03", time.Time{}, false},
		{"not a time", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCommenceTime(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}

func TestFilterWindow_ZonelessTimes(t *testing.T) {
	now := time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	games := []models.Game{
		{ID: "nozone", CommenceTime: "2025-11-03T20:00:00"},
		{ID: "offset", CommenceTime: "2025-11-03T15:00:00-04:00"},
		{ID: "frac", CommenceTime: "2025-11-03T19:30:00.000Z"},
		{ID: "past", CommenceTime: "2025-11-03T17:00:00"},
	}

	got := FilterWindow(games, 24, now)

	ids := make([]string, len(got))
	for i, g := range got {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"offset", "frac", "nozone"}, ids)
}
