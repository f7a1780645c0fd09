package summary

import (
	"sort"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/models"
)

// Horizon bounds, in hours
const (
	MinHorizonHours = 1
	MaxHorizonHours = 72
)

// ClampHours forces a requested horizon into [MinHorizonHours, MaxHorizonHours]
func ClampHours(hours int) int {
	if hours < MinHorizonHours {
		return MinHorizonHours
	}
	if hours > MaxHorizonHours {
		return MaxHorizonHours
	}
	return hours
}

// commenceLayouts are tried in order. Times without a zone are read as UTC.
var commenceLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseCommenceTime parses a feed start time
func ParseCommenceTime(s string) (time.Time, bool) {
	for _, layout := range commenceLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterWindow keeps the games starting within [now, now+hours], sorted by
// start time. Games with an unparseable commence_time are dropped.
func FilterWindow(games []models.Game, hours int, now time.Time) []models.Game {
	cutoff := now.Add(time.Duration(ClampHours(hours)) * time.Hour)

	type timedGame struct {
		game  models.Game
		start time.Time
	}

	kept := make([]timedGame, 0, len(games))
	for _, g := range games {
		start, ok := ParseCommenceTime(g.CommenceTime)
		if !ok {
			continue
		}
		if start.Before(now) || start.After(cutoff) {
			continue
		}
		kept = append(kept, timedGame{game: g, start: start})
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].start.Before(kept[j].start)
	})

	result := make([]models.Game, len(kept))
	for i, tg := range kept {
		result[i] = tg.game
	}
	return result
}
