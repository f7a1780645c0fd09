// Package nhl maps raw NHL stats data into the shapes served by the API:
// the daily schedule, team overviews and game results.
package nhl

import (
	"fmt"
	"time"
)

// CurrentSeasonID returns the season spanning now, e.g. "20252026".
// A season starts in August.
func CurrentSeasonID(now time.Time) string {
	now = now.UTC()
	start := now.Year()
	if now.Month() < time.August {
		start--
	}
	return fmt.Sprintf("%d%d", start, start+1)
}
