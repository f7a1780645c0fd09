package nhl

import (
	"github.com/Slim0909/nhl-bets/pkg/models"
)

// ResultFromTeamPOV returns the 1/N/2 code of a finished game as seen by
// teamName. Ties are N. When teamName played neither side the code
// reflects the home result.
func ResultFromTeamPOV(teamName, home, away string, homeScore, awayScore int) string {
	switch {
	case homeScore == awayScore:
		return models.ResultDraw
	case teamName == home:
		if homeScore > awayScore {
			return models.ResultHome
		}
		return models.ResultAway
	case teamName == away:
		if awayScore > homeScore {
			return models.ResultAway
		}
		return models.ResultHome
	default:
		if homeScore > awayScore {
			return models.ResultHome
		}
		return models.ResultAway
	}
}

// Venue reports whether teamName played at home, away, or is unknown to the game
func Venue(teamName, home, away string) string {
	switch teamName {
	case home:
		return "home"
	case away:
		return "away"
	default:
		return "unknown"
	}
}
