package nhlstats

import (
	"bytes"
	"strconv"

	"github.com/Slim0909/nhl-bets/pkg/contracts"
	"github.com/Slim0909/nhl-bets/pkg/models"
)

// API response structures matching the NHL stats API JSON format

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TriCode      string `json:"triCode"`
	Abbreviation string `json:"abbreviation"`
}

func (t teamResponse) toModel() models.Team {
	return models.Team{
		ID:           t.ID,
		Name:         t.Name,
		TriCode:      t.TriCode,
		Abbreviation: t.Abbreviation,
	}
}

type teamStatsResponse struct {
	Stats []struct {
		Type struct {
			DisplayName string `json:"displayName"`
		} `json:"type"`
		Splits []struct {
			Stat struct {
				GoalsPerGame *float64 `json:"goalsPerGame"`
			} `json:"stat"`
		} `json:"splits"`
	} `json:"stats"`
}

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int64  `json:"gamePk"`
	GameDate string `json:"gameDate"`
	Status   struct {
		DetailedState string `json:"detailedState"`
	} `json:"status"`
	Teams struct {
		Away scheduleSide `json:"away"`
		Home scheduleSide `json:"home"`
	} `json:"teams"`
}

type scheduleSide struct {
	Team struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
	Score int `json:"score"`
}

func (d scheduleDate) toGames() []contracts.ScheduleGame {
	games := make([]contracts.ScheduleGame, 0, len(d.Games))
	for _, g := range d.Games {
		games = append(games, contracts.ScheduleGame{
			GamePk:        g.GamePk,
			GameDate:      g.GameDate,
			DetailedState: g.Status.DetailedState,
			HomeTeam:      g.Teams.Home.Team.Name,
			AwayTeam:      g.Teams.Away.Team.Name,
			HomeScore:     g.Teams.Home.Score,
			AwayScore:     g.Teams.Away.Score,
		})
	}
	return games
}

type teamLeadersResponse struct {
	Teams []struct {
		TeamLeaders struct {
			LeaderCategories []struct {
				Name    string `json:"name"`
				Leaders []struct {
					Person struct {
						ID       int64  `json:"id"`
						FullName string `json:"fullName"`
					} `json:"person"`
					Value flexFloat `json:"value"`
				} `json:"leaders"`
			} `json:"leaderCategories"`
		} `json:"teamLeaders"`
	} `json:"teams"`
}

// flexFloat accepts numbers published either bare or quoted
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}
