package nhl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/contracts"
	"github.com/Slim0909/nhl-bets/pkg/models"
)

const (
	recentGames   = 3
	recentMonths  = 2
	leaderGoals   = "goals"
	leaderAssists = "assists"
	leaderPoints  = "points"
)

// ErrTeamNotFound is returned when the stats API knows no team with the id
var ErrTeamNotFound = errors.New("team not found")

// TeamOverview assembles season goals per game, the last three results and
// the team leaders. The three lookups run concurrently once the team name is
// known and are combined after all of them finish.
func TeamOverview(ctx context.Context, stats contracts.StatsProvider, teamID int, now time.Time) (*models.TeamOverview, error) {
	team, err := stats.FetchTeam(ctx, teamID)
	if err != nil {
		if httpStatus(err) == http.StatusNotFound {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if team == nil || team.Name == "" {
		return nil, ErrTeamNotFound
	}

	var (
		wg           sync.WaitGroup
		goalsPerGame *float64
		schedule     []contracts.ScheduleGame
		leaderCats   []contracts.LeaderCategory
		statsErr     error
		scheduleErr  error
		leadersErr   error
	)

	season := CurrentSeasonID(now)
	to := now.UTC()
	from := to.AddDate(0, -recentMonths, 0)

	wg.Add(3)
	go func() {
		defer wg.Done()
		goalsPerGame, statsErr = stats.FetchTeamStats(ctx, teamID, season)
	}()
	go func() {
		defer wg.Done()
		schedule, scheduleErr = stats.FetchTeamSchedule(ctx, teamID, from, to)
	}()
	go func() {
		defer wg.Done()
		leaderCats, leadersErr = stats.FetchTeamLeaders(ctx, teamID)
	}()
	wg.Wait()

	for _, err := range []error{statsErr, scheduleErr, leadersErr} {
		if err != nil {
			return nil, fmt.Errorf("team %d overview: %w", teamID, err)
		}
	}

	return &models.TeamOverview{
		TeamID:       teamID,
		TeamName:     team.Name,
		GoalsPerGame: goalsPerGame,
		Last3:        LastResults(team.Name, schedule, recentGames),
		Leaders: models.Leaders{
			Goals:   leadersFor(leaderCats, leaderGoals),
			Assists: leadersFor(leaderCats, leaderAssists),
			Points:  leadersFor(leaderCats, leaderPoints),
		},
		Spans: models.Spans{
			GoalsLast3: []int{},
			GoalsLast5: []int{},
			GoalsLast7: []int{},
		},
		PerPlayerTable: map[string][]models.PlayerGameLine{},
	}, nil
}

// httpStatus returns the status carried by an upstream HTTP error, or 0
func httpStatus(err error) int {
	var sc interface{ HTTPStatus() int }
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return 0
}

// LastResults returns the n most recent games, newest first, from teamName's side
func LastResults(teamName string, games []contracts.ScheduleGame, n int) []models.RecentResult {
	sorted := append([]contracts.ScheduleGame(nil), games...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GameDate > sorted[j].GameDate
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	results := make([]models.RecentResult, 0, len(sorted))
	for _, g := range sorted {
		results = append(results, models.RecentResult{
			GamePk:            g.GamePk,
			DateUTC:           g.GameDate,
			Home:              g.HomeTeam,
			Away:              g.AwayTeam,
			Score:             fmt.Sprintf("%d-%d", g.HomeScore, g.AwayScore),
			ResultFromTeamPOV: ResultFromTeamPOV(teamName, g.HomeTeam, g.AwayTeam, g.HomeScore, g.AwayScore),
			Venue:             Venue(teamName, g.HomeTeam, g.AwayTeam),
		})
	}
	return results
}

// leadersFor returns the leaders of the first category whose name contains key
func leadersFor(cats []contracts.LeaderCategory, key string) []models.Leader {
	for _, c := range cats {
		if strings.Contains(strings.ToLower(c.Name), key) {
			return append([]models.Leader{}, c.Leaders...)
		}
	}
	return []models.Leader{}
}
