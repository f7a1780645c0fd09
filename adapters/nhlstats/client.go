package nhlstats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Slim0909/nhl-bets/pkg/contracts"
	"github.com/Slim0909/nhl-bets/pkg/models"
)

const (
	DefaultBaseURL = "https://statsapi.web.nhl.com/api/v1"
	DefaultTimeout = 8 * time.Second
	userAgent      = "nhl-bets/1.0"
	dateLayout     = "2006-01-02"
)

// Client handles NHL stats API requests. Every call is a single request
// bounded by the client timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ contracts.StatsProvider = (*Client)(nil)

// New creates a new NHL stats client. An empty baseURL uses DefaultBaseURL,
// a zero timeout uses DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchTeams lists every NHL team
func (c *Client) FetchTeams(ctx context.Context) ([]models.Team, error) {
	var resp teamsResponse
	if err := c.fetchJSON(ctx, c.baseURL+"/teams", &resp); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	teams := make([]models.Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		teams = append(teams, t.toModel())
	}
	return teams, nil
}

// FetchTeam returns one team, or nil when the API knows no such team
func (c *Client) FetchTeam(ctx context.Context, teamID int) (*models.Team, error) {
	var resp teamsResponse
	if err := c.fetchJSON(ctx, fmt.Sprintf("%s/teams/%d", c.baseURL, teamID), &resp); err != nil {
		return nil, fmt.Errorf("fetch team %d: %w", teamID, err)
	}

	if len(resp.Teams) == 0 || resp.Teams[0].Name == "" {
		return nil, nil
	}
	team := resp.Teams[0].toModel()
	return &team, nil
}

// FetchTeamStats returns the single-season goals per game of season
// ("20252026"), nil when not published. An empty season lets the API pick.
func (c *Client) FetchTeamStats(ctx context.Context, teamID int, season string) (*float64, error) {
	endpoint := fmt.Sprintf("%s/teams/%d/stats", c.baseURL, teamID)
	if season != "" {
		params := url.Values{}
		params.Set("season", season)
		endpoint += "?" + params.Encode()
	}

	var resp teamStatsResponse
	if err := c.fetchJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetch team %d stats: %w", teamID, err)
	}

	for _, block := range resp.Stats {
		if block.Type.DisplayName != "statsSingleSeason" {
			continue
		}
		if len(block.Splits) == 0 {
			return nil, nil
		}
		return block.Splits[0].Stat.GoalsPerGame, nil
	}
	return nil, nil
}

// FetchSchedule returns the games scheduled on the given UTC date
func (c *Client) FetchSchedule(ctx context.Context, date time.Time) ([]contracts.ScheduleGame, error) {
	params := url.Values{}
	params.Set("date", date.UTC().Format(dateLayout))

	var resp scheduleResponse
	if err := c.fetchJSON(ctx, c.baseURL+"/schedule?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	if len(resp.Dates) == 0 {
		return []contracts.ScheduleGame{}, nil
	}
	return resp.Dates[0].toGames(), nil
}

// FetchTeamSchedule returns a team's games between two UTC dates, inclusive
func (c *Client) FetchTeamSchedule(ctx context.Context, teamID int, from, to time.Time) ([]contracts.ScheduleGame, error) {
	params := url.Values{}
	params.Set("teamId", fmt.Sprint(teamID))
	params.Set("startDate", from.UTC().Format(dateLayout))
	params.Set("endDate", to.UTC().Format(dateLayout))

	var resp scheduleResponse
	if err := c.fetchJSON(ctx, c.baseURL+"/schedule?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch team %d schedule: %w", teamID, err)
	}

	games := make([]contracts.ScheduleGame, 0)
	for _, d := range resp.Dates {
		games = append(games, d.toGames()...)
	}
	return games, nil
}

// FetchTeamLeaders returns the leader categories of a team
func (c *Client) FetchTeamLeaders(ctx context.Context, teamID int) ([]contracts.LeaderCategory, error) {
	var resp teamLeadersResponse
	if err := c.fetchJSON(ctx, fmt.Sprintf("%s/teams/%d?expand=team.leaders", c.baseURL, teamID), &resp); err != nil {
		return nil, fmt.Errorf("fetch team %d leaders: %w", teamID, err)
	}

	if len(resp.Teams) == 0 {
		return []contracts.LeaderCategory{}, nil
	}

	cats := make([]contracts.LeaderCategory, 0, len(resp.Teams[0].TeamLeaders.LeaderCategories))
	for _, cat := range resp.Teams[0].TeamLeaders.LeaderCategories {
		leaders := make([]models.Leader, 0, len(cat.Leaders))
		for _, l := range cat.Leaders {
			leaders = append(leaders, models.Leader{
				ID:    l.Person.ID,
				Name:  l.Person.FullName,
				Value: float64(l.Value),
			})
		}
		cats = append(cats, contracts.LeaderCategory{Name: cat.Name, Leaders: leaders})
	}
	return cats, nil
}

// fetchJSON makes one GET request and decodes the JSON body into out
func (c *Client) fetchJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			URL:        redact(fullURL),
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// HTTPError is returned for non-2xx stats API responses
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d on %s", e.StatusCode, e.URL)
}

// HTTPStatus exposes the upstream status to callers building error envelopes
func (e *HTTPError) HTTPStatus() int {
	return e.StatusCode
}

// redact strips the query string, which is never useful in error messages
func redact(fullURL string) string {
	if i := strings.IndexByte(fullURL, '?'); i >= 0 {
		return fullURL[:i]
	}
	return fullURL
}
