package models

// Team is the subset of NHL team metadata used for name lookups
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TriCode      string `json:"triCode,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// ScheduledGame is one entry of the daily schedule
type ScheduledGame struct {
	GamePk       int64  `json:"gamePk"`
	Status       string `json:"status"`
	StartTimeUTC string `json:"startTimeUTC"`
	Home         string `json:"home"`
	Away         string `json:"away"`
}

// Result codes from a team's point of view: 1 home win, N draw, 2 away win
const (
	ResultHome = "1"
	ResultDraw = "N"
	ResultAway = "2"
)

// RecentResult is a finished game seen from one team's side
type RecentResult struct {
	GamePk            int64  `json:"gamePk"`
	DateUTC           string `json:"dateUTC"`
	Home              string `json:"home"`
	Away              string `json:"away"`
	Score             string `json:"score"`
	ResultFromTeamPOV string `json:"resultFromTeamPOV"`
	Venue             string `json:"venue"` // home, away, unknown
}

// Leader is one player in a team leader category
type Leader struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Leaders groups the goal, assist and point leaders of a team
type Leaders struct {
	Goals   []Leader `json:"goals"`
	Assists []Leader `json:"assists"`
	Points  []Leader `json:"points"`
}

// Spans holds rolling goal counts per player. Not populated yet.
type Spans struct {
	GoalsLast3 []int `json:"goalsLast3"`
	GoalsLast5 []int `json:"goalsLast5"`
	GoalsLast7 []int `json:"goalsLast7"`
}

// PlayerGameLine is one row of the per-player table
type PlayerGameLine struct {
	GamePk  int64 `json:"gamePk"`
	Goals   *int  `json:"goals,omitempty"`
	Assists *int  `json:"assists,omitempty"`
	Points  *int  `json:"points,omitempty"`
}

// TeamOverview aggregates season stats, recent form and leaders for a team
type TeamOverview struct {
	TeamID         int                         `json:"teamId"`
	TeamName       string                      `json:"teamName"`
	GoalsPerGame   *float64                    `json:"goalsPerGame"`
	Last3          []RecentResult              `json:"last3"`
	Leaders        Leaders                     `json:"leaders"`
	Spans          Spans                       `json:"spans"`
	PerPlayerTable map[string][]PlayerGameLine `json:"perPlayerTable"`
}
