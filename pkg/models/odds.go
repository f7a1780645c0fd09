package models

import (
	"encoding/json"
	"math"
)

// Market keys understood by the summarizers. Other keys are ignored.
const (
	MarketH2H    = "h2h"
	MarketTotals = "totals"
)

// Totals outcome names as published by The Odds API
const (
	OutcomeOver  = "Over"
	OutcomeUnder = "Under"
)

// Outcome is one priced selection within a market (decimal odds)
type Outcome struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Point *float64 `json:"point,omitempty"` // Totals line
}

// Market groups the outcomes a bookmaker offers for one market key
type Market struct {
	Key        string    `json:"key"`
	LastUpdate string    `json:"last_update,omitempty"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Bookmaker is one book's listing for a game
type Bookmaker struct {
	Key        string   `json:"key,omitempty"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update,omitempty"`
	Markets    []Market `json:"markets"`
}

// Game is one event of the odds feed. CommenceTime is kept as the raw
// ISO-8601 string so malformed values survive decoding and can be filtered out.
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key,omitempty"`
	SportTitle   string      `json:"sport_title,omitempty"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// NoOffer is the sentinel price of a side nobody offered
var NoOffer = math.Inf(-1)

// BestPrice is the highest price seen for one side and the book offering it
type BestPrice struct {
	Price float64
	Book  string
}

// Available reports whether any bookmaker offered this side
func (b BestPrice) Available() bool {
	return !math.IsInf(b.Price, -1)
}

// MarshalJSON writes the no-offer sentinel as a null price
func (b BestPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Price *float64 `json:"price"`
		Book  string   `json:"book"`
	}{
		Price: finite(b.Price),
		Book:  b.Book,
	})
}

// BestTotalsSide is the highest Over or Under price with its line
type BestTotalsSide struct {
	Price float64
	Point *float64
	Book  string
}

// Available reports whether any bookmaker offered this side
func (b BestTotalsSide) Available() bool {
	return !math.IsInf(b.Price, -1)
}

// MarshalJSON writes the no-offer sentinel as a null price
func (b BestTotalsSide) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Price *float64 `json:"price"`
		Point *float64 `json:"point"`
		Book  string   `json:"book"`
	}{
		Price: finite(b.Price),
		Point: b.Point,
		Book:  b.Book,
	})
}

// H2HSummary is the moneyline summary of one game
type H2HSummary struct {
	BestHome    BestPrice `json:"bestHome"`
	BestAway    BestPrice `json:"bestAway"`
	AvgHome     *float64  `json:"avgHome"`
	AvgAway     *float64  `json:"avgAway"`
	ImpliedHome *float64  `json:"impliedHome"`
	ImpliedAway *float64  `json:"impliedAway"`
}

// TotalsSummary is the totals summary of one game
type TotalsSummary struct {
	Line      *float64       `json:"line"`
	BestOver  BestTotalsSide `json:"bestOver"`
	BestUnder BestTotalsSide `json:"bestUnder"`
}

// GameSummary is the serializable view of one summarized game
type GameSummary struct {
	ID           string        `json:"id"`
	CommenceTime string        `json:"commence_time"`
	HomeTeam     string        `json:"home_team"`
	AwayTeam     string        `json:"away_team"`
	H2H          H2HSummary    `json:"h2h"`
	Totals       TotalsSummary `json:"totals"`
}

// FetchOddsOptions contains parameters for fetching odds
type FetchOddsOptions struct {
	Sport   string
	Regions []string
	Markets []string
}

// RateLimits contains quota information reported by the odds vendor
type RateLimits struct {
	RequestsRemaining int
	RequestsUsed      int
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
