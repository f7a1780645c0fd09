package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/Slim0909/nhl-bets/internal/summary"
	"github.com/Slim0909/nhl-bets/pkg/models"
	"github.com/shopspring/decimal"
)

const unavailable = "—"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>NHL Bets — Live Odds</title>
</head>
<body>
<main>
<h1>NHL Bets — Live Odds (TheOddsAPI)</h1>
{{- if .Error}}
<p class="error">API error — status: {{if .Status}}{{.Status}}{{else}}?{{end}} | {{.Error}}</p>
{{- else if not .Games}}
<p>Source: /api/odds/today — best moneyline per team.</p>
<div class="empty">No games available (or the API is not responding).</div>
{{- else}}
<p>Source: /api/odds/today — best moneyline per team.</p>
<div class="grid">
{{- range .Games}}
<div class="game">
<div class="when">{{.When}}</div>
<div class="matchup">{{.Away}} @ {{.Home}}</div>
<div><span>Home: </span><span class="price">{{.HomePrice}}</span>{{if .HomeBook}} <span class="book">({{.HomeBook}})</span>{{end}}</div>
<div><span>Away: </span><span class="price">{{.AwayPrice}}</span>{{if .AwayBook}} <span class="book">({{.AwayBook}})</span>{{end}}</div>
</div>
{{- end}}
</div>
{{- end}}
</main>
</body>
</html>
`))

type pageData struct {
	Games  []pageGame
	Error  string
	Status int
}

type pageGame struct {
	When      string
	Home      string
	Away      string
	HomePrice string
	HomeBook  string
	AwayPrice string
	AwayBook  string
}

// Page renders today's games with the best moneyline per side
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	data := pageData{}

	sport, err := h.resolveSport(r)
	switch {
	case err != nil:
		data.Error = err.Error()
		data.Status = http.StatusBadRequest
	case !h.odds.HasKey():
		data.Error = "missing odds API key"
	default:
		games, err := h.loadOdds(r.Context(), sport)
		if err != nil {
			data.Error = err.Error()
			data.Status = upstreamStatus(err)
		} else {
			data.Games = buildPageGames(games)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		fmt.Printf("error rendering page: %v\n", err)
	}
}

func buildPageGames(games []models.Game) []pageGame {
	out := make([]pageGame, 0, len(games))
	for _, g := range games {
		h2h := summary.SummarizeH2H(g)
		out = append(out, pageGame{
			When:      formatWhen(g.CommenceTime),
			Home:      g.HomeTeam,
			Away:      g.AwayTeam,
			HomePrice: formatPrice(h2h.BestHome),
			HomeBook:  h2h.BestHome.Book,
			AwayPrice: formatPrice(h2h.BestAway),
			AwayBook:  h2h.BestAway.Book,
		})
	}
	return out
}

// formatPrice renders a best price with two decimals, or a dash when nobody offered it
func formatPrice(b models.BestPrice) string {
	if !b.Available() || b.Price <= 0 {
		return unavailable
	}
	return decimal.NewFromFloat(b.Price).StringFixed(2)
}

// formatWhen renders a start time in UTC, passing unparseable values through
func formatWhen(commence string) string {
	t, ok := summary.ParseCommenceTime(commence)
	if !ok {
		return commence
	}
	return t.UTC().Format("Mon Jan 2 15:04 MST")
}
