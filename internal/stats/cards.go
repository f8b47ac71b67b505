package stats

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/hoopmetrics/internal/model"
)

// RankingCard describes one ranked category for display.
type RankingCard struct {
	Title       string
	Rank        int
	Total       int
	Description string
}

// HasRankings reports whether the user has logged anything worth ranking.
func HasRankings(user model.PlayerRecord) bool {
	return user.Percentage > 0 || user.CareerPoints > 0
}

// RankingCards builds the five ranking cards for a comparison.
func RankingCards(cmp Comparison) []RankingCard {
	u := cmp.User
	r := cmp.Rankings
	total := len(cmp.Players)

	fg := "Add field goal sessions to see your ranking in this category."
	if u.Percentage > 0 {
		fg = fmt.Sprintf("Your %s%% shooting places you in the %sth percentile among these NBA stars.", u.Percentage, r.Percentile)
	}
	ft := "Add free throw sessions to see your ranking in this category."
	if u.FTPercentage > 0 {
		ft = fmt.Sprintf("Your %s%% free throw shooting ranks %s among NBA players.", u.FTPercentage, pick(u.FTPercentage > 80, "impressively", "competitively"))
	}
	fg3 := "Add 3-point shooting sessions to see your ranking from downtown."
	if u.FG3Percentage > 0 {
		fg3 = fmt.Sprintf("Your %s%% from beyond the arc %s.", u.FG3Percentage, pick(u.FG3Percentage > 35, "shows excellent range", "is developing nicely"))
	}
	fg2 := "Add 2-point shooting sessions to see your mid-range and inside scoring rank."
	if u.FG2Percentage > 0 {
		fg2 = fmt.Sprintf("Your %s%% on 2-pointers %s.", u.FG2Percentage, pick(u.FG2Percentage > 50, "is extremely efficient", "shows room for growth"))
	}
	pts := "Make some shots to start climbing the all-time scoring list."
	if u.CareerPoints > 0 {
		pts = fmt.Sprintf("Your %s total points across %d sessions.", humanize.Comma(int64(u.CareerPoints)), u.GamesPlayed)
	}

	return []RankingCard{
		{Title: "Field Goal Percentage (FG%)", Rank: r.FGPercentage, Total: total, Description: fg},
		{Title: "Free Throw Percentage (FT%)", Rank: r.FTPercentage, Total: total, Description: ft},
		{Title: "3-Point Percentage (3P%)", Rank: r.FG3Percentage, Total: total, Description: fg3},
		{Title: "2-Point Percentage (2P%)", Rank: r.FG2Percentage, Total: total, Description: fg2},
		{Title: "Career Points", Rank: r.CareerPoints, Total: total, Description: pts},
	}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// PlayerColumn is a column of the comparison table.
type PlayerColumn struct {
	Field string
	Title string
}

// PlayerColumns lists the comparison table columns after the rank column.
var PlayerColumns = []PlayerColumn{
	{Field: "name", Title: "Player"},
	{Field: "team", Title: "Team"},
	{Field: "percentage", Title: "FG%"},
	{Field: "fgm", Title: "FGM"},
	{Field: "fga", Title: "FGA"},
	{Field: "ftPercentage", Title: "FT%"},
	{Field: "ftm", Title: "FTM"},
	{Field: "fta", Title: "FTA"},
	{Field: "fg3Percentage", Title: "3P%"},
	{Field: "fg3m", Title: "3PM"},
	{Field: "fg3a", Title: "3PA"},
	{Field: "fg2Percentage", Title: "2P%"},
	{Field: "fg2m", Title: "2PM"},
	{Field: "fg2a", Title: "2PA"},
	{Field: "careerPoints", Title: "Career Points"},
	{Field: "gamesPlayed", Title: "Games"},
}

// PlayerRow formats a player's cells in PlayerColumns order, prefixed by rank.
func PlayerRow(rank int, p model.PlayerRecord) []string {
	name := p.Name
	if p.IsUser {
		name += " (You)"
	}
	return []string{
		fmt.Sprintf("%d", rank),
		name,
		p.Team,
		p.Percentage.String() + "%",
		humanize.Comma(int64(p.FGM)),
		humanize.Comma(int64(p.FGA)),
		p.FTPercentage.String() + "%",
		humanize.Comma(int64(p.FTM)),
		humanize.Comma(int64(p.FTA)),
		p.FG3Percentage.String() + "%",
		humanize.Comma(int64(p.FG3M)),
		humanize.Comma(int64(p.FG3A)),
		p.FG2Percentage.String() + "%",
		humanize.Comma(int64(p.FG2M)),
		humanize.Comma(int64(p.FG2A)),
		humanize.Comma(int64(p.CareerPoints)),
		fmt.Sprintf("%d", p.GamesPlayed),
	}
}

// SessionRow formats a history row: stored index, date, type, made, attempted,
// percentage, location, notes.
func SessionRow(item IndexedSession) []string {
	s := item.Session
	return []string{
		fmt.Sprintf("%d", item.Index),
		LongDate(s.Date),
		s.ShotType.Label(),
		fmt.Sprintf("%d", s.ShotsMade),
		fmt.Sprintf("%d", s.ShotsAttempted),
		s.Percentage.String() + "%",
		s.Location,
		s.Notes,
	}
}

// SessionHeaders are the history table headers matching SessionRow.
var SessionHeaders = []string{"#", "Date", "Type", "Made", "Att", "Pct", "Location", "Notes"}
