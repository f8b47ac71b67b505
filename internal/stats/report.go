package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/hoopmetrics/internal/model"
)

// RenderSummary prints career totals and the recent FG% trend.
func RenderSummary(w io.Writer, sessions []model.Session, recent int) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found. Add one with: hoopmetrics add")
		return err
	}
	agg := Aggregate(sessions)
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("FG%%: %s%% (%d/%d)", agg.Percentage, agg.FGM, agg.FGA),
		fmt.Sprintf("2P%%: %s%% (%d/%d)", agg.FG2Percentage, agg.FG2M, agg.FG2A),
		fmt.Sprintf("3P%%: %s%% (%d/%d)", agg.FG3Percentage, agg.FG3M, agg.FG3A),
		fmt.Sprintf("FT%%: %s%% (%d/%d)", agg.FTPercentage, agg.FTM, agg.FTA),
		fmt.Sprintf("Total Points: %s", humanize.Comma(int64(agg.TotalPoints))),
		fmt.Sprintf("Avg Points/Session: %.1f", AvgPointsPerSession(agg, len(sessions))),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return RenderTrend(w, Recent(ChartPoints(sessions), recent))
}

const trendWindow = 3

// RenderTrend prints a sparkline of session percentages.
func RenderTrend(w io.Writer, points []ChartPoint) error {
	if len(points) == 0 {
		return nil
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Percentage
	}
	first, last := points[0].Label, points[len(points)-1].Label
	if _, err := fmt.Fprintf(w, "Recent Sessions (%d): %s -> %s\n", len(points), first, last); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "[%s]\n", Sparkline(values)); err != nil {
		return err
	}
	if len(values) >= trendWindow {
		avg := MovingAverage(values, trendWindow)
		if _, err := fmt.Fprintf(w, "[%s] %d-session avg %.1f%%\n", Sparkline(avg), trendWindow, Round1(avg[len(avg)-1])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistory prints the session history table.
func RenderHistory(w io.Writer, rows []IndexedSession, width int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := SessionRow(r)
		cells[7] = Truncate(cells[7], notesWidth(width))
		tableRows = append(tableRows, cells)
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(SessionHeaders, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func notesWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width / 3
	if w < 10 {
		w = 10
	}
	return w
}

// RenderRankings prints the user's ranking cards.
func RenderRankings(w io.Writer, cmp Comparison) error {
	if !HasRankings(cmp.User) {
		_, err := fmt.Fprintln(w, "Add shooting sessions to see your NBA rankings across different categories")
		return err
	}
	if _, err := fmt.Fprintln(w, "Your NBA Rankings"); err != nil {
		return err
	}
	for _, card := range RankingCards(cmp) {
		line := fmt.Sprintf("  %-28s #%d of %d", card.Title, card.Rank, card.Total)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", card.Description); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderPlayerTable prints the comparison table in the given order.
func RenderPlayerTable(w io.Writer, players []model.PlayerRecord, field string, dir model.Direction) error {
	if len(players) == 0 {
		_, err := fmt.Fprintln(w, "No player data available")
		return err
	}
	headers := []string{"Rank"}
	for _, col := range PlayerColumns {
		title := col.Title
		if col.Field == field {
			title += sortMarker(dir)
		}
		headers = append(headers, title)
	}
	rows := make([][]string, 0, len(players))
	for i, p := range players {
		rows = append(rows, PlayerRow(i+1, p))
	}
	rightAlign := map[int]bool{0: true}
	for i := 3; i < len(headers); i++ {
		rightAlign[i] = true
	}
	if _, err := fmt.Fprintln(w, "Career Stats Comparison"); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, strings.Join([]string{
		"",
		"Note: NBA statistics sourced from Basketball Reference.",
	}, "\n"))
	return err
}

func sortMarker(dir model.Direction) string {
	if dir == model.Asc {
		return " ^"
	}
	return " v"
}
