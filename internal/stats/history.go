package stats

import (
	"strings"
	"time"

	"github.com/verte-zerg/hoopmetrics/internal/model"
)

// FilterSessions returns sessions matching term (case-insensitive, over date,
// location, notes and shot type), newest date first. Each result keeps its index
// in the stored list so removals never act on a view position.
func FilterSessions(sessions []model.Session, term string) []IndexedSession {
	term = strings.ToLower(strings.TrimSpace(term))
	matched := make([]IndexedSession, 0, len(sessions))
	for i, s := range sessions {
		if term == "" || sessionMatches(s, term) {
			matched = append(matched, IndexedSession{Index: i, Session: s})
		}
	}
	return SortBy(matched, "date", model.Desc)
}

func sessionMatches(s model.Session, term string) bool {
	fields := []string{s.Date, s.Location, s.Notes, string(s.ShotType)}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Page returns the [start, end) bounds of page within total items.
func Page(total, page, size int) (start, end int) {
	if size <= 0 || total <= 0 || page < 0 {
		return 0, total
	}
	start = page * size
	if start >= total {
		start = ((total - 1) / size) * size
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

// ChartPoint is a single session prepared for trend display.
type ChartPoint struct {
	Label          string
	Percentage     float64
	ShotsMade      int
	ShotsAttempted int
	ShotType       model.ShotType
}

// ChartPoints converts sessions, in stored order, to trend points.
func ChartPoints(sessions []model.Session) []ChartPoint {
	points := make([]ChartPoint, len(sessions))
	for i, s := range sessions {
		points[i] = ChartPoint{
			Label:          shortDate(s.Date),
			Percentage:     float64(s.Percentage),
			ShotsMade:      s.ShotsMade,
			ShotsAttempted: s.ShotsAttempted,
			ShotType:       s.ShotType,
		}
	}
	return points
}

// Recent returns the last n points, oldest first. A negative n keeps every point.
func Recent(points []ChartPoint, n int) []ChartPoint {
	if n == 0 {
		return []ChartPoint{}
	}
	if n < 0 || len(points) <= n {
		return append([]ChartPoint(nil), points...)
	}
	return append([]ChartPoint(nil), points[len(points)-n:]...)
}

func shortDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2")
}

// LongDate formats an ISO date for the history table.
func LongDate(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("Jan 2, 2006")
}
