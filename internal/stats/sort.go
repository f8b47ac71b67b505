package stats

import (
	"sort"
	"strings"

	"github.com/verte-zerg/hoopmetrics/internal/model"
)

// Key is a comparable field value. Text keys compare lexicographically,
// everything else compares numerically.
type Key struct {
	Num    float64
	Text   string
	IsText bool
}

// NumKey wraps a numeric value.
func NumKey(v float64) Key {
	return Key{Num: v}
}

// TextKey wraps a string value.
func TextKey(v string) Key {
	return Key{Text: v, IsText: true}
}

// Keyed is a record that exposes named sort fields.
type Keyed interface {
	SortKey(field string) (Key, bool)
}

// SortBy returns a copy of items ordered by field. Missing fields compare as 0.
// Equal keys keep their input order.
func SortBy[T Keyed](items []T, field string, dir model.Direction) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}
	keys := make([]Key, len(out))
	for i, item := range out {
		keys[i] = keyOf(item, field)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		c := compareKeys(keys[idx[a]], keys[idx[b]])
		if dir == model.Asc {
			return c < 0
		}
		return c > 0
	})
	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

func keyOf(item Keyed, field string) Key {
	key, ok := item.SortKey(field)
	if !ok {
		return NumKey(0)
	}
	return key
}

func compareKeys(a, b Key) int {
	if a.IsText && b.IsText {
		return strings.Compare(a.Text, b.Text)
	}
	switch {
	case a.Num < b.Num:
		return -1
	case a.Num > b.Num:
		return 1
	default:
		return 0
	}
}

// PlayerFields lists the sortable comparison table columns.
var PlayerFields = []string{
	"name", "team", "percentage", "fgm", "fga",
	"ftPercentage", "ftm", "fta",
	"fg3Percentage", "fg3m", "fg3a",
	"fg2Percentage", "fg2m", "fg2a",
	"careerPoints", "gamesPlayed",
}

// Player adapts model.PlayerRecord to Keyed.
type Player model.PlayerRecord

// SortKey implements Keyed.
func (p Player) SortKey(field string) (Key, bool) {
	switch field {
	case "name":
		return TextKey(p.Name), true
	case "team":
		return TextKey(p.Team), true
	case "percentage":
		return NumKey(float64(p.Percentage)), true
	case "fgm":
		return NumKey(float64(p.FGM)), true
	case "fga":
		return NumKey(float64(p.FGA)), true
	case "ftPercentage":
		return NumKey(float64(p.FTPercentage)), true
	case "ftm":
		return NumKey(float64(p.FTM)), true
	case "fta":
		return NumKey(float64(p.FTA)), true
	case "fg3Percentage":
		return NumKey(float64(p.FG3Percentage)), true
	case "fg3m":
		return NumKey(float64(p.FG3M)), true
	case "fg3a":
		return NumKey(float64(p.FG3A)), true
	case "fg2Percentage":
		return NumKey(float64(p.FG2Percentage)), true
	case "fg2m":
		return NumKey(float64(p.FG2M)), true
	case "fg2a":
		return NumKey(float64(p.FG2A)), true
	case "careerPoints":
		return NumKey(float64(p.CareerPoints)), true
	case "gamesPlayed":
		return NumKey(float64(p.GamesPlayed)), true
	default:
		return Key{}, false
	}
}

// SortPlayers orders comparison rows by field and direction.
func SortPlayers(players []model.PlayerRecord, field string, dir model.Direction) []model.PlayerRecord {
	wrapped := make([]Player, len(players))
	for i, p := range players {
		wrapped[i] = Player(p)
	}
	sorted := SortBy(wrapped, field, dir)
	out := make([]model.PlayerRecord, len(sorted))
	for i, p := range sorted {
		out[i] = model.PlayerRecord(p)
	}
	return out
}

// IndexedSession pairs a session with its position in the stored list.
type IndexedSession struct {
	Index   int
	Session model.Session
}

// SortKey implements Keyed.
func (s IndexedSession) SortKey(field string) (Key, bool) {
	switch field {
	case "date":
		return TextKey(s.Session.Date), true
	case "shotType":
		return TextKey(string(s.Session.ShotType)), true
	case "location":
		return TextKey(s.Session.Location), true
	case "shotsMade":
		return NumKey(float64(s.Session.ShotsMade)), true
	case "shotsAttempted":
		return NumKey(float64(s.Session.ShotsAttempted)), true
	case "percentage":
		return NumKey(float64(s.Session.Percentage)), true
	case "id":
		return NumKey(float64(s.Session.ID)), true
	default:
		return Key{}, false
	}
}
