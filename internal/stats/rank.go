package stats

import "github.com/verte-zerg/hoopmetrics/internal/model"

// Comparison is the user's row merged into the NBA field with rankings.
type Comparison struct {
	User     model.PlayerRecord
	Players  []model.PlayerRecord
	Rankings model.Rankings
}

// Compare builds the combined list (user first) and ranks the user in it.
func Compare(agg model.AggregateStats, gamesPlayed int) Comparison {
	user := UserRecord(agg, gamesPlayed)
	nba := NBAPlayers()
	players := make([]model.PlayerRecord, 0, len(nba)+1)
	players = append(players, user)
	players = append(players, nba...)
	return Comparison{
		User:     user,
		Players:  players,
		Rankings: Rank(players, user),
	}
}

// Rank returns the user's position for each metric when the combined list is
// sorted descending. The user row is the first entry flagged IsUser; when none
// is flagged, user is ranked as if appended to the end of players.
//
// Category percentages the user has no attempts in rank last.
func Rank(players []model.PlayerRecord, user model.PlayerRecord) model.Rankings {
	if len(players) == 0 {
		return model.Rankings{}
	}
	field := make([]model.PlayerRecord, len(players), len(players)+1)
	copy(field, players)
	if userIndex(field) < 0 {
		user.IsUser = true
		field = append(field, user)
	}
	n := len(field)

	r := model.Rankings{
		FGPercentage: positionBy(field, "percentage"),
		CareerPoints: positionBy(field, "careerPoints"),
	}
	r.FTPercentage = categoryPosition(field, "ftPercentage", user.FTPercentage)
	r.FG3Percentage = categoryPosition(field, "fg3Percentage", user.FG3Percentage)
	r.FG2Percentage = categoryPosition(field, "fg2Percentage", user.FG2Percentage)

	if user.Percentage > 0 {
		r.Percentile = model.Percent(float64(roundedTenths(int64(n-r.FGPercentage+1), int64(n), 100)) / 10)
	}
	return r
}

func categoryPosition(field []model.PlayerRecord, metric string, value model.Percent) int {
	if value <= 0 {
		return len(field)
	}
	return positionBy(field, metric)
}

func positionBy(field []model.PlayerRecord, metric string) int {
	return userIndex(SortPlayers(field, metric, model.Desc)) + 1
}

func userIndex(players []model.PlayerRecord) int {
	for i, p := range players {
		if p.IsUser {
			return i
		}
	}
	return -1
}
