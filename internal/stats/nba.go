package stats

import "github.com/verte-zerg/hoopmetrics/internal/model"

// UserName and UserTeam label the user's row in the comparison table.
const (
	UserName = "YOU"
	UserTeam = "HoopMetrics All-Stars"
)

// Career totals sourced from basketball-reference.com.
var nbaPlayers = []model.PlayerRecord{
	{Name: "Zion Williamson", Team: "New Orleans Pelicans", CareerPoints: 3295, GamesPlayed: 144, FG2M: 1281, FG2A: 2041, FG3M: 23, FG3A: 74, FTM: 664, FTA: 970},
	{Name: "Nikola Jokić", Team: "Denver Nuggets", CareerPoints: 14890, GamesPlayed: 653, FG2M: 5234, FG2A: 9163, FG3M: 583, FG3A: 1679, FTM: 2673, FTA: 3236},
	{Name: "Giannis Antetokounmpo", Team: "Milwaukee Bucks", CareerPoints: 18771, GamesPlayed: 741, FG2M: 6493, FG2A: 11185, FG3M: 544, FG3A: 1754, FTM: 4152, FTA: 5863},
	{Name: "Kevin Durant", Team: "Phoenix Suns", CareerPoints: 27300, GamesPlayed: 1001, FG2M: 7195, FG2A: 13629, FG3M: 2053, FG3A: 5314, FTM: 6752, FTA: 7627},
	{Name: "LeBron James", Team: "Los Angeles Lakers", CareerPoints: 39868, GamesPlayed: 1471, FG2M: 12241, FG2A: 21879, FG3M: 2368, FG3A: 6513, FTM: 8382, FTA: 11398},
	{Name: "Joel Embiid", Team: "Philadelphia 76ers", CareerPoints: 11290, GamesPlayed: 398, FG2M: 3571, FG2A: 6843, FG3M: 418, FG3A: 1193, FTM: 3312, FTA: 3980},
	{Name: "Stephen Curry", Team: "Golden State Warriors", CareerPoints: 23152, GamesPlayed: 882, FG2M: 4587, FG2A: 8568, FG3M: 3505, FG3A: 8226, FTM: 3463, FTA: 3814},
	{Name: "Kyrie Irving", Team: "Dallas Mavericks", CareerPoints: 16066, GamesPlayed: 719, FG2M: 4531, FG2A: 8763, FG3M: 1655, FG3A: 4159, FTM: 2594, FTA: 2941},
	{Name: "Ja Morant", Team: "Memphis Grizzlies", CareerPoints: 6462, GamesPlayed: 247, FG2M: 2123, FG2A: 4180, FG3M: 275, FG3A: 813, FTM: 1391, FTA: 1859},
	{Name: "Luka Dončić", Team: "Dallas Mavericks", CareerPoints: 10519, GamesPlayed: 395, FG2M: 2853, FG2A: 5438, FG3M: 938, FG3A: 2652, FTM: 1938, FTA: 2602},
	{Name: "Devin Booker", Team: "Phoenix Suns", CareerPoints: 13815, GamesPlayed: 578, FG2M: 3743, FG2A: 7467, FG3M: 1237, FG3A: 3307, FTM: 2854, FTA: 3263},
	{Name: "Jayson Tatum", Team: "Boston Celtics", CareerPoints: 13215, GamesPlayed: 508, FG2M: 3214, FG2A: 6435, FG3M: 1337, FG3A: 3584, FTM: 2776, FTA: 3329},
	{Name: "Anthony Edwards", Team: "Minnesota Timberwolves", CareerPoints: 6147, GamesPlayed: 278, FG2M: 1546, FG2A: 3154, FG3M: 673, FG3A: 1885, FTM: 1036, FTA: 1347},
	{Name: "Damian Lillard", Team: "Milwaukee Bucks", CareerPoints: 19325, GamesPlayed: 769, FG2M: 3985, FG2A: 8259, FG3M: 2423, FG3A: 6579, FTM: 4508, FTA: 5031},
	{Name: "Trae Young", Team: "Atlanta Hawks", CareerPoints: 9461, GamesPlayed: 398, FG2M: 2081, FG2A: 4460, FG3M: 1024, FG3A: 2897, FTM: 2224, FTA: 2533},
}

// NBAPlayers returns the embedded player snapshot with derived percentages.
func NBAPlayers() []model.PlayerRecord {
	out := make([]model.PlayerRecord, len(nbaPlayers))
	for i, p := range nbaPlayers {
		out[i] = EnrichPlayer(p)
	}
	return out
}

// EnrichPlayer fills FGM/FGA and the percentage fields from raw makes and attempts.
func EnrichPlayer(p model.PlayerRecord) model.PlayerRecord {
	p.FG2M, p.FG2A = nonNegative(p.FG2M), nonNegative(p.FG2A)
	p.FG3M, p.FG3A = nonNegative(p.FG3M), nonNegative(p.FG3A)
	p.FTM, p.FTA = nonNegative(p.FTM), nonNegative(p.FTA)
	p.FGM = p.FG2M + p.FG3M
	p.FGA = p.FG2A + p.FG3A
	p.Percentage = Ratio(p.FGM, p.FGA)
	p.FG2Percentage = Ratio(p.FG2M, p.FG2A)
	p.FG3Percentage = Ratio(p.FG3M, p.FG3A)
	p.FTPercentage = Ratio(p.FTM, p.FTA)
	return p
}

// UserRecord reshapes the user's aggregate into a comparison row.
func UserRecord(agg model.AggregateStats, gamesPlayed int) model.PlayerRecord {
	return EnrichPlayer(model.PlayerRecord{
		Name:         UserName,
		Team:         UserTeam,
		CareerPoints: nonNegative(agg.TotalPoints),
		GamesPlayed:  nonNegative(gamesPlayed),
		FG2M:         agg.FG2M,
		FG2A:         agg.FG2A,
		FG3M:         agg.FG3M,
		FG3A:         agg.FG3A,
		FTM:          agg.FTM,
		FTA:          agg.FTA,
		IsUser:       true,
	})
}
