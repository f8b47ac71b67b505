package stats

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/hoopmetrics/internal/model"
)

func session(st model.ShotType, made, attempted int) model.Session {
	return model.Session{
		ShotType:       st,
		ShotsMade:      made,
		ShotsAttempted: attempted,
		Date:           "2025-01-01",
		Percentage:     Ratio(made, attempted),
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if !reflect.DeepEqual(got, model.AggregateStats{}) {
		t.Fatalf("expected zero stats, got %+v", got)
	}
}

func TestAggregateSingleTwoPointSession(t *testing.T) {
	got := Aggregate([]model.Session{session(model.ShotTwo, 5, 10)})
	if got.FGM != 5 || got.FGA != 10 {
		t.Fatalf("unexpected fgm/fga %d/%d", got.FGM, got.FGA)
	}
	if got.Percentage != 50.0 || got.FG2Percentage != 50.0 {
		t.Fatalf("unexpected percentages %v %v", got.Percentage, got.FG2Percentage)
	}
	if got.FG3Percentage != 0 || got.FTPercentage != 0 {
		t.Fatalf("expected zero 3P%%/FT%%, got %v %v", got.FG3Percentage, got.FTPercentage)
	}
	if got.TotalPoints != 10 {
		t.Fatalf("expected 10 points, got %d", got.TotalPoints)
	}
}

func TestAggregateExcludesFreeThrowsFromFieldGoals(t *testing.T) {
	got := Aggregate([]model.Session{
		session(model.ShotTwo, 5, 10),
		session(model.ShotFree, 3, 4),
	})
	if got.TotalPoints != 13 {
		t.Fatalf("expected 13 points, got %d", got.TotalPoints)
	}
	if got.FGM != 5 || got.FGA != 10 || got.FTM != 3 || got.FTA != 4 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if got.Percentage != 50.0 || got.FTPercentage != 75.0 {
		t.Fatalf("unexpected percentages %v %v", got.Percentage, got.FTPercentage)
	}
	if got.ShotsMade != 8 || got.ShotsAttempted != 14 {
		t.Fatalf("unexpected overall totals %d/%d", got.ShotsMade, got.ShotsAttempted)
	}
}

func TestAggregateThreePointers(t *testing.T) {
	got := Aggregate([]model.Session{
		session(model.ShotThree, 2, 3),
		session(model.ShotTwo, 1, 3),
	})
	if got.TotalPoints != 8 {
		t.Fatalf("expected 8 points, got %d", got.TotalPoints)
	}
	if got.FG3Percentage != 66.7 {
		t.Fatalf("expected 66.7, got %v", got.FG3Percentage)
	}
	if got.FG2Percentage != 33.3 {
		t.Fatalf("expected 33.3, got %v", got.FG2Percentage)
	}
	if got.Percentage != 50.0 {
		t.Fatalf("expected 50.0, got %v", got.Percentage)
	}
}

func TestAggregateFieldGoalIdentityAndIdempotence(t *testing.T) {
	sessions := []model.Session{
		session(model.ShotTwo, 7, 9),
		session(model.ShotThree, 4, 11),
		session(model.ShotFree, 9, 10),
		session(model.ShotThree, 0, 5),
		session(model.ShotTwo, 12, 20),
	}
	first := Aggregate(sessions)
	if first.FGM != first.FG2M+first.FG3M || first.FGA != first.FG2A+first.FG3A {
		t.Fatalf("field goal identity broken: %+v", first)
	}
	for _, p := range []model.Percent{first.Percentage, first.FG2Percentage, first.FG3Percentage, first.FTPercentage} {
		if p < 0 || p > 100 {
			t.Fatalf("percentage out of range: %v", p)
		}
		if float64(p) != Round1(float64(p)) {
			t.Fatalf("percentage not rounded to one decimal: %v", p)
		}
	}
	if second := Aggregate(sessions); !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregate not idempotent: %+v vs %+v", first, second)
	}
}

func TestAggregateCoercesNegativeCounts(t *testing.T) {
	got := Aggregate([]model.Session{{ShotType: model.ShotTwo, ShotsMade: -3, ShotsAttempted: -1}})
	if got.FGM != 0 || got.FGA != 0 || got.Percentage != 0 {
		t.Fatalf("expected zeroed counts, got %+v", got)
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		6.25:   6.3,
		-6.25:  -6.3,
		66.666: 66.7,
		50:     50,
		0.04:   0,
	}
	for in, want := range cases {
		if got := Round1(in); got != want {
			t.Fatalf("Round1(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestRatioRoundsExactHalvesUp(t *testing.T) {
	cases := []struct {
		made, attempted int
		want            model.Percent
	}{
		{23, 80, 28.8},
		{41, 80, 51.3},
		{3, 2000, 0.2},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 16, 6.3},
		{7, 10, 70.0},
		{0, 9, 0},
		{9, 9, 100},
	}
	for _, tc := range cases {
		if got := Ratio(tc.made, tc.attempted); got != tc.want {
			t.Fatalf("Ratio(%d, %d) = %v, want %v", tc.made, tc.attempted, got, tc.want)
		}
	}
}

func TestAvgPointsPerSessionRoundsHalfUp(t *testing.T) {
	// 0.05 is not exact in binary; 1/20 must still round to 0.1.
	if got := AvgPointsPerSession(model.AggregateStats{TotalPoints: 1}, 20); got != 0.1 {
		t.Fatalf("expected 0.1, got %v", got)
	}
	if got := AvgPointsPerSession(model.AggregateStats{TotalPoints: 13}, 2); got != 6.5 {
		t.Fatalf("expected 6.5, got %v", got)
	}
}

func TestRatioZeroAttempts(t *testing.T) {
	if got := Ratio(3, 0); got != 0 {
		t.Fatalf("expected 0 for zero attempts, got %v", got)
	}
}

func TestAvgPointsPerSession(t *testing.T) {
	agg := model.AggregateStats{TotalPoints: 13}
	if got := AvgPointsPerSession(agg, 2); got != 6.5 {
		t.Fatalf("expected 6.5, got %v", got)
	}
	if got := AvgPointsPerSession(agg, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestSparklineScale(t *testing.T) {
	got := Sparkline([]float64{0, 50, 100})
	if len(got) != 3 {
		t.Fatalf("expected 3 chars, got %q", got)
	}
	if got[0] != sparkChars[0] || got[2] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("unexpected sparkline %q", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{10, 20, 30, 40}, 2)
	want := []float64{10, 15, 25, 35}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
