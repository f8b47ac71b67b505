// Package stats contains shooting statistics calculations and reporting.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/hoopmetrics/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

// Ratio returns made/attempted as a one-decimal percentage, or 0 without attempts.
func Ratio(made, attempted int) model.Percent {
	if attempted <= 0 {
		return 0
	}
	return model.Percent(float64(roundedTenths(int64(made), int64(attempted), 100)) / 10)
}

// roundedTenths returns num/den*scale in tenths, rounded half away from zero.
// Integer arithmetic keeps exact halves such as 23/80 = 28.75 from drifting.
func roundedTenths(num, den, scale int64) int64 {
	n := num * scale * 10
	neg := n < 0
	if neg {
		n = -n
	}
	q := (2*n + den) / (2 * den)
	if neg {
		return -q
	}
	return q
}

// Aggregate folds sessions into cumulative shooting stats.
func Aggregate(sessions []model.Session) model.AggregateStats {
	var agg model.AggregateStats
	for _, s := range sessions {
		made := nonNegative(s.ShotsMade)
		attempted := nonNegative(s.ShotsAttempted)
		agg.ShotsMade += made
		agg.ShotsAttempted += attempted

		switch s.ShotType {
		case model.ShotTwo:
			agg.FG2M += made
			agg.FG2A += attempted
		case model.ShotThree:
			agg.FG3M += made
			agg.FG3A += attempted
		case model.ShotFree:
			agg.FTM += made
			agg.FTA += attempted
		default:
			// Unknown types only count toward the overall totals.
			continue
		}
		if s.ShotType.IsFieldGoal() {
			agg.FGM += made
			agg.FGA += attempted
		}
		agg.TotalPoints += made * s.ShotType.PointsPerShot()
	}
	agg.Percentage = Ratio(agg.FGM, agg.FGA)
	agg.FG2Percentage = Ratio(agg.FG2M, agg.FG2A)
	agg.FG3Percentage = Ratio(agg.FG3M, agg.FG3A)
	agg.FTPercentage = Ratio(agg.FTM, agg.FTA)
	return agg
}

// AvgPointsPerSession returns total points divided by session count, one decimal.
func AvgPointsPerSession(agg model.AggregateStats, sessions int) float64 {
	if sessions <= 0 {
		return 0
	}
	return float64(roundedTenths(int64(agg.TotalPoints), int64(sessions), 1)) / 10
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline scaled to 0-100.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		pos := v / 100
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
