// Package generator builds randomized demo shooting sessions.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/hoopmetrics/internal/entry"
	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/stats"
)

// Generator produces plausible sessions for seeding a fresh database.
type Generator struct {
	rnd *rand.Rand
	ids entry.IDSource
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

type profile struct {
	shotType model.ShotType
	weight   float64
	minAtt   int
	maxAtt   int
	minPct   float64
	maxPct   float64
}

var profiles = []profile{
	{shotType: model.ShotTwo, weight: 0.45, minAtt: 10, maxAtt: 60, minPct: 0.38, maxPct: 0.62},
	{shotType: model.ShotThree, weight: 0.35, minAtt: 10, maxAtt: 50, minPct: 0.22, maxPct: 0.45},
	{shotType: model.ShotFree, weight: 0.20, minAtt: 10, maxAtt: 40, minPct: 0.55, maxPct: 0.90},
}

var locations = []string{"Home Court", "Rec Center", "Downtown Gym", "Park", "School Gym"}

var notes = []string{"", "", "Felt good", "Tired legs", "Worked on form", "Game speed reps", "Quick release"}

// Generate returns count sessions, one per day, ending on the day of end.
// Sessions are in creation order (oldest first).
func (g *Generator) Generate(count int, end time.Time) []model.Session {
	if count <= 0 {
		return nil
	}
	result := make([]model.Session, 0, count)
	start := end.AddDate(0, 0, -(count - 1))
	for i := 0; i < count; i++ {
		day := start.AddDate(0, 0, i)
		p := g.pickProfile()
		attempted := p.minAtt + g.rnd.Intn(p.maxAtt-p.minAtt+1)
		rate := p.minPct + g.rnd.Float64()*(p.maxPct-p.minPct)
		made := int(float64(attempted)*rate + 0.5)
		if made > attempted {
			made = attempted
		}
		result = append(result, model.Session{
			ID:             g.ids.Next(end),
			Date:           day.Format(entry.DateLayout),
			ShotsMade:      made,
			ShotsAttempted: attempted,
			ShotType:       p.shotType,
			Location:       locations[g.rnd.Intn(len(locations))],
			Notes:          notes[g.rnd.Intn(len(notes))],
			Percentage:     stats.Ratio(made, attempted),
		})
	}
	return result
}

// Observe makes later ids sort after id.
func (g *Generator) Observe(id int64) {
	g.ids.Observe(id)
}

func (g *Generator) pickProfile() profile {
	total := 0.0
	for _, p := range profiles {
		total += p.weight
	}
	r := g.rnd.Float64() * total
	acc := 0.0
	for _, p := range profiles {
		acc += p.weight
		if r <= acc {
			return p
		}
	}
	return profiles[len(profiles)-1]
}
