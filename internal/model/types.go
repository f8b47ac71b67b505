// Package model defines shared data structures.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ShotType identifies the category of a logged shot.
type ShotType string

// Shot types accepted by the tracker.
const (
	ShotTwo   ShotType = "2pt"
	ShotThree ShotType = "3pt"
	ShotFree  ShotType = "ft"
)

// ShotTypes lists every valid shot type in display order.
var ShotTypes = []ShotType{ShotTwo, ShotThree, ShotFree}

// ParseShotType validates a raw shot type code.
func ParseShotType(raw string) (ShotType, error) {
	switch st := ShotType(strings.ToLower(strings.TrimSpace(raw))); st {
	case ShotTwo, ShotThree, ShotFree:
		return st, nil
	default:
		return "", fmt.Errorf("unknown shot type %q (use 2pt, 3pt or ft)", raw)
	}
}

// Label returns the human-readable shot type.
func (s ShotType) Label() string {
	switch s {
	case ShotTwo:
		return "2-Point"
	case ShotThree:
		return "3-Point"
	case ShotFree:
		return "Free Throw"
	default:
		return string(s)
	}
}

// PointsPerShot returns the value of a single make.
func (s ShotType) PointsPerShot() int {
	switch s {
	case ShotThree:
		return 3
	case ShotTwo:
		return 2
	default:
		return 1
	}
}

// IsFieldGoal reports whether the shot counts toward FGM/FGA.
func (s ShotType) IsFieldGoal() bool {
	return s == ShotTwo || s == ShotThree
}

// Percent is a percentage kept at one decimal place.
// It encodes as a JSON number with exactly one decimal ("50.0") and decodes
// either numbers or quoted strings.
type Percent float64

// String formats the value with one decimal.
func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', 1, 64)
}

// MarshalJSON implements json.Marshaler.
func (p Percent) MarshalJSON() ([]byte, error) {
	v := float64(p)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return []byte(strconv.FormatFloat(v, 'f', 1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Percent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		data = []byte(s)
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid percentage %q: %w", string(data), err)
	}
	*p = Percent(v)
	return nil
}

// MarshalYAML keeps the one-decimal form in YAML exports.
func (p Percent) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Session is one logged shooting session.
type Session struct {
	ID             int64    `json:"id" yaml:"id"`
	Date           string   `json:"date" yaml:"date"`
	ShotsMade      int      `json:"shotsMade" yaml:"shotsMade"`
	ShotsAttempted int      `json:"shotsAttempted" yaml:"shotsAttempted"`
	ShotType       ShotType `json:"shotType" yaml:"shotType"`
	Location       string   `json:"location" yaml:"location"`
	Notes          string   `json:"notes" yaml:"notes"`
	Percentage     Percent  `json:"percentage" yaml:"percentage"`
}

// AggregateStats holds cumulative shooting totals across sessions.
type AggregateStats struct {
	ShotsMade      int `json:"shotsMade"`
	ShotsAttempted int `json:"shotsAttempted"`
	TotalPoints    int `json:"totalPoints"`

	FGM  int `json:"fgm"`
	FGA  int `json:"fga"`
	FG2M int `json:"fg2m"`
	FG2A int `json:"fg2a"`
	FG3M int `json:"fg3m"`
	FG3A int `json:"fg3a"`
	FTM  int `json:"ftm"`
	FTA  int `json:"fta"`

	// Percentage is the field goal percentage (free throws excluded).
	Percentage    Percent `json:"percentage"`
	FG2Percentage Percent `json:"fg2Percentage"`
	FG3Percentage Percent `json:"fg3Percentage"`
	FTPercentage  Percent `json:"ftPercentage"`
}

// PlayerRecord is a row of the comparison table, either an NBA player or the user.
type PlayerRecord struct {
	Name         string `json:"name"`
	Team         string `json:"team"`
	CareerPoints int    `json:"careerPoints"`
	GamesPlayed  int    `json:"gamesPlayed"`

	FG2M int `json:"fg2m"`
	FG2A int `json:"fg2a"`
	FG3M int `json:"fg3m"`
	FG3A int `json:"fg3a"`
	FTM  int `json:"ftm"`
	FTA  int `json:"fta"`
	FGM  int `json:"fgm"`
	FGA  int `json:"fga"`

	Percentage    Percent `json:"percentage"`
	FG2Percentage Percent `json:"fg2Percentage"`
	FG3Percentage Percent `json:"fg3Percentage"`
	FTPercentage  Percent `json:"ftPercentage"`

	IsUser bool `json:"-"`
}

// Rankings holds the user's 1-based position for each ranked metric.
type Rankings struct {
	FGPercentage  int     `json:"fgPercentage"`
	FTPercentage  int     `json:"ftPercentage"`
	FG3Percentage int     `json:"fg3Percentage"`
	FG2Percentage int     `json:"fg2Percentage"`
	CareerPoints  int     `json:"careerPoints"`
	Percentile    Percent `json:"percentile"`
}

// Direction is a sort direction.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection validates a raw sort direction.
func ParseDirection(raw string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(raw))); d {
	case Asc, Desc:
		return d, nil
	default:
		return "", fmt.Errorf("unknown sort order %q (use asc or desc)", raw)
	}
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// DashboardConfig defines options for the interactive dashboard and reports.
type DashboardConfig struct {
	Recent       int
	PageSize     int
	SortField    string
	SortOrder    Direction
	CompareDelay int
	DefaultType  ShotType
}
