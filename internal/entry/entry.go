// Package entry validates raw form input and turns it into sessions.
package entry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/hoopmetrics/internal/model"
	"github.com/verte-zerg/hoopmetrics/internal/stats"
)

// DateLayout is the ISO calendar date used for session dates.
const DateLayout = "2006-01-02"

// Validation errors returned by Parse.
var (
	ErrMissingShots         = errors.New("shots made and attempted are required")
	ErrInvalidNumber        = errors.New("shots must be whole non-negative numbers")
	ErrNoAttempts           = errors.New("shots attempted must be at least 1")
	ErrMadeExceedsAttempted = errors.New("shots made cannot exceed shots attempted")
	ErrInvalidShotType      = errors.New("invalid shot type")
	ErrInvalidDate          = errors.New("invalid date")
)

// Input holds the unvalidated fields of the entry form.
type Input struct {
	Date           string
	ShotsMade      string
	ShotsAttempted string
	ShotType       string
	Location       string
	Notes          string
}

// IDSource hands out millisecond ids that never repeat within a process.
type IDSource struct {
	last int64
}

// Next returns now in Unix milliseconds, bumped past the previous id if needed.
func (s *IDSource) Next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe records an existing id so later ids sort after it.
func (s *IDSource) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// Parse validates in and builds a session. An empty date defaults to now's
// calendar day and an empty shot type defaults to 2pt.
func Parse(in Input, now time.Time) (model.Session, error) {
	var ids IDSource
	return ParseWith(in, now, &ids)
}

// ParseWith is Parse with an explicit id source.
func ParseWith(in Input, now time.Time, ids *IDSource) (model.Session, error) {
	madeRaw := strings.TrimSpace(in.ShotsMade)
	attRaw := strings.TrimSpace(in.ShotsAttempted)
	if madeRaw == "" || attRaw == "" {
		return model.Session{}, ErrMissingShots
	}
	made, err := parseCount(madeRaw)
	if err != nil {
		return model.Session{}, fmt.Errorf("shots made: %w", err)
	}
	attempted, err := parseCount(attRaw)
	if err != nil {
		return model.Session{}, fmt.Errorf("shots attempted: %w", err)
	}
	if attempted < 1 {
		return model.Session{}, ErrNoAttempts
	}
	if made > attempted {
		return model.Session{}, fmt.Errorf("%w (%d > %d)", ErrMadeExceedsAttempted, made, attempted)
	}

	shotType := model.ShotTwo
	if raw := strings.TrimSpace(in.ShotType); raw != "" {
		st, err := model.ParseShotType(raw)
		if err != nil {
			return model.Session{}, fmt.Errorf("%w: %v", ErrInvalidShotType, err)
		}
		shotType = st
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return model.Session{}, fmt.Errorf("%w %q (want YYYY-MM-DD)", ErrInvalidDate, date)
	}

	return model.Session{
		ID:             ids.Next(now),
		Date:           date,
		ShotsMade:      made,
		ShotsAttempted: attempted,
		ShotType:       shotType,
		Location:       strings.TrimSpace(in.Location),
		Notes:          strings.TrimSpace(in.Notes),
		Percentage:     stats.Ratio(made, attempted),
	}, nil
}

func parseCount(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return v, nil
}
