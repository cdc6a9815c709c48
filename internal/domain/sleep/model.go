package sleep

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/validation"
)

// Accepted session bounds, inclusive. Duration is capped at a full day.
const (
	MinDuration = 0
	MaxDuration = 1440
	MinQuality  = 1
	MaxQuality  = 5
)

// Session maps to the sleep_sessions table. Append-only history.
type Session struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Quality         int       `db:"quality_rating" json:"quality"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Draft carries raw form input for a sleep session.
type Draft struct {
	DurationMinutes string `json:"duration_minutes"`
	Quality         string `json:"quality"`
}

// Validate checks duration_minutes then quality and returns the first
// violation found, or the parsed record.
func (d Draft) Validate() (*Session, *validation.Violation) {
	duration, v := validation.IntInRange("duration_minutes", d.DurationMinutes, MinDuration, MaxDuration, "minutes")
	if v != nil {
		return nil, v
	}
	quality, v := validation.IntInRange("quality", d.Quality, MinQuality, MaxQuality, "")
	if v != nil {
		return nil, v
	}
	return &Session{DurationMinutes: duration, Quality: quality}, nil
}
