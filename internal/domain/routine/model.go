package routine

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/validation"
)

// Category groups routine activities.
type Category string

const (
	CategoryExercise   Category = "exercise"
	CategoryNutrition  Category = "nutrition"
	CategoryWater      Category = "water"
	CategorySleep      Category = "sleep"
	CategoryMedication Category = "medication"
)

// Categories lists the accepted values in display order.
var Categories = []Category{
	CategoryExercise,
	CategoryNutrition,
	CategoryWater,
	CategorySleep,
	CategoryMedication,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Routine maps to the routines table. A routine is one planned daily
// activity; completion is toggled per entry, not per day.
type Routine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	TimeOfDay   string    `db:"time_of_day" json:"time_of_day"`
	Activity    string    `db:"activity" json:"activity"`
	Category    Category  `db:"category" json:"category"`
	IsCompleted bool      `db:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Draft carries raw form input for a routine entry.
type Draft struct {
	TimeOfDay string `json:"time_of_day"`
	Activity  string `json:"activity"`
	Category  string `json:"category"`
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func categoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

// Validate checks fields in order time_of_day, activity, category and
// returns the first violation found, or the parsed record. Free-text
// activities outside the built-in catalog are accepted.
func (d Draft) Validate() (*Routine, *validation.Violation) {
	timeOfDay := strings.TrimSpace(d.TimeOfDay)
	if timeOfDay == "" {
		return nil, validation.Required("time_of_day")
	}
	if !timeOfDayRe.MatchString(timeOfDay) {
		return nil, validation.BadFormat("time_of_day", "HH:MM")
	}

	activity := strings.TrimSpace(d.Activity)
	if activity == "" {
		return nil, validation.Required("activity")
	}

	category := Category(strings.TrimSpace(d.Category))
	if category == "" {
		return nil, validation.Required("category")
	}
	if !category.Valid() {
		return nil, validation.InvalidEnum("category", categoryNames())
	}

	return &Routine{
		TimeOfDay: timeOfDay,
		Activity:  activity,
		Category:  category,
	}, nil
}
