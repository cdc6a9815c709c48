package medication

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/validation"
)

// MinNameLength is the shortest accepted medication name.
const MinNameLength = 2

// Frequency is how often a medication is taken.
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyTwiceDaily Frequency = "twice_daily"
	FrequencyThreeTimes Frequency = "three_times_daily"
	FrequencyFourTimes  Frequency = "four_times_daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyAsNeeded   Frequency = "as_needed"
)

// Frequencies lists the accepted values in display order.
var Frequencies = []Frequency{
	FrequencyDaily,
	FrequencyTwiceDaily,
	FrequencyThreeTimes,
	FrequencyFourTimes,
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyAsNeeded,
}

func (f Frequency) Valid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// Category groups medications for filtering and catalog lookup.
type Category string

const (
	CategoryPrescription Category = "prescription"
	CategoryVitamin      Category = "vitamin"
	CategorySupplement   Category = "supplement"
	CategoryChronic      Category = "chronic"
	CategoryTemporary    Category = "temporary"
)

// Categories lists the accepted values in display order.
var Categories = []Category{
	CategoryPrescription,
	CategoryVitamin,
	CategorySupplement,
	CategoryChronic,
	CategoryTemporary,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Medication maps to the medications table.
type Medication struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	Name            string    `db:"name" json:"name"`
	Dosage          string    `db:"dosage" json:"dosage"`
	Frequency       Frequency `db:"frequency" json:"frequency"`
	TimeOfDay       string    `db:"time_of_day" json:"time_of_day"`
	Category        Category  `db:"category" json:"category"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	ReminderEnabled bool      `db:"reminder_enabled" json:"reminder_enabled"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Draft carries raw form input for a medication entry.
type Draft struct {
	Name            string `json:"name"`
	Dosage          string `json:"dosage"`
	Frequency       string `json:"frequency"`
	TimeOfDay       string `json:"time_of_day"`
	Category        string `json:"category"`
	Notes           string `json:"notes"`
	ReminderEnabled bool   `json:"reminder_enabled"`
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func frequencyNames() []string {
	names := make([]string, len(Frequencies))
	for i, f := range Frequencies {
		names[i] = string(f)
	}
	return names
}

func categoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

// Validate checks fields in order name, dosage, time_of_day, frequency,
// category and returns the first violation found, or the parsed record.
func (d Draft) Validate() (*Medication, *validation.Violation) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, validation.Required("name")
	}
	if len([]rune(name)) < MinNameLength {
		return nil, validation.TooShort("name", MinNameLength)
	}

	dosage := strings.TrimSpace(d.Dosage)
	if dosage == "" {
		return nil, validation.Required("dosage")
	}

	timeOfDay := strings.TrimSpace(d.TimeOfDay)
	if timeOfDay == "" {
		return nil, validation.Required("time_of_day")
	}
	if !timeOfDayRe.MatchString(timeOfDay) {
		return nil, validation.BadFormat("time_of_day", "HH:MM")
	}

	frequency := Frequency(strings.TrimSpace(d.Frequency))
	if frequency == "" {
		return nil, validation.Required("frequency")
	}
	if !frequency.Valid() {
		return nil, validation.InvalidEnum("frequency", frequencyNames())
	}

	category := Category(strings.TrimSpace(d.Category))
	if category == "" {
		return nil, validation.Required("category")
	}
	if !category.Valid() {
		return nil, validation.InvalidEnum("category", categoryNames())
	}

	return &Medication{
		Name:            name,
		Dosage:          dosage,
		Frequency:       frequency,
		TimeOfDay:       timeOfDay,
		Category:        category,
		Notes:           strings.TrimSpace(d.Notes),
		ReminderEnabled: d.ReminderEnabled,
	}, nil
}
