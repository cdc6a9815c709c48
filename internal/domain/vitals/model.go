package vitals

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/validation"
)

// Accepted measurement bounds, inclusive. These are data-sanity limits, not
// clinical normals; see Classify for the display bands.
const (
	MinSystolic  = 70
	MaxSystolic  = 200
	MinDiastolic = 40
	MaxDiastolic = 130
	MinHeartRate = 40
	MaxHeartRate = 200
	MinOxygen    = 80
	MaxOxygen    = 100
)

// VitalSign maps to the vital_signs table. Records are append-only history:
// each submission is a new row and rows are never edited in place.
type VitalSign struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Systolic    int       `db:"systolic" json:"systolic"`
	Diastolic   int       `db:"diastolic" json:"diastolic"`
	HeartRate   int       `db:"heart_rate" json:"heart_rate"`
	OxygenLevel int       `db:"oxygen_level" json:"oxygen_level"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Draft carries raw form input for a vital-sign measurement.
type Draft struct {
	Systolic    string `json:"systolic"`
	Diastolic   string `json:"diastolic"`
	HeartRate   string `json:"heart_rate"`
	OxygenLevel string `json:"oxygen_level"`
}

// Validate checks fields in order systolic, diastolic, heart_rate,
// oxygen_level and returns the first violation found, or the parsed record.
func (d Draft) Validate() (*VitalSign, *validation.Violation) {
	systolic, v := validation.IntInRange("systolic", d.Systolic, MinSystolic, MaxSystolic, "mmHg")
	if v != nil {
		return nil, v
	}
	diastolic, v := validation.IntInRange("diastolic", d.Diastolic, MinDiastolic, MaxDiastolic, "mmHg")
	if v != nil {
		return nil, v
	}
	heartRate, v := validation.IntInRange("heart_rate", d.HeartRate, MinHeartRate, MaxHeartRate, "bpm")
	if v != nil {
		return nil, v
	}
	oxygen, v := validation.IntInRange("oxygen_level", d.OxygenLevel, MinOxygen, MaxOxygen, "%")
	if v != nil {
		return nil, v
	}

	return &VitalSign{
		Systolic:    systolic,
		Diastolic:   diastolic,
		HeartRate:   heartRate,
		OxygenLevel: oxygen,
	}, nil
}
