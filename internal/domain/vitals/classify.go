package vitals

// Clinical-normal display bands. Independent of the validation bounds: a
// measurement can be accepted for storage yet still flagged for attention.
const (
	normalSystolicLow   = 90
	normalSystolicHigh  = 140
	normalDiastolicLow  = 60
	normalDiastolicHigh = 90
	normalHeartRateLow  = 60
	normalHeartRateHigh = 100
	normalOxygenLow     = 95
)

// Flags marks which stored measurements fall outside their clinical-normal
// band. A true flag means "needs attention". Flags are recomputed on every
// read and never persisted.
type Flags struct {
	BloodPressure bool `json:"blood_pressure"`
	HeartRate     bool `json:"heart_rate"`
	Oxygen        bool `json:"oxygen"`
}

// Classify computes attention flags for a stored measurement.
func Classify(v *VitalSign) Flags {
	return Flags{
		BloodPressure: v.Systolic < normalSystolicLow || v.Systolic > normalSystolicHigh ||
			v.Diastolic < normalDiastolicLow || v.Diastolic > normalDiastolicHigh,
		HeartRate: v.HeartRate < normalHeartRateLow || v.HeartRate > normalHeartRateHigh,
		Oxygen:    v.OxygenLevel < normalOxygenLow,
	}
}
