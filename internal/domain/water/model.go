package water

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/validation"
)

// Accepted intake bounds in milliliters, inclusive.
const (
	MinAmountML = 0
	MaxAmountML = 5000
)

// Intake maps to the water_intake table. Append-only history.
type Intake struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	AmountML  int       `db:"amount_ml" json:"amount_ml"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Draft carries raw form input for a water intake entry.
type Draft struct {
	AmountML string `json:"amount_ml"`
}

// Validate returns the parsed record or the violation for amount_ml.
func (d Draft) Validate() (*Intake, *validation.Violation) {
	amount, v := validation.IntInRange("amount_ml", d.AmountML, MinAmountML, MaxAmountML, "ml")
	if v != nil {
		return nil, v
	}
	return &Intake{AmountML: amount}, nil
}
