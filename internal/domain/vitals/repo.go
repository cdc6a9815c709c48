package vitals

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user-scoped store for vital-sign records. Every method
// takes the owning user id; implementations must never return another user's
// rows. Errors belong to the store taxonomy.
type Repository interface {
	Create(ctx context.Context, v *VitalSign) error
	ListLatest(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*VitalSign, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
