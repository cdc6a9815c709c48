package water

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user-scoped store for water intake records.
type Repository interface {
	Create(ctx context.Context, w *Intake) error
	ListLatest(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Intake, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
