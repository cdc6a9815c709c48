package routine

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user-scoped store for routine entries.
type Repository interface {
	Create(ctx context.Context, r *Routine) error
	List(ctx context.Context, userID uuid.UUID) ([]*Routine, error)
	SetCompleted(ctx context.Context, userID, id uuid.UUID, done bool) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
