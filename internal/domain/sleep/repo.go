package sleep

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user-scoped store for sleep sessions.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	ListLatest(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Session, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
