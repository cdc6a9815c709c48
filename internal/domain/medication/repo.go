package medication

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user-scoped store for medication entries.
type Repository interface {
	Create(ctx context.Context, m *Medication) error
	List(ctx context.Context, userID uuid.UUID) ([]*Medication, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CatalogRepository reads the shared medication reference data.
type CatalogRepository interface {
	List(ctx context.Context) ([]*CatalogOption, error)
}
