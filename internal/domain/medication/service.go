package medication

import (
	"context"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/platform/store"
)

type Service struct {
	repo    Repository
	catalog CatalogRepository
}

func NewService(repo Repository, catalog CatalogRepository) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Add validates a draft and stores it as a new medication entry.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, draft Draft) (*Medication, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	m, violation := draft.Validate()
	if violation != nil {
		return nil, violation
	}
	m.UserID = userID
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns the user's medications ordered by intake time.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Medication, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	return s.repo.List(ctx, userID)
}

// Delete permanently removes one of the user's entries.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return store.ErrUnauthenticated
	}
	return s.repo.Delete(ctx, userID, id)
}

// CatalogOptions returns the reference catalog, optionally filtered by
// category. The catalog is shared data, so no user scoping applies beyond
// requiring a session.
func (s *Service) CatalogOptions(ctx context.Context, userID uuid.UUID, category Category) ([]*CatalogOption, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	options, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return options, nil
	}
	return FilterOptions(options, category), nil
}
