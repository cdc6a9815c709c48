package routine

import (
	"context"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/platform/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add validates a draft and stores it as a new routine entry.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, draft Draft) (*Routine, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	rt, violation := draft.Validate()
	if violation != nil {
		return nil, violation
	}
	rt.UserID = userID
	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// List returns the user's day plan ordered by scheduled time.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Routine, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	return s.repo.List(ctx, userID)
}

// SetCompleted marks one entry done or not done.
func (s *Service) SetCompleted(ctx context.Context, userID, id uuid.UUID, done bool) error {
	if userID == uuid.Nil {
		return store.ErrUnauthenticated
	}
	return s.repo.SetCompleted(ctx, userID, id, done)
}

// Delete permanently removes one of the user's entries.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return store.ErrUnauthenticated
	}
	return s.repo.Delete(ctx, userID, id)
}
