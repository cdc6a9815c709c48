package vitals

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

// Record validates a draft and appends it as a new measurement for the user.
// It fails with store.ErrUnauthenticated before touching the repository when
// no user identity is resolved.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, draft Draft) (*VitalSign, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	v, violation := draft.Validate()
	if violation != nil {
		return nil, violation
	}
	v.UserID = userID
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Latest returns the most recent measurement, or nil when the user has no
// history yet.
func (s *Service) Latest(ctx context.Context, userID uuid.UUID) (*VitalSign, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	items, _, err := s.repo.ListLatest(ctx, userID, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// History lists measurements most-recent-first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*VitalSign, int, error) {
	if userID == uuid.Nil {
		return nil, 0, store.ErrUnauthenticated
	}
	return s.repo.ListLatest(ctx, userID, limit, offset)
}

// Delete permanently removes one of the user's measurements.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return store.ErrUnauthenticated
	}
	return s.repo.Delete(ctx, userID, id)
}
