package sleep

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

// Record validates a draft and appends it as a new session.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, draft Draft) (*Session, error) {
	if userID == uuid.Nil {
		return nil, store.ErrUnauthenticated
	}
	sess, violation := draft.Validate()
	if violation != nil {
		return nil, violation
	}
	sess.UserID = userID
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Latest returns the most recent session, or nil when there is no history.
func (s *Service) Latest(ctx context.Context, userID uuid.UUID) (*Session, error) {
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

// History lists sessions most-recent-first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Session, int, error) {
	if userID == uuid.Nil {
		return nil, 0, store.ErrUnauthenticated
	}
	return s.repo.ListLatest(ctx, userID, limit, offset)
}

// Delete permanently removes one of the user's sessions.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return store.ErrUnauthenticated
	}
	return s.repo.Delete(ctx, userID, id)
}
