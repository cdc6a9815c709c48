package sleep

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/platform/store"
)

type mockRepo struct {
	records map[uuid.UUID]*Session
	clock   time.Time
	fail    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Session), clock: time.Now()}
}

func (m *mockRepo) Create(_ context.Context, s *Session) error {
	if m.fail != nil {
		return m.fail
	}
	s.ID = uuid.New()
	m.clock = m.clock.Add(time.Second)
	s.CreatedAt = m.clock
	stored := *s
	m.records[s.ID] = &stored
	return nil
}

func (m *mockRepo) ListLatest(_ context.Context, userID uuid.UUID, limit, offset int) ([]*Session, int, error) {
	if m.fail != nil {
		return nil, 0, m.fail
	}
	var all []*Session
	for _, s := range m.records {
		if s.UserID == userID {
			all = append(all, s)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *mockRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	if m.fail != nil {
		return m.fail
	}
	s, ok := m.records[id]
	if !ok || s.UserID != userID {
		return store.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func TestRecord_RoundTrip(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()

	created, err := svc.Record(context.Background(), userID, Draft{DurationMinutes: "450", Quality: "4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, err := svc.Latest(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest == nil || latest.DurationMinutes != 450 || latest.Quality != 4 {
		t.Fatalf("latest does not match submitted draft: %+v", latest)
	}
	if latest.ID != created.ID {
		t.Error("expected latest to be the created record")
	}
}

func TestRecord_RejectionSkipsStore(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), uuid.New(), Draft{DurationMinutes: "480", Quality: "6"})
	if err == nil {
		t.Fatal("expected validation rejection")
	}
	if len(repo.records) != 0 {
		t.Error("rejected draft must not reach the store")
	}
}

func TestRecord_Unauthenticated(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.Record(context.Background(), uuid.Nil, Draft{DurationMinutes: "480", Quality: "3"})
	if !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestLatest_MostRecentFirst(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()
	drafts := []Draft{
		{DurationMinutes: "400", Quality: "2"},
		{DurationMinutes: "510", Quality: "5"},
	}
	for _, d := range drafts {
		if _, err := svc.Record(context.Background(), userID, d); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := svc.Latest(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if latest.DurationMinutes != 510 {
		t.Errorf("expected most recent session, got %d minutes", latest.DurationMinutes)
	}
}

func TestLatest_EmptyHistory(t *testing.T) {
	svc := NewService(newMockRepo())
	latest, err := svc.Latest(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != nil {
		t.Errorf("expected nil for empty history, got %+v", latest)
	}
}

func TestDelete_OtherUsersRecord(t *testing.T) {
	svc := NewService(newMockRepo())
	owner := uuid.New()
	created, err := svc.Record(context.Background(), owner, Draft{DurationMinutes: "480", Quality: "3"})
	if err != nil {
		t.Fatal(err)
	}

	err = svc.Delete(context.Background(), uuid.New(), created.ID)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign record, got %v", err)
	}
}
