package routine

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/platform/store"
)

type mockRepo struct {
	records map[uuid.UUID]*Routine
	fail    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Routine)}
}

func (m *mockRepo) Create(_ context.Context, rt *Routine) error {
	if m.fail != nil {
		return m.fail
	}
	rt.ID = uuid.New()
	stored := *rt
	m.records[rt.ID] = &stored
	return nil
}

func (m *mockRepo) List(_ context.Context, userID uuid.UUID) ([]*Routine, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var items []*Routine
	for _, rt := range m.records {
		if rt.UserID == userID {
			copied := *rt
			items = append(items, &copied)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TimeOfDay < items[j].TimeOfDay })
	return items, nil
}

func (m *mockRepo) SetCompleted(_ context.Context, userID, id uuid.UUID, done bool) error {
	if m.fail != nil {
		return m.fail
	}
	rt, ok := m.records[id]
	if !ok || rt.UserID != userID {
		return store.ErrNotFound
	}
	rt.IsCompleted = done
	return nil
}

func (m *mockRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	if m.fail != nil {
		return m.fail
	}
	rt, ok := m.records[id]
	if !ok || rt.UserID != userID {
		return store.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func TestAdd_RoundTrip(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()

	created, err := svc.Add(context.Background(), userID, validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Errorf("expected the created entry, got %+v", items)
	}
}

func TestList_OrderedByTimeOfDay(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()
	for _, tod := range []string{"22:00", "07:30", "12:00"} {
		d := validDraft()
		d.TimeOfDay = tod
		if _, err := svc.Add(context.Background(), userID, d); err != nil {
			t.Fatal(err)
		}
	}

	items, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"07:30", "12:00", "22:00"}
	for i, tod := range want {
		if items[i].TimeOfDay != tod {
			t.Fatalf("expected day-plan order %v, got %s at %d", want, items[i].TimeOfDay, i)
		}
	}
}

func TestSetCompleted_RoundTrip(t *testing.T) {
	svc := NewService(newMockRepo())
	userID := uuid.New()
	created, err := svc.Add(context.Background(), userID, validDraft())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SetCompleted(context.Background(), userID, created.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if !items[0].IsCompleted {
		t.Error("expected entry marked completed")
	}

	if err := svc.SetCompleted(context.Background(), userID, created.ID, false); err != nil {
		t.Fatal(err)
	}
	items, _ = svc.List(context.Background(), userID)
	if items[0].IsCompleted {
		t.Error("expected completion toggled back off")
	}
}

func TestSetCompleted_ForeignRecord(t *testing.T) {
	svc := NewService(newMockRepo())
	created, err := svc.Add(context.Background(), uuid.New(), validDraft())
	if err != nil {
		t.Fatal(err)
	}

	err = svc.SetCompleted(context.Background(), uuid.New(), created.ID, true)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign record, got %v", err)
	}
}

func TestAdd_Unauthenticated(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	_, err := svc.Add(context.Background(), uuid.Nil, validDraft())
	if !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("unauthenticated call must not reach the store")
	}
}
