package controller

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/routine"
	"github.com/wellness/wellness/internal/platform/store"
)

// RoutineStore is the slice of the routine service the page needs.
type RoutineStore interface {
	Add(ctx context.Context, userID uuid.UUID, draft routine.Draft) (*routine.Routine, error)
	List(ctx context.Context, userID uuid.UUID) ([]*routine.Routine, error)
	SetCompleted(ctx context.Context, userID, id uuid.UUID, done bool) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Routines drives the daily-routine page.
type Routines struct {
	page
	gate  SessionGate
	store RoutineStore

	entries []*routine.Routine

	// Draft survives a rejected submit so the user can correct input.
	Draft routine.Draft
}

func NewRoutines(gate SessionGate, store RoutineStore) *Routines {
	return &Routines{gate: gate, store: store}
}

// Entries returns the last loaded day plan.
func (r *Routines) Entries() []*routine.Routine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries
}

// Activities returns the built-in suggestions for the draft's category.
func (r *Routines) Activities() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return routine.ActivitiesFor(routine.Category(r.Draft.Category))
}

// SetCategory switches the draft's category and resets the activity, which
// belonged to the previous category's suggestion list.
func (r *Routines) SetCategory(category routine.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Draft.Category == string(category) {
		return
	}
	r.Draft.Category = string(category)
	r.Draft.Activity = ""
}

// Reset returns the page to Idle and drops any in-flight load result.
func (r *Routines) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
	r.entries = nil
	r.Draft = routine.Draft{}
}

// Load fetches the user's day plan.
func (r *Routines) Load(ctx context.Context) error {
	epoch := r.beginLoad()
	entries, err := r.store.List(ctx, r.gate.UserID())

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stale(epoch) {
		return ErrStaleLoad
	}
	if err != nil {
		r.state = StateLoadFailed
		r.err = err
		return err
	}
	r.entries = entries
	r.state = StateReady
	return nil
}

func (r *Routines) beginMutation() (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateSubmitting {
		return 0, ErrSubmitInFlight
	}
	r.state = StateSubmitting
	return r.epoch, nil
}

// finishMutation records the mutation outcome. A NotFound means the entry
// vanished underneath the page, so the day plan is refetched anyway to
// reconcile the stale view.
func (r *Routines) finishMutation(ctx context.Context, epoch uint64, err error) error {
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.stale(epoch) {
			return ErrStaleLoad
		}
		r.state = StateReady
		r.err = err
		return err
	}

	entries, listErr := r.store.List(ctx, r.gate.UserID())

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stale(epoch) {
		return ErrStaleLoad
	}
	r.state = StateReady
	if listErr != nil {
		r.err = listErr
		return listErr
	}
	r.entries = entries
	r.err = err
	return err
}

// Submit validates and stores the draft, then refetches the day plan. A
// rejected draft never enters Submitting; the draft is kept on failure and
// cleared on success.
func (r *Routines) Submit(ctx context.Context) error {
	r.mu.Lock()
	draft := r.Draft
	r.mu.Unlock()

	if _, v := draft.Validate(); v != nil {
		r.mu.Lock()
		r.err = v
		r.mu.Unlock()
		return v
	}

	epoch, err := r.beginMutation()
	if err != nil {
		return err
	}

	_, err = r.store.Add(ctx, r.gate.UserID(), draft)
	if err == nil {
		r.mu.Lock()
		r.Draft = routine.Draft{}
		r.mu.Unlock()
	}
	return r.finishMutation(ctx, epoch, err)
}

// ToggleCompleted flips one entry's completion and refetches the day plan.
func (r *Routines) ToggleCompleted(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	var done bool
	found := false
	for _, e := range r.entries {
		if e.ID == id {
			done = !e.IsCompleted
			found = true
			break
		}
	}
	r.mu.Unlock()
	if !found {
		return ErrUnknownEntry
	}

	epoch, err := r.beginMutation()
	if err != nil {
		return err
	}
	return r.finishMutation(ctx, epoch, r.store.SetCompleted(ctx, r.gate.UserID(), id, done))
}

// Delete removes one entry and refetches the day plan.
func (r *Routines) Delete(ctx context.Context, id uuid.UUID) error {
	epoch, err := r.beginMutation()
	if err != nil {
		return err
	}
	return r.finishMutation(ctx, epoch, r.store.Delete(ctx, r.gate.UserID(), id))
}
