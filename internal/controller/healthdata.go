package controller

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/sleep"
	"github.com/wellness/wellness/internal/domain/vitals"
	"github.com/wellness/wellness/internal/domain/water"
	"github.com/wellness/wellness/internal/platform/store"
)

// VitalStore is the slice of the vitals service the health page needs.
type VitalStore interface {
	Record(ctx context.Context, userID uuid.UUID, draft vitals.Draft) (*vitals.VitalSign, error)
	Latest(ctx context.Context, userID uuid.UUID) (*vitals.VitalSign, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// WaterStore is the slice of the water service the health page needs.
type WaterStore interface {
	Record(ctx context.Context, userID uuid.UUID, draft water.Draft) (*water.Intake, error)
	Latest(ctx context.Context, userID uuid.UUID) (*water.Intake, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SleepStore is the slice of the sleep service the health page needs.
type SleepStore interface {
	Record(ctx context.Context, userID uuid.UUID, draft sleep.Draft) (*sleep.Session, error)
	Latest(ctx context.Context, userID uuid.UUID) (*sleep.Session, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// HealthSnapshot is the page's view of the latest record per kind. Vital
// flags come from the classifier and are recomputed on every refetch.
type HealthSnapshot struct {
	Vital      *vitals.VitalSign
	VitalFlags *vitals.Flags
	Water      *water.Intake
	Sleep      *sleep.Session
}

// HealthData drives the combined vitals, water and sleep page.
type HealthData struct {
	page
	gate   SessionGate
	vitals VitalStore
	water  WaterStore
	sleep  SleepStore

	snapshot HealthSnapshot

	// Drafts survive a rejected submit so the user can correct input.
	VitalDraft vitals.Draft
	WaterDraft water.Draft
	SleepDraft sleep.Draft
}

func NewHealthData(gate SessionGate, v VitalStore, w WaterStore, s SleepStore) *HealthData {
	return &HealthData{gate: gate, vitals: v, water: w, sleep: s}
}

// Snapshot returns the last loaded view of the page.
func (h *HealthData) Snapshot() HealthSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

// Reset returns the page to Idle and drops any in-flight load result.
func (h *HealthData) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reset()
	h.snapshot = HealthSnapshot{}
	h.VitalDraft = vitals.Draft{}
	h.WaterDraft = water.Draft{}
	h.SleepDraft = sleep.Draft{}
}

func (h *HealthData) fetch(ctx context.Context, userID uuid.UUID) (HealthSnapshot, error) {
	var snap HealthSnapshot
	v, err := h.vitals.Latest(ctx, userID)
	if err != nil {
		return snap, err
	}
	snap.Vital = v
	if v != nil {
		flags := vitals.Classify(v)
		snap.VitalFlags = &flags
	}
	if snap.Water, err = h.water.Latest(ctx, userID); err != nil {
		return snap, err
	}
	if snap.Sleep, err = h.sleep.Latest(ctx, userID); err != nil {
		return snap, err
	}
	return snap, nil
}

// Load fetches the page snapshot. A Reset or later Load while the fetch is
// running supersedes this one; its result is dropped and ErrStaleLoad
// returned.
func (h *HealthData) Load(ctx context.Context) error {
	epoch := h.beginLoad()
	snap, err := h.fetch(ctx, h.gate.UserID())

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stale(epoch) {
		return ErrStaleLoad
	}
	if err != nil {
		h.state = StateLoadFailed
		h.err = err
		return err
	}
	h.snapshot = snap
	h.state = StateReady
	return nil
}

// refetch refreshes the snapshot after a mutation. mutErr lands in the
// error slot so a NotFound stays visible while the vanished record drops
// out of the snapshot. Caller must not hold mu.
func (h *HealthData) refetch(ctx context.Context, epoch uint64, mutErr error) error {
	snap, err := h.fetch(ctx, h.gate.UserID())

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stale(epoch) {
		return ErrStaleLoad
	}
	h.state = StateReady
	if err != nil {
		h.err = err
		return err
	}
	h.snapshot = snap
	h.err = mutErr
	return mutErr
}

// beginSubmit refuses a second submit while one is in flight.
func (h *HealthData) beginSubmit() (uint64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateSubmitting {
		return 0, ErrSubmitInFlight
	}
	h.state = StateSubmitting
	return h.epoch, nil
}

// finishSubmit records the mutation outcome. A NotFound means the record
// vanished underneath the page, so the snapshot is refetched anyway to
// reconcile the stale view.
func (h *HealthData) finishSubmit(ctx context.Context, epoch uint64, err error) error {
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.stale(epoch) {
			return ErrStaleLoad
		}
		h.state = StateReady
		h.err = err
		return err
	}
	return h.refetch(ctx, epoch, err)
}

// rejectDraft surfaces a validation failure without leaving Ready. The
// draft is kept so the user can correct it.
func (h *HealthData) rejectDraft(v error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.err = v
	return v
}

// SubmitVitals validates and stores the vital-sign draft, then refreshes
// the snapshot. A rejected draft never enters Submitting; the draft is
// kept on failure and cleared on success.
func (h *HealthData) SubmitVitals(ctx context.Context) error {
	if _, v := h.VitalDraft.Validate(); v != nil {
		return h.rejectDraft(v)
	}
	epoch, err := h.beginSubmit()
	if err != nil {
		return err
	}
	_, err = h.vitals.Record(ctx, h.gate.UserID(), h.VitalDraft)
	if err == nil {
		h.mu.Lock()
		h.VitalDraft = vitals.Draft{}
		h.mu.Unlock()
	}
	return h.finishSubmit(ctx, epoch, err)
}

// SubmitWater validates and stores the water draft, then refreshes the
// snapshot.
func (h *HealthData) SubmitWater(ctx context.Context) error {
	if _, v := h.WaterDraft.Validate(); v != nil {
		return h.rejectDraft(v)
	}
	epoch, err := h.beginSubmit()
	if err != nil {
		return err
	}
	_, err = h.water.Record(ctx, h.gate.UserID(), h.WaterDraft)
	if err == nil {
		h.mu.Lock()
		h.WaterDraft = water.Draft{}
		h.mu.Unlock()
	}
	return h.finishSubmit(ctx, epoch, err)
}

// SubmitSleep validates and stores the sleep draft, then refreshes the
// snapshot.
func (h *HealthData) SubmitSleep(ctx context.Context) error {
	if _, v := h.SleepDraft.Validate(); v != nil {
		return h.rejectDraft(v)
	}
	epoch, err := h.beginSubmit()
	if err != nil {
		return err
	}
	_, err = h.sleep.Record(ctx, h.gate.UserID(), h.SleepDraft)
	if err == nil {
		h.mu.Lock()
		h.SleepDraft = sleep.Draft{}
		h.mu.Unlock()
	}
	return h.finishSubmit(ctx, epoch, err)
}

// DeleteVital removes a vital-sign record and refreshes the snapshot.
func (h *HealthData) DeleteVital(ctx context.Context, id uuid.UUID) error {
	epoch, err := h.beginSubmit()
	if err != nil {
		return err
	}
	return h.finishSubmit(ctx, epoch, h.vitals.Delete(ctx, h.gate.UserID(), id))
}

// DeleteWater removes a water-intake record and refreshes the snapshot.
func (h *HealthData) DeleteWater(ctx context.Context, id uuid.UUID) error {
	epoch, err := h.beginSubmit()
	if err != nil {
		return err
	}
	return h.finishSubmit(ctx, epoch, h.water.Delete(ctx, h.gate.UserID(), id))
}

// DeleteSleep removes a sleep session and refreshes the snapshot.
func (h *HealthData) DeleteSleep(ctx context.Context, id uuid.UUID) error {
	epoch, err := h.beginSubmit()
	if err != nil {
		return err
	}
	return h.finishSubmit(ctx, epoch, h.sleep.Delete(ctx, h.gate.UserID(), id))
}
