package controller

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wellness/wellness/internal/domain/medication"
	"github.com/wellness/wellness/internal/platform/store"
)

// MedicationStore is the slice of the medication service the page needs.
type MedicationStore interface {
	Add(ctx context.Context, userID uuid.UUID, draft medication.Draft) (*medication.Medication, error)
	List(ctx context.Context, userID uuid.UUID) ([]*medication.Medication, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CatalogOptions(ctx context.Context, userID uuid.UUID, category medication.Category) ([]*medication.CatalogOption, error)
}

// Medications drives the medication page: the user's entries plus the
// reference catalog for prefilling new ones.
type Medications struct {
	page
	gate  SessionGate
	store MedicationStore

	entries []*medication.Medication
	catalog []*medication.CatalogOption

	// Draft survives a rejected submit so the user can correct input.
	Draft medication.Draft
}

func NewMedications(gate SessionGate, store MedicationStore) *Medications {
	return &Medications{gate: gate, store: store}
}

// Entries returns the last loaded day plan.
func (m *Medications) Entries() []*medication.Medication {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries
}

// Options returns the catalog entries matching the draft's category, in
// catalog order. With no category selected the full catalog is returned.
func (m *Medications) Options() []*medication.CatalogOption {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Draft.Category == "" {
		return m.catalog
	}
	return medication.FilterOptions(m.catalog, medication.Category(m.Draft.Category))
}

// SetCategory switches the draft's category. Option-derived fields are
// reset because they belong to the previous category's selection; time of
// day and the reminder flag are user choices and survive.
func (m *Medications) SetCategory(category medication.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Draft.Category == string(category) {
		return
	}
	m.Draft.Category = string(category)
	m.Draft.Name = ""
	m.Draft.Dosage = ""
	m.Draft.Frequency = ""
	m.Draft.Notes = ""
}

// ApplyOption prefills the draft from a catalog option.
func (m *Medications) ApplyOption(opt *medication.CatalogOption) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Draft = medication.ApplyOption(m.Draft, opt)
}

// Reset returns the page to Idle and drops any in-flight load result.
func (m *Medications) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	m.entries = nil
	m.catalog = nil
	m.Draft = medication.Draft{}
}

// Load fetches the user's entries and the full catalog.
func (m *Medications) Load(ctx context.Context) error {
	epoch := m.beginLoad()
	userID := m.gate.UserID()

	entries, err := m.store.List(ctx, userID)
	var catalog []*medication.CatalogOption
	if err == nil {
		catalog, err = m.store.CatalogOptions(ctx, userID, "")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stale(epoch) {
		return ErrStaleLoad
	}
	if err != nil {
		m.state = StateLoadFailed
		m.err = err
		return err
	}
	m.entries = entries
	m.catalog = catalog
	m.state = StateReady
	return nil
}

// Submit validates and stores the draft, then refetches the day plan. A
// rejected draft never enters Submitting; the draft is kept on failure and
// cleared on success.
func (m *Medications) Submit(ctx context.Context) error {
	m.mu.Lock()
	draft := m.Draft
	m.mu.Unlock()

	if _, v := draft.Validate(); v != nil {
		m.mu.Lock()
		m.err = v
		m.mu.Unlock()
		return v
	}

	m.mu.Lock()
	if m.state == StateSubmitting {
		m.mu.Unlock()
		return ErrSubmitInFlight
	}
	m.state = StateSubmitting
	epoch := m.epoch
	m.mu.Unlock()

	_, err := m.store.Add(ctx, m.gate.UserID(), draft)
	if err != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.stale(epoch) {
			return ErrStaleLoad
		}
		m.state = StateReady
		m.err = err
		return err
	}

	m.mu.Lock()
	m.Draft = medication.Draft{}
	m.mu.Unlock()
	return m.refetch(ctx, epoch, nil)
}

// Delete removes one entry and refetches the day plan. A NotFound means
// the entry vanished underneath the page, so the list is refetched anyway
// to reconcile the stale view.
func (m *Medications) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	if m.state == StateSubmitting {
		m.mu.Unlock()
		return ErrSubmitInFlight
	}
	m.state = StateSubmitting
	epoch := m.epoch
	m.mu.Unlock()

	if err := m.store.Delete(ctx, m.gate.UserID(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return m.refetch(ctx, epoch, err)
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.stale(epoch) {
			return ErrStaleLoad
		}
		m.state = StateReady
		m.err = err
		return err
	}
	return m.refetch(ctx, epoch, nil)
}

// refetch refreshes entries after a mutation. mutErr lands in the error
// slot so a NotFound stays visible while the vanished entry drops out of
// the list.
func (m *Medications) refetch(ctx context.Context, epoch uint64, mutErr error) error {
	entries, err := m.store.List(ctx, m.gate.UserID())

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stale(epoch) {
		return ErrStaleLoad
	}
	m.state = StateReady
	if err != nil {
		m.err = err
		return err
	}
	m.entries = entries
	m.err = mutErr
	return mutErr
}
