package medication

import "github.com/google/uuid"

// CatalogOption is one row of the read-only medication_catalog reference
// table. Options prefill a draft; they are never user-owned.
type CatalogOption struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Category         Category  `db:"category" json:"category"`
	DefaultDosage    string    `db:"default_dosage" json:"default_dosage"`
	DefaultFrequency Frequency `db:"default_frequency" json:"default_frequency"`
	Notes            string    `db:"notes" json:"notes,omitempty"`
}

// FilterOptions returns the options matching category, preserving catalog
// order. An unknown category yields an empty slice, not an error.
func FilterOptions(options []*CatalogOption, category Category) []*CatalogOption {
	filtered := make([]*CatalogOption, 0, len(options))
	for _, opt := range options {
		if opt.Category == category {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// ApplyOption prefills a draft from a catalog option. Time of day and the
// reminder flag are user choices and stay untouched.
func ApplyOption(draft Draft, opt *CatalogOption) Draft {
	draft.Name = opt.Name
	draft.Dosage = opt.DefaultDosage
	draft.Frequency = string(opt.DefaultFrequency)
	draft.Category = string(opt.Category)
	draft.Notes = opt.Notes
	return draft
}
