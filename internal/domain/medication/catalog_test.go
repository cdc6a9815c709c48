package medication

import (
	"testing"

	"github.com/google/uuid"
)

func testCatalog() []*CatalogOption {
	return []*CatalogOption{
		{ID: uuid.New(), Name: "Aspirin", Category: CategoryPrescription, DefaultDosage: "100 mg", DefaultFrequency: FrequencyDaily},
		{ID: uuid.New(), Name: "Fish Oil", Category: CategorySupplement, DefaultDosage: "1000 mg", DefaultFrequency: FrequencyDaily},
		{ID: uuid.New(), Name: "Metformin", Category: CategoryChronic, DefaultDosage: "500 mg", DefaultFrequency: FrequencyTwiceDaily},
		{ID: uuid.New(), Name: "Vitamin C", Category: CategoryVitamin, DefaultDosage: "500 mg", DefaultFrequency: FrequencyDaily},
		{ID: uuid.New(), Name: "Vitamin D", Category: CategoryVitamin, DefaultDosage: "1000 IU", DefaultFrequency: FrequencyDaily, Notes: "with food"},
	}
}

func TestFilterOptions(t *testing.T) {
	options := testCatalog()

	vitamins := FilterOptions(options, CategoryVitamin)
	if len(vitamins) != 2 {
		t.Fatalf("expected 2 vitamins, got %d", len(vitamins))
	}
	// Catalog order is preserved.
	if vitamins[0].Name != "Vitamin C" || vitamins[1].Name != "Vitamin D" {
		t.Errorf("filter reordered options: %s, %s", vitamins[0].Name, vitamins[1].Name)
	}
	for _, opt := range vitamins {
		if opt.Category != CategoryVitamin {
			t.Errorf("foreign category in result: %+v", opt)
		}
	}
}

func TestFilterOptions_NoMatches(t *testing.T) {
	filtered := FilterOptions(testCatalog(), CategoryTemporary)
	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %d options", len(filtered))
	}
}

func TestApplyOption(t *testing.T) {
	draft := Draft{TimeOfDay: "21:30", ReminderEnabled: true}
	opt := testCatalog()[4]

	draft = ApplyOption(draft, opt)

	if draft.Name != "Vitamin D" || draft.Dosage != "1000 IU" || draft.Frequency != "daily" {
		t.Errorf("option not applied: %+v", draft)
	}
	if draft.Category != "vitamin" || draft.Notes != "with food" {
		t.Errorf("option not applied: %+v", draft)
	}
	// User choices survive the prefill.
	if draft.TimeOfDay != "21:30" || !draft.ReminderEnabled {
		t.Errorf("user fields overwritten: %+v", draft)
	}
}

func TestApplyOption_ProducesValidDraft(t *testing.T) {
	draft := ApplyOption(Draft{TimeOfDay: "08:00"}, testCatalog()[0])
	if _, v := draft.Validate(); v != nil {
		t.Errorf("prefilled draft must validate, got %v", v)
	}
}
