package sleep

import (
	"testing"

	"github.com/wellness/wellness/internal/domain/validation"
)

func TestDraftValidate_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		duration string
		quality  string
		ok       bool
		field    string
	}{
		{"typical night", "480", "4", true, ""},
		{"zero duration accepted", "0", "3", true, ""},
		{"full day accepted", "1440", "3", true, ""},
		{"duration above day", "1441", "3", false, "duration_minutes"},
		{"negative duration", "-1", "3", false, "duration_minutes"},
		{"quality floor", "480", "1", true, ""},
		{"quality ceiling", "480", "5", true, ""},
		{"quality zero", "480", "0", false, "quality"},
		{"quality above scale", "480", "6", false, "quality"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, v := Draft{DurationMinutes: tc.duration, Quality: tc.quality}.Validate()
			if tc.ok {
				if v != nil {
					t.Fatalf("expected draft accepted, got %v", v)
				}
				return
			}
			if v == nil {
				t.Fatalf("expected rejection, got %+v", s)
			}
			if v.Field != tc.field {
				t.Errorf("expected violation on %s, got %s", tc.field, v.Field)
			}
		})
	}
}

func TestDraftValidate_DurationCheckedFirst(t *testing.T) {
	// Both fields invalid: the duration violation must win.
	_, v := Draft{DurationMinutes: "9999", Quality: "9"}.Validate()
	if v == nil || v.Field != "duration_minutes" {
		t.Errorf("expected duration_minutes violation first, got %+v", v)
	}
}

func TestDraftValidate_MissingQuality(t *testing.T) {
	_, v := Draft{DurationMinutes: "480"}.Validate()
	if v == nil || v.Field != "quality" || v.Bound != validation.BoundRequired {
		t.Errorf("expected required quality violation, got %+v", v)
	}
}
