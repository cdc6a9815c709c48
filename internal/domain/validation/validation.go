// Package validation holds the shared form-input checks for the record
// domains. Drafts carry raw string input and each check reports at most one
// Violation, so callers surface the first problem in a fixed field order.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Bound identifies which kind of check a field failed. The identifier is part
// of the API payload, so values are stable snake_case strings.
type Bound string

const (
	BoundRequired   Bound = "required"
	BoundNotANumber Bound = "not_a_number"
	BoundRange      Bound = "range"
	BoundLength     Bound = "length"
	BoundEnum       Bound = "enum"
	BoundFormat     Bound = "format"
)

// Violation is a single rejected field. It implements error so services can
// return it through the usual error path.
type Violation struct {
	Field   string
	Bound   Bound
	Message string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

func Required(field string) *Violation {
	return &Violation{Field: field, Bound: BoundRequired, Message: "value is required"}
}

func NotANumber(field string) *Violation {
	return &Violation{Field: field, Bound: BoundNotANumber, Message: "value must be a whole number"}
}

func OutOfRange(field string, min, max int, unit string) *Violation {
	msg := fmt.Sprintf("value must be between %d and %d", min, max)
	if unit != "" {
		msg += " " + unit
	}
	return &Violation{Field: field, Bound: BoundRange, Message: msg}
}

func TooShort(field string, min int) *Violation {
	return &Violation{Field: field, Bound: BoundLength, Message: fmt.Sprintf("value must be at least %d characters", min)}
}

func InvalidEnum(field string, allowed []string) *Violation {
	return &Violation{Field: field, Bound: BoundEnum, Message: "value must be one of: " + strings.Join(allowed, ", ")}
}

func BadFormat(field, want string) *Violation {
	return &Violation{Field: field, Bound: BoundFormat, Message: "value must match " + want}
}

// IntInRange parses a raw form value and checks it against inclusive bounds.
// A blank value is reported as missing, a non-numeric one as malformed; the
// two cases stay distinct so clients can word their prompts accordingly.
func IntInRange(field, raw string, min, max int, unit string) (int, *Violation) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, Required(field)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, NotANumber(field)
	}
	if n < min || n > max {
		return 0, OutOfRange(field, min, max, unit)
	}
	return n, nil
}
