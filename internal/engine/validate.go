package engine

import (
	"strings"

	"github.com/outlay-dev/outlay/internal/model"
)

// ValidateRecord checks the rules the capture boundary should already have
// enforced. The ledger is a flat file anyone can edit, so the engine re-checks
// every record on every read.
func ValidateRecord(rec model.ExpenseRecord) error {
	if rec.Date.IsZero() {
		return ValidationError{Field: "date", Message: "missing or unparsable"}
	}
	if strings.TrimSpace(rec.Category) == "" {
		return ValidationError{Field: "category", Message: "must not be empty"}
	}
	if rec.Amount.IsNegative() {
		return invalidf("amount", "must not be negative, got %s", rec.Amount)
	}
	return nil
}
