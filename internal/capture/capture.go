// Package capture turns raw user input into validated expense records.
// Normalization happens once here, at the boundary, so the engine can treat
// categories as opaque, already-canonical identifiers.
package capture

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/engine"
	"github.com/outlay-dev/outlay/internal/model"
)

// DateFormat is the accepted input date layout, matching the persisted one.
const DateFormat = "2006-01-02"

// DefaultCategories seeds a new project's config with the usual
// personal-spending split.
var DefaultCategories = []string{
	"food",
	"transport",
	"entertainment",
	"shopping",
	"bills",
	"rent",
	"healthcare",
	"education",
	"travel",
	"savings",
	"other",
}

// NormalizeCategory trims and case-folds a category label. "Food " and
// "food" must land in the same bucket, and this is the only place that
// makes it so.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewRecord builds a validated ExpenseRecord from raw form or flag input.
// All failures are ValidationErrors naming the offending field.
func NewRecord(dateStr, category, amountStr, note string) (model.ExpenseRecord, error) {
	date, err := time.Parse(DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return model.ExpenseRecord{}, engine.ValidationError{
			Field:   "date",
			Message: strings.TrimSpace(dateStr) + " is not a YYYY-MM-DD date",
		}
	}

	category = NormalizeCategory(category)
	if category == "" {
		return model.ExpenseRecord{}, engine.ValidationError{Field: "category", Message: "must not be empty"}
	}

	amount, err := ParseAmount(amountStr)
	if err != nil {
		return model.ExpenseRecord{}, err
	}

	return model.ExpenseRecord{
		Date:     date,
		Category: category,
		Amount:   amount,
		Note:     strings.TrimSpace(note),
	}, nil
}

// ParseAmount parses a non-negative money amount with at most two decimal
// places.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, engine.ValidationError{Field: "amount", Message: s + " is not a number"}
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, engine.ValidationError{Field: "amount", Message: "must not be negative, got " + s}
	}

	cents := amount.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Floor()) {
		return decimal.Decimal{}, engine.ValidationError{
			Field:   "amount",
			Message: amount.String() + " has more than 2 decimal places",
		}
	}
	return amount, nil
}
