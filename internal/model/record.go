package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is one row in expenses.csv: a single discrete spending event.
// Records are append-only; once persisted they are never mutated or deleted.
type ExpenseRecord struct {
	Date     time.Time
	Category string          // normalized at the capture boundary, opaque here
	Amount   decimal.Decimal // non-negative; zero is legal (reimbursed entry)
	Note     string          // free text, never used in computation
}
