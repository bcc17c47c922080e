package model

import "github.com/shopspring/decimal"

// BudgetGoal is the user-declared monthly income and savings target. It lives
// in outlay.yaml, never in the ledger. Savings may exceed Income: an
// unattainable goal is reported as a negative remainder, not rejected.
type BudgetGoal struct {
	Income  decimal.Decimal
	Savings decimal.Decimal
}
