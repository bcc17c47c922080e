package engine

import (
	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// RemainingBudget returns income - savings - spend: the amount still safe to
// spend. The caller chooses whether spend is an actual period total or a
// forecast; the calculation is the same either way. A negative result means
// over budget and is returned as-is, never clamped to zero.
func RemainingBudget(goal model.BudgetGoal, spend decimal.Decimal) (decimal.Decimal, error) {
	if goal.Income.IsNegative() {
		return decimal.Decimal{}, invalidf("income", "must not be negative, got %s", goal.Income)
	}
	if goal.Savings.IsNegative() {
		return decimal.Decimal{}, invalidf("savings", "must not be negative, got %s", goal.Savings)
	}
	return goal.Income.Sub(goal.Savings).Sub(spend), nil
}
