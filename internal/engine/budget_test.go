package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/model"
)

func goal(income, savings string) model.BudgetGoal {
	return model.BudgetGoal{Income: dec(income), Savings: dec(savings)}
}

func TestRemainingBudget(t *testing.T) {
	remaining, err := RemainingBudget(goal("1000", "200"), dec("150.50"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec("649.50")), "got %s", remaining)
}

func TestRemainingBudget_NegativeResultSurvives(t *testing.T) {
	// Over budget is a signal, not an error. No clamping to zero.
	remaining, err := RemainingBudget(goal("1000", "200"), dec("950"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec("-150")), "got %s", remaining)
}

func TestRemainingBudget_UnattainableGoal(t *testing.T) {
	// Savings above income is declared, not enforced.
	remaining, err := RemainingBudget(goal("1000", "1200"), dec("0"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec("-200")))
}

func TestRemainingBudget_NegativeIncomeRejected(t *testing.T) {
	_, err := RemainingBudget(goal("-1", "0"), dec("0"))
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "income", verr.Field)
}

func TestRemainingBudget_NegativeSavingsRejected(t *testing.T) {
	_, err := RemainingBudget(goal("1000", "-50"), dec("0"))
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "savings", verr.Field)
}
