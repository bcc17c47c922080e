package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlay-dev/outlay/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func rec(y, m, d int, category, amount string) model.ExpenseRecord {
	return model.ExpenseRecord{Date: date(y, m, d), Category: category, Amount: dec(amount)}
}

func period(y, m int) model.Period {
	return model.Period{Year: y, Month: time.Month(m)}
}

func TestAggregate_GroupsByPeriodAndCategory(t *testing.T) {
	// Arbitrary input order across periods and categories.
	records := []model.ExpenseRecord{
		rec(2025, 2, 3, "food", "12.50"),
		rec(2025, 1, 10, "rent", "900.00"),
		rec(2025, 1, 4, "food", "50.00"),
		rec(2025, 1, 20, "food", "30.00"),
	}

	summaries, err := Aggregate(records)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	janFood := summaries[Bucket{Period: period(2025, 1), Category: "food"}]
	assert.True(t, janFood.Total.Equal(dec("80.00")), "jan food: got %s", janFood.Total)
	assert.Equal(t, 2, janFood.Count)

	janRent := summaries[Bucket{Period: period(2025, 1), Category: "rent"}]
	assert.True(t, janRent.Total.Equal(dec("900.00")))
	assert.Equal(t, 1, janRent.Count)

	febFood := summaries[Bucket{Period: period(2025, 2), Category: "food"}]
	assert.True(t, febFood.Total.Equal(dec("12.50")))
}

func TestAggregate_Empty(t *testing.T) {
	summaries, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestAggregate_ZeroAmountIsLegal(t *testing.T) {
	summaries, err := Aggregate([]model.ExpenseRecord{rec(2025, 2, 1, "food", "0")})
	require.NoError(t, err)

	s := summaries[Bucket{Period: period(2025, 2), Category: "food"}]
	assert.True(t, s.Total.IsZero())
	assert.Equal(t, 1, s.Count)
}

func TestAggregate_NegativeAmountRejected(t *testing.T) {
	records := []model.ExpenseRecord{
		rec(2025, 1, 4, "food", "50.00"),
		rec(2025, 1, 5, "food", "-5"),
	}

	summaries, err := Aggregate(records)
	require.Error(t, err)
	assert.Nil(t, summaries, "no partial summaries on invalid input")

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "amount", verr.Field)
}

func TestAggregate_EmptyCategoryRejected(t *testing.T) {
	_, err := Aggregate([]model.ExpenseRecord{rec(2025, 1, 4, "  ", "5.00")})
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "category", verr.Field)
}

func TestAggregate_ZeroDateRejected(t *testing.T) {
	_, err := Aggregate([]model.ExpenseRecord{{Category: "food", Amount: dec("5.00")}})
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date", verr.Field)
}

func TestAggregate_CategoriesAreCaseSensitive(t *testing.T) {
	// Normalization happens at capture; the engine groups labels as-is.
	summaries, err := Aggregate([]model.ExpenseRecord{
		rec(2025, 1, 1, "food", "1.00"),
		rec(2025, 1, 2, "Food", "2.00"),
	})
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
}

func TestTotalForPeriod(t *testing.T) {
	summaries, err := Aggregate([]model.ExpenseRecord{
		rec(2025, 1, 4, "food", "50.00"),
		rec(2025, 1, 10, "rent", "900.00"),
		rec(2025, 2, 1, "food", "10.00"),
	})
	require.NoError(t, err)

	assert.True(t, TotalForPeriod(summaries, period(2025, 1)).Equal(dec("950.00")))
	assert.True(t, TotalForPeriod(summaries, period(2025, 2)).Equal(dec("10.00")))
	assert.True(t, TotalForPeriod(summaries, period(2025, 3)).IsZero())
}

func TestSummariesForPeriod_SortedByCategory(t *testing.T) {
	summaries, err := Aggregate([]model.ExpenseRecord{
		rec(2025, 1, 4, "transport", "5.00"),
		rec(2025, 1, 5, "food", "6.00"),
		rec(2025, 1, 6, "bills", "7.00"),
		rec(2025, 2, 1, "food", "8.00"),
	})
	require.NoError(t, err)

	jan := SummariesForPeriod(summaries, period(2025, 1))
	require.Len(t, jan, 3)
	assert.Equal(t, "bills", jan[0].Category)
	assert.Equal(t, "food", jan[1].Category)
	assert.Equal(t, "transport", jan[2].Category)
}
