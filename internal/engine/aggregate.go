package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// Bucket keys a CategorySummary: one (period, category) pair.
type Bucket struct {
	Period   model.Period
	Category string
}

// Aggregate groups records by (period, category) and sums their amounts.
// Pairs absent from the input are absent from the output; there is no
// zero-filling. An empty input yields an empty map, not an error.
//
// Any invalid record aborts the whole aggregation: a partially-built summary
// over a corrupt snapshot would be silently wrong.
func Aggregate(records []model.ExpenseRecord) (map[Bucket]model.CategorySummary, error) {
	summaries := make(map[Bucket]model.CategorySummary)
	for i, rec := range records {
		if err := ValidateRecord(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}

		b := Bucket{Period: model.PeriodOf(rec.Date), Category: rec.Category}
		s := summaries[b]
		s.Period = b.Period
		s.Category = b.Category
		s.Total = s.Total.Add(rec.Amount)
		s.Count++
		summaries[b] = s
	}
	return summaries, nil
}

// TotalForPeriod sums summary totals across all categories of one period.
func TotalForPeriod(summaries map[Bucket]model.CategorySummary, period model.Period) decimal.Decimal {
	total := decimal.Zero
	for b, s := range summaries {
		if b.Period == period {
			total = total.Add(s.Total)
		}
	}
	return total
}

// SummariesForPeriod returns one period's summaries ordered by category.
func SummariesForPeriod(summaries map[Bucket]model.CategorySummary, period model.Period) []model.CategorySummary {
	var result []model.CategorySummary
	for b, s := range summaries {
		if b.Period == period {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}
