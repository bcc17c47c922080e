package engine

import (
	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// movingAverageWindow bounds how far back the average looks. Recent behavior
// matters more than long-run drift for a one-month-ahead horizon.
const movingAverageWindow = 3

// PeriodTotal is one point in a spending history series.
type PeriodTotal struct {
	Period model.Period
	Total  decimal.Decimal
}

// Forecast predicts the total for target from an ordered series of
// fully-elapsed period totals. Months where nothing was spent belong in the
// series as explicit zeros: a quiet month is real data, not a gap.
//
// With no history the prediction is zero; with a single period that total is
// carried forward unchanged; otherwise it is the mean of the last
// min(len(history), 3) periods. The target must lie strictly after the
// history, so a period never trains its own prediction.
func Forecast(history []PeriodTotal, target model.Period) (model.ForecastResult, error) {
	if len(history) > 0 {
		last := history[len(history)-1].Period
		if !last.Before(target) {
			return model.ForecastResult{}, invalidf("target period",
				"%s is not after history ending %s", target, last)
		}
	}

	result := model.ForecastResult{Target: target}
	switch n := len(history); {
	case n == 0:
		result.Total = decimal.Zero
		result.Method = model.MethodInsufficientHistory
	case n == 1:
		result.Total = history[0].Total
		result.Method = model.MethodCarryForward
	default:
		window := n
		if window > movingAverageWindow {
			window = movingAverageWindow
		}
		sum := decimal.Zero
		for _, pt := range history[n-window:] {
			sum = sum.Add(pt.Total)
		}
		result.Total = sum.Div(decimal.NewFromInt(int64(window)))
		result.Method = model.MethodMovingAverage
	}
	return result, nil
}

// History builds the zero-filled per-period total series covering first
// through last inclusive. Returns nil when last precedes first.
func History(summaries map[Bucket]model.CategorySummary, first, last model.Period) []PeriodTotal {
	if last.Before(first) {
		return nil
	}
	var series []PeriodTotal
	for p := first; !last.Before(p); p = p.Next() {
		series = append(series, PeriodTotal{Period: p, Total: TotalForPeriod(summaries, p)})
	}
	return series
}

// ForecastByCategory runs the forecast independently per category over that
// category's own zero-filled series, which starts at the category's first
// observed period within [first, last]. Categories never observed in the
// range are omitted rather than predicted as zero, to avoid implying
// precision the data cannot support.
func ForecastByCategory(summaries map[Bucket]model.CategorySummary, first, last, target model.Period) (map[string]decimal.Decimal, error) {
	if last.Before(first) {
		return nil, nil
	}

	// Earliest observed period per category within the range.
	starts := make(map[string]model.Period)
	for b := range summaries {
		if b.Period.Before(first) || last.Before(b.Period) {
			continue
		}
		start, seen := starts[b.Category]
		if !seen || b.Period.Before(start) {
			starts[b.Category] = b.Period
		}
	}
	if len(starts) == 0 {
		return nil, nil
	}

	byCategory := make(map[string]decimal.Decimal, len(starts))
	for category, start := range starts {
		var series []PeriodTotal
		for p := start; !last.Before(p); p = p.Next() {
			total := decimal.Zero
			if s, ok := summaries[Bucket{Period: p, Category: category}]; ok {
				total = s.Total
			}
			series = append(series, PeriodTotal{Period: p, Total: total})
		}

		fc, err := Forecast(series, target)
		if err != nil {
			return nil, err
		}
		byCategory[category] = fc.Total
	}
	return byCategory, nil
}
