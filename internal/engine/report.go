package engine

import (
	"time"

	"github.com/outlay-dev/outlay/internal/model"
)

// BuildReport assembles the full budget report for one moment in time.
// asOf is injected rather than read from the clock so the same snapshot
// always yields the same report.
//
// The forecast targets the period after the current one and trains only on
// fully-elapsed periods: everything from the earliest recorded period through
// the month before asOf, with quiet months counted as zero. The current,
// still-running month never feeds the forecast.
//
// The first failure from any stage aborts the whole report; callers never see
// a partially-populated one.
func BuildReport(records []model.ExpenseRecord, goal model.BudgetGoal, asOf time.Time) (model.Report, error) {
	if asOf.IsZero() {
		return model.Report{}, ValidationError{Field: "as-of date", Message: "must be set"}
	}

	summaries, err := Aggregate(records)
	if err != nil {
		return model.Report{}, err
	}

	current := model.PeriodOf(asOf)
	currentTotal := TotalForPeriod(summaries, current)

	remainingNow, err := RemainingBudget(goal, currentTotal)
	if err != nil {
		return model.Report{}, err
	}

	first, haveHistory := earliestPeriod(summaries)
	lastElapsed := current.Prev()
	haveHistory = haveHistory && first.Before(current)

	target := current.Next()
	var history []PeriodTotal
	if haveHistory {
		history = History(summaries, first, lastElapsed)
	}

	forecast, err := Forecast(history, target)
	if err != nil {
		return model.Report{}, err
	}
	if haveHistory {
		forecast.ByCategory, err = ForecastByCategory(summaries, first, lastElapsed, target)
		if err != nil {
			return model.Report{}, err
		}
	}

	remainingNext, err := RemainingBudget(goal, forecast.Total)
	if err != nil {
		return model.Report{}, err
	}

	return model.Report{
		AsOf:                asOf,
		CurrentPeriod:       current,
		CurrentSummaries:    SummariesForPeriod(summaries, current),
		CurrentTotal:        currentTotal,
		RemainingThisPeriod: remainingNow,
		Forecast:            forecast,
		RemainingNextPeriod: remainingNext,
	}, nil
}

func earliestPeriod(summaries map[Bucket]model.CategorySummary) (model.Period, bool) {
	var first model.Period
	found := false
	for b := range summaries {
		if !found || b.Period.Before(first) {
			first = b.Period
			found = true
		}
	}
	return first, found
}
