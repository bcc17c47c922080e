package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary is the derived total for one (period, category) bucket.
// Summaries are recomputed from the full record set on every read; nothing
// cached survives a ledger mutation.
type CategorySummary struct {
	Period   Period
	Category string
	Total    decimal.Decimal
	Count    int
}

// Report is the single structured artifact handed to the presentation layer.
type Report struct {
	AsOf          time.Time
	CurrentPeriod Period

	CurrentSummaries    []CategorySummary
	CurrentTotal        decimal.Decimal
	RemainingThisPeriod decimal.Decimal

	Forecast            ForecastResult
	RemainingNextPeriod decimal.Decimal
}
