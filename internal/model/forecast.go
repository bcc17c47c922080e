package model

import "github.com/shopspring/decimal"

// ForecastMethod identifies which algorithm branch produced a forecast, so
// consumers can convey how much confidence the number deserves.
type ForecastMethod string

const (
	MethodInsufficientHistory ForecastMethod = "insufficient-history"
	MethodCarryForward        ForecastMethod = "single-period-carry-forward"
	MethodMovingAverage       ForecastMethod = "moving-average"
)

// ForecastResult is a predicted total for a target period.
type ForecastResult struct {
	Target Period
	Total  decimal.Decimal
	Method ForecastMethod

	// ByCategory holds per-category predictions. Categories with no observed
	// history are absent rather than zero.
	ByCategory map[string]decimal.Decimal
}
