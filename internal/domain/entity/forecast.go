package entity

import (
	"github.com/shopspring/decimal"
)

// TrendDirection is the coarse classification of a series' movement.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// ForecastPoint is one projected month of the forecast.
type ForecastPoint struct {
	MonthIndex int    // 0-based chronological index of the projected month
	MonthLabel string // "YYYY-MM" label of the projected month
	Predicted  decimal.Decimal
	// ConfidenceLow/High bound a 95%-style interval; the low bound is clamped
	// at zero like the prediction itself.
	ConfidenceLow  decimal.Decimal
	ConfidenceHigh decimal.Decimal
	// Confidence is the coarse per-point confidence used by the
	// moving-average strategy (0 for the regression strategy).
	Confidence float64
}

// ForecastResult is the projection produced by a forecast strategy.
// When the snapshot does not meet the strategy's minimum data requirement,
// Insufficient is true and every other field is zero-valued; callers must
// check it before reading derived fields.
type ForecastResult struct {
	Insufficient bool
	Strategy     string
	Points       []ForecastPoint
	RSquared     float64
	Trend        TrendDirection
}

// InsufficientForecast returns the explicit empty result for snapshots below
// the minimum sample size. It is not an error.
func InsufficientForecast(strategy string) *ForecastResult {
	return &ForecastResult{Insufficient: true, Strategy: strategy}
}

// MonthlyTrend is the month-over-month expense movement.
type MonthlyTrend struct {
	Direction      TrendDirection
	ChangePercent  float64 // 0 when the previous month's total is 0
	CurrentMonth   decimal.Decimal
	AverageMonthly decimal.Decimal
}
