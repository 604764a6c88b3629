package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// Forecast strategy names. Both modes ship because neither is authoritative
// in the product's history; the default is configuration, not code.
const (
	StrategyLinearRegression = "linear_regression"
	StrategyMovingAverage    = "moving_average"
)

// Default projection horizons, in months.
const (
	DefaultRegressionHorizon    = 6
	DefaultMovingAverageHorizon = 3
)

// Moving-average strategy constants: trailing window width, per-month growth
// factor and the per-month confidence decay floored at 0.3.
const (
	movingAverageWindow     = 3
	movingAverageGrowth     = 0.02
	movingAverageConfidence = 0.7
	confidenceDecayPerMonth = 0.1
	confidenceFloor         = 0.3
)

// zCritical95 is the normal critical value for a 95%-style band.
const zCritical95 = 1.96

// ForecastStrategy projects future months from the monthly series.
// Implementations return an explicit insufficient-data result, never an
// error and never a fabricated number, when the snapshot is too small.
type ForecastStrategy interface {
	// Name returns the strategy's configuration name.
	Name() string

	// Forecast projects horizon months beyond the series.
	Forecast(series []entity.MonthlyPoint, transactionCount int, now time.Time, horizon int) *entity.ForecastResult
}

// ForecastInput represents the input for producing a forecast.
type ForecastInput struct {
	// Strategy overrides the configured default when non-empty.
	Strategy string
	// Horizon is the number of months to project; 0 uses the strategy default.
	Horizon int
	Now     time.Time
}

// ForecastUseCase handles projecting future balance or spending.
type ForecastUseCase struct {
	transactionRepo adapter.TransactionRepository
	defaultStrategy string
	defaultHorizon  int
}

// NewForecastUseCase creates a new ForecastUseCase instance. A non-positive
// defaultHorizon defers to the per-strategy defaults.
func NewForecastUseCase(transactionRepo adapter.TransactionRepository, defaultStrategy string, defaultHorizon int) *ForecastUseCase {
	if defaultStrategy != StrategyMovingAverage {
		defaultStrategy = StrategyLinearRegression
	}
	return &ForecastUseCase{
		transactionRepo: transactionRepo,
		defaultStrategy: defaultStrategy,
		defaultHorizon:  defaultHorizon,
	}
}

// Execute projects future months using the selected strategy.
func (uc *ForecastUseCase) Execute(ctx context.Context, input ForecastInput) (*entity.ForecastResult, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	strategyName := input.Strategy
	if strategyName == "" {
		strategyName = uc.defaultStrategy
	}

	var strategy ForecastStrategy
	switch strategyName {
	case StrategyMovingAverage:
		strategy = MovingAverageStrategy{}
	case StrategyLinearRegression:
		strategy = LinearRegressionStrategy{}
	default:
		return nil, fmt.Errorf("unknown forecast strategy %q", strategyName)
	}

	horizon := input.Horizon
	if horizon <= 0 {
		horizon = uc.defaultHorizon
	}
	if horizon <= 0 {
		if strategyName == StrategyMovingAverage {
			horizon = DefaultMovingAverageHorizon
		} else {
			horizon = DefaultRegressionHorizon
		}
	}

	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	series := BuildMonthlySeries(snapshot)
	return strategy.Forecast(series, len(snapshot), now, horizon), nil
}

// LinearRegressionStrategy fits net balance against the 0-based month index
// and projects the fitted line forward with a 95%-style residual band.
type LinearRegressionStrategy struct{}

// Name returns the strategy's configuration name.
func (LinearRegressionStrategy) Name() string { return StrategyLinearRegression }

// Forecast requires at least 3 transactions and 2 monthly buckets; anything
// less yields the explicit insufficient result.
func (LinearRegressionStrategy) Forecast(
	series []entity.MonthlyPoint,
	transactionCount int,
	now time.Time,
	horizon int,
) *entity.ForecastResult {
	if transactionCount < 3 || len(series) < 2 {
		return entity.InsufficientForecast(StrategyLinearRegression)
	}

	balances := make([]float64, len(series))
	for i, point := range series {
		balances[i], _ = point.Balance.Float64()
	}

	slope, intercept := linearFit(balances)
	margin := zCritical95 * residualStd(balances, slope, intercept)
	lastMonth := series[len(series)-1].Month

	result := &entity.ForecastResult{
		Strategy: StrategyLinearRegression,
		Points:   make([]entity.ForecastPoint, 0, horizon),
		RSquared: rSquared(balances, slope, intercept),
	}

	var firstRaw, lastRaw float64
	for i := 0; i < horizon; i++ {
		monthIndex := len(series) + i
		raw := slope*float64(monthIndex) + intercept
		if i == 0 {
			firstRaw = raw
		}
		lastRaw = raw

		result.Points = append(result.Points, entity.ForecastPoint{
			MonthIndex:     monthIndex,
			MonthLabel:     monthLabelAfter(lastMonth, i+1, now),
			Predicted:      decimalAtLeastZero(raw),
			ConfidenceLow:  decimalAtLeastZero(raw - margin),
			ConfidenceHigh: decimalAtLeastZero(raw + margin),
		})
	}

	result.Trend = classifyProjection(firstRaw, lastRaw)
	return result
}

// MovingAverageStrategy projects spending as the trailing three-month mean
// with a small fixed growth factor and decaying confidence.
type MovingAverageStrategy struct{}

// Name returns the strategy's configuration name.
func (MovingAverageStrategy) Name() string { return StrategyMovingAverage }

// Forecast requires at least 3 expense transactions; anything less yields the
// explicit insufficient result.
func (MovingAverageStrategy) Forecast(
	series []entity.MonthlyPoint,
	transactionCount int,
	now time.Time,
	horizon int,
) *entity.ForecastResult {
	points := expensePoints(series)

	expenseCount := 0
	for _, p := range points {
		expenseCount += p.ExpenseCount
	}
	if expenseCount < movingAverageWindow {
		return entity.InsufficientForecast(StrategyMovingAverage)
	}

	window := points
	if len(window) > movingAverageWindow {
		window = window[len(window)-movingAverageWindow:]
	}
	values := make([]float64, len(window))
	for i, p := range window {
		values[i], _ = p.Expenses.Float64()
	}
	avg := mean(values)

	result := &entity.ForecastResult{
		Strategy: StrategyMovingAverage,
		Points:   make([]entity.ForecastPoint, 0, horizon),
	}

	var firstRaw, lastRaw float64
	for i := 0; i < horizon; i++ {
		raw := avg * (1 + movingAverageGrowth*float64(i))
		if i == 0 {
			firstRaw = raw
		}
		lastRaw = raw

		confidence := movingAverageConfidence - confidenceDecayPerMonth*float64(i)
		if confidence < confidenceFloor {
			confidence = confidenceFloor
		}

		result.Points = append(result.Points, entity.ForecastPoint{
			MonthIndex: len(series) + i,
			MonthLabel: now.AddDate(0, i+1, 0).Format(entity.MonthLayout),
			Predicted:  decimalAtLeastZero(raw),
			Confidence: confidence,
		})
	}

	result.Trend = classifyProjection(firstRaw, lastRaw)
	return result
}

// classifyProjection labels the movement between the first and last raw
// (pre-clamp) projected values.
func classifyProjection(first, last float64) entity.TrendDirection {
	switch {
	case last > first:
		return entity.TrendIncreasing
	case last < first:
		return entity.TrendDecreasing
	default:
		return entity.TrendStable
	}
}

// decimalAtLeastZero converts a float projection to decimal, clamping
// negative values to zero. Negative predicted money is never surfaced.
func decimalAtLeastZero(v float64) decimal.Decimal {
	if v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v).Round(2)
}
