package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// Trend classification thresholds, in percent. Fixed policy constants: a
// month-over-month change above +5% reads as increasing, below -5% as
// decreasing, anything between as stable.
const (
	trendIncreasingThreshold = 5.0
	trendDecreasingThreshold = -5.0
)

// GetTrendsOutput represents the output of the trend analysis.
type GetTrendsOutput struct {
	MonthlyTrend *entity.MonthlyTrend
	// WeekdayPatterns maps weekday names to the mean expense amount.
	WeekdayPatterns map[string]decimal.Decimal
	// CategoryTrends maps "YYYY-MM" to subcategory expense sums.
	CategoryTrends map[string]map[string]decimal.Decimal
}

// GetTrendsUseCase handles spending trend analysis.
type GetTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{transactionRepo: transactionRepo}
}

// Execute analyzes spending trends over the current snapshot.
func (uc *GetTrendsUseCase) Execute(ctx context.Context) (*GetTrendsOutput, error) {
	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	series := BuildMonthlySeries(snapshot)

	return &GetTrendsOutput{
		MonthlyTrend:    ComputeMonthlyTrend(series),
		WeekdayPatterns: computeWeekdayPatterns(snapshot),
		CategoryTrends:  ComputeCategoryTrends(snapshot),
	}, nil
}

// ComputeMonthlyTrend classifies the month-over-month expense movement over
// the monthly buckets that hold at least one expense. Fewer than two such
// buckets read as stable with zero change; a zero previous month also yields
// zero change rather than a division error.
func ComputeMonthlyTrend(series []entity.MonthlyPoint) *entity.MonthlyTrend {
	points := expensePoints(series)

	trend := &entity.MonthlyTrend{
		Direction:      entity.TrendStable,
		CurrentMonth:   decimal.Zero,
		AverageMonthly: decimal.Zero,
	}

	if len(points) == 0 {
		return trend
	}

	var sum decimal.Decimal
	for _, p := range points {
		sum = sum.Add(p.Expenses)
	}
	trend.CurrentMonth = points[len(points)-1].Expenses
	trend.AverageMonthly = sum.Div(decimal.NewFromInt(int64(len(points)))).Round(2)

	if len(points) < 2 {
		return trend
	}

	current, _ := points[len(points)-1].Expenses.Float64()
	previous, _ := points[len(points)-2].Expenses.Float64()

	if previous != 0 {
		trend.ChangePercent = round1((current - previous) / previous * 100)
	}

	switch {
	case trend.ChangePercent > trendIncreasingThreshold:
		trend.Direction = entity.TrendIncreasing
	case trend.ChangePercent < trendDecreasingThreshold:
		trend.Direction = entity.TrendDecreasing
	default:
		trend.Direction = entity.TrendStable
	}

	return trend
}

// computeWeekdayPatterns returns the mean expense amount per weekday name.
func computeWeekdayPatterns(transactions []*entity.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		day := t.Date.Weekday().String()
		sums[day] = sums[day].Add(t.Amount)
		counts[day]++
	}

	patterns := make(map[string]decimal.Decimal, len(sums))
	for day, sum := range sums {
		patterns[day] = sum.Div(decimal.NewFromInt(counts[day])).Round(2)
	}
	return patterns
}

// ComputeCategoryTrends sums expenses per month per subcategory label.
func ComputeCategoryTrends(transactions []*entity.Transaction) map[string]map[string]decimal.Decimal {
	trends := make(map[string]map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		month := t.MonthKey()
		if trends[month] == nil {
			trends[month] = make(map[string]decimal.Decimal)
		}
		trends[month][t.Type] = trends[month][t.Type].Add(t.Amount)
	}
	return trends
}
