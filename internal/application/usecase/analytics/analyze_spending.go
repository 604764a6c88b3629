package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// AnalyzeSpendingInput represents the input for the combined spending
// analysis.
type AnalyzeSpendingInput struct {
	Now time.Time
}

// AnalyzeSpendingUseCase handles the combined analytics pass: monthly trend,
// category breakdown, spending forecast, anomalies and savings opportunities
// from one snapshot read.
type AnalyzeSpendingUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewAnalyzeSpendingUseCase creates a new AnalyzeSpendingUseCase instance.
func NewAnalyzeSpendingUseCase(transactionRepo adapter.TransactionRepository) *AnalyzeSpendingUseCase {
	return &AnalyzeSpendingUseCase{transactionRepo: transactionRepo}
}

// Execute runs the combined analysis over the current snapshot.
func (uc *AnalyzeSpendingUseCase) Execute(ctx context.Context, input AnalyzeSpendingInput) (*entity.SpendingAnalysis, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}
	return ComputeSpendingAnalysis(snapshot, now), nil
}

// ComputeSpendingAnalysis composes the per-concern computations. A snapshot
// with no expense records yields the documented default analysis.
func ComputeSpendingAnalysis(transactions []*entity.Transaction, now time.Time) *entity.SpendingAnalysis {
	hasExpense := false
	for _, t := range transactions {
		if t.IsExpense() {
			hasExpense = true
			break
		}
	}
	if !hasExpense {
		return entity.DefaultSpendingAnalysis()
	}

	series := BuildMonthlySeries(transactions)
	forecast := MovingAverageStrategy{}.Forecast(series, len(transactions), now, DefaultMovingAverageHorizon)

	return &entity.SpendingAnalysis{
		MonthlyTrend:  ComputeMonthlyTrend(series),
		Categories:    ComputeCategoryStats(transactions),
		Forecast:      forecast,
		Anomalies:     ComputeAnomalies(transactions),
		Opportunities: ComputeSavingsOpportunities(transactions),
	}
}

// ComputeCategoryStats aggregates the expense subset per subcategory, sorted
// by total descending with label as tiebreaker. Percentage is each category's
// share of total expenses, rounded to one decimal.
func ComputeCategoryStats(transactions []*entity.Transaction) []entity.CategoryStat {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var totalExpenses decimal.Decimal

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		totals[t.Type] = totals[t.Type].Add(t.Amount)
		counts[t.Type]++
		totalExpenses = totalExpenses.Add(t.Amount)
	}

	stats := make([]entity.CategoryStat, 0, len(totals))
	for label, total := range totals {
		count := counts[label]
		stat := entity.CategoryStat{
			Type:  label,
			Total: total,
			Count: count,
			Mean:  total.Div(decimal.NewFromInt(int64(count))).Round(2),
		}
		if totalExpenses.IsPositive() {
			share, _ := total.Div(totalExpenses).Float64()
			stat.Percentage = round1(share * 100)
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total.Equal(stats[j].Total) {
			return stats[i].Type < stats[j].Type
		}
		return stats[i].Total.GreaterThan(stats[j].Total)
	})
	return stats
}
