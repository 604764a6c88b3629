package analytics

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for computing the financial summary.
// A zero Now falls back to the current time; analytics otherwise treats Now
// as the reference date for the "current month" fields.
type GetSummaryInput struct {
	Now time.Time
}

// GetSummaryUseCase handles computing (and memoizing) the financial summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute computes the financial summary over the current snapshot.
// Results are memoized keyed by a content hash of the snapshot plus the
// reference month; cache failures fall back to recomputation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*entity.FinancialSummary, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	key := SummaryCacheKey(snapshot, now)
	if uc.summaryCache != nil {
		cached, err := uc.summaryCache.Get(ctx, key)
		if err != nil {
			slog.Warn("Summary cache lookup failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	summary := ComputeSummary(snapshot, now)

	if uc.summaryCache != nil {
		if err := uc.summaryCache.Set(ctx, key, summary); err != nil {
			slog.Warn("Summary cache store failed", "error", err)
		}
	}

	return summary, nil
}

// ComputeSummary aggregates a transaction snapshot into a FinancialSummary.
// Pure: the snapshot is never mutated and the result is freshly allocated.
// Every ratio with a zero income denominator evaluates to 0.
func ComputeSummary(transactions []*entity.Transaction, now time.Time) *entity.FinancialSummary {
	if len(transactions) == 0 {
		return entity.EmptyFinancialSummary()
	}

	summary := entity.EmptyFinancialSummary()
	summary.TransactionCount = len(transactions)

	for _, t := range transactions {
		switch t.Category {
		case entity.CategoryIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			summary.IncomeBreakdown[t.Type] = summary.IncomeBreakdown[t.Type].Add(t.Amount)
		case entity.CategoryExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			summary.ExpenseBreakdown[t.Type] = summary.ExpenseBreakdown[t.Type].Add(t.Amount)
		}
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)

	series := BuildMonthlySeries(transactions)

	// Current-month fields read the bucket matching the reference date's
	// month; a missing bucket stays zero, no synthetic bucket is created.
	currentKey := now.Format(entity.MonthLayout)
	for _, point := range series {
		if point.Month == currentKey {
			summary.CurrentMonthIncome = point.Income
			summary.CurrentMonthExpenses = point.Expenses
			break
		}
	}

	if summary.TotalIncome.IsPositive() {
		income, _ := summary.TotalIncome.Float64()
		net, _ := summary.NetBalance.Float64()
		expenses, _ := summary.TotalExpenses.Float64()
		summary.SavingsRate = net / income * 100
		summary.ExpenseRatio = expenses / income * 100
	}

	if len(series) > 0 {
		bucketCount := decimal.NewFromInt(int64(len(series)))
		var incomeSum, expenseSum decimal.Decimal
		for _, point := range series {
			incomeSum = incomeSum.Add(point.Income)
			expenseSum = expenseSum.Add(point.Expenses)
		}
		summary.AvgMonthlyIncome = incomeSum.Div(bucketCount).Round(2)
		summary.AvgMonthlyExpense = expenseSum.Div(bucketCount).Round(2)
	}

	return summary
}

// SummaryCacheKey derives the memoization key for a snapshot and reference
// date: a content hash over every record's identity and last mutation, plus
// the reference month the "current month" fields depend on.
func SummaryCacheKey(transactions []*entity.Transaction, now time.Time) string {
	lines := make([]string, 0, len(transactions))
	for _, t := range transactions {
		lines = append(lines, fmt.Sprintf("%s:%d:%s", t.ID, t.UpdatedAt.UnixNano(), t.Amount.String()))
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	h.Write([]byte(now.Format(entity.MonthLayout)))
	return "summary:" + hex.EncodeToString(h.Sum(nil))
}
