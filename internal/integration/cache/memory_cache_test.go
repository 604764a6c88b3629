package cache

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

func sampleSummary() *entity.FinancialSummary {
	summary := entity.EmptyFinancialSummary()
	summary.TotalIncome = decimal.NewFromInt(1000)
	summary.TotalExpenses = decimal.NewFromInt(400)
	summary.NetBalance = decimal.NewFromInt(600)
	summary.SavingsRate = 60
	summary.TransactionCount = 5
	summary.ExpenseBreakdown["Food"] = decimal.NewFromInt(400)
	summary.IncomeBreakdown["Salary"] = decimal.NewFromInt(1000)
	return summary
}

func TestMemorySummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		cache := NewMemorySummaryCache()

		summary, err := cache.Get(ctx, "summary:missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary != nil {
			t.Error("expected nil on miss")
		}
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		cache := NewMemorySummaryCache()
		if err := cache.Set(ctx, "summary:abc", sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, "summary:abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected a hit")
		}
		if got.TotalIncome.StringFixed(2) != "1000.00" {
			t.Errorf("expected total income 1000.00, got %s", got.TotalIncome.StringFixed(2))
		}
		if got.TransactionCount != 5 {
			t.Errorf("expected count 5, got %d", got.TransactionCount)
		}
	})

	t.Run("callers own the returned value", func(t *testing.T) {
		cache := NewMemorySummaryCache()
		if err := cache.Set(ctx, "summary:abc", sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first, _ := cache.Get(ctx, "summary:abc")
		first.SavingsRate = -1

		second, _ := cache.Get(ctx, "summary:abc")
		if second.SavingsRate != 60 {
			t.Errorf("expected the cached entry untouched, got %v", second.SavingsRate)
		}
	})

	t.Run("breakdown maps are copied, not shared", func(t *testing.T) {
		cache := NewMemorySummaryCache()
		original := sampleSummary()
		if err := cache.Set(ctx, "summary:abc", original); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		original.ExpenseBreakdown["Food"] = decimal.NewFromInt(1)

		first, _ := cache.Get(ctx, "summary:abc")
		first.ExpenseBreakdown["Rent"] = decimal.NewFromInt(9999)
		delete(first.IncomeBreakdown, "Salary")

		second, _ := cache.Get(ctx, "summary:abc")
		if got := second.ExpenseBreakdown["Food"].StringFixed(2); got != "400.00" {
			t.Errorf("expected Food 400.00, got %s", got)
		}
		if _, ok := second.ExpenseBreakdown["Rent"]; ok {
			t.Error("expected the cached entry free of caller-added labels")
		}
		if _, ok := second.IncomeBreakdown["Salary"]; !ok {
			t.Error("expected Salary to survive a caller-side delete")
		}
	})

	t.Run("invalidate drops everything", func(t *testing.T) {
		cache := NewMemorySummaryCache()
		if err := cache.Set(ctx, "summary:abc", sampleSummary()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, "summary:abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected a miss after invalidation")
		}
	})
}
