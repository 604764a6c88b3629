package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "finance_data.json")
}

func storeTransaction(date string, amount float64, category entity.TransactionCategory, txType, description string, tags []string) *entity.Transaction {
	parsed, _ := time.ParseInLocation(entity.DateLayout, date, time.UTC)
	value := decimal.NewFromFloat(amount)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &entity.Transaction{
		ID:          entity.GenerateTransactionID(parsed, value, description),
		Date:        parsed,
		Amount:      value,
		Category:    category,
		Type:        txType,
		Description: description,
		Tags:        tags,
		Status:      entity.StatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestJSONStore_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("a missing file starts an empty store", func(t *testing.T) {
		store, err := NewJSONStore(storePath(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snapshot, err := store.Snapshot(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snapshot) != 0 {
			t.Errorf("expected empty snapshot, got %d records", len(snapshot))
		}

		profile, err := store.GetUserProfile(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.RiskTolerance != entity.RiskMedium {
			t.Errorf("expected default risk tolerance, got %s", profile.RiskTolerance)
		}
		if profile.InvestmentExperience != "beginner" {
			t.Errorf("expected beginner experience, got %s", profile.InvestmentExperience)
		}
	})

	t.Run("created records survive a reload", func(t *testing.T) {
		path := storePath(t)
		store, err := NewJSONStore(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		original := storeTransaction("2024-01-15", 1250.50, entity.CategoryExpense, "Food", "Groceries", []string{"weekly"})
		if err := store.Create(ctx, original); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reloaded, err := NewJSONStore(path)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		found, err := reloaded.FindByID(ctx, original.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if found.Date.Format(entity.DateLayout) != "2024-01-15" {
			t.Errorf("expected date 2024-01-15, got %s", found.Date.Format(entity.DateLayout))
		}
		if found.Amount.StringFixed(2) != "1250.50" {
			t.Errorf("expected amount 1250.50, got %s", found.Amount.StringFixed(2))
		}
		if found.Category != entity.CategoryExpense {
			t.Errorf("expected Expense, got %s", found.Category)
		}
		if len(found.Tags) != 1 || found.Tags[0] != "weekly" {
			t.Errorf("expected tags [weekly], got %v", found.Tags)
		}
		if found.Status != entity.StatusCompleted {
			t.Errorf("expected completed, got %s", found.Status)
		}
	})

	t.Run("duplicate IDs are rejected", func(t *testing.T) {
		store, err := NewJSONStore(storePath(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		record := storeTransaction("2024-01-15", 100, entity.CategoryExpense, "Food", "Groceries", nil)
		if err := store.Create(ctx, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		duplicate := *record
		if err := store.Create(ctx, &duplicate); !errors.Is(err, domainerror.ErrDuplicateTransactionID) {
			t.Errorf("expected ErrDuplicateTransactionID, got %v", err)
		}
	})

	t.Run("update replaces the matched record", func(t *testing.T) {
		store, err := NewJSONStore(storePath(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		record := storeTransaction("2024-01-15", 100, entity.CategoryExpense, "Food", "Groceries", nil)
		if err := store.Create(ctx, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		changed := *record
		changed.Description = "Supermarket"
		if err := store.Update(ctx, &changed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := store.FindByID(ctx, record.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Description != "Supermarket" {
			t.Errorf("expected Supermarket, got %s", found.Description)
		}
	})

	t.Run("delete removes the record", func(t *testing.T) {
		store, err := NewJSONStore(storePath(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		record := storeTransaction("2024-01-15", 100, entity.CategoryExpense, "Food", "Groceries", nil)
		if err := store.Create(ctx, record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(ctx, record.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.FindByID(ctx, record.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("unknown IDs are not found", func(t *testing.T) {
		store, err := NewJSONStore(storePath(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := store.FindByID(ctx, "missing"); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound from FindByID, got %v", err)
		}
		if err := store.Delete(ctx, "missing"); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound from Delete, got %v", err)
		}
	})

	t.Run("corrupt JSON fails the load", func(t *testing.T) {
		path := storePath(t)
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("failed to write corrupt file: %v", err)
		}

		_, err := NewJSONStore(path)
		if !errors.Is(err, domainerror.ErrCorruptDataFile) {
			t.Errorf("expected ErrCorruptDataFile, got %v", err)
		}
	})
}

func TestJSONStore_List(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *JSONStore {
		t.Helper()
		store, err := NewJSONStore(storePath(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		records := []*entity.Transaction{
			storeTransaction("2024-01-10", 100, entity.CategoryExpense, "Food", "Groceries", nil),
			storeTransaction("2024-01-20", 50, entity.CategoryExpense, "Transport", "Fuel", nil),
			storeTransaction("2024-02-15", 5000, entity.CategoryIncome, "Salary", "Monthly salary", nil),
		}
		for _, record := range records {
			if err := store.Create(ctx, record); err != nil {
				t.Fatalf("seed failed: %v", err)
			}
		}
		return store
	}

	t.Run("returns everything newest first without filters", func(t *testing.T) {
		store := seed(t)

		transactions, err := store.List(ctx, adapter.TransactionFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("expected 3 records, got %d", len(transactions))
		}
		if transactions[0].Description != "Monthly salary" {
			t.Errorf("expected newest first, got %s", transactions[0].Description)
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		store := seed(t)

		category := entity.CategoryExpense
		transactions, err := store.List(ctx, adapter.TransactionFilter{Category: &category})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(transactions))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		store := seed(t)

		txType := "Food"
		transactions, err := store.List(ctx, adapter.TransactionFilter{Type: &txType})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].Description != "Groceries" {
			t.Errorf("expected only the Food record, got %d", len(transactions))
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		store := seed(t)

		start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
		transactions, err := store.List(ctx, adapter.TransactionFilter{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("expected 2 records within bounds, got %d", len(transactions))
		}
	})
}

func TestJSONStore_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("portfolio and profile survive a reload", func(t *testing.T) {
		path := storePath(t)
		store, err := NewJSONStore(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		portfolio := &entity.Portfolio{
			TotalValue:  decimal.NewFromInt(250000),
			Allocations: map[string]float64{"stocks": 60, "bonds": 40},
			Performance: entity.PortfolioPerformance{YTDReturn: 8.5, MonthlyReturn: 1.2, Volatility: 5.0},
		}
		if err := store.UpdatePortfolio(ctx, portfolio); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile := &entity.UserProfile{
			Name:          "Test Investor",
			RiskTolerance: entity.RiskAggressive,
			FinancialGoals: []entity.FinancialGoal{
				{Goal: "Retirement", Target: decimal.NewFromInt(1000000), TimelineYears: 20},
			},
			IncomeSources:        []string{"Salary"},
			InvestmentExperience: "advanced",
		}
		if err := store.UpdateUserProfile(ctx, profile); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reloaded, err := NewJSONStore(path)
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}

		gotPortfolio, err := reloaded.GetPortfolio(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPortfolio.TotalValue.StringFixed(2) != "250000.00" {
			t.Errorf("expected total value 250000.00, got %s", gotPortfolio.TotalValue.StringFixed(2))
		}
		if gotPortfolio.Allocations["stocks"] != 60 {
			t.Errorf("expected stocks at 60, got %v", gotPortfolio.Allocations["stocks"])
		}
		if gotPortfolio.Performance.YTDReturn != 8.5 {
			t.Errorf("expected YTD return 8.5, got %v", gotPortfolio.Performance.YTDReturn)
		}

		gotProfile, err := reloaded.GetUserProfile(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotProfile.Name != "Test Investor" {
			t.Errorf("expected Test Investor, got %s", gotProfile.Name)
		}
		if gotProfile.RiskTolerance != entity.RiskAggressive {
			t.Errorf("expected aggressive, got %s", gotProfile.RiskTolerance)
		}
		if len(gotProfile.FinancialGoals) != 1 || gotProfile.FinancialGoals[0].TimelineYears != 20 {
			t.Errorf("expected one 20-year goal, got %+v", gotProfile.FinancialGoals)
		}
	})
}
