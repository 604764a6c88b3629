package transaction

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

func seedListRepo(t *testing.T) *memoryRepo {
	t.Helper()
	repo := &memoryRepo{}
	uc := NewCreateTransactionUseCase(repo, nil)

	records := []RawTransaction{
		{Date: "2024-01-10", Amount: "100", Category: "Expense", Type: "Food", Description: "Groceries"},
		{Date: "2024-01-20", Amount: "50", Category: "Expense", Type: "Transport", Description: "Fuel"},
		{Date: "2024-02-15", Amount: "5000", Category: "Income", Type: "Salary", Description: "Monthly salary"},
	}
	for _, raw := range records {
		if _, err := uc.Execute(context.Background(), CreateTransactionInput{Raw: raw}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return repo
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	t.Run("no filters returns everything newest first", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		transactions, err := uc.Execute(context.Background(), ListTransactionsInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		if transactions[0].Description != "Monthly salary" {
			t.Errorf("expected newest first, got %s", transactions[0].Description)
		}
	})

	t.Run("category filter accepts synonyms", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		transactions, err := uc.Execute(context.Background(), ListTransactionsInput{Category: "i"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].Type != "Salary" {
			t.Errorf("expected only the income record, got %d", len(transactions))
		}
	})

	t.Run("the All sentinel means no filter", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		transactions, err := uc.Execute(context.Background(), ListTransactionsInput{Category: "All", Type: "All"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(transactions))
		}
	})

	t.Run("type filter matches the subcategory label", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		transactions, err := uc.Execute(context.Background(), ListTransactionsInput{Type: "Food"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].Description != "Groceries" {
			t.Errorf("expected only the Food record, got %d", len(transactions))
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		transactions, err := uc.Execute(context.Background(), ListTransactionsInput{
			StartDate: "2024-01-10",
			EndDate:   "2024-01-20",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(transactions) != 2 {
			t.Errorf("expected 2 transactions within bounds, got %d", len(transactions))
		}
	})

	t.Run("inverted date range is rejected", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		_, err := uc.Execute(context.Background(), ListTransactionsInput{
			StartDate: "2024-02-01",
			EndDate:   "2024-01-01",
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Errorf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("bad filter dates are validation errors", func(t *testing.T) {
		uc := NewListTransactionsUseCase(seedListRepo(t))

		_, err := uc.Execute(context.Background(), ListTransactionsInput{StartDate: "yesterday"})
		if !errors.Is(err, domainerror.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}
