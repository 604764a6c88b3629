package transaction

import (
	"errors"
	"testing"
	"time"

	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

func validRaw() RawTransaction {
	return RawTransaction{
		Date:        "2024-01-15",
		Amount:      "1250.50",
		Category:    "Expense",
		Type:        "Food",
		Description: "Groceries",
		Tags:        []string{"weekly"},
	}
}

func TestNormalizeTransactionUseCase_Execute(t *testing.T) {
	uc := NewNormalizeTransactionUseCase()

	t.Run("normalizes a valid record", func(t *testing.T) {
		normalized, err := uc.Execute(validRaw())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if normalized.Date.Format(entity.DateLayout) != "2024-01-15" {
			t.Errorf("expected date 2024-01-15, got %s", normalized.Date.Format(entity.DateLayout))
		}
		if normalized.Amount.StringFixed(2) != "1250.50" {
			t.Errorf("expected amount 1250.50, got %s", normalized.Amount.StringFixed(2))
		}
		if normalized.Category != entity.CategoryExpense {
			t.Errorf("expected Expense, got %s", normalized.Category)
		}
		if normalized.Status != entity.StatusCompleted {
			t.Errorf("expected default status completed, got %s", normalized.Status)
		}
		if len(normalized.ID) != 12 {
			t.Errorf("expected 12-character ID, got %q", normalized.ID)
		}
	})

	t.Run("accepts day-first date formats", func(t *testing.T) {
		for _, input := range []string{"15-01-2024", "15-01-24"} {
			raw := validRaw()
			raw.Date = input

			normalized, err := uc.Execute(raw)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", input, err)
			}
			if normalized.Date.Format(entity.DateLayout) != "2024-01-15" {
				t.Errorf("%s: expected 2024-01-15, got %s", input, normalized.Date.Format(entity.DateLayout))
			}
		}
	})

	t.Run("rejects an unparseable date", func(t *testing.T) {
		raw := validRaw()
		raw.Date = "January 15th"

		_, err := uc.Execute(raw)
		if !errors.Is(err, domainerror.ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}

		var validationErr *domainerror.ValidationError
		if !errors.As(err, &validationErr) || validationErr.Field != "date" {
			t.Errorf("expected a validation error naming the date field, got %v", err)
		}
	})

	t.Run("strips currency symbols and separators from amounts", func(t *testing.T) {
		for input, want := range map[string]string{
			"₹1,234.50": "1234.50",
			"$99":       "99.00",
			"€ 2 500":   "2500.00",
			"1,000,000": "1000000.00",
		} {
			raw := validRaw()
			raw.Amount = input

			normalized, err := uc.Execute(raw)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", input, err)
			}
			if normalized.Amount.StringFixed(2) != want {
				t.Errorf("%s: expected %s, got %s", input, want, normalized.Amount.StringFixed(2))
			}
		}
	})

	t.Run("rounds amounts to two decimal places", func(t *testing.T) {
		raw := validRaw()
		raw.Amount = "10.556"

		normalized, err := uc.Execute(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if normalized.Amount.StringFixed(2) != "10.56" {
			t.Errorf("expected 10.56, got %s", normalized.Amount.StringFixed(2))
		}
	})

	t.Run("rejects non-positive and non-numeric amounts", func(t *testing.T) {
		for _, input := range []string{"abc", "-50", "0", ""} {
			raw := validRaw()
			raw.Amount = input

			_, err := uc.Execute(raw)
			if !errors.Is(err, domainerror.ErrInvalidAmount) {
				t.Errorf("%q: expected ErrInvalidAmount, got %v", input, err)
			}
		}
	})

	t.Run("maps category synonyms case-insensitively", func(t *testing.T) {
		for input, want := range map[string]entity.TransactionCategory{
			"I":       entity.CategoryIncome,
			"income":  entity.CategoryIncome,
			"INCOME":  entity.CategoryIncome,
			"e":       entity.CategoryExpense,
			"Expense": entity.CategoryExpense,
		} {
			raw := validRaw()
			raw.Category = input

			normalized, err := uc.Execute(raw)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", input, err)
			}
			if normalized.Category != want {
				t.Errorf("%q: expected %s, got %s", input, want, normalized.Category)
			}
		}
	})

	t.Run("rejects unknown categories", func(t *testing.T) {
		raw := validRaw()
		raw.Category = "Transfer"

		_, err := uc.Execute(raw)
		if !errors.Is(err, domainerror.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("rejects a blank description", func(t *testing.T) {
		raw := validRaw()
		raw.Description = "   "

		_, err := uc.Execute(raw)
		if !errors.Is(err, domainerror.ErrMissingDescription) {
			t.Errorf("expected ErrMissingDescription, got %v", err)
		}
	})

	t.Run("generates a deterministic ID", func(t *testing.T) {
		first, err := uc.Execute(validRaw())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(validRaw())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("expected identical IDs, got %s and %s", first.ID, second.ID)
		}

		changed := validRaw()
		changed.Description = "Restaurant"
		third, err := uc.Execute(changed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if third.ID == first.ID {
			t.Error("expected a different ID for a different description")
		}
	})

	t.Run("keeps a supplied ID", func(t *testing.T) {
		raw := validRaw()
		raw.ID = "abc123def456"

		normalized, err := uc.Execute(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if normalized.ID != "abc123def456" {
			t.Errorf("expected supplied ID to survive, got %s", normalized.ID)
		}
	})

	t.Run("trims and deduplicates tags", func(t *testing.T) {
		raw := validRaw()
		raw.Tags = []string{" weekly ", "weekly", "", "food"}

		normalized, err := uc.Execute(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(normalized.Tags) != 2 || normalized.Tags[0] != "weekly" || normalized.Tags[1] != "food" {
			t.Errorf("expected [weekly food], got %v", normalized.Tags)
		}
	})

	t.Run("re-normalizing a serialized record keeps its timestamps", func(t *testing.T) {
		createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		raw := validRaw()
		raw.CreatedAt = createdAt.Format(time.RFC3339Nano)

		normalized, err := uc.Execute(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !normalized.CreatedAt.Equal(createdAt) {
			t.Errorf("expected CreatedAt %v, got %v", createdAt, normalized.CreatedAt)
		}
		if !normalized.UpdatedAt.Equal(createdAt) {
			t.Errorf("expected UpdatedAt to fall back to CreatedAt, got %v", normalized.UpdatedAt)
		}
	})
}
