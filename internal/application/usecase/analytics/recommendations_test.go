package analytics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

func TestComputeSpendingRecommendations(t *testing.T) {
	t.Run("healthy figures produce no recommendations", func(t *testing.T) {
		summary := entity.EmptyFinancialSummary()
		summary.TransactionCount = 5
		summary.SavingsRate = 50
		summary.ExpenseRatio = 50

		recommendations := ComputeSpendingRecommendations(summary, nil)

		if len(recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(recommendations))
		}
	})

	t.Run("low savings rate warns", func(t *testing.T) {
		summary := entity.EmptyFinancialSummary()
		summary.TransactionCount = 5
		summary.SavingsRate = 10
		summary.ExpenseRatio = 50

		recommendations := ComputeSpendingRecommendations(summary, nil)

		if len(recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(recommendations))
		}
		if recommendations[0].Level != entity.RecommendationWarning {
			t.Errorf("expected warning, got %s", recommendations[0].Level)
		}
		if recommendations[0].Title != "Low Savings Rate" {
			t.Errorf("unexpected title %q", recommendations[0].Title)
		}
		if recommendations[0].Message != "Your savings rate is 10.0%. Aim for at least 20%." {
			t.Errorf("unexpected message %q", recommendations[0].Message)
		}
	})

	t.Run("empty snapshot never warns about savings", func(t *testing.T) {
		summary := entity.EmptyFinancialSummary()

		recommendations := ComputeSpendingRecommendations(summary, nil)

		if len(recommendations) != 0 {
			t.Errorf("expected no recommendations for an empty snapshot, got %d", len(recommendations))
		}
	})

	t.Run("high expense ratio escalates to danger", func(t *testing.T) {
		summary := entity.EmptyFinancialSummary()
		summary.TransactionCount = 5
		summary.SavingsRate = 10
		summary.ExpenseRatio = 90

		recommendations := ComputeSpendingRecommendations(summary, nil)

		if len(recommendations) != 2 {
			t.Fatalf("expected 2 recommendations, got %d", len(recommendations))
		}
		if recommendations[0].Level != entity.RecommendationWarning {
			t.Errorf("expected savings warning first, got %s", recommendations[0].Level)
		}
		if recommendations[1].Level != entity.RecommendationDanger {
			t.Errorf("expected danger second, got %s", recommendations[1].Level)
		}
		if recommendations[1].Message != "You're spending 90.0% of your income." {
			t.Errorf("unexpected message %q", recommendations[1].Message)
		}
	})

	t.Run("latest-month category above the mean multiple is flagged", func(t *testing.T) {
		summary := entity.EmptyFinancialSummary()
		summary.TransactionCount = 5
		summary.SavingsRate = 50
		summary.ExpenseRatio = 50

		trends := map[string]map[string]decimal.Decimal{
			"2024-01": {
				"Food": decimal.NewFromInt(5000),
			},
			"2024-02": {
				"Food":      decimal.NewFromInt(1000),
				"Transport": decimal.NewFromInt(100),
				"Utilities": decimal.NewFromInt(100),
			},
		}

		recommendations := ComputeSpendingRecommendations(summary, trends)

		// Only the latest month counts: mean 400, threshold 600, Food flagged.
		if len(recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(recommendations))
		}
		if recommendations[0].Level != entity.RecommendationInfo {
			t.Errorf("expected info, got %s", recommendations[0].Level)
		}
		if recommendations[0].Title != "High Food Spending" {
			t.Errorf("unexpected title %q", recommendations[0].Title)
		}
	})

	t.Run("flagged categories come out in label order", func(t *testing.T) {
		summary := entity.EmptyFinancialSummary()
		summary.TransactionCount = 5
		summary.SavingsRate = 50
		summary.ExpenseRatio = 50

		trends := map[string]map[string]decimal.Decimal{
			"2024-02": {
				"Travel":   decimal.NewFromInt(2000),
				"Shopping": decimal.NewFromInt(2000),
				"Food":     decimal.NewFromInt(100),
				"Transit":  decimal.NewFromInt(100),
			},
		}

		recommendations := ComputeSpendingRecommendations(summary, trends)

		if len(recommendations) != 2 {
			t.Fatalf("expected 2 recommendations, got %d", len(recommendations))
		}
		if recommendations[0].Title != "High Shopping Spending" || recommendations[1].Title != "High Travel Spending" {
			t.Errorf("expected label order Shopping then Travel, got %q and %q",
				recommendations[0].Title, recommendations[1].Title)
		}
	})
}
