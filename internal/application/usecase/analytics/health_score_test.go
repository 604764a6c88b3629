package analytics

import (
	"fmt"
	"testing"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

func TestComputeHealthScore(t *testing.T) {
	t.Run("blends the weighted sub-scores", func(t *testing.T) {
		transactions := []*entity.Transaction{
			income(t, "2024-01-15", 5000, "Salary"),
			income(t, "2024-01-20", 5000, "Freelance"),
			expense(t, "2024-01-25", 4000, "Rent", "Monthly rent"),
		}

		score := ComputeHealthScore(transactions)

		// Savings rate 60 doubles to a capped savings score of 100; short
		// history scores stability 40; two income sources score diversity 40;
		// a single income bucket reads neutral growth 50.
		// 100*0.4 + 40*0.3 + 40*0.2 + 50*0.1 = 65.
		if !floatsClose(score.Score, 65) {
			t.Errorf("expected score 65, got %v", score.Score)
		}

		b := score.Breakdown
		if b == nil {
			t.Fatal("expected a breakdown")
		}
		if !floatsClose(b.SavingsRate, 60) {
			t.Errorf("expected savings rate 60, got %v", b.SavingsRate)
		}
		if !floatsClose(b.ExpenseRatio, 40) {
			t.Errorf("expected expense ratio 40, got %v", b.ExpenseRatio)
		}
		if !floatsClose(b.SavingsScore, 100) {
			t.Errorf("expected savings score 100, got %v", b.SavingsScore)
		}
		if !floatsClose(b.StabilityScore, 40) {
			t.Errorf("expected stability score 40, got %v", b.StabilityScore)
		}
		if !floatsClose(b.DiversityScore, 40) {
			t.Errorf("expected diversity score 40, got %v", b.DiversityScore)
		}
		if !floatsClose(b.GrowthScore, 50) {
			t.Errorf("expected growth score 50, got %v", b.GrowthScore)
		}
	})

	t.Run("empty snapshot scores zero", func(t *testing.T) {
		score := ComputeHealthScore(nil)

		if score.Score != 0 {
			t.Errorf("expected score 0, got %v", score.Score)
		}
		if score.Breakdown != nil {
			t.Error("expected no breakdown")
		}
		if len(score.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(score.Recommendations))
		}
	})

	t.Run("zero income scores zero", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expense(t, "2024-01-25", 4000, "Rent", "Monthly rent"),
		}

		score := ComputeHealthScore(transactions)

		if score.Score != 0 {
			t.Errorf("expected score 0 without income, got %v", score.Score)
		}
	})

	t.Run("recommendations fire in fixed rule order", func(t *testing.T) {
		transactions := []*entity.Transaction{
			income(t, "2024-01-15", 1000, "Salary"),
			expense(t, "2024-01-25", 950, "Rent", "Monthly rent"),
		}

		score := ComputeHealthScore(transactions)

		want := []string{
			"Increase savings rate to at least 20% of income",
			"Reduce expenses to below 80% of income",
			"Diversify income sources for better stability",
			"Focus on building emergency fund",
		}
		if len(score.Recommendations) != len(want) {
			t.Fatalf("expected %d recommendations, got %d", len(want), len(score.Recommendations))
		}
		for i, message := range want {
			if score.Recommendations[i] != message {
				t.Errorf("recommendation %d: expected %q, got %q", i, message, score.Recommendations[i])
			}
		}
	})

	t.Run("healthy finances trigger no low-score rules", func(t *testing.T) {
		transactions := []*entity.Transaction{
			income(t, "2024-01-15", 5000, "Salary"),
			income(t, "2024-01-16", 2000, "Freelance"),
			income(t, "2024-01-17", 1000, "Dividends"),
			expense(t, "2024-01-25", 2000, "Rent", "Monthly rent"),
		}

		score := ComputeHealthScore(transactions)

		if len(score.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %v", score.Recommendations)
		}
	})

	t.Run("score stays within bounds for extreme inputs", func(t *testing.T) {
		var transactions []*entity.Transaction
		for i := 0; i < 20; i++ {
			transactions = append(transactions, income(t, "2024-01-15", 100000, fmt.Sprintf("Source %d", i)))
		}

		score := ComputeHealthScore(transactions)

		if score.Score < 0 || score.Score > 100 {
			t.Errorf("expected score in [0, 100], got %v", score.Score)
		}
		if score.Breakdown.DiversityScore > 100 {
			t.Errorf("expected diversity capped at 100, got %v", score.Breakdown.DiversityScore)
		}
	})

	t.Run("long history raises the stability score", func(t *testing.T) {
		var transactions []*entity.Transaction
		transactions = append(transactions, income(t, "2024-01-15", 10000, "Salary"))
		for i := 0; i < 11; i++ {
			transactions = append(transactions, expense(t, "2024-01-20", 100, "Food", fmt.Sprintf("Groceries %d", i)))
		}

		score := ComputeHealthScore(transactions)

		if !floatsClose(score.Breakdown.StabilityScore, 80) {
			t.Errorf("expected stability score 80, got %v", score.Breakdown.StabilityScore)
		}
	})

	t.Run("rising income raises the growth score", func(t *testing.T) {
		transactions := []*entity.Transaction{
			income(t, "2024-01-15", 1000, "Salary"),
			income(t, "2024-02-15", 1100, "Salary"),
			expense(t, "2024-02-20", 100, "Food", "Groceries"),
		}

		score := ComputeHealthScore(transactions)

		// 10% growth rescales to 10*5 + 50 = 100.
		if !floatsClose(score.Breakdown.GrowthScore, 100) {
			t.Errorf("expected growth score 100, got %v", score.Breakdown.GrowthScore)
		}
	})
}
