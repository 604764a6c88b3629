package analytics

import (
	"fmt"
	"testing"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

func TestComputeSavingsOpportunities(t *testing.T) {
	t.Run("subscription-like descriptions are pooled", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expense(t, "2024-01-05", 15.99, "Entertainment", "Netflix monthly"),
			expense(t, "2024-01-06", 15.99, "Entertainment", "Spotify family plan"),
			expense(t, "2024-01-10", 200, "Food", "Groceries"),
		}

		opportunities := ComputeSavingsOpportunities(transactions)

		if len(opportunities) != 1 {
			t.Fatalf("expected 1 opportunity, got %d", len(opportunities))
		}
		opp := opportunities[0]
		if opp.Kind != "subscriptions" {
			t.Errorf("expected kind subscriptions, got %s", opp.Kind)
		}
		if opp.Priority != entity.PriorityMedium {
			t.Errorf("expected medium priority, got %s", opp.Priority)
		}
		if opp.Description != "Review 2 subscription services costing 31.98 per month" {
			t.Errorf("unexpected description %q", opp.Description)
		}
		if opp.PotentialSavings.StringFixed(2) != "9.59" {
			t.Errorf("expected savings 9.59, got %s", opp.PotentialSavings.StringFixed(2))
		}
	})

	t.Run("tags match subscription keywords too", func(t *testing.T) {
		tagged := expense(t, "2024-01-05", 10, "Entertainment", "Monthly streaming")
		tagged.Tags = []string{"Subscription"}

		opportunities := ComputeSavingsOpportunities([]*entity.Transaction{tagged})

		if len(opportunities) != 1 {
			t.Fatalf("expected 1 opportunity, got %d", len(opportunities))
		}
		if opportunities[0].Kind != "subscriptions" {
			t.Errorf("expected kind subscriptions, got %s", opportunities[0].Kind)
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expense(t, "2024-01-05", 10, "Entertainment", "NETFLIX Premium"),
		}

		opportunities := ComputeSavingsOpportunities(transactions)

		if len(opportunities) != 1 {
			t.Errorf("expected uppercase keyword to match, got %d opportunities", len(opportunities))
		}
	})

	t.Run("high-frequency categories surface after subscriptions", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expense(t, "2024-01-05", 15.99, "Entertainment", "Netflix monthly"),
		}
		for i := 0; i < 9; i++ {
			transactions = append(transactions, expense(t, "2024-01-10", 10, "Food", fmt.Sprintf("Coffee %d", i)))
		}

		opportunities := ComputeSavingsOpportunities(transactions)

		if len(opportunities) != 2 {
			t.Fatalf("expected 2 opportunities, got %d", len(opportunities))
		}
		if opportunities[0].Kind != "subscriptions" {
			t.Errorf("expected subscriptions first, got %s", opportunities[0].Kind)
		}

		freq := opportunities[1]
		if freq.Kind != "high_frequency" {
			t.Errorf("expected kind high_frequency, got %s", freq.Kind)
		}
		if freq.Priority != entity.PriorityLow {
			t.Errorf("expected low priority, got %s", freq.Priority)
		}
		if freq.Description != "High frequency spending on Food (90.00)" {
			t.Errorf("unexpected description %q", freq.Description)
		}
		if freq.PotentialSavings.StringFixed(2) != "13.50" {
			t.Errorf("expected savings 13.50, got %s", freq.PotentialSavings.StringFixed(2))
		}
	})

	t.Run("eight records in a category is not high frequency", func(t *testing.T) {
		var transactions []*entity.Transaction
		for i := 0; i < 8; i++ {
			transactions = append(transactions, expense(t, "2024-01-10", 10, "Food", fmt.Sprintf("Coffee %d", i)))
		}

		opportunities := ComputeSavingsOpportunities(transactions)

		if len(opportunities) != 0 {
			t.Errorf("expected no opportunities at the threshold, got %d", len(opportunities))
		}
	})

	t.Run("income records are ignored", func(t *testing.T) {
		var transactions []*entity.Transaction
		for i := 0; i < 12; i++ {
			transactions = append(transactions, income(t, "2024-01-15", 100, fmt.Sprintf("Royalties %d", i)))
		}
		transactions = append(transactions, income(t, "2024-01-20", 50, "Subscription refund"))

		opportunities := ComputeSavingsOpportunities(transactions)

		if len(opportunities) != 0 {
			t.Errorf("expected income to be ignored, got %d opportunities", len(opportunities))
		}
	})
}
