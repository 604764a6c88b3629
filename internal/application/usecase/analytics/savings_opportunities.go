package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// subscriptionKeywords drive the opportunistic keyword scan over descriptions
// and tags.
var subscriptionKeywords = []string{"subscription", "netflix", "spotify", "prime"}

// Assumed achievable savings shares for the two heuristics.
var (
	subscriptionSavingsShare = decimal.NewFromFloat(0.3)
	highFrequencySavingsShare = decimal.NewFromFloat(0.15)
)

// highFrequencyThreshold is the expense count above which a category reads
// as high-frequency.
const highFrequencyThreshold = 8

// SavingsOpportunitiesUseCase handles surfacing potential savings.
type SavingsOpportunitiesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSavingsOpportunitiesUseCase creates a new SavingsOpportunitiesUseCase instance.
func NewSavingsOpportunitiesUseCase(transactionRepo adapter.TransactionRepository) *SavingsOpportunitiesUseCase {
	return &SavingsOpportunitiesUseCase{transactionRepo: transactionRepo}
}

// Execute surfaces savings opportunities in the current snapshot.
func (uc *SavingsOpportunitiesUseCase) Execute(ctx context.Context) ([]entity.SavingsOpportunity, error) {
	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}
	return ComputeSavingsOpportunities(snapshot), nil
}

// ComputeSavingsOpportunities scans the expense subset with two heuristics:
// subscription-like records by keyword (30% assumed saving, medium priority)
// and categories with more than 8 expense records (15% assumed saving, low
// priority). The subscription opportunity comes first, then categories in
// label order, so output is deterministic.
func ComputeSavingsOpportunities(transactions []*entity.Transaction) []entity.SavingsOpportunity {
	opportunities := []entity.SavingsOpportunity{}

	var subscriptionTotal decimal.Decimal
	subscriptionCount := 0
	categoryTotals := make(map[string]decimal.Decimal)
	categoryCounts := make(map[string]int)

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		if matchesSubscription(t) {
			subscriptionTotal = subscriptionTotal.Add(t.Amount)
			subscriptionCount++
		}
		categoryTotals[t.Type] = categoryTotals[t.Type].Add(t.Amount)
		categoryCounts[t.Type]++
	}

	if subscriptionCount > 0 {
		opportunities = append(opportunities, entity.SavingsOpportunity{
			Kind: "subscriptions",
			Description: fmt.Sprintf("Review %d subscription services costing %s per month",
				subscriptionCount, subscriptionTotal.StringFixed(2)),
			PotentialSavings: subscriptionTotal.Mul(subscriptionSavingsShare).Round(2),
			Priority:         entity.PriorityMedium,
		})
	}

	labels := make([]string, 0, len(categoryCounts))
	for label, count := range categoryCounts {
		if count > highFrequencyThreshold {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	for _, label := range labels {
		total := categoryTotals[label]
		opportunities = append(opportunities, entity.SavingsOpportunity{
			Kind: "high_frequency",
			Description: fmt.Sprintf("High frequency spending on %s (%s)",
				label, total.StringFixed(2)),
			PotentialSavings: total.Mul(highFrequencySavingsShare).Round(2),
			Priority:         entity.PriorityLow,
		})
	}

	return opportunities
}

// matchesSubscription checks the description and tags for subscription-like
// keywords, case-insensitively.
func matchesSubscription(t *entity.Transaction) bool {
	haystacks := make([]string, 0, len(t.Tags)+1)
	haystacks = append(haystacks, strings.ToLower(t.Description))
	for _, tag := range t.Tags {
		haystacks = append(haystacks, strings.ToLower(tag))
	}

	for _, haystack := range haystacks {
		for _, keyword := range subscriptionKeywords {
			if strings.Contains(haystack, keyword) {
				return true
			}
		}
	}
	return false
}
