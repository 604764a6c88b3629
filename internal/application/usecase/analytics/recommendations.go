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

// Spending recommendation thresholds.
const (
	lowSavingsRateThreshold  = 20.0
	highExpenseRatioThreshold = 80.0
	// highSpendingMultiplier flags latest-month categories above 1.5x the
	// month's category mean.
	highSpendingMultiplier = 1.5
)

// SpendingRecommendationsInput represents the input for generating
// recommendations.
type SpendingRecommendationsInput struct {
	Now time.Time
}

// SpendingRecommendationsUseCase handles generating threshold-triggered
// spending recommendations.
type SpendingRecommendationsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSpendingRecommendationsUseCase creates a new SpendingRecommendationsUseCase instance.
func NewSpendingRecommendationsUseCase(transactionRepo adapter.TransactionRepository) *SpendingRecommendationsUseCase {
	return &SpendingRecommendationsUseCase{transactionRepo: transactionRepo}
}

// Execute generates recommendations for the current snapshot.
func (uc *SpendingRecommendationsUseCase) Execute(
	ctx context.Context,
	input SpendingRecommendationsInput,
) ([]entity.SpendingRecommendation, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	summary := ComputeSummary(snapshot, now)
	return ComputeSpendingRecommendations(summary, ComputeCategoryTrends(snapshot)), nil
}

// ComputeSpendingRecommendations evaluates the fixed rule list, in order:
// low savings rate, high expense ratio, then high per-category spending in
// the latest month (categories sorted by label). Rules trigger independently
// and are never deduplicated beyond rule identity.
func ComputeSpendingRecommendations(
	summary *entity.FinancialSummary,
	categoryTrends map[string]map[string]decimal.Decimal,
) []entity.SpendingRecommendation {
	recommendations := []entity.SpendingRecommendation{}

	if summary.TransactionCount > 0 && summary.SavingsRate < lowSavingsRateThreshold {
		recommendations = append(recommendations, entity.SpendingRecommendation{
			Level:   entity.RecommendationWarning,
			Title:   "Low Savings Rate",
			Message: fmt.Sprintf("Your savings rate is %.1f%%. Aim for at least 20%%.", summary.SavingsRate),
			Action:  "Review discretionary spending",
		})
	}

	if summary.ExpenseRatio > highExpenseRatioThreshold {
		recommendations = append(recommendations, entity.SpendingRecommendation{
			Level:   entity.RecommendationDanger,
			Title:   "High Expense Ratio",
			Message: fmt.Sprintf("You're spending %.1f%% of your income.", summary.ExpenseRatio),
			Action:  "Create a strict budget",
		})
	}

	recommendations = append(recommendations, highSpendingCategoryRecommendations(categoryTrends)...)

	return recommendations
}

// highSpendingCategoryRecommendations flags latest-month categories whose
// spend exceeds 1.5x the mean across that month's categories.
func highSpendingCategoryRecommendations(
	categoryTrends map[string]map[string]decimal.Decimal,
) []entity.SpendingRecommendation {
	if len(categoryTrends) == 0 {
		return nil
	}

	months := make([]string, 0, len(categoryTrends))
	for month := range categoryTrends {
		months = append(months, month)
	}
	sort.Strings(months)
	latest := categoryTrends[months[len(months)-1]]
	if len(latest) == 0 {
		return nil
	}

	amounts := make([]float64, 0, len(latest))
	for _, amount := range latest {
		v, _ := amount.Float64()
		amounts = append(amounts, v)
	}
	threshold := mean(amounts) * highSpendingMultiplier

	labels := make([]string, 0, len(latest))
	for label := range latest {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var recommendations []entity.SpendingRecommendation
	for _, label := range labels {
		amount, _ := latest[label].Float64()
		if amount <= threshold {
			continue
		}
		recommendations = append(recommendations, entity.SpendingRecommendation{
			Level:   entity.RecommendationInfo,
			Title:   fmt.Sprintf("High %s Spending", label),
			Message: fmt.Sprintf("You spent %s on %s this month.", latest[label].StringFixed(2), label),
			Action:  fmt.Sprintf("Review %s expenses", label),
		})
	}
	return recommendations
}
