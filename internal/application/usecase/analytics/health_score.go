package analytics

import (
	"context"
	"fmt"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// Health score weights. The composite is a fixed weighted blend of the four
// sub-scores.
const (
	savingsWeight   = 0.4
	stabilityWeight = 0.3
	diversityWeight = 0.2
	growthWeight    = 0.1
)

// Stability is a coarse step on history size, a documented placeholder
// rather than a statistically derived measure.
const (
	stabilityHistoryThreshold = 10
	stabilityScoreLong        = 80.0
	stabilityScoreShort       = 40.0
)

// pointsPerIncomeSource converts distinct income subcategories to the
// diversity score (5 sources saturate at 100).
const pointsPerIncomeSource = 20.0

// healthRule is one threshold-triggered recommendation. Rules live in a
// fixed-order list so output ordering is deterministic and testable.
type healthRule struct {
	triggered func(b *entity.HealthBreakdown) bool
	message   string
}

var healthRules = []healthRule{
	{
		triggered: func(b *entity.HealthBreakdown) bool { return b.SavingsRate < 20 },
		message:   "Increase savings rate to at least 20% of income",
	},
	{
		triggered: func(b *entity.HealthBreakdown) bool { return b.ExpenseRatio > 80 },
		message:   "Reduce expenses to below 80% of income",
	},
	{
		triggered: func(b *entity.HealthBreakdown) bool { return b.DiversityScore < 60 },
		message:   "Diversify income sources for better stability",
	},
	{
		triggered: func(b *entity.HealthBreakdown) bool { return b.SavingsScore < 70 },
		message:   "Focus on building emergency fund",
	},
}

// HealthScoreUseCase handles computing the composite financial-health score.
type HealthScoreUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewHealthScoreUseCase creates a new HealthScoreUseCase instance.
func NewHealthScoreUseCase(transactionRepo adapter.TransactionRepository) *HealthScoreUseCase {
	return &HealthScoreUseCase{transactionRepo: transactionRepo}
}

// Execute scores the current snapshot.
func (uc *HealthScoreUseCase) Execute(ctx context.Context) (*entity.HealthScore, error) {
	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}
	return ComputeHealthScore(snapshot), nil
}

// ComputeHealthScore derives the composite score and its breakdown. Every
// sub-score and the composite stay within [0, 100] for any input. A snapshot
// with no transactions or no income scores 0 with an empty breakdown.
func ComputeHealthScore(transactions []*entity.Transaction) *entity.HealthScore {
	if len(transactions) == 0 {
		return entity.EmptyHealthScore()
	}

	var totalIncome, totalExpenses float64
	for _, t := range transactions {
		amount, _ := t.Amount.Float64()
		switch t.Category {
		case entity.CategoryIncome:
			totalIncome += amount
		case entity.CategoryExpense:
			totalExpenses += amount
		}
	}
	if totalIncome == 0 {
		return entity.EmptyHealthScore()
	}

	savingsRate := (totalIncome - totalExpenses) / totalIncome * 100
	expenseRatio := totalExpenses / totalIncome * 100

	savingsScore := clamp(savingsRate*2, 0, 100)
	stabilityScore := stabilityScoreShort
	if len(transactions) > stabilityHistoryThreshold {
		stabilityScore = stabilityScoreLong
	}
	diversityScore := computeDiversityScore(transactions)
	growthScore := computeGrowthScore(transactions)

	overall := savingsScore*savingsWeight +
		stabilityScore*stabilityWeight +
		diversityScore*diversityWeight +
		growthScore*growthWeight

	breakdown := &entity.HealthBreakdown{
		SavingsRate:    round1(savingsRate),
		ExpenseRatio:   round1(expenseRatio),
		SavingsScore:   round1(savingsScore),
		StabilityScore: round1(stabilityScore),
		DiversityScore: round1(diversityScore),
		GrowthScore:    round1(growthScore),
	}

	recommendations := []string{}
	for _, rule := range healthRules {
		if rule.triggered(breakdown) {
			recommendations = append(recommendations, rule.message)
		}
	}

	return &entity.HealthScore{
		Score:           round1(clamp(overall, 0, 100)),
		Breakdown:       breakdown,
		Recommendations: recommendations,
	}
}

// computeDiversityScore awards 20 points per distinct income subcategory,
// saturating at 100.
func computeDiversityScore(transactions []*entity.Transaction) float64 {
	sources := make(map[string]struct{})
	for _, t := range transactions {
		if t.IsIncome() {
			sources[t.Type] = struct{}{}
		}
	}
	return clamp(float64(len(sources))*pointsPerIncomeSource, 0, 100)
}

// computeGrowthScore rescales the income growth between the first and last
// monthly income bucket onto [0, 100], centered at 50. Fewer than two income
// buckets read as neutral growth.
func computeGrowthScore(transactions []*entity.Transaction) float64 {
	points := incomePoints(BuildMonthlySeries(transactions))
	if len(points) < 2 {
		return 50
	}

	first, _ := points[0].Income.Float64()
	last, _ := points[len(points)-1].Income.Float64()
	if first == 0 {
		return 50
	}

	growthRate := (last - first) / first * 100
	return clamp(growthRate*5+50, 0, 100)
}
