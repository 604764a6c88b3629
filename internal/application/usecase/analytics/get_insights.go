package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// GetInsightsInput represents the input for retrieving insights.
type GetInsightsInput struct {
	Now time.Time
}

// GetInsightsOutput bundles the health score with its narrative insights.
type GetInsightsOutput struct {
	HealthScore *entity.HealthScore
	Insights    []string
	// Source is "advisor" when the narrative service produced the insights,
	// "rules" otherwise.
	Source string
}

// GetInsightsUseCase handles narrative insight generation. When the advisor
// service is unavailable or fails, the deterministic rule engine's
// recommendations stand in, so insights never depend on an external call.
type GetInsightsUseCase struct {
	transactionRepo adapter.TransactionRepository
	advisor         adapter.AdvisorService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(transactionRepo adapter.TransactionRepository, advisor adapter.AdvisorService) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		transactionRepo: transactionRepo,
		advisor:         advisor,
	}
}

// Execute scores the snapshot and narrates it.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}

	score := ComputeHealthScore(snapshot)
	summary := ComputeSummary(snapshot, now)

	if uc.advisor != nil && uc.advisor.IsAvailable() {
		insights, err := uc.advisor.Narrate(ctx, score, summary)
		if err != nil {
			slog.Warn("advisor narration failed, falling back to rule engine", "error", err)
		} else if len(insights) > 0 {
			return &GetInsightsOutput{HealthScore: score, Insights: insights, Source: "advisor"}, nil
		}
	}

	return &GetInsightsOutput{
		HealthScore: score,
		Insights:    score.Recommendations,
		Source:      "rules",
	}, nil
}
