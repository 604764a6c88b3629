package adapter

import (
	"context"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// AdvisorService defines the interface for the optional narrative advisor.
// When unavailable, callers fall back to the deterministic rule engine; the
// advisor only ever adds prose on top of the computed figures.
type AdvisorService interface {
	// Narrate turns a health score and summary into free-text insights.
	Narrate(ctx context.Context, score *entity.HealthScore, summary *entity.FinancialSummary) ([]string, error)

	// IsAvailable checks if the advisor is configured.
	IsAvailable() bool
}
