package adapter

import (
	"context"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// SummaryCache memoizes computed financial summaries keyed by a content hash
// of the input snapshot plus the reference month. The cache is an
// optimization only: a miss or a cache failure falls back to recomputation,
// and any mutation of the transaction set invalidates all entries.
type SummaryCache interface {
	// Get returns the cached summary for the key, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*entity.FinancialSummary, error)

	// Set stores the summary under the key.
	Set(ctx context.Context, key string, summary *entity.FinancialSummary) error

	// Invalidate drops every cached summary.
	Invalidate(ctx context.Context) error
}
