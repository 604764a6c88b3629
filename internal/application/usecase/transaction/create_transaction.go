package transaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	Raw RawTransaction
}

// CreateTransactionUseCase handles normalizing and appending a transaction.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
	normalizer      *NormalizeTransactionUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
		normalizer:      NewNormalizeTransactionUseCase(),
	}
}

// Execute normalizes the raw record, appends it to the store and invalidates
// the summary cache.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*entity.Transaction, error) {
	normalized, err := uc.normalizer.Execute(input.Raw)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	invalidateSummaryCache(ctx, uc.summaryCache)

	return normalized, nil
}

// invalidateSummaryCache drops memoized summaries after a mutation. Cache
// failures are logged, never surfaced: the cache is an optimization only.
func invalidateSummaryCache(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}
}
