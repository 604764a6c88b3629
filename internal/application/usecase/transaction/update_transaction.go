package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left untouched; set fields go through the same validation as
// normalization.
type UpdateTransactionInput struct {
	ID          string
	Date        *string
	Amount      *string
	Category    *string
	Type        *string
	Description *string
	Tags        *[]string
	Status      *string
}

// UpdateTransactionUseCase handles patching an existing transaction.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute applies the patch as a new record with a fresh UpdatedAt. The
// stored record is replaced, never mutated in place.
func (uc *UpdateTransactionUseCase) Execute(
	ctx context.Context,
	input UpdateTransactionInput,
) (*entity.Transaction, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var fieldErr error
	updated := existing.WithUpdates(func(t *entity.Transaction) {
		if fieldErr != nil {
			return
		}
		if input.Date != nil {
			t.Date, fieldErr = parseDate(*input.Date)
			if fieldErr != nil {
				return
			}
		}
		if input.Amount != nil {
			t.Amount, fieldErr = parseAmount(*input.Amount)
			if fieldErr != nil {
				return
			}
		}
		if input.Category != nil {
			t.Category, fieldErr = parseCategory(*input.Category)
			if fieldErr != nil {
				return
			}
		}
		if input.Type != nil {
			t.Type = strings.TrimSpace(*input.Type)
		}
		if input.Description != nil {
			description := strings.TrimSpace(*input.Description)
			if description == "" {
				fieldErr = domainerror.NewValidationError(
					domainerror.ErrCodeMissingDescription,
					"description",
					"description is required",
					domainerror.ErrMissingDescription,
				)
				return
			}
			t.Description = description
		}
		if input.Tags != nil {
			t.Tags = normalizeTags(*input.Tags)
		}
		if input.Status != nil {
			status := entity.TransactionStatus(strings.TrimSpace(*input.Status))
			if status != "" {
				t.Status = status
			}
		}
	})
	if fieldErr != nil {
		return nil, fieldErr
	}

	if err := uc.transactionRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateSummaryCache(ctx, uc.summaryCache)

	return updated, nil
}
