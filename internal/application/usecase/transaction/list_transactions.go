package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
// Empty strings mean "no filter"; date bounds are inclusive.
type ListTransactionsInput struct {
	Category  string
	Type      string
	StartDate string
	EndDate   string
}

// ListTransactionsUseCase handles filtered listing of transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute retrieves transactions matching the filters, newest first.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) ([]*entity.Transaction, error) {
	filter := adapter.TransactionFilter{}

	if category := strings.TrimSpace(input.Category); category != "" && category != "All" {
		parsed, err := parseCategory(category)
		if err != nil {
			return nil, err
		}
		filter.Category = &parsed
	}

	if txType := strings.TrimSpace(input.Type); txType != "" && txType != "All" {
		filter.Type = &txType
	}

	if input.StartDate != "" {
		start, err := parseDate(input.StartDate)
		if err != nil {
			return nil, err
		}
		filter.StartDate = &start
	}

	if input.EndDate != "" {
		end, err := parseDate(input.EndDate)
		if err != nil {
			return nil, err
		}
		filter.EndDate = &end
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	transactions, err := uc.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
