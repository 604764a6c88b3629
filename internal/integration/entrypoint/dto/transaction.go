package dto

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// CreateTransactionRequest represents the request body for transaction
// creation. Every field arrives as text and goes through normalization, so
// messy dates, currency symbols and category synonyms are accepted here.
type CreateTransactionRequest struct {
	Date        string   `json:"date" binding:"required"`
	Amount      string   `json:"amount" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Tags        []string `json:"tags,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// Validate applies the interactive-input limits that normalization leaves to
// this boundary.
func (r CreateTransactionRequest) Validate() error {
	return validateDescriptionLength(r.Description)
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        *string   `json:"date,omitempty"`
	Amount      *string   `json:"amount,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// Validate applies the interactive-input limits that normalization leaves to
// this boundary.
func (r UpdateTransactionRequest) Validate() error {
	if r.Description == nil {
		return nil
	}
	return validateDescriptionLength(*r.Description)
}

func validateDescriptionLength(description string) error {
	if utf8.RuneCountInString(description) > entity.MaxDescriptionLength {
		return domainerror.NewValidationError(
			domainerror.ErrCodeDescriptionTooLong,
			"description",
			fmt.Sprintf("description must be at most %d characters", entity.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	return nil
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a Transaction entity to its response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format(entity.DateLayout),
		Amount:      t.Amount.StringFixed(2),
		Category:    string(t.Category),
		Type:        t.Type,
		Description: t.Description,
		Tags:        tags,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a transaction slice to the list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
		Count:        len(responses),
	}
}
