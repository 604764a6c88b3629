// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// RawTransaction is a mapping-shaped record as handed over by the persistence
// document, an import file or an interactive form, before validation.
type RawTransaction struct {
	ID          string
	Date        string
	Amount      string
	Category    string
	Type        string
	Description string
	Tags        []string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// acceptedDateLayouts are tried in order. The first is also the canonical
// storage format (entity.DateLayout is ISO).
var acceptedDateLayouts = []string{
	entity.DateLayout, // 2006-01-02
	"02-01-2006",
	"02-01-06",
}

// currencyGarbage lists the characters stripped from amounts before parsing:
// common currency symbols, thousands separators and spaces.
const currencyGarbage = "₹$€£, "

// NormalizeTransactionUseCase validates and coerces raw records into
// canonical Transaction entities.
type NormalizeTransactionUseCase struct{}

// NewNormalizeTransactionUseCase creates a new NormalizeTransactionUseCase instance.
func NewNormalizeTransactionUseCase() *NormalizeTransactionUseCase {
	return &NormalizeTransactionUseCase{}
}

// Execute produces a canonical Transaction from a raw record, or fails with a
// ValidationError naming the offending field. A failure rejects only this
// record; callers processing a batch continue with the rest.
func (uc *NormalizeTransactionUseCase) Execute(raw RawTransaction) (*entity.Transaction, error) {
	date, err := parseDate(raw.Date)
	if err != nil {
		return nil, err
	}

	amount, err := parseAmount(raw.Amount)
	if err != nil {
		return nil, err
	}

	category, err := parseCategory(raw.Category)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(raw.Description)
	if description == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeMissingDescription,
			"description",
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}

	id := strings.TrimSpace(raw.ID)
	if id == "" {
		id = entity.GenerateTransactionID(date, amount, description)
	}

	status := entity.TransactionStatus(strings.TrimSpace(raw.Status))
	if status == "" {
		status = entity.StatusCompleted
	}

	createdAt := parseTimestamp(raw.CreatedAt, time.Now().UTC())
	updatedAt := parseTimestamp(raw.UpdatedAt, createdAt)

	return &entity.Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Category:    category,
		Type:        strings.TrimSpace(raw.Type),
		Description: description,
		Tags:        normalizeTags(raw.Tags),
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// parseDate accepts ISO year-month-day, day-month-year and 2-digit-year
// day-month-year inputs.
func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range acceptedDateLayouts {
		if date, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return date, nil
		}
	}
	return time.Time{}, domainerror.NewValidationError(
		domainerror.ErrCodeInvalidDate,
		"date",
		"expected YYYY-MM-DD, DD-MM-YYYY or DD-MM-YY",
		domainerror.ErrInvalidDate,
	)
}

// parseAmount strips currency symbols and thousands separators, then requires
// a positive number. Amounts are rounded to two decimal places.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencyGarbage, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(value))

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidAmount,
			"amount",
			"expected a number",
			domainerror.ErrInvalidAmount,
		)
	}
	if !amount.IsPositive() {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidAmount,
			"amount",
			"amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	return amount.Round(2), nil
}

// parseCategory maps the small synonym table, case-insensitively:
// I/Income -> Income, E/Expense -> Expense.
func parseCategory(value string) (entity.TransactionCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "I", "INCOME":
		return entity.CategoryIncome, nil
	case "E", "EXPENSE":
		return entity.CategoryExpense, nil
	default:
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeInvalidCategory,
			"category",
			"expected I/Income or E/Expense",
			domainerror.ErrInvalidCategory,
		)
	}
}

// parseTimestamp keeps a supplied RFC 3339 timestamp and substitutes the
// fallback otherwise, so re-normalizing a serialized record is lossless.
func parseTimestamp(value string, fallback time.Time) time.Time {
	if ts, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value)); err == nil {
		return ts
	}
	return fallback
}

// normalizeTags trims and deduplicates tags, preserving first occurrence order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
