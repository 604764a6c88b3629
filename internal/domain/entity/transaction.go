// Package entity defines the core business entities for the domain layer.
package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCategory represents the direction of a transaction.
// A transaction is exactly one of Income or Expense; the amount itself is
// always positive and never carries the sign.
type TransactionCategory string

const (
	CategoryIncome  TransactionCategory = "Income"
	CategoryExpense TransactionCategory = "Expense"
)

// TransactionStatus represents the settlement state of a transaction.
// Analytics treats every status as effective.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
)

// DateLayout is the canonical storage format for transaction dates.
const DateLayout = "2006-01-02"

// MonthLayout is the key format for monthly buckets (year + month).
const MonthLayout = "2006-01"

// MaxDescriptionLength is the limit enforced on interactively entered
// descriptions. Programmatic input is not truncated.
const MaxDescriptionLength = 100

// Transaction represents a single financial event.
type Transaction struct {
	ID          string
	Date        time.Time
	Amount      decimal.Decimal // Always positive; direction lives in Category
	Category    TransactionCategory
	Type        string // Subcategory label used as the grouping key (e.g. "Salary", "Food")
	Description string
	Tags        []string
	Status      TransactionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity with a deterministic ID and
// fresh timestamps.
func NewTransaction(
	date time.Time,
	amount decimal.Decimal,
	category TransactionCategory,
	transactionType string,
	description string,
	tags []string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          GenerateTransactionID(date, amount, description),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Type:        transactionType,
		Description: description,
		Tags:        tags,
		Status:      StatusCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GenerateTransactionID derives a short stable identifier from the
// transaction's date, amount and description. The 12-hex-char truncation can
// collide for distinct transactions at scale; that limitation is accepted for
// human-scale personal datasets and is not worked around.
func GenerateTransactionID(date time.Time, amount decimal.Decimal, description string) string {
	seed := fmt.Sprintf("%s_%s_%s", date.Format(DateLayout), amount.StringFixed(2), description)
	sum := md5.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])[:12]
}

// MonthKey returns the monthly bucket key ("YYYY-MM") for the transaction.
// Keys sort lexically in chronological order.
func (t *Transaction) MonthKey() string {
	return t.Date.Format(MonthLayout)
}

// IsIncome reports whether the transaction is an income event.
func (t *Transaction) IsIncome() bool {
	return t.Category == CategoryIncome
}

// IsExpense reports whether the transaction is an expense event.
func (t *Transaction) IsExpense() bool {
	return t.Category == CategoryExpense
}

// WithUpdates returns a copy of the transaction carrying a fresh UpdatedAt.
// The receiver is never mutated; updates always produce a new record.
func (t *Transaction) WithUpdates(apply func(*Transaction)) *Transaction {
	clone := *t
	clone.Tags = append([]string(nil), t.Tags...)
	apply(&clone)
	clone.UpdatedAt = time.Now().UTC()
	return &clone
}
