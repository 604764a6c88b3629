package analytics

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// testTransaction builds a transaction on the given day with a fixed creation
// time so IDs and cache keys stay deterministic across runs.
func testTransaction(t *testing.T, date string, amount float64, category entity.TransactionCategory, txType, description string) *entity.Transaction {
	t.Helper()

	parsed, err := time.ParseInLocation(entity.DateLayout, date, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}

	value := decimal.NewFromFloat(amount)
	return &entity.Transaction{
		ID:          entity.GenerateTransactionID(parsed, value, description),
		Date:        parsed,
		Amount:      value,
		Category:    category,
		Type:        txType,
		Description: description,
		Tags:        []string{},
		Status:      entity.StatusCompleted,
		CreatedAt:   parsed,
		UpdatedAt:   parsed,
	}
}

func income(t *testing.T, date string, amount float64, txType string) *entity.Transaction {
	t.Helper()
	return testTransaction(t, date, amount, entity.CategoryIncome, txType, txType+" payment")
}

func expense(t *testing.T, date string, amount float64, txType, description string) *entity.Transaction {
	t.Helper()
	return testTransaction(t, date, amount, entity.CategoryExpense, txType, description)
}

func mustDate(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(entity.DateLayout, date, time.UTC)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return parsed
}

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertDecimal(t *testing.T, got decimal.Decimal, want string, field string) {
	t.Helper()
	expected, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("bad expected decimal %q: %v", want, err)
	}
	if !got.Equal(expected) {
		t.Errorf("%s: expected %s, got %s", field, want, got.String())
	}
}

// stubTransactionRepo serves a fixed snapshot; mutation methods are never
// exercised by analytics tests.
type stubTransactionRepo struct {
	snapshot []*entity.Transaction
	err      error
}

func (r *stubTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepo) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	return nil, nil
}

func (r *stubTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *stubTransactionRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *stubTransactionRepo) List(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return r.snapshot, r.err
}

func (r *stubTransactionRepo) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	return r.snapshot, r.err
}

// recordingSummaryCache is an in-memory cache that counts hits and stores.
type recordingSummaryCache struct {
	entries map[string]*entity.FinancialSummary
	gets    int
	sets    int
	hits    int
}

func newRecordingSummaryCache() *recordingSummaryCache {
	return &recordingSummaryCache{entries: map[string]*entity.FinancialSummary{}}
}

func (c *recordingSummaryCache) Get(ctx context.Context, key string) (*entity.FinancialSummary, error) {
	c.gets++
	if summary, ok := c.entries[key]; ok {
		c.hits++
		return summary, nil
	}
	return nil, nil
}

func (c *recordingSummaryCache) Set(ctx context.Context, key string, summary *entity.FinancialSummary) error {
	c.sets++
	c.entries[key] = summary
	return nil
}

func (c *recordingSummaryCache) Invalidate(ctx context.Context) error {
	c.entries = map[string]*entity.FinancialSummary{}
	return nil
}
