package cache

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// MemorySummaryCache is the in-process fallback used when no Redis address is
// configured. Same semantics as the Redis cache, minus the TTL backstop.
type MemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string]*entity.FinancialSummary
}

// NewMemorySummaryCache creates a new MemorySummaryCache instance.
func NewMemorySummaryCache() *MemorySummaryCache {
	return &MemorySummaryCache{
		entries: make(map[string]*entity.FinancialSummary),
	}
}

// Get returns the cached summary for the key, or (nil, nil) on a miss.
func (c *MemorySummaryCache) Get(ctx context.Context, key string) (*entity.FinancialSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return cloneSummary(summary), nil
}

// Set stores the summary under the key.
func (c *MemorySummaryCache) Set(ctx context.Context, key string, summary *entity.FinancialSummary) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cloneSummary(summary)
	return nil
}

// Invalidate drops every cached summary.
func (c *MemorySummaryCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entity.FinancialSummary)
	return nil
}

// cloneSummary copies the summary including its breakdown maps, so cached
// entries and callers never share mutable state.
func cloneSummary(summary *entity.FinancialSummary) *entity.FinancialSummary {
	clone := *summary
	clone.ExpenseBreakdown = make(map[string]decimal.Decimal, len(summary.ExpenseBreakdown))
	for label, amount := range summary.ExpenseBreakdown {
		clone.ExpenseBreakdown[label] = amount
	}
	clone.IncomeBreakdown = make(map[string]decimal.Decimal, len(summary.IncomeBreakdown))
	for label, amount := range summary.IncomeBreakdown {
		clone.IncomeBreakdown[label] = amount
	}
	return &clone
}

var _ adapter.SummaryCache = (*MemorySummaryCache)(nil)
