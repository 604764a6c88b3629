package transaction

import (
	"context"
	"sort"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
)

// memoryRepo is a minimal in-memory TransactionRepository for use case tests.
type memoryRepo struct {
	transactions []*entity.Transaction
}

func (r *memoryRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	for _, existing := range r.transactions {
		if existing.ID == transaction.ID {
			return domainerror.ErrDuplicateTransactionID
		}
	}
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *memoryRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	for i, existing := range r.transactions {
		if existing.ID == transaction.ID {
			r.transactions[i] = transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	for i, existing := range r.transactions {
		if existing.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *memoryRepo) List(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	matches := make([]*entity.Transaction, 0, len(r.transactions))
	for _, t := range r.transactions {
		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		clone := *t
		matches = append(matches, &clone)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Date.After(matches[j].Date) })
	return matches, nil
}

func (r *memoryRepo) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	snapshot := make([]*entity.Transaction, len(r.transactions))
	for i, t := range r.transactions {
		clone := *t
		snapshot[i] = &clone
	}
	return snapshot, nil
}

// memoryProfileRepo serves fixed portfolio and profile values.
type memoryProfileRepo struct {
	portfolio *entity.Portfolio
	profile   *entity.UserProfile
}

func newMemoryProfileRepo() *memoryProfileRepo {
	return &memoryProfileRepo{
		portfolio: entity.EmptyPortfolio(),
		profile:   entity.DefaultUserProfile(),
	}
}

func (r *memoryProfileRepo) GetPortfolio(ctx context.Context) (*entity.Portfolio, error) {
	return r.portfolio, nil
}

func (r *memoryProfileRepo) GetUserProfile(ctx context.Context) (*entity.UserProfile, error) {
	return r.profile, nil
}

func (r *memoryProfileRepo) UpdatePortfolio(ctx context.Context, portfolio *entity.Portfolio) error {
	r.portfolio = portfolio
	return nil
}

func (r *memoryProfileRepo) UpdateUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	r.profile = profile
	return nil
}

// countingCache records invalidations.
type countingCache struct {
	invalidations int
}

func (c *countingCache) Get(ctx context.Context, key string) (*entity.FinancialSummary, error) {
	return nil, nil
}

func (c *countingCache) Set(ctx context.Context, key string, summary *entity.FinancialSummary) error {
	return nil
}

func (c *countingCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	return nil
}
