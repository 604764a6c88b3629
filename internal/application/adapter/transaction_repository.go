// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Date bounds are inclusive at day granularity.
type TransactionFilter struct {
	Category  *entity.TransactionCategory
	Type      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRepository defines the interface for transaction persistence
// operations. Implementations hand out snapshots: the slices returned by
// Snapshot and List are owned by the caller and never shared with concurrent
// mutations.
type TransactionRepository interface {
	// Create appends a new transaction to the store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// Update replaces the stored record with the given one, matched by ID.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by its ID.
	Delete(ctx context.Context, id string) error

	// List retrieves transactions matching the filter, newest first.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Snapshot retrieves a copy of every transaction for analytics
	// computations, in no particular order.
	Snapshot(ctx context.Context) ([]*entity.Transaction, error)
}

// ProfileRepository defines the interface for the portfolio and user-profile
// portions of the persisted document. Missing optional sections yield the
// documented defaults, never an error.
type ProfileRepository interface {
	// GetPortfolio retrieves the portfolio snapshot.
	GetPortfolio(ctx context.Context) (*entity.Portfolio, error)

	// GetUserProfile retrieves the user profile.
	GetUserProfile(ctx context.Context) (*entity.UserProfile, error)

	// UpdatePortfolio replaces the stored portfolio.
	UpdatePortfolio(ctx context.Context, portfolio *entity.Portfolio) error

	// UpdateUserProfile replaces the stored user profile.
	UpdateUserProfile(ctx context.Context, profile *entity.UserProfile) error
}
