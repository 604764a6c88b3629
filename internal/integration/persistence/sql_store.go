package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
	domainerror "github.com/quantum-finance/backend/internal/domain/error"
	"github.com/quantum-finance/backend/internal/integration/persistence/model"
)

// profileRowID is the fixed primary key of the single profiles row.
const profileRowID = 1

// sqlStore implements the repository interfaces on a relational database.
type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore creates a database-backed store and migrates its tables.
func NewSQLStore(db *gorm.DB) (adapter.TransactionRepository, adapter.ProfileRepository, error) {
	if err := db.AutoMigrate(&model.TransactionModel{}, &model.ProfileModel{}); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	store := &sqlStore{db: db}
	return store, store, nil
}

// Create creates a new transaction in the database.
func (s *sqlStore) Create(ctx context.Context, transaction *entity.Transaction) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domainerror.ErrDuplicateTransactionID
	}

	return s.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction by its ID.
func (s *sqlStore) FindByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// Update replaces the stored record with the given one, matched by ID.
// Select("*") forces every column to be written; a plain struct Updates
// would skip zero-valued fields and leave stale data behind.
func (s *sqlStore) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := s.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Select("*").
		Updates(model.TransactionFromEntity(transaction))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by its ID.
func (s *sqlStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// List retrieves transactions matching the filter, newest first.
func (s *sqlStore) List(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := s.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Snapshot retrieves a copy of every transaction.
func (s *sqlStore) Snapshot(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := s.db.WithContext(ctx).Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// GetPortfolio retrieves the portfolio snapshot.
func (s *sqlStore) GetPortfolio(ctx context.Context) (*entity.Portfolio, error) {
	row, err := s.profileRow(ctx)
	if err != nil {
		return nil, err
	}
	return row.PortfolioEntity(), nil
}

// GetUserProfile retrieves the user profile.
func (s *sqlStore) GetUserProfile(ctx context.Context) (*entity.UserProfile, error) {
	row, err := s.profileRow(ctx)
	if err != nil {
		return nil, err
	}
	return row.UserProfileEntity(), nil
}

// UpdatePortfolio replaces the stored portfolio.
func (s *sqlStore) UpdatePortfolio(ctx context.Context, portfolio *entity.Portfolio) error {
	row, err := s.profileRow(ctx)
	if err != nil {
		return err
	}
	if err := row.SetPortfolio(portfolio); err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}
	return s.db.WithContext(ctx).Save(row).Error
}

// UpdateUserProfile replaces the stored user profile.
func (s *sqlStore) UpdateUserProfile(ctx context.Context, profile *entity.UserProfile) error {
	row, err := s.profileRow(ctx)
	if err != nil {
		return err
	}
	if err := row.SetUserProfile(profile); err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	return s.db.WithContext(ctx).Save(row).Error
}

// profileRow loads the single profiles row, creating it on first use.
func (s *sqlStore) profileRow(ctx context.Context) (*model.ProfileModel, error) {
	var row model.ProfileModel
	result := s.db.WithContext(ctx).Where("id = ?", profileRowID).First(&row)
	if result.Error == nil {
		return &row, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	row = model.ProfileModel{ID: profileRowID}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
