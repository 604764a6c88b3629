package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          string          `gorm:"type:varchar(12);primaryKey"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(10);not null;index"`
	Type        string          `gorm:"type:varchar(50);not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Tags        string          `gorm:"type:text"` // JSON-encoded string array
	Status      string          `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	tags := []string{}
	if m.Tags != "" {
		// Unreadable tag payloads degrade to no tags rather than failing the read.
		_ = json.Unmarshal([]byte(m.Tags), &tags)
	}

	return &entity.Transaction{
		ID:          m.ID,
		Date:        m.Date.UTC(),
		Amount:      m.Amount,
		Category:    entity.TransactionCategory(m.Category),
		Type:        m.Type,
		Description: m.Description,
		Tags:        tags,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction
// entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	tags, _ := json.Marshal(transaction.Tags)

	return &TransactionModel{
		ID:          transaction.ID,
		Date:        transaction.Date,
		Amount:      transaction.Amount,
		Category:    string(transaction.Category),
		Type:        transaction.Type,
		Description: transaction.Description,
		Tags:        string(tags),
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// ProfileModel represents the single-row profiles table holding the
// portfolio and user-profile sections as JSON payloads.
type ProfileModel struct {
	ID          uint   `gorm:"primaryKey"`
	Portfolio   string `gorm:"type:text"`
	UserProfile string `gorm:"type:text"`
	UpdatedAt   time.Time
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// PortfolioEntity decodes the portfolio payload, substituting the empty
// portfolio when absent or unreadable.
func (m *ProfileModel) PortfolioEntity() *entity.Portfolio {
	if m.Portfolio == "" {
		return entity.EmptyPortfolio()
	}
	var record PortfolioRecord
	if err := json.Unmarshal([]byte(m.Portfolio), &record); err != nil {
		return entity.EmptyPortfolio()
	}
	return record.ToEntity()
}

// UserProfileEntity decodes the user-profile payload, substituting the
// default profile when absent or unreadable.
func (m *ProfileModel) UserProfileEntity() *entity.UserProfile {
	if m.UserProfile == "" {
		return entity.DefaultUserProfile()
	}
	var record UserProfileRecord
	if err := json.Unmarshal([]byte(m.UserProfile), &record); err != nil {
		return entity.DefaultUserProfile()
	}
	return record.ToEntity()
}

// SetPortfolio encodes the portfolio payload.
func (m *ProfileModel) SetPortfolio(p *entity.Portfolio) error {
	raw, err := json.Marshal(PortfolioRecordFromEntity(p))
	if err != nil {
		return err
	}
	m.Portfolio = string(raw)
	return nil
}

// SetUserProfile encodes the user-profile payload.
func (m *ProfileModel) SetUserProfile(p *entity.UserProfile) error {
	raw, err := json.Marshal(UserProfileRecordFromEntity(p))
	if err != nil {
		return err
	}
	m.UserProfile = string(raw)
	return nil
}
