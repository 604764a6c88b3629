// Package model defines persistence models for both store backends.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// DocumentVersion is the schema version written to the JSON document.
const DocumentVersion = "2.0.0"

// FinanceDocument is the on-disk JSON document holding the full state.
type FinanceDocument struct {
	Version      string              `json:"version"`
	Transactions []TransactionRecord `json:"transactions"`
	Portfolio    *PortfolioRecord    `json:"portfolio,omitempty"`
	UserProfile  *UserProfileRecord  `json:"user_profile,omitempty"`
	LastUpdated  string              `json:"last_updated"`
}

// TransactionRecord is the JSON wire form of a transaction.
type TransactionRecord struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}

// PortfolioRecord is the JSON wire form of the portfolio section.
type PortfolioRecord struct {
	TotalValue  decimal.Decimal    `json:"total_value"`
	Allocations map[string]float64 `json:"allocations"`
	Performance struct {
		YTDReturn     float64 `json:"ytd_return"`
		MonthlyReturn float64 `json:"monthly_return"`
		Volatility    float64 `json:"volatility"`
	} `json:"performance"`
}

// UserProfileRecord is the JSON wire form of the user profile section.
type UserProfileRecord struct {
	Name           string       `json:"name,omitempty"`
	RiskTolerance  string       `json:"risk_tolerance"`
	FinancialGoals []GoalRecord `json:"financial_goals"`
	IncomeSources  []string     `json:"income_sources"`
	Experience     string       `json:"investment_experience"`
}

// GoalRecord is the JSON wire form of a financial goal.
type GoalRecord struct {
	Goal     string          `json:"goal"`
	Target   decimal.Decimal `json:"target"`
	Timeline int             `json:"timeline"`
}

// TransactionRecordFromEntity creates a TransactionRecord from a domain
// Transaction entity.
func TransactionRecordFromEntity(t *entity.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:          t.ID,
		Date:        t.Date.Format(entity.DateLayout),
		Amount:      t.Amount,
		Category:    string(t.Category),
		Type:        t.Type,
		Description: t.Description,
		Tags:        t.Tags,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToEntity converts a TransactionRecord to a domain Transaction entity.
// Timestamps absent or unparseable fall back to the record's date.
func (r TransactionRecord) ToEntity() (*entity.Transaction, error) {
	date, err := time.ParseInLocation(entity.DateLayout, r.Date, time.UTC)
	if err != nil {
		return nil, err
	}

	status := entity.TransactionStatus(r.Status)
	if status == "" {
		status = entity.StatusCompleted
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Transaction{
		ID:          r.ID,
		Date:        date,
		Amount:      r.Amount,
		Category:    entity.TransactionCategory(r.Category),
		Type:        r.Type,
		Description: r.Description,
		Tags:        tags,
		Status:      status,
		CreatedAt:   parseTimestampOr(r.CreatedAt, date),
		UpdatedAt:   parseTimestampOr(r.UpdatedAt, date),
	}, nil
}

// PortfolioRecordFromEntity creates a PortfolioRecord from a Portfolio.
func PortfolioRecordFromEntity(p *entity.Portfolio) *PortfolioRecord {
	record := &PortfolioRecord{
		TotalValue:  p.TotalValue,
		Allocations: p.Allocations,
	}
	record.Performance.YTDReturn = p.Performance.YTDReturn
	record.Performance.MonthlyReturn = p.Performance.MonthlyReturn
	record.Performance.Volatility = p.Performance.Volatility
	return record
}

// ToEntity converts a PortfolioRecord to a Portfolio.
func (r *PortfolioRecord) ToEntity() *entity.Portfolio {
	allocations := r.Allocations
	if allocations == nil {
		allocations = map[string]float64{}
	}
	return &entity.Portfolio{
		TotalValue:  r.TotalValue,
		Allocations: allocations,
		Performance: entity.PortfolioPerformance{
			YTDReturn:     r.Performance.YTDReturn,
			MonthlyReturn: r.Performance.MonthlyReturn,
			Volatility:    r.Performance.Volatility,
		},
	}
}

// UserProfileRecordFromEntity creates a UserProfileRecord from a UserProfile.
func UserProfileRecordFromEntity(p *entity.UserProfile) *UserProfileRecord {
	goals := make([]GoalRecord, len(p.FinancialGoals))
	for i, g := range p.FinancialGoals {
		goals[i] = GoalRecord{Goal: g.Goal, Target: g.Target, Timeline: g.TimelineYears}
	}
	return &UserProfileRecord{
		Name:           p.Name,
		RiskTolerance:  string(p.RiskTolerance),
		FinancialGoals: goals,
		IncomeSources:  p.IncomeSources,
		Experience:     p.InvestmentExperience,
	}
}

// ToEntity converts a UserProfileRecord to a UserProfile. Unknown risk
// tolerances fall back to the default and nil slices come back empty.
func (r *UserProfileRecord) ToEntity() *entity.UserProfile {
	goals := make([]entity.FinancialGoal, len(r.FinancialGoals))
	for i, g := range r.FinancialGoals {
		goals[i] = entity.FinancialGoal{Goal: g.Goal, Target: g.Target, TimelineYears: g.Timeline}
	}

	sources := r.IncomeSources
	if sources == nil {
		sources = []string{}
	}

	experience := r.Experience
	if experience == "" {
		experience = "beginner"
	}

	return &entity.UserProfile{
		Name:                 r.Name,
		RiskTolerance:        entity.ParseRiskTolerance(r.RiskTolerance),
		FinancialGoals:       goals,
		IncomeSources:        sources,
		InvestmentExperience: experience,
	}
}

func parseTimestampOr(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts
	}
	return fallback
}
