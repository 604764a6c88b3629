package dto

import (
	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// PortfolioPerformanceResponse represents portfolio performance figures.
type PortfolioPerformanceResponse struct {
	YTDReturn     float64 `json:"ytd_return"`
	MonthlyReturn float64 `json:"monthly_return"`
	Volatility    float64 `json:"volatility"`
}

// PortfolioResponse represents the portfolio in API responses.
type PortfolioResponse struct {
	TotalValue  string                       `json:"total_value"`
	Allocations map[string]float64           `json:"allocations"`
	Performance PortfolioPerformanceResponse `json:"performance"`
}

// UpdatePortfolioRequest represents the request body for a portfolio update.
type UpdatePortfolioRequest struct {
	TotalValue  string             `json:"total_value" binding:"required"`
	Allocations map[string]float64 `json:"allocations" binding:"required"`
	Performance struct {
		YTDReturn     float64 `json:"ytd_return"`
		MonthlyReturn float64 `json:"monthly_return"`
		Volatility    float64 `json:"volatility"`
	} `json:"performance"`
}

// FinancialGoalResponse represents one financial goal.
type FinancialGoalResponse struct {
	Goal          string `json:"goal"`
	Target        string `json:"target"`
	TimelineYears int    `json:"timeline"`
}

// UserProfileResponse represents the user profile in API responses.
type UserProfileResponse struct {
	Name                 string                  `json:"name,omitempty"`
	RiskTolerance        string                  `json:"risk_tolerance"`
	FinancialGoals       []FinancialGoalResponse `json:"financial_goals"`
	IncomeSources        []string                `json:"income_sources"`
	InvestmentExperience string                  `json:"investment_experience"`
}

// UpdateUserProfileRequest represents the request body for a profile update.
type UpdateUserProfileRequest struct {
	Name           string `json:"name,omitempty"`
	RiskTolerance  string `json:"risk_tolerance" binding:"required"`
	FinancialGoals []struct {
		Goal          string `json:"goal" binding:"required"`
		Target        string `json:"target" binding:"required"`
		TimelineYears int    `json:"timeline"`
	} `json:"financial_goals"`
	IncomeSources        []string `json:"income_sources"`
	InvestmentExperience string   `json:"investment_experience"`
}

// ToPortfolioResponse converts a Portfolio to its response DTO.
func ToPortfolioResponse(p *entity.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		TotalValue:  p.TotalValue.StringFixed(2),
		Allocations: p.Allocations,
		Performance: PortfolioPerformanceResponse{
			YTDReturn:     p.Performance.YTDReturn,
			MonthlyReturn: p.Performance.MonthlyReturn,
			Volatility:    p.Performance.Volatility,
		},
	}
}

// ToUserProfileResponse converts a UserProfile to its response DTO.
func ToUserProfileResponse(p *entity.UserProfile) UserProfileResponse {
	goals := make([]FinancialGoalResponse, len(p.FinancialGoals))
	for i, g := range p.FinancialGoals {
		goals[i] = FinancialGoalResponse{
			Goal:          g.Goal,
			Target:        g.Target.StringFixed(2),
			TimelineYears: g.TimelineYears,
		}
	}
	return UserProfileResponse{
		Name:                 p.Name,
		RiskTolerance:        string(p.RiskTolerance),
		FinancialGoals:       goals,
		IncomeSources:        p.IncomeSources,
		InvestmentExperience: p.InvestmentExperience,
	}
}

// ToPortfolioEntity converts an update request to a Portfolio entity.
func (r UpdatePortfolioRequest) ToPortfolioEntity() (*entity.Portfolio, error) {
	totalValue, err := decimal.NewFromString(r.TotalValue)
	if err != nil {
		return nil, err
	}
	return &entity.Portfolio{
		TotalValue:  totalValue,
		Allocations: r.Allocations,
		Performance: entity.PortfolioPerformance{
			YTDReturn:     r.Performance.YTDReturn,
			MonthlyReturn: r.Performance.MonthlyReturn,
			Volatility:    r.Performance.Volatility,
		},
	}, nil
}

// ToUserProfileEntity converts an update request to a UserProfile entity.
func (r UpdateUserProfileRequest) ToUserProfileEntity() (*entity.UserProfile, error) {
	goals := make([]entity.FinancialGoal, len(r.FinancialGoals))
	for i, g := range r.FinancialGoals {
		target, err := decimal.NewFromString(g.Target)
		if err != nil {
			return nil, err
		}
		goals[i] = entity.FinancialGoal{
			Goal:          g.Goal,
			Target:        target,
			TimelineYears: g.TimelineYears,
		}
	}

	sources := r.IncomeSources
	if sources == nil {
		sources = []string{}
	}
	experience := r.InvestmentExperience
	if experience == "" {
		experience = "beginner"
	}

	return &entity.UserProfile{
		Name:                 r.Name,
		RiskTolerance:        entity.ParseRiskTolerance(r.RiskTolerance),
		FinancialGoals:       goals,
		IncomeSources:        sources,
		InvestmentExperience: experience,
	}, nil
}
