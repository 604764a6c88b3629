package entity

import (
	"github.com/shopspring/decimal"
)

// RiskTolerance is the user's declared investment risk profile.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskMedium       RiskTolerance = "medium"
	RiskAggressive   RiskTolerance = "aggressive"
)

// ParseRiskTolerance maps a stored string to a RiskTolerance, substituting
// the documented default for anything unknown or empty.
func ParseRiskTolerance(s string) RiskTolerance {
	switch RiskTolerance(s) {
	case RiskConservative, RiskMedium, RiskAggressive:
		return RiskTolerance(s)
	default:
		return RiskMedium
	}
}

// PortfolioPerformance holds the headline performance figures of the
// portfolio, as supplied by the persistence document.
type PortfolioPerformance struct {
	YTDReturn     float64
	MonthlyReturn float64
	Volatility    float64
}

// Portfolio is the investment portfolio snapshot consumed by analytics.
type Portfolio struct {
	TotalValue  decimal.Decimal
	Allocations map[string]float64 // Asset class -> percentage
	Performance PortfolioPerformance
}

// EmptyPortfolio returns a zero-valued portfolio for documents that omit it.
func EmptyPortfolio() *Portfolio {
	return &Portfolio{
		TotalValue:  decimal.Zero,
		Allocations: map[string]float64{},
	}
}

// FinancialGoal is a named savings target.
type FinancialGoal struct {
	Goal          string
	Target        decimal.Decimal
	TimelineYears int
}

// UserProfile holds the user's preferences and declared context.
type UserProfile struct {
	Name                 string
	RiskTolerance        RiskTolerance
	FinancialGoals       []FinancialGoal
	IncomeSources        []string
	InvestmentExperience string
}

// DefaultUserProfile returns the profile substituted when the persistence
// document carries none.
func DefaultUserProfile() *UserProfile {
	return &UserProfile{
		RiskTolerance:        RiskMedium,
		FinancialGoals:       []FinancialGoal{},
		IncomeSources:        []string{},
		InvestmentExperience: "beginner",
	}
}
