package analytics

import (
	"context"
	"fmt"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// Time horizon labels attached to the allocation advice.
const (
	horizonLongTerm   = "long-term"
	horizonMediumTerm = "medium-term"
)

// allocationTables holds the canned allocation advice per risk profile.
// Confidences are fixed, descending with position, so repeated calls with
// the same profile return identical output.
var allocationTables = map[entity.RiskTolerance][]entity.InvestmentRecommendation{
	entity.RiskConservative: {
		{Asset: "Government Bonds", Allocation: 60, ExpectedReturn: 5.5, Confidence: 0.9},
		{Asset: "Blue Chip Stocks", Allocation: 25, ExpectedReturn: 8.2, Confidence: 0.85},
		{Asset: "Fixed Deposits", Allocation: 15, ExpectedReturn: 6.0, Confidence: 0.8},
	},
	entity.RiskMedium: {
		{Asset: "Diversified Stocks", Allocation: 50, ExpectedReturn: 10.5, Confidence: 0.9},
		{Asset: "Corporate Bonds", Allocation: 30, ExpectedReturn: 7.8, Confidence: 0.85},
		{Asset: "Real Estate", Allocation: 20, ExpectedReturn: 9.2, Confidence: 0.8},
	},
	entity.RiskAggressive: {
		{Asset: "Growth Stocks", Allocation: 40, ExpectedReturn: 15.2, Confidence: 0.9},
		{Asset: "Technology ETFs", Allocation: 30, ExpectedReturn: 12.8, Confidence: 0.85},
		{Asset: "Cryptocurrency", Allocation: 20, ExpectedReturn: 25.0, Confidence: 0.8},
		{Asset: "Emerging Markets", Allocation: 10, ExpectedReturn: 18.5, Confidence: 0.75},
	},
}

// InvestmentAdviceUseCase handles allocation advice for the stored risk
// profile.
type InvestmentAdviceUseCase struct {
	profileRepo adapter.ProfileRepository
}

// NewInvestmentAdviceUseCase creates a new InvestmentAdviceUseCase instance.
func NewInvestmentAdviceUseCase(profileRepo adapter.ProfileRepository) *InvestmentAdviceUseCase {
	return &InvestmentAdviceUseCase{profileRepo: profileRepo}
}

// Execute returns the allocation advice for the user's risk tolerance.
func (uc *InvestmentAdviceUseCase) Execute(ctx context.Context) ([]entity.InvestmentRecommendation, error) {
	profile, err := uc.profileRepo.GetUserProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	return ComputeInvestmentAdvice(profile.RiskTolerance), nil
}

// ComputeInvestmentAdvice returns the allocation table for the given risk
// tolerance, falling back to the medium profile for unknown values. The time
// horizon is long-term for aggressive profiles and medium-term otherwise.
func ComputeInvestmentAdvice(tolerance entity.RiskTolerance) []entity.InvestmentRecommendation {
	tolerance = entity.ParseRiskTolerance(string(tolerance))

	table := allocationTables[tolerance]
	horizon := horizonMediumTerm
	if tolerance == entity.RiskAggressive {
		horizon = horizonLongTerm
	}

	recommendations := make([]entity.InvestmentRecommendation, len(table))
	for i, rec := range table {
		rec.TimeHorizon = horizon
		recommendations[i] = rec
	}
	return recommendations
}
