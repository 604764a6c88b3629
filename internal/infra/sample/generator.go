// Package sample seeds the store with a deterministic demonstration data set.
package sample

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// defaultSeed makes repeated seeding produce the same data set.
const defaultSeed = 42

// monthsOfHistory is how far back the generated history reaches.
const monthsOfHistory = 6

var expenseTypes = []struct {
	label string
	min   float64
	max   float64
}{
	{"Food", 200, 900},
	{"Transport", 50, 400},
	{"Entertainment", 100, 600},
	{"Utilities", 150, 350},
	{"Shopping", 100, 800},
}

// Generator produces the sample document.
type Generator struct {
	transactionRepo adapter.TransactionRepository
	profileRepo     adapter.ProfileRepository
	rng             *rand.Rand
}

// NewGenerator creates a new sample data generator.
func NewGenerator(
	transactionRepo adapter.TransactionRepository,
	profileRepo adapter.ProfileRepository,
) *Generator {
	return &Generator{
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		rng:             rand.New(rand.NewSource(defaultSeed)),
	}
}

// Seed populates an empty store with the demonstration data set. A store
// that already holds transactions is left untouched.
func (g *Generator) Seed(ctx context.Context, now time.Time) error {
	existing, err := g.transactionRepo.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to snapshot transactions: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, t := range g.generateTransactions(now) {
		if err := g.transactionRepo.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	if err := g.profileRepo.UpdatePortfolio(ctx, samplePortfolio()); err != nil {
		return fmt.Errorf("failed to seed portfolio: %w", err)
	}
	if err := g.profileRepo.UpdateUserProfile(ctx, sampleProfile()); err != nil {
		return fmt.Errorf("failed to seed user profile: %w", err)
	}
	return nil
}

func (g *Generator) generateTransactions(now time.Time) []*entity.Transaction {
	var transactions []*entity.Transaction

	for monthsBack := monthsOfHistory - 1; monthsBack >= 0; monthsBack-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -monthsBack, 0)

		salary := entity.NewTransaction(
			monthStart.AddDate(0, 0, 14),
			decimal.NewFromInt(5000),
			entity.CategoryIncome,
			"Salary",
			fmt.Sprintf("Monthly Salary %s", monthStart.Format("January")),
			[]string{"salary", "primary-income"},
		)
		transactions = append(transactions, salary)

		if g.rng.Float64() < 0.5 {
			freelance := entity.NewTransaction(
				monthStart.AddDate(0, 0, 17),
				g.randomAmount(400, 1500),
				entity.CategoryIncome,
				"Freelance",
				fmt.Sprintf("Freelance Project %s", monthStart.Format("January")),
				[]string{"freelance", "side-income"},
			)
			transactions = append(transactions, freelance)
		}

		for _, expense := range expenseTypes {
			count := 1 + g.rng.Intn(3)
			for i := 0; i < count; i++ {
				day := 2 + g.rng.Intn(25)
				t := entity.NewTransaction(
					monthStart.AddDate(0, 0, day),
					g.randomAmount(expense.min, expense.max),
					entity.CategoryExpense,
					expense.label,
					fmt.Sprintf("%s purchase %d", expense.label, i+1),
					[]string{"sample"},
				)
				transactions = append(transactions, t)
			}
		}

		subscription := entity.NewTransaction(
			monthStart.AddDate(0, 0, 4),
			decimal.NewFromFloat(15.99),
			entity.CategoryExpense,
			"Entertainment",
			"Netflix subscription",
			[]string{"subscription"},
		)
		transactions = append(transactions, subscription)
	}

	return transactions
}

func (g *Generator) randomAmount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + g.rng.Float64()*(max-min)).Round(2)
}

func samplePortfolio() *entity.Portfolio {
	return &entity.Portfolio{
		TotalValue: decimal.NewFromInt(1284732),
		Allocations: map[string]float64{
			"stocks":      35,
			"bonds":       25,
			"real_estate": 20,
			"crypto":      10,
			"cash":        5,
			"commodities": 5,
		},
		Performance: entity.PortfolioPerformance{
			YTDReturn:     12.8,
			MonthlyReturn: 2.4,
			Volatility:    8.2,
		},
	}
}

func sampleProfile() *entity.UserProfile {
	return &entity.UserProfile{
		Name:          "Quantum Investor",
		RiskTolerance: entity.RiskMedium,
		FinancialGoals: []entity.FinancialGoal{
			{Goal: "Retirement", Target: decimal.NewFromInt(5000000), TimelineYears: 15},
			{Goal: "Home Purchase", Target: decimal.NewFromInt(2500000), TimelineYears: 5},
		},
		IncomeSources:        []string{"Salary", "Freelance", "Investments"},
		InvestmentExperience: "intermediate",
	}
}
