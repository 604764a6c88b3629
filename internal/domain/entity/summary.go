package entity

import (
	"github.com/shopspring/decimal"
)

// FinancialSummary is the aggregate view over a transaction snapshot.
// It is recomputed on demand and never mutated in place; callers own the
// returned value.
type FinancialSummary struct {
	TotalIncome          decimal.Decimal
	TotalExpenses        decimal.Decimal
	NetBalance           decimal.Decimal
	CurrentMonthIncome   decimal.Decimal
	CurrentMonthExpenses decimal.Decimal

	// SavingsRate is (net balance / total income) * 100 and ExpenseRatio is
	// (total expenses / total income) * 100. Both are 0 when income is 0.
	SavingsRate  float64
	ExpenseRatio float64

	// Breakdowns map the subcategory label (Transaction.Type) to the summed
	// amount for that label, per category.
	ExpenseBreakdown map[string]decimal.Decimal
	IncomeBreakdown  map[string]decimal.Decimal

	TransactionCount  int
	AvgMonthlyIncome  decimal.Decimal
	AvgMonthlyExpense decimal.Decimal
}

// EmptyFinancialSummary returns the documented all-zero summary produced for
// an empty transaction snapshot.
func EmptyFinancialSummary() *FinancialSummary {
	return &FinancialSummary{
		TotalIncome:          decimal.Zero,
		TotalExpenses:        decimal.Zero,
		NetBalance:           decimal.Zero,
		CurrentMonthIncome:   decimal.Zero,
		CurrentMonthExpenses: decimal.Zero,
		ExpenseBreakdown:     map[string]decimal.Decimal{},
		IncomeBreakdown:      map[string]decimal.Decimal{},
		AvgMonthlyIncome:     decimal.Zero,
		AvgMonthlyExpense:    decimal.Zero,
	}
}

// MonthlyPoint is one entry of the chronological monthly series consumed by
// the trend and forecast estimators. Only months with at least one
// transaction appear; gaps are not filled.
type MonthlyPoint struct {
	Month        string // "YYYY-MM" bucket key
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Balance      decimal.Decimal
	Count        int
	IncomeCount  int
	ExpenseCount int
}
