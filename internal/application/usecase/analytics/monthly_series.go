// Package analytics contains the analytics pipeline use cases: aggregation,
// trends, forecasting, anomaly detection and scoring. Every computation here
// is a pure, synchronous function of the transaction snapshot it is handed;
// no stage mutates its input or shares state across invocations.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/domain/entity"
)

// BuildMonthlySeries buckets transactions by calendar month and returns the
// chronologically ordered series. Only months holding at least one
// transaction appear; gaps are never filled with synthetic buckets.
func BuildMonthlySeries(transactions []*entity.Transaction) []entity.MonthlyPoint {
	buckets := make(map[string]*entity.MonthlyPoint)
	for _, t := range transactions {
		key := t.MonthKey()
		point, ok := buckets[key]
		if !ok {
			point = &entity.MonthlyPoint{
				Month:    key,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = point
		}
		switch t.Category {
		case entity.CategoryIncome:
			point.Income = point.Income.Add(t.Amount)
			point.IncomeCount++
		case entity.CategoryExpense:
			point.Expenses = point.Expenses.Add(t.Amount)
			point.ExpenseCount++
		}
		point.Count++
	}

	series := make([]entity.MonthlyPoint, 0, len(buckets))
	for _, point := range buckets {
		point.Balance = point.Income.Sub(point.Expenses)
		series = append(series, *point)
	}
	// "YYYY-MM" keys sort lexically in chronological order.
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// expensePoints filters the series down to months holding at least one
// expense transaction, mirroring a group-by over the expense subset.
func expensePoints(series []entity.MonthlyPoint) []entity.MonthlyPoint {
	points := make([]entity.MonthlyPoint, 0, len(series))
	for _, p := range series {
		if p.ExpenseCount > 0 {
			points = append(points, p)
		}
	}
	return points
}

// incomePoints filters the series down to months holding at least one income
// transaction.
func incomePoints(series []entity.MonthlyPoint) []entity.MonthlyPoint {
	points := make([]entity.MonthlyPoint, 0, len(series))
	for _, p := range series {
		if p.IncomeCount > 0 {
			points = append(points, p)
		}
	}
	return points
}

// monthLabelAfter returns the "YYYY-MM" label that lies offset months after
// the given month key. An unparseable key falls back to projecting from now.
func monthLabelAfter(monthKey string, offset int, now time.Time) string {
	base, err := time.ParseInLocation(entity.MonthLayout, monthKey, time.UTC)
	if err != nil {
		base = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return base.AddDate(0, offset, 0).Format(entity.MonthLayout)
}
