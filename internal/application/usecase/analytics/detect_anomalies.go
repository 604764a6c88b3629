package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// anomalyZThreshold flags amounts more than two standard deviations from the
// expense mean.
const anomalyZThreshold = 2.0

// minAnomalySampleSize is the minimum number of expense records before
// anomaly detection produces anything.
const minAnomalySampleSize = 3

// DetectAnomaliesUseCase handles z-score outlier detection over expenses.
type DetectAnomaliesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDetectAnomaliesUseCase creates a new DetectAnomaliesUseCase instance.
func NewDetectAnomaliesUseCase(transactionRepo adapter.TransactionRepository) *DetectAnomaliesUseCase {
	return &DetectAnomaliesUseCase{transactionRepo: transactionRepo}
}

// Execute flags anomalous expenses in the current snapshot.
func (uc *DetectAnomaliesUseCase) Execute(ctx context.Context) ([]entity.Anomaly, error) {
	snapshot, err := uc.transactionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot transactions: %w", err)
	}
	return ComputeAnomalies(snapshot), nil
}

// ComputeAnomalies flags every expense whose absolute z-score against the
// expense population exceeds the threshold. A zero standard deviation (for
// instance a constant-amount series) reports no anomalies rather than
// dividing by zero, and fewer than 3 expense records report none either.
// Output is ordered by date, then ID, so results are deterministic.
func ComputeAnomalies(transactions []*entity.Transaction) []entity.Anomaly {
	expenses := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}
	if len(expenses) < minAnomalySampleSize {
		return []entity.Anomaly{}
	}

	amounts := make([]float64, len(expenses))
	for i, t := range expenses {
		amounts[i], _ = t.Amount.Float64()
	}

	m := mean(amounts)
	std := populationStd(amounts)
	if std == 0 {
		return []entity.Anomaly{}
	}

	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].ID < expenses[j].ID
		}
		return expenses[i].Date.Before(expenses[j].Date)
	})

	anomalies := []entity.Anomaly{}
	for _, t := range expenses {
		amount, _ := t.Amount.Float64()
		z := (amount - m) / std
		if z < 0 {
			z = -z
		}
		if z <= anomalyZThreshold {
			continue
		}

		kind := entity.AnomalyLowSpending
		if amount > m {
			kind = entity.AnomalyHighSpending
		}

		anomalies = append(anomalies, entity.Anomaly{
			TransactionID: t.ID,
			Date:          t.Date,
			Amount:        t.Amount,
			Description:   t.Description,
			ZScore:        round2(z),
			Kind:          kind,
		})
	}
	return anomalies
}
