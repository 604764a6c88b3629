package entity

// HealthBreakdown holds the sub-scores behind the composite health score.
// Every score is in [0, 100].
type HealthBreakdown struct {
	SavingsRate    float64
	ExpenseRatio   float64
	SavingsScore   float64
	StabilityScore float64
	DiversityScore float64
	GrowthScore    float64
}

// HealthScore is the weighted composite financial-health score plus its
// breakdown and the threshold-triggered recommendations, in fixed rule order.
// Derived and ephemeral; never persisted.
type HealthScore struct {
	Score           float64
	Breakdown       *HealthBreakdown
	Recommendations []string
}

// EmptyHealthScore is the result for snapshots with no transactions or no
// income: score 0, no breakdown, no recommendations.
func EmptyHealthScore() *HealthScore {
	return &HealthScore{Recommendations: []string{}}
}
