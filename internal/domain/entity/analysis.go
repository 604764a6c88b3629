package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnomalyKind tags an anomalous amount relative to the expense mean.
type AnomalyKind string

const (
	AnomalyHighSpending AnomalyKind = "high_spending"
	AnomalyLowSpending  AnomalyKind = "low_spending"
)

// Anomaly flags an expense whose amount deviates more than two standard
// deviations from the population mean of the expense subset.
type Anomaly struct {
	TransactionID string
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	ZScore        float64
	Kind          AnomalyKind
}

// CategoryStat is the per-subcategory aggregate used by spending analysis.
type CategoryStat struct {
	Type       string
	Total      decimal.Decimal
	Count      int
	Mean       decimal.Decimal
	Percentage float64 // Share of total expenses, 0 when expenses are 0
}

// OpportunityPriority ranks a savings opportunity.
type OpportunityPriority string

const (
	PriorityMedium OpportunityPriority = "medium"
	PriorityLow    OpportunityPriority = "low"
)

// SavingsOpportunity describes a potential saving surfaced by keyword or
// frequency heuristics.
type SavingsOpportunity struct {
	Kind             string
	Description      string
	PotentialSavings decimal.Decimal
	Priority         OpportunityPriority
}

// RecommendationLevel grades a spending recommendation.
type RecommendationLevel string

const (
	RecommendationInfo    RecommendationLevel = "info"
	RecommendationWarning RecommendationLevel = "warning"
	RecommendationDanger  RecommendationLevel = "danger"
)

// SpendingRecommendation is one threshold-triggered advisory message.
type SpendingRecommendation struct {
	Level   RecommendationLevel
	Title   string
	Message string
	Action  string
}

// SpendingAnalysis bundles the full analytics pass over one snapshot.
type SpendingAnalysis struct {
	MonthlyTrend  *MonthlyTrend
	Categories    []CategoryStat
	Forecast      *ForecastResult
	Anomalies     []Anomaly
	Opportunities []SavingsOpportunity
}

// DefaultSpendingAnalysis is the documented result for an empty snapshot.
func DefaultSpendingAnalysis() *SpendingAnalysis {
	return &SpendingAnalysis{
		MonthlyTrend:  &MonthlyTrend{Direction: TrendStable, CurrentMonth: decimal.Zero, AverageMonthly: decimal.Zero},
		Categories:    []CategoryStat{},
		Forecast:      InsufficientForecast(""),
		Anomalies:     []Anomaly{},
		Opportunities: []SavingsOpportunity{},
	}
}

// InvestmentRecommendation is one entry of the canned allocation advice for a
// risk profile. Confidences are fixed per asset so output is deterministic.
type InvestmentRecommendation struct {
	Asset          string
	Allocation     float64 // Percentage of the portfolio
	ExpectedReturn float64
	Confidence     float64
	TimeHorizon    string
}
