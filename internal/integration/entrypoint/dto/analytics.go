package dto

import (
	"github.com/shopspring/decimal"

	"github.com/quantum-finance/backend/internal/application/usecase/analytics"
	"github.com/quantum-finance/backend/internal/domain/entity"
)

// SummaryResponse represents the financial summary in API responses.
// Decimal amounts render as fixed two-decimal strings.
type SummaryResponse struct {
	TotalIncome          string             `json:"total_income"`
	TotalExpenses        string             `json:"total_expenses"`
	NetBalance           string             `json:"net_balance"`
	CurrentMonthIncome   string             `json:"current_month_income"`
	CurrentMonthExpenses string             `json:"current_month_expenses"`
	SavingsRate          float64            `json:"savings_rate"`
	ExpenseRatio         float64            `json:"expense_ratio"`
	ExpenseBreakdown     map[string]string  `json:"expense_breakdown"`
	IncomeBreakdown      map[string]string  `json:"income_breakdown"`
	TransactionCount     int                `json:"transaction_count"`
	AvgMonthlyIncome     string             `json:"avg_monthly_income"`
	AvgMonthlyExpense    string             `json:"avg_monthly_expense"`
}

// MonthlyTrendResponse represents the month-over-month trend.
type MonthlyTrendResponse struct {
	Direction      string  `json:"trend"`
	ChangePercent  float64 `json:"change_percent"`
	CurrentMonth   string  `json:"current_month"`
	AverageMonthly string  `json:"average_monthly"`
}

// TrendsResponse represents the trend analysis in API responses.
type TrendsResponse struct {
	MonthlyTrend    MonthlyTrendResponse         `json:"monthly_trend"`
	WeekdayPatterns map[string]string            `json:"weekday_patterns"`
	CategoryTrends  map[string]map[string]string `json:"category_trends"`
}

// ForecastPointResponse represents one projected month.
type ForecastPointResponse struct {
	Month          string  `json:"month"`
	Predicted      string  `json:"predicted_amount"`
	ConfidenceLow  string  `json:"confidence_low,omitempty"`
	ConfidenceHigh string  `json:"confidence_high,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
}

// ForecastResponse represents a forecast in API responses.
type ForecastResponse struct {
	Insufficient bool                    `json:"insufficient_data"`
	Strategy     string                  `json:"strategy"`
	Points       []ForecastPointResponse `json:"points"`
	RSquared     float64                 `json:"r_squared,omitempty"`
	Trend        string                  `json:"trend,omitempty"`
}

// AnomalyResponse represents one flagged expense.
type AnomalyResponse struct {
	TransactionID string  `json:"transaction_id"`
	Date          string  `json:"date"`
	Amount        string  `json:"amount"`
	Description   string  `json:"description"`
	ZScore        float64 `json:"z_score"`
	Kind          string  `json:"type"`
}

// HealthBreakdownResponse represents the health sub-scores.
type HealthBreakdownResponse struct {
	SavingsRate    float64 `json:"savings_rate"`
	ExpenseRatio   float64 `json:"expense_ratio"`
	SavingsScore   float64 `json:"savings_score"`
	StabilityScore float64 `json:"stability_score"`
	DiversityScore float64 `json:"diversity_score"`
	GrowthScore    float64 `json:"growth_score"`
}

// HealthScoreResponse represents the composite health score.
type HealthScoreResponse struct {
	Score           float64                  `json:"score"`
	Breakdown       *HealthBreakdownResponse `json:"breakdown,omitempty"`
	Recommendations []string                 `json:"recommendations"`
}

// CategoryStatResponse represents one per-category aggregate.
type CategoryStatResponse struct {
	Type       string  `json:"type"`
	Total      string  `json:"sum"`
	Count      int     `json:"count"`
	Mean       string  `json:"mean"`
	Percentage float64 `json:"percentage"`
}

// OpportunityResponse represents one savings opportunity.
type OpportunityResponse struct {
	Kind             string `json:"type"`
	Description      string `json:"description"`
	PotentialSavings string `json:"potential_savings"`
	Priority         string `json:"priority"`
}

// RecommendationResponse represents one spending recommendation.
type RecommendationResponse struct {
	Level   string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// AnalysisResponse represents the combined spending analysis.
type AnalysisResponse struct {
	MonthlyTrend  MonthlyTrendResponse   `json:"monthly_trend"`
	Categories    []CategoryStatResponse `json:"category_analysis"`
	Forecast      ForecastResponse       `json:"forecast"`
	Anomalies     []AnomalyResponse      `json:"anomalies"`
	Opportunities []OpportunityResponse  `json:"savings_opportunities"`
}

// InsightsResponse represents the narrative insights.
type InsightsResponse struct {
	HealthScore HealthScoreResponse `json:"health_score"`
	Insights    []string            `json:"insights"`
	Source      string              `json:"source"`
}

// InvestmentRecommendationResponse represents one allocation advice entry.
type InvestmentRecommendationResponse struct {
	Asset          string  `json:"asset"`
	Allocation     float64 `json:"allocation"`
	ExpectedReturn float64 `json:"expected_return"`
	Confidence     float64 `json:"confidence"`
	TimeHorizon    string  `json:"time_horizon"`
}

// ToSummaryResponse converts a FinancialSummary to its response DTO.
func ToSummaryResponse(s *entity.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:          s.TotalIncome.StringFixed(2),
		TotalExpenses:        s.TotalExpenses.StringFixed(2),
		NetBalance:           s.NetBalance.StringFixed(2),
		CurrentMonthIncome:   s.CurrentMonthIncome.StringFixed(2),
		CurrentMonthExpenses: s.CurrentMonthExpenses.StringFixed(2),
		SavingsRate:          s.SavingsRate,
		ExpenseRatio:         s.ExpenseRatio,
		ExpenseBreakdown:     decimalMapToStrings(s.ExpenseBreakdown),
		IncomeBreakdown:      decimalMapToStrings(s.IncomeBreakdown),
		TransactionCount:     s.TransactionCount,
		AvgMonthlyIncome:     s.AvgMonthlyIncome.StringFixed(2),
		AvgMonthlyExpense:    s.AvgMonthlyExpense.StringFixed(2),
	}
}

// ToMonthlyTrendResponse converts a MonthlyTrend to its response DTO.
func ToMonthlyTrendResponse(t *entity.MonthlyTrend) MonthlyTrendResponse {
	return MonthlyTrendResponse{
		Direction:      string(t.Direction),
		ChangePercent:  t.ChangePercent,
		CurrentMonth:   t.CurrentMonth.StringFixed(2),
		AverageMonthly: t.AverageMonthly.StringFixed(2),
	}
}

// ToTrendsResponse converts the trend analysis output to its response DTO.
func ToTrendsResponse(output *analytics.GetTrendsOutput) TrendsResponse {
	categoryTrends := make(map[string]map[string]string, len(output.CategoryTrends))
	for month, categories := range output.CategoryTrends {
		categoryTrends[month] = decimalMapToStrings(categories)
	}
	return TrendsResponse{
		MonthlyTrend:    ToMonthlyTrendResponse(output.MonthlyTrend),
		WeekdayPatterns: decimalMapToStrings(output.WeekdayPatterns),
		CategoryTrends:  categoryTrends,
	}
}

// ToForecastResponse converts a ForecastResult to its response DTO.
func ToForecastResponse(f *entity.ForecastResult) ForecastResponse {
	points := make([]ForecastPointResponse, len(f.Points))
	for i, p := range f.Points {
		point := ForecastPointResponse{
			Month:      p.MonthLabel,
			Predicted:  p.Predicted.StringFixed(2),
			Confidence: p.Confidence,
		}
		if p.Confidence == 0 {
			point.ConfidenceLow = p.ConfidenceLow.StringFixed(2)
			point.ConfidenceHigh = p.ConfidenceHigh.StringFixed(2)
		}
		points[i] = point
	}
	if points == nil {
		points = []ForecastPointResponse{}
	}
	return ForecastResponse{
		Insufficient: f.Insufficient,
		Strategy:     f.Strategy,
		Points:       points,
		RSquared:     f.RSquared,
		Trend:        string(f.Trend),
	}
}

// ToAnomalyResponses converts anomalies to their response DTOs.
func ToAnomalyResponses(anomalies []entity.Anomaly) []AnomalyResponse {
	responses := make([]AnomalyResponse, len(anomalies))
	for i, a := range anomalies {
		responses[i] = AnomalyResponse{
			TransactionID: a.TransactionID,
			Date:          a.Date.Format(entity.DateLayout),
			Amount:        a.Amount.StringFixed(2),
			Description:   a.Description,
			ZScore:        a.ZScore,
			Kind:          string(a.Kind),
		}
	}
	return responses
}

// ToHealthScoreResponse converts a HealthScore to its response DTO.
func ToHealthScoreResponse(score *entity.HealthScore) HealthScoreResponse {
	response := HealthScoreResponse{
		Score:           score.Score,
		Recommendations: score.Recommendations,
	}
	if score.Breakdown != nil {
		response.Breakdown = &HealthBreakdownResponse{
			SavingsRate:    score.Breakdown.SavingsRate,
			ExpenseRatio:   score.Breakdown.ExpenseRatio,
			SavingsScore:   score.Breakdown.SavingsScore,
			StabilityScore: score.Breakdown.StabilityScore,
			DiversityScore: score.Breakdown.DiversityScore,
			GrowthScore:    score.Breakdown.GrowthScore,
		}
	}
	return response
}

// ToAnalysisResponse converts a SpendingAnalysis to its response DTO.
func ToAnalysisResponse(analysis *entity.SpendingAnalysis) AnalysisResponse {
	categories := make([]CategoryStatResponse, len(analysis.Categories))
	for i, c := range analysis.Categories {
		categories[i] = CategoryStatResponse{
			Type:       c.Type,
			Total:      c.Total.StringFixed(2),
			Count:      c.Count,
			Mean:       c.Mean.StringFixed(2),
			Percentage: c.Percentage,
		}
	}
	return AnalysisResponse{
		MonthlyTrend:  ToMonthlyTrendResponse(analysis.MonthlyTrend),
		Categories:    categories,
		Forecast:      ToForecastResponse(analysis.Forecast),
		Anomalies:     ToAnomalyResponses(analysis.Anomalies),
		Opportunities: ToOpportunityResponses(analysis.Opportunities),
	}
}

// ToOpportunityResponses converts savings opportunities to their response DTOs.
func ToOpportunityResponses(opportunities []entity.SavingsOpportunity) []OpportunityResponse {
	responses := make([]OpportunityResponse, len(opportunities))
	for i, o := range opportunities {
		responses[i] = OpportunityResponse{
			Kind:             o.Kind,
			Description:      o.Description,
			PotentialSavings: o.PotentialSavings.StringFixed(2),
			Priority:         string(o.Priority),
		}
	}
	return responses
}

// ToRecommendationResponses converts spending recommendations to their
// response DTOs.
func ToRecommendationResponses(recommendations []entity.SpendingRecommendation) []RecommendationResponse {
	responses := make([]RecommendationResponse, len(recommendations))
	for i, r := range recommendations {
		responses[i] = RecommendationResponse{
			Level:   string(r.Level),
			Title:   r.Title,
			Message: r.Message,
			Action:  r.Action,
		}
	}
	return responses
}

// ToInvestmentRecommendationResponses converts allocation advice to its
// response DTOs.
func ToInvestmentRecommendationResponses(recommendations []entity.InvestmentRecommendation) []InvestmentRecommendationResponse {
	responses := make([]InvestmentRecommendationResponse, len(recommendations))
	for i, r := range recommendations {
		responses[i] = InvestmentRecommendationResponse{
			Asset:          r.Asset,
			Allocation:     r.Allocation,
			ExpectedReturn: r.ExpectedReturn,
			Confidence:     r.Confidence,
			TimeHorizon:    r.TimeHorizon,
		}
	}
	return responses
}

func decimalMapToStrings(m map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.StringFixed(2)
	}
	return out
}
