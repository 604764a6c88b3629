package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quantum-finance/backend/internal/application/usecase/analytics"
	"github.com/quantum-finance/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	summaryUseCase         *analytics.GetSummaryUseCase
	trendsUseCase          *analytics.GetTrendsUseCase
	forecastUseCase        *analytics.ForecastUseCase
	anomaliesUseCase       *analytics.DetectAnomaliesUseCase
	healthScoreUseCase     *analytics.HealthScoreUseCase
	analyzeUseCase         *analytics.AnalyzeSpendingUseCase
	recommendationsUseCase *analytics.SpendingRecommendationsUseCase
	opportunitiesUseCase   *analytics.SavingsOpportunitiesUseCase
	insightsUseCase        *analytics.GetInsightsUseCase
	investmentUseCase      *analytics.InvestmentAdviceUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	trendsUseCase *analytics.GetTrendsUseCase,
	forecastUseCase *analytics.ForecastUseCase,
	anomaliesUseCase *analytics.DetectAnomaliesUseCase,
	healthScoreUseCase *analytics.HealthScoreUseCase,
	analyzeUseCase *analytics.AnalyzeSpendingUseCase,
	recommendationsUseCase *analytics.SpendingRecommendationsUseCase,
	opportunitiesUseCase *analytics.SavingsOpportunitiesUseCase,
	insightsUseCase *analytics.GetInsightsUseCase,
	investmentUseCase *analytics.InvestmentAdviceUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:         summaryUseCase,
		trendsUseCase:          trendsUseCase,
		forecastUseCase:        forecastUseCase,
		anomaliesUseCase:       anomaliesUseCase,
		healthScoreUseCase:     healthScoreUseCase,
		analyzeUseCase:         analyzeUseCase,
		recommendationsUseCase: recommendationsUseCase,
		opportunitiesUseCase:   opportunitiesUseCase,
		insightsUseCase:        insightsUseCase,
		investmentUseCase:      investmentUseCase,
	}
}

// Summary handles GET /analytics/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	summary, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// Trends handles GET /analytics/trends requests.
func (c *AnalyticsController) Trends(ctx *gin.Context) {
	output, err := c.trendsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// Forecast handles GET /analytics/forecast requests. The strategy and
// horizon query parameters override the configured defaults.
func (c *AnalyticsController) Forecast(ctx *gin.Context) {
	input := analytics.ForecastInput{
		Strategy: ctx.Query("strategy"),
	}
	if horizonStr := ctx.Query("months"); horizonStr != "" {
		horizon, err := strconv.Atoi(horizonStr)
		if err != nil || horizon < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be a positive integer",
			})
			return
		}
		input.Horizon = horizon
	}

	result, err := c.forecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToForecastResponse(result))
}

// Anomalies handles GET /analytics/anomalies requests.
func (c *AnalyticsController) Anomalies(ctx *gin.Context) {
	anomalies, err := c.anomaliesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"anomalies": dto.ToAnomalyResponses(anomalies)})
}

// HealthScore handles GET /analytics/health-score requests.
func (c *AnalyticsController) HealthScore(ctx *gin.Context) {
	score, err := c.healthScoreUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(score))
}

// Analysis handles GET /analytics/analysis requests.
func (c *AnalyticsController) Analysis(ctx *gin.Context) {
	analysis, err := c.analyzeUseCase.Execute(ctx.Request.Context(), analytics.AnalyzeSpendingInput{})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(analysis))
}

// Recommendations handles GET /analytics/recommendations requests.
func (c *AnalyticsController) Recommendations(ctx *gin.Context) {
	recommendations, err := c.recommendationsUseCase.Execute(
		ctx.Request.Context(),
		analytics.SpendingRecommendationsInput{},
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"recommendations": dto.ToRecommendationResponses(recommendations)})
}

// Opportunities handles GET /analytics/opportunities requests.
func (c *AnalyticsController) Opportunities(ctx *gin.Context) {
	opportunities, err := c.opportunitiesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"opportunities": dto.ToOpportunityResponses(opportunities)})
}

// Insights handles GET /analytics/insights requests.
func (c *AnalyticsController) Insights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), analytics.GetInsightsInput{})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.InsightsResponse{
		HealthScore: dto.ToHealthScoreResponse(output.HealthScore),
		Insights:    output.Insights,
		Source:      output.Source,
	})
}

// InvestmentAdvice handles GET /analytics/investment-advice requests.
func (c *AnalyticsController) InvestmentAdvice(ctx *gin.Context) {
	recommendations, err := c.investmentUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"recommendations": dto.ToInvestmentRecommendationResponses(recommendations)})
}
