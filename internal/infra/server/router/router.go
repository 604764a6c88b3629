// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/quantum-finance/backend/internal/integration/entrypoint/controller"
	"github.com/quantum-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	analyticsController   *controller.AnalyticsController
	profileController     *controller.ProfileController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	analyticsController *controller.AnalyticsController,
	profileController *controller.ProfileController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		analyticsController:   analyticsController,
		profileController:     profileController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		v1.GET("/export", r.transactionController.Export)

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/summary", r.analyticsController.Summary)
			analytics.GET("/trends", r.analyticsController.Trends)
			analytics.GET("/forecast", r.analyticsController.Forecast)
			analytics.GET("/anomalies", r.analyticsController.Anomalies)
			analytics.GET("/health-score", r.analyticsController.HealthScore)
			analytics.GET("/analysis", r.analyticsController.Analysis)
			analytics.GET("/recommendations", r.analyticsController.Recommendations)
			analytics.GET("/opportunities", r.analyticsController.Opportunities)
			analytics.GET("/insights", r.analyticsController.Insights)
			analytics.GET("/investment-advice", r.analyticsController.InvestmentAdvice)
		}

		v1.GET("/portfolio", r.profileController.GetPortfolio)
		v1.PUT("/portfolio", r.profileController.UpdatePortfolio)
		v1.GET("/profile", r.profileController.GetProfile)
		v1.PUT("/profile", r.profileController.UpdateProfile)
	}
}
