// Package main is the entry point for the Quantum Finance API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/quantum-finance/backend/config"
	"github.com/quantum-finance/backend/internal/application/adapter"
	"github.com/quantum-finance/backend/internal/application/usecase/analytics"
	"github.com/quantum-finance/backend/internal/application/usecase/transaction"
	"github.com/quantum-finance/backend/internal/infra/db"
	"github.com/quantum-finance/backend/internal/infra/sample"
	"github.com/quantum-finance/backend/internal/infra/server/router"
	"github.com/quantum-finance/backend/internal/integration/adapters"
	"github.com/quantum-finance/backend/internal/integration/cache"
	"github.com/quantum-finance/backend/internal/integration/digest"
	"github.com/quantum-finance/backend/internal/integration/entrypoint/controller"
	"github.com/quantum-finance/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Quantum Finance API",
		"environment", cfg.Server.Environment,
		"store_driver", cfg.Store.Driver,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the store backend
	var transactionRepo adapter.TransactionRepository
	var profileRepo adapter.ProfileRepository
	storeHealthChecker := func() bool { return true }

	switch cfg.Store.Driver {
	case config.StoreDriverJSON:
		store, err := persistence.NewJSONStore(cfg.Store.DataFile)
		if err != nil {
			slog.Error("Failed to open data file", "error", err, "path", cfg.Store.DataFile)
			os.Exit(1)
		}
		transactionRepo = store
		profileRepo = store
	default:
		database, err := db.NewConnection(&cfg.Store)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		transactionRepo, profileRepo, err = persistence.NewSQLStore(database.DB())
		if err != nil {
			slog.Error("Failed to initialize store", "error", err)
			os.Exit(1)
		}
		storeHealthChecker = database.HealthCheck
	}

	// Seed the demonstration data set when requested
	if cfg.Store.SeedSampleData {
		generator := sample.NewGenerator(transactionRepo, profileRepo)
		if err := generator.Seed(context.Background(), time.Now().UTC()); err != nil {
			slog.Error("Failed to seed sample data", "error", err)
			os.Exit(1)
		}
		slog.Info("Sample data seeded")
	}

	// Initialize the summary cache: Redis when configured, in-process otherwise
	var summaryCache adapter.SummaryCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		summaryCache = cache.NewRedisSummaryCache(client, cfg.Redis.TTL)
		slog.Info("Summary cache backed by Redis", "addr", cfg.Redis.Addr)
	} else {
		summaryCache = cache.NewMemorySummaryCache()
	}

	// Transaction use cases
	listUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
	updateUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, summaryCache)
	deleteUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)
	exportUseCase := transaction.NewExportDataUseCase(transactionRepo, profileRepo)

	// Analytics use cases
	summaryUseCase := analytics.NewGetSummaryUseCase(transactionRepo, summaryCache)
	trendsUseCase := analytics.NewGetTrendsUseCase(transactionRepo)
	forecastUseCase := analytics.NewForecastUseCase(transactionRepo, cfg.Analytics.ForecastStrategy, cfg.Analytics.ForecastHorizon)
	anomaliesUseCase := analytics.NewDetectAnomaliesUseCase(transactionRepo)
	healthScoreUseCase := analytics.NewHealthScoreUseCase(transactionRepo)
	analyzeUseCase := analytics.NewAnalyzeSpendingUseCase(transactionRepo)
	recommendationsUseCase := analytics.NewSpendingRecommendationsUseCase(transactionRepo)
	opportunitiesUseCase := analytics.NewSavingsOpportunitiesUseCase(transactionRepo)
	investmentUseCase := analytics.NewInvestmentAdviceUseCase(profileRepo)

	advisor := adapters.NewGeminiService(cfg.Advisor.GeminiAPIKey)
	insightsUseCase := analytics.NewGetInsightsUseCase(transactionRepo, advisor)

	// Controllers
	healthController := controller.NewHealthController(storeHealthChecker)
	transactionController := controller.NewTransactionController(
		listUseCase,
		createUseCase,
		updateUseCase,
		deleteUseCase,
		exportUseCase,
	)
	analyticsController := controller.NewAnalyticsController(
		summaryUseCase,
		trendsUseCase,
		forecastUseCase,
		anomaliesUseCase,
		healthScoreUseCase,
		analyzeUseCase,
		recommendationsUseCase,
		opportunitiesUseCase,
		insightsUseCase,
		investmentUseCase,
	)
	profileController := controller.NewProfileController(profileRepo)

	// Setup router
	r := router.NewRouter(healthController, transactionController, analyticsController, profileController)
	engine := r.Setup(cfg.Server.Environment)

	// Background workers share one cancellable context
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if cfg.Analytics.RefreshEnabled {
		refresher := analytics.NewRefresher(summaryUseCase, cfg.Analytics.RefreshInterval)
		go refresher.Start(workerCtx)
	}

	if cfg.Digest.Enabled && cfg.Digest.ResendAPIKey != "" && cfg.Digest.RecipientEmail != "" {
		sender := digest.NewResendClient(cfg.Digest.ResendAPIKey, cfg.Digest.FromName, cfg.Digest.FromEmail)
		service := digest.NewService(transactionRepo, sender, cfg.Digest.RecipientName, cfg.Digest.RecipientEmail)
		worker := digest.NewWorker(service, cfg.Digest.Interval)
		go worker.Start(workerCtx)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
