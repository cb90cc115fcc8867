package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-ledger/internal/analytics"
	"finance-ledger/internal/config"
	"finance-ledger/internal/database"
	"finance-ledger/internal/handlers"
	custommw "finance-ledger/internal/middleware"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	seedDays := flag.Int("seed-days", 0, "seed the ledger with generated sample data covering the trailing N days (development only)")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)

	// Analytics, thresholds taken from configuration
	detector := analytics.NewDetector()
	detector.ZScoreCutoff = cfg.Detection.ZScoreCutoff
	detector.DuplicateCountCutoff = cfg.Detection.DuplicateCountCutoff

	receiptCheck := analytics.NewReceiptCheck()
	receiptCheck.HighAmountThreshold = cfg.Detection.HighAmountThreshold
	receiptCheck.NoveltyAmountThreshold = cfg.Detection.NoveltyAmountThreshold
	receiptCheck.AverageMultiple = cfg.Detection.AverageMultiple

	// Services
	logger := slog.Default()
	metrics := services.NewPrometheusMetrics()
	categoryService := services.NewCategoryService()
	ledgerService := services.NewLedgerService(transactionRepo, categoryService, metrics, logger)
	anomalyService := services.NewAnomalyService(transactionRepo, detector, receiptCheck, metrics, logger)
	summaryService := services.NewSummaryService(transactionRepo, logger)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo, logger)
	receiptService := services.NewReceiptService(ledgerService, anomalyService, categoryService,
		services.NewTextReceiptParser(), logger)

	if *seedDays > 0 {
		if !cfg.IsDevelopment() {
			slog.Error("Refusing to seed outside the development environment")
			os.Exit(1)
		}
		if err := seedLedger(ledgerService, *seedDays); err != nil {
			slog.Error("Failed to seed ledger", "error", err)
			os.Exit(1)
		}
	}

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	anomalyHandler := handlers.NewAnomalyHandler(anomalyService, cfg.Detection)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitPerSec*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.POST("/transactions/import", transactionHandler.ImportStatement)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)

	api.GET("/anomalies", anomalyHandler.ListAnomalies)
	api.POST("/anomalies/check", anomalyHandler.CheckCandidate)

	api.POST("/receipts/confirm", receiptHandler.ConfirmReceipt)
	api.POST("/receipts/parse", receiptHandler.ParseReceipt)
	api.POST("/receipts", receiptHandler.AcceptReceipt)

	api.GET("/summary", summaryHandler.GetSummary)
	api.GET("/summary/monthly", summaryHandler.GetMonthlyBreakdown)
	api.GET("/summary/trend", summaryHandler.GetSpendTrend)
	api.GET("/merchants/top", summaryHandler.GetTopMerchants)

	api.GET("/budgets", budgetHandler.GetBudgetStatuses)
	api.PUT("/budgets/:category", budgetHandler.SetBudget)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(ledgerService, services.NewTransactionGenerator(time.Now().UnixNano()))
		api.POST("/dev/seed", devHandler.SeedLedger)
		slog.Info("Development seed endpoint enabled", "route", "POST /api/v1/dev/seed")
	}

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// setupLogger installs the process-wide slog default. Production gets
// JSON for log aggregation, everything else a human-readable handler.
func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// seedLedger imports a generated sample ledger covering the trailing
// window. The fixed generator seed keeps repeated runs identical.
func seedLedger(ledgerService services.LedgerServiceInterface, days int) error {
	generator := services.NewTransactionGenerator(42)

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	transactions := generator.GenerateLedger(start, end)
	count, err := ledgerService.ImportStatement(transactions)
	if err != nil {
		return err
	}

	slog.Info("Seeded ledger with generated transactions", "count", count, "days", days)
	return nil
}
