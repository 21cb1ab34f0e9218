package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-trading-dashboard/internal/dashboard/config"
	delivery "golang-trading-dashboard/internal/dashboard/delivery/http"
	_ "golang-trading-dashboard/internal/dashboard/docs"
	"golang-trading-dashboard/internal/dashboard/dto"
	"golang-trading-dashboard/internal/dashboard/repository"
	"golang-trading-dashboard/internal/dashboard/service"
	"golang-trading-dashboard/pkg/logger"
	"golang-trading-dashboard/pkg/postgres"
	"golang-trading-dashboard/pkg/redis"
	"golang-trading-dashboard/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetches every dashboard section once and prints it as JSON",
	Run:   runSnapshot,
}

type services struct {
	account   service.AccountService
	stats     service.StatsService
	positions service.PositionService
	analysis  service.AnalysisService
	dashboard service.DashboardService
}

func newServices(cfg *config.Config, db *postgres.DB, appLogger *logger.Logger) services {
	positionRepo := repository.NewPositionRepository(db.DB)
	accountRepo := repository.NewAccountRepository(db.DB)
	analysisRepo := repository.NewAnalysisResultRepository(db.DB)

	statsSvc := service.NewStatsService(positionRepo, appLogger)
	accountSvc := service.NewAccountService(accountRepo, positionRepo, appLogger)
	positionSvc := service.NewPositionService(positionRepo, cfg.Dashboard, appLogger)
	return services{
		account:   accountSvc,
		stats:     statsSvc,
		positions: positionSvc,
		analysis:  service.NewAnalysisService(analysisRepo, cfg.Dashboard, appLogger),
		dashboard: service.NewDashboardService(accountSvc, positionSvc, statsSvc, cfg.Dashboard, appLogger),
	}
}

func newDB(cfg *config.Config, appLogger *logger.Logger) *postgres.DB {
	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	return db
}

func loadConfigAndLogger() (*config.Config, *logger.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := loadConfigAndLogger()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service", logger.Field("name", cfg.App.Name))

	db := newDB(cfg, appLogger)
	defer db.Close()

	// Initialize Redis
	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	var notifier telegram.Notifier
	if cfg.Digest.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	svcs := newServices(cfg, db, appLogger)
	refreshSvc := service.NewRefreshService(svcs.dashboard, redisClient.Client, notifier, cfg.Refresher, cfg.Digest, appLogger)
	if cfg.Refresher.Enabled {
		if err := refreshSvc.Start(); err != nil {
			appLogger.Fatal("Failed to start dashboard refresher", logger.ErrorField(err))
		}
		defer refreshSvc.Stop()
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	ipExtractor, err := delivery.IPExtractor(cfg.RateLimit.TrustedProxies)
	if err != nil {
		appLogger.Fatal("Invalid rate limit configuration", logger.ErrorField(err))
	}
	e.IPExtractor = ipExtractor
	e.Use(middleware.Recover())
	e.Use(delivery.RequestLogger(appLogger))
	if cfg.RateLimit.Enabled {
		e.Use(delivery.NewRateLimiter(cfg.RateLimit).Middleware())
	}
	e.Use(middleware.ContextTimeout(cfg.Dashboard.QueryTimeout))

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")
	delivery.NewAccountHandler(svcs.account, svcs.stats, svcs.positions, appLogger).RegisterRoutes(apiV1.Group("/account"))
	delivery.NewAnalysisHandler(svcs.analysis, appLogger).RegisterRoutes(apiV1.Group("/analysis"))
	delivery.NewDashboardHandler(svcs.dashboard, refreshSvc, appLogger).RegisterRoutes(apiV1.Group("/dashboard"))

	e.GET("/health", delivery.Health)
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runSnapshot(cmd *cobra.Command, args []string) {
	cfg, appLogger := loadConfigAndLogger()
	defer func() { _ = appLogger.Sync() }()

	db := newDB(cfg, appLogger)
	defer db.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Refresher.Timeout)
	defer cancel()

	snap := newServices(cfg, db, appLogger).dashboard.FetchAll(ctx, &dto.DashboardRequest{ClosedPage: 1})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.DashboardResponse{Success: !snap.Failed(), DashboardSnapshot: *snap}); err != nil {
		appLogger.Fatal("Failed to encode snapshot", logger.ErrorField(err))
	}
}

// @title Trading Dashboard API
// @version 1.0
// @description Read-only query and analytics API over the trading ledger and the AI analysis archive.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, snapshotCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
