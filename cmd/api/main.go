package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/statement"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/app"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/config"
)

const (
	poolMonitorInterval  = 30 * time.Second
	lockCleanupInterval  = time.Minute
	startupConnectBudget = 2 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.IsProduction())
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Connect storage and build use cases
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupConnectBudget)
	application, err := app.New(startupCtx, cfg, appLogger)
	cancelStartup()
	if err != nil {
		appLogger.Error("Failed to initialise application", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			appLogger.Error("Failed to close application", map[string]any{"error": err.Error()})
		}
	}()

	application.DBManager.StartMonitoring(poolMonitorInterval)

	// Background lock cleanup
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	go runLockCleanup(bgCtx, application)

	// Initialize API handlers
	handlers := routes.Handlers{
		Import: handler.NewImportHandler(
			application.Reconciler,
			statement.DefaultRegistry(),
			cfg.Server.MaxUploadBytes,
			appLogger,
		),
		Transaction: handler.NewTransactionHandler(application.Reconciler, appLogger),
		Profile:     handler.NewProfileHandler(application.Profiles, appLogger),
		Health:      handler.NewHealthHandler(application.DBManager, appLogger),
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, application.TimeProvider, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, handlers)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"lock_backend": cfg.Reconcile.LockBackend,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down server...", nil)
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// runLockCleanup periodically removes expired lock rows until ctx is done
func runLockCleanup(ctx context.Context, application *app.App) {
	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			application.CleanupExpiredLocks(ctx)
		}
	}
}
