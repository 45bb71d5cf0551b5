package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/bank-reconciler/internal/commands"
	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/statement"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/app"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.NewRootCommand(newServices, statement.DefaultRegistry())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newServices loads the configuration and connects storage for one command
func newServices(ctx context.Context) (*commands.Services, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	// Command output goes to stdout; keep the log quiet unless asked otherwise
	appLogger := logger.NewZapLogger(cfg.IsProduction())
	level := coreport.ParseLogLevel(cfg.Logger.Level)
	if level < coreport.LogLevelWarn && os.Getenv("RC_LOGGER_LEVEL") == "" {
		level = coreport.LogLevelWarn
	}
	appLogger.SetLevel(level)

	application, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return &commands.Services{
		Reconciler: application.Reconciler,
		Profiles:   application.Profiles,
		Close: func() error {
			err := application.Close()
			_ = appLogger.Flush()
			return err
		},
	}, nil
}
