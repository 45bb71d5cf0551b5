package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/usecase/matcher"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/usecase/reconcile"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/repository"
	timeadapter "github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/config"
)

// App holds the wired services shared by the HTTP server and the CLI
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider

	DBManager  *database.Manager
	Reconciler *reconcile.Service
	Profiles   *profile.ProfileUseCase

	dbLocks     *repository.TransactionLockRepository
	redisClient *redis.Client
}

// New connects the database, runs migrations and builds the use cases
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger) (*App, error) {
	tp := timeadapter.NewRealTimeProvider()

	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), logger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:       cfg,
		Logger:       logger,
		TimeProvider: tp,
		DBManager:    dbManager,
	}

	if err := dbManager.MigrationManager().MigrateAll(ctx); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	locks, err := a.newLockBackend(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	m, err := matcher.New(matcher.Config{
		MinAliasLength: cfg.Reconcile.MinAliasLength,
		FuzzyThreshold: cfg.Reconcile.FuzzyThreshold,
	})
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("invalid matcher configuration: %w", err)
	}

	store := repository.NewTransactionRepository(db, logger)
	profiles := repository.NewProfileRepository(db, tp, logger)

	serviceConfig := reconcile.DefaultConfig()
	serviceConfig.Concurrency = cfg.Reconcile.Concurrency
	serviceConfig.LockTTL = cfg.Reconcile.LockTTL()
	if delay := cfg.Reconcile.StoreRetryDelay(); delay > 0 {
		serviceConfig.Retry.RetryInterval = delay
	}

	a.Reconciler = reconcile.NewReconciliationService(
		store,
		profiles,
		locks,
		m,
		tp,
		timeadapter.NewUUIDGenerator(),
		logger,
		serviceConfig,
	)
	a.Profiles = profile.NewProfileUseCase(profiles, profiles, logger)

	if cfg.Reconcile.SeedProfiles {
		if err := a.Profiles.CreateDefaultProfiles(ctx); err != nil {
			logger.Error("Failed to create default profiles", map[string]any{"error": err.Error()})
		}
	}

	return a, nil
}

func (a *App) newLockBackend(ctx context.Context) (persistence.TransactionLockRepository, error) {
	backend := a.Config.Reconcile.LockBackend
	a.Logger.Info("Using transaction lock backend", map[string]any{"backend": backend})

	switch backend {
	case config.LockBackendMemory:
		return memory.NewTransactionLockRepository(a.TimeProvider), nil
	case config.LockBackendRedis:
		client, err := lock.NewRedisClient(ctx, a.Config.Redis.Addr, a.Config.Redis.Password, a.Config.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.redisClient = client
		return lock.NewRedisTransactionLock(client, a.Logger), nil
	default:
		a.dbLocks = repository.NewTransactionLockRepository(a.DBManager.DB(), a.TimeProvider, a.Logger)
		return a.dbLocks, nil
	}
}

// CleanupExpiredLocks removes stale lock rows when the database backend is in use
func (a *App) CleanupExpiredLocks(ctx context.Context) {
	if a.dbLocks == nil {
		return
	}
	removed, err := a.dbLocks.CleanupExpiredLocks(ctx)
	if err != nil {
		a.Logger.Warn("Failed to clean up expired locks", map[string]any{"error": err.Error()})
		return
	}
	if removed > 0 {
		a.Logger.Debug("Expired locks removed", map[string]any{"count": removed})
	}
}

// Close releases the redis client and the database connection
func (a *App) Close() error {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.Logger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	return a.DBManager.Close()
}
